package models

import "strings"

// CommitInfo contains information about a single git commit
type CommitInfo struct {
	// Hash is the full commit hash
	Hash string
	// Message is the full commit message
	Message string
	// Author is the commit author name
	Author string
	// Timestamp is the commit time in seconds since the epoch
	Timestamp int64
}

// NewCommitInfo creates a new CommitInfo
func NewCommitInfo(hash, message, author string, timestamp int64) CommitInfo {
	return CommitInfo{
		Hash:      hash,
		Message:   message,
		Author:    author,
		Timestamp: timestamp,
	}
}

// ShortHash returns the abbreviated commit hash (7 characters)
func (c CommitInfo) ShortHash() string {
	if len(c.Hash) > 7 {
		return c.Hash[:7]
	}
	return c.Hash
}

// Subject returns the first line of the commit message
func (c CommitInfo) Subject() string {
	first, _, _ := strings.Cut(strings.TrimSpace(c.Message), "\n")
	return strings.TrimSpace(first)
}

// CleanMessage returns the commit message with surrounding whitespace removed
func (c CommitInfo) CleanMessage() string {
	return strings.TrimSpace(c.Message)
}
