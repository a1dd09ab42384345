// Package update checks for and installs newer prtitle releases via the
// gh CLI.
package update

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Release represents a GitHub release
type Release struct {
	TagName string `json:"tagName"`
}

// CheckForUpdate queries GitHub releases and returns latest if newer than current
func CheckForUpdate(currentVersion, repo string) (*Release, error) {
	cmd := exec.Command("gh", "release", "list",
		"--repo", repo,
		"--json", "tagName",
		"--limit", "1",
	)

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("gh release list failed: %w", err)
	}

	var releases []Release
	if err := json.Unmarshal(output, &releases); err != nil {
		return nil, fmt.Errorf("failed to parse releases: %w", err)
	}

	if len(releases) == 0 {
		return nil, nil
	}

	latest := &releases[0]

	latestVer := NormalizeVersion(latest.TagName)
	currentVer := NormalizeVersion(currentVersion)

	// "dev" builds are always older than any release
	if currentVer == "dev" {
		return latest, nil
	}

	// String comparison works for semver if the format is consistent
	if latestVer > currentVer {
		return latest, nil
	}

	return nil, nil
}

// NormalizeVersion strips release tag prefixes for comparison and display
func NormalizeVersion(v string) string {
	v = strings.TrimPrefix(v, "prtitle/")
	return strings.TrimPrefix(v, "v")
}

// binaryAssetName returns the expected release asset name for this platform
func binaryAssetName() string {
	return fmt.Sprintf("prtitle-%s-%s", runtime.GOOS, runtime.GOARCH)
}

// DownloadAndInstall downloads the release binary and replaces the
// current executable
func DownloadAndInstall(release *Release, repo string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate binary: %w", err)
	}
	binaryPath, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return fmt.Errorf("failed to resolve binary path: %w", err)
	}

	tmpPath := filepath.Join(os.TempDir(), "prtitle-update")

	cmd := exec.Command("gh", "release", "download",
		release.TagName,
		"--repo", repo,
		"--pattern", binaryAssetName(),
		"--output", tmpPath,
		"--clobber",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("download failed: %s", string(output))
	}

	if err := os.Chmod(tmpPath, 0755); err != nil {
		return fmt.Errorf("chmod failed: %w", err)
	}

	// A tiny download is an error page, not a binary
	info, err := os.Stat(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to stat downloaded file: %w", err)
	}
	if info.Size() < 1000 {
		return fmt.Errorf("downloaded file too small (%d bytes), likely invalid", info.Size())
	}

	// Atomic replace; fall back to copy when rename crosses devices
	if err := os.Rename(tmpPath, binaryPath); err != nil {
		return copyFile(tmpPath, binaryPath)
	}

	return nil
}

// copyFile copies src over dst via a temp file in dst's directory
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	tmpFile, err := os.CreateTemp(filepath.Dir(dst), "prtitle-update-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	if _, err := io.Copy(tmpFile, srcFile); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return err
	}
	tmpFile.Close()

	if err := os.Chmod(tmpPath, 0755); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, dst); err != nil {
		os.Remove(tmpPath)
		return err
	}

	os.Remove(src)
	return nil
}
