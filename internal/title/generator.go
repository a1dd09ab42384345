// Package title synthesizes PR titles from cleaned branch and commit
// context using a fixed rule table.
package title

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wahlandcase/attuned.prtitle/internal/extract"
	"github.com/wahlandcase/attuned.prtitle/internal/models"
)

// hardMaxLength is the absolute title length cap, independent of the
// configured max length
const hardMaxLength = 72

// Config controls title generation
type Config struct {
	// Model is validated against the supported set but not otherwise used
	Model string
	// Temperature selects among the templates of an action, range [0.1, 1.0]
	Temperature float64
	// MaxLength is the soft title length cap
	MaxLength int
	// MaxCommits bounds the commit history analyzed (enforced upstream)
	MaxCommits int
}

// DefaultConfig returns the generation defaults
func DefaultConfig() Config {
	return Config{
		Model:       models.TinyLlama.String(),
		Temperature: 0.7,
		MaxLength:   50,
		MaxCommits:  20,
	}
}

// Generator produces PR titles from a CleanContext. It is immutable
// after construction and safe for concurrent use.
type Generator struct {
	cfg Config
}

// NewGenerator validates the config and creates a Generator
func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.Temperature < 0.1 || cfg.Temperature > 1.0 {
		return nil, &InvalidTemperatureError{Temperature: cfg.Temperature}
	}
	if cfg.MaxLength <= 0 {
		return nil, &InvalidMaxLengthError{Length: cfg.MaxLength}
	}
	if _, ok := models.ParseModelType(cfg.Model); !ok {
		return nil, &UnsupportedModelError{Name: cfg.Model}
	}
	return &Generator{cfg: cfg}, nil
}

// Generate produces a single title for the context. Identical inputs
// and config always yield the identical title.
func (g *Generator) Generate(ctx models.CleanContext) string {
	action := determineAction(ctx)
	domain := extractDomain(ctx)
	subject := extractMainSubject(ctx)

	var raw string
	if templates := templatesFor(action); templates != nil {
		template := templates[templateIndex(g.cfg.Temperature, len(templates))]
		raw = fillTemplate(template, domain, subject)
	} else if domain == "" {
		raw = subject
	} else {
		raw = capitalizeFirst(action) + " " + subject
	}

	return g.postProcess(cleanTitle(raw), ctx)
}

// Candidates produces one post-processed title per template of the
// selected action, for interactive selection. Actions without templates
// yield the single fallback title. Duplicates are removed.
func (g *Generator) Candidates(ctx models.CleanContext) []string {
	action := determineAction(ctx)
	domain := extractDomain(ctx)
	subject := extractMainSubject(ctx)

	var raws []string
	if templates := templatesFor(action); templates != nil {
		for _, template := range templates {
			raws = append(raws, fillTemplate(template, domain, subject))
		}
	} else if domain == "" {
		raws = append(raws, subject)
	} else {
		raws = append(raws, capitalizeFirst(action)+" "+subject)
	}

	seen := make(map[string]bool)
	var titles []string
	for _, raw := range raws {
		t := g.postProcess(cleanTitle(raw), ctx)
		if !seen[t] {
			seen[t] = true
			titles = append(titles, t)
		}
	}
	return titles
}

// postProcess truncates to the configured length, injects the ticket,
// capitalizes, and enforces the hard length cap
func (g *Generator) postProcess(t string, ctx models.CleanContext) string {
	t = truncate(t, g.cfg.MaxLength)

	if ctx.Ticket != nil && !strings.Contains(t, *ctx.Ticket) && !extract.IsGeneric(t) {
		t = *ctx.Ticket + ": " + t
	}

	t = capitalizeFirst(t)

	if utf8.RuneCountInString(t) > hardMaxLength {
		t = truncate(t, hardMaxLength)
	}

	return t
}

// truncate shortens s to max characters, ellipsis included. Truncation
// happens on rune boundaries so multi-byte text is never corrupted.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	cut := max - 3
	if cut < 0 {
		cut = 0
	}
	return string(runes[:cut]) + "..."
}

// capitalizeFirst upper-cases the first character of s
func capitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
