package title

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/wahlandcase/attuned.prtitle/internal/models"
)

// actionTemplates pairs an action with its title templates. Placeholders
// {domain} and {issue}/{feature}/{component} are filled at generation time.
type actionTemplates struct {
	action    string
	templates []string
}

// actionTable holds the templates per action. Actions without an entry
// (hotfix, chore, docs, update) fall through to the plain
// "Action subject" form.
var actionTable = []actionTemplates{
	{"fix", []string{
		"Fix {domain} {issue}",
		"Resolve {domain} {issue}",
		"Correct {domain} {issue}",
	}},
	{"feature", []string{
		"Add {domain} {feature}",
		"Implement {domain} {feature}",
		"Introduce {domain} {feature}",
	}},
	{"refactor", []string{
		"Refactor {domain} {component}",
		"Improve {domain} {component}",
		"Optimize {domain} {component}",
	}},
}

// domainAliases maps a domain key to the keywords that signal it
type domainAliases struct {
	key     string
	aliases []string
}

// domainTable is scanned in declaration order; the first matching key wins
var domainTable = []domainAliases{
	{"auth", []string{"authentication", "authorization", "login", "security"}},
	{"crypto", []string{"cryptocurrency", "blockchain", "wallet"}},
	{"api", []string{"api", "endpoint", "service"}},
}

// cleanupPatterns strip articles and collapse whitespace after templating
var cleanupPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(the|a|an)\b`),
	regexp.MustCompile(`\s+`),
}

// templatesFor returns the templates for an action, or nil
func templatesFor(action string) []string {
	for _, entry := range actionTable {
		if entry.action == action {
			return entry.templates
		}
	}
	return nil
}

// determineAction picks the action word: the branch change type when
// known, otherwise inferred from the commit text
func determineAction(ctx models.CleanContext) string {
	if ctx.ChangeType != nil {
		return ctx.ChangeType.String()
	}

	allText := strings.ToLower(strings.Join(ctx.Commits, " "))
	switch {
	case strings.Contains(allText, "fix"),
		strings.Contains(allText, "bug"),
		strings.Contains(allText, "issue"):
		return "fix"
	case strings.Contains(allText, "add"),
		strings.Contains(allText, "implement"),
		strings.Contains(allText, "feature"):
		return "feature"
	case strings.Contains(allText, "refactor"),
		strings.Contains(allText, "improve"):
		return "refactor"
	default:
		return "update"
	}
}

// extractDomain finds the first domain key whose alias appears in the
// description or commits, falling back to the first substantial word
func extractDomain(ctx models.CleanContext) string {
	var description string
	if ctx.Description != nil {
		description = *ctx.Description
	}
	allText := strings.ToLower(description + " " + strings.Join(ctx.Commits, " "))

	for _, entry := range domainTable {
		for _, alias := range entry.aliases {
			if strings.Contains(allText, alias) {
				return entry.key
			}
		}
	}

	for _, word := range strings.Fields(allText) {
		if len(word) > 3 && !allDigits(word) {
			return word
		}
	}
	return ""
}

// extractMainSubject picks the longest candidate among the description
// and the cleaned commits
func extractMainSubject(ctx models.CleanContext) string {
	var subjects []string
	if ctx.Description != nil {
		subjects = append(subjects, *ctx.Description)
	}
	subjects = append(subjects, ctx.Commits...)

	if len(subjects) == 0 {
		return "changes"
	}

	subject := subjects[0]
	for _, s := range subjects[1:] {
		if utf8.RuneCountInString(s) > utf8.RuneCountInString(subject) {
			subject = s
		}
	}
	return subject
}

// fillTemplate substitutes the placeholders of a template
func fillTemplate(template, domain, subject string) string {
	return strings.NewReplacer(
		"{domain}", domain,
		"{issue}", subject,
		"{feature}", subject,
		"{component}", subject,
	).Replace(template)
}

// templateIndex maps a temperature onto a template index, clamped so
// temperature 1.0 still selects the last template
func templateIndex(temperature float64, count int) int {
	idx := int(temperature * float64(count))
	if idx >= count {
		idx = count - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// cleanTitle strips articles and redundant whitespace from a raw title
func cleanTitle(raw string) string {
	for _, pattern := range cleanupPatterns {
		raw = pattern.ReplaceAllString(raw, " ")
	}
	return strings.Join(strings.Fields(raw), " ")
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
