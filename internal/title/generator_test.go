package title

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/wahlandcase/attuned.prtitle/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixContext() models.CleanContext {
	ticket := "CRU-310"
	changeType := models.Fix
	description := "bottle stuck issue"
	return models.CleanContext{
		Ticket:      &ticket,
		ChangeType:  &changeType,
		Description: &description,
		Commits:     []string{"fix bottle stuck with remediation"},
	}
}

func TestNewGeneratorValidation(t *testing.T) {
	t.Run("valid default", func(t *testing.T) {
		_, err := NewGenerator(DefaultConfig())
		require.NoError(t, err)
	})

	t.Run("temperature too high", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Temperature = 2.0
		_, err := NewGenerator(cfg)
		var tempErr *InvalidTemperatureError
		require.ErrorAs(t, err, &tempErr)
		assert.Equal(t, 2.0, tempErr.Temperature)
	})

	t.Run("temperature too low", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Temperature = 0.05
		_, err := NewGenerator(cfg)
		var tempErr *InvalidTemperatureError
		assert.ErrorAs(t, err, &tempErr)
	})

	t.Run("zero max length", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxLength = 0
		_, err := NewGenerator(cfg)
		var lenErr *InvalidMaxLengthError
		assert.ErrorAs(t, err, &lenErr)
	})

	t.Run("unsupported model", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Model = "unknown-model"
		_, err := NewGenerator(cfg)
		var modelErr *UnsupportedModelError
		require.ErrorAs(t, err, &modelErr)
		assert.Equal(t, "unknown-model", modelErr.Name)
	})
}

func TestGenerateFixWithTicket(t *testing.T) {
	gen, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)

	got := gen.Generate(fixContext())

	assert.True(t, strings.HasPrefix(got, "CRU-310: "), "got %q", got)
	assert.Contains(t, got, "bottle")
	assert.LessOrEqual(t, utf8.RuneCountInString(got), 72)
}

func TestGenerateDeterministic(t *testing.T) {
	gen, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)

	first := gen.Generate(fixContext())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, gen.Generate(fixContext()))
	}
}

func TestTemplateIndex(t *testing.T) {
	tests := []struct {
		temperature float64
		count       int
		want        int
	}{
		{0.1, 3, 0},
		{0.5, 3, 1},
		{0.7, 3, 2},
		// 1.0 must still select the last template, not run past the end
		{1.0, 3, 2},
		{1.0, 2, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, templateIndex(tt.temperature, tt.count),
			"temperature=%v count=%d", tt.temperature, tt.count)
	}
}

func TestGenerateAtTemperatureBounds(t *testing.T) {
	for _, temp := range []float64{0.1, 1.0} {
		cfg := DefaultConfig()
		cfg.Temperature = temp
		gen, err := NewGenerator(cfg)
		require.NoError(t, err)

		got := gen.Generate(fixContext())
		assert.NotEmpty(t, got)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), 72)
	}
}

func TestTitleLengthInvariant(t *testing.T) {
	longCommit := strings.Repeat("implement authentication token refresh ", 8)
	ticket := "JIRA-9999"

	contexts := []models.CleanContext{
		{},
		{Commits: []string{longCommit}},
		{Ticket: &ticket, Commits: []string{longCommit}},
		{Commits: []string{"héllo wörld " + strings.Repeat("ünïcode ", 20)}},
	}

	for _, temp := range []float64{0.1, 0.5, 1.0} {
		for _, maxLen := range []int{10, 50, 100} {
			cfg := DefaultConfig()
			cfg.Temperature = temp
			cfg.MaxLength = maxLen
			gen, err := NewGenerator(cfg)
			require.NoError(t, err)

			for _, ctx := range contexts {
				got := gen.Generate(ctx)
				assert.LessOrEqual(t, utf8.RuneCountInString(got), 72,
					"temp=%v maxLen=%d title=%q", temp, maxLen, got)
			}
		}
	}
}

func TestGenerateEmptyContext(t *testing.T) {
	gen, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "Changes", gen.Generate(models.CleanContext{}))
}

func TestGenericTitleGetsNoTicket(t *testing.T) {
	gen, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)

	// Chore has no templates and the empty context falls back to the
	// generic "changes" subject, which must not carry the ticket
	ticket := "CRU-310"
	changeType := models.Chore
	got := gen.Generate(models.CleanContext{
		Ticket:     &ticket,
		ChangeType: &changeType,
	})

	assert.NotContains(t, got, "CRU-310")
}

func TestTruncationIsRuneSafe(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxLength = 10
	gen, err := NewGenerator(cfg)
	require.NoError(t, err)

	got := gen.Generate(models.CleanContext{
		Commits: []string{"ünïcöde çharacters everywhere in this commit message"},
	})

	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, utf8.RuneCountInString(got), 10)
}

func TestCandidates(t *testing.T) {
	gen, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)

	t.Run("one per template", func(t *testing.T) {
		titles := gen.Candidates(fixContext())
		require.Len(t, titles, 3)

		seen := make(map[string]bool)
		for _, title := range titles {
			assert.False(t, seen[title], "duplicate candidate %q", title)
			seen[title] = true
			assert.LessOrEqual(t, utf8.RuneCountInString(title), 72)
		}
	})

	t.Run("fallback action yields one", func(t *testing.T) {
		titles := gen.Candidates(models.CleanContext{})
		assert.Equal(t, []string{"Changes"}, titles)
	})
}

func TestExtractDomainOrderIsDeterministic(t *testing.T) {
	// Both auth and api keywords present: auth is declared first and wins
	ctx := models.CleanContext{
		Commits: []string{"add login endpoint for the api service"},
	}
	assert.Equal(t, "auth", extractDomain(ctx))
}

func TestExtractDomainFallback(t *testing.T) {
	ctx := models.CleanContext{
		Commits: []string{"rework 1234 caching layer"},
	}
	// First word longer than 3 chars that is not all digits
	assert.Equal(t, "rework", extractDomain(ctx))
}

func TestExtractMainSubject(t *testing.T) {
	description := "short desc"
	ctx := models.CleanContext{
		Description: &description,
		Commits:     []string{"tiny", "the longest cleaned commit message here"},
	}
	assert.Equal(t, "the longest cleaned commit message here", extractMainSubject(ctx))

	assert.Equal(t, "changes", extractMainSubject(models.CleanContext{}))
}
