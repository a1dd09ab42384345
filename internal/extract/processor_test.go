package extract

import (
	"testing"

	"github.com/wahlandcase/attuned.prtitle/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProcessor() *Processor {
	return NewProcessor([]string{"CRU-", "JIRA-", "TASK-", "BUG-", "FEATURE-", "FIX-"})
}

func TestExtractTicket(t *testing.T) {
	p := testProcessor()

	tests := []struct {
		name   string
		branch string
		want   string // empty means absent
	}{
		{"whitelisted prefix", "feature/CRU-310-fix-bottle-stuck", "CRU-310"},
		{"jira prefix", "fix/JIRA-123-update-auth", "JIRA-123"},
		{"bare number is not a ticket", "feature/123-some-feature", ""},
		{"shape matches but prefix not whitelisted", "feature/ABC-123-something", ""},
		{"no ticket at all", "feature/add-login-page", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := p.ExtractBranchContext(tt.branch)
			if tt.want == "" {
				assert.Nil(t, ctx.Ticket)
			} else {
				require.NotNil(t, ctx.Ticket)
				assert.Equal(t, tt.want, *ctx.Ticket)
			}
		})
	}
}

func TestInferChangeType(t *testing.T) {
	p := testProcessor()

	tests := []struct {
		branch string
		want   models.ChangeType
	}{
		{"fix/bottle-stuck-issue", models.Fix},
		{"feature/new-auth-system", models.Feature},
		{"hotfix/critical-security-patch", models.Hotfix},
		{"refactor/storage-layer", models.Refactor},
		{"docs/readme-overhaul", models.Docs},
		{"chore/bump-deps", models.Chore},
		// Priority: fix wins over feature when both appear
		{"fix/feature-flag-check", models.Fix},
		// hotfix wins over the fix substring it contains
		{"hotfix/fix-everything", models.Hotfix},
	}

	for _, tt := range tests {
		t.Run(tt.branch, func(t *testing.T) {
			ctx := p.ExtractBranchContext(tt.branch)
			require.NotNil(t, ctx.ChangeType)
			assert.Equal(t, tt.want, *ctx.ChangeType)
		})
	}

	t.Run("no keyword", func(t *testing.T) {
		ctx := p.ExtractBranchContext("release/v2-rollout-plan")
		assert.Nil(t, ctx.ChangeType)
	})
}

func TestExtractDescription(t *testing.T) {
	p := testProcessor()

	t.Run("skips two segments after a ticket", func(t *testing.T) {
		ctx := p.ExtractBranchContext("feature/CRU-310-fix-bottle-stuck")
		require.NotNil(t, ctx.Description)
		assert.Equal(t, "310 fix bottle stuck", *ctx.Description)
	})

	t.Run("skips one segment without a ticket", func(t *testing.T) {
		ctx := p.ExtractBranchContext("feature/add-login-page")
		require.NotNil(t, ctx.Description)
		assert.Equal(t, "add login page", *ctx.Description)
	})

	t.Run("too few segments", func(t *testing.T) {
		ctx := p.ExtractBranchContext("feature/auth")
		assert.Nil(t, ctx.Description)
	})

	t.Run("remote prefix stripped first", func(t *testing.T) {
		ctx := p.ExtractBranchContext("origin/feature/add-login-page")
		require.NotNil(t, ctx.Description)
		assert.Equal(t, "add login page", *ctx.Description)
	})
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"long numbers removed", "build 12345 done", "build done"},
		{"short numbers kept", "fix 310 stuck", "fix 310 stuck"},
		{"hex tokens removed", "pick deadbeefcafe onto branch", "pick onto branch"},
		{"branch words removed", "sync with origin main now", "sync with now"},
		{"bare update removed", "update dependency graph", "dependency graph"},
		{"updated is not update", "updated dependency graph", "updated dependency graph"},
		{"whitespace collapsed", "  fix   bottle \t stuck ", "fix bottle stuck"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"fix   bug  12345",
		"deadbeefcafe cursor update",
		"",
		"update-",
		"CRU-310 fix bottle stuck",
		"sync origin main master develop",
		"plain sentence without noise",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize should be a no-op on %q", once)
	}
}

func TestCleanCommitMessages(t *testing.T) {
	p := testProcessor()

	commits := []models.CommitInfo{
		models.NewCommitInfo("a1", "fix: bottle stuck with remediation system", "dev", 3),
		models.NewCommitInfo("a2", "Merge branch 'main' into feature", "dev", 2),
		models.NewCommitInfo("a3", "feat: implement new authentication", "dev", 1),
		models.NewCommitInfo("a4", "Revert \"implement new authentication\"", "dev", 0),
		models.NewCommitInfo("a5", "fix: typo", "dev", 0),
	}

	cleaned := p.CleanCommitMessages(commits)

	// Merge, revert, and near-empty commits drop; order is preserved
	require.Len(t, cleaned, 2)
	assert.Equal(t, "bottle stuck with remediation system", cleaned[0])
	assert.Equal(t, "implement new authentication", cleaned[1])
}

func TestCleanCommitMessagePrefixCaseInsensitive(t *testing.T) {
	p := testProcessor()

	commits := []models.CommitInfo{
		models.NewCommitInfo("b1", "FIX: bottle stuck with remediation", "dev", 0),
	}

	cleaned := p.CleanCommitMessages(commits)
	require.Len(t, cleaned, 1)
	assert.Equal(t, "bottle stuck with remediation", cleaned[0])
}

func TestAssemble(t *testing.T) {
	p := testProcessor()

	ticket := "CRU-310"
	branch := models.BranchContext{Ticket: &ticket}

	commits := []string{
		"implement new authentication flow",
		"fix typo",          // two words: generic
		"update change fix", // only generic terms
		"rework token refresh handling",
	}

	ctx := p.Assemble(branch, commits)

	require.NotNil(t, ctx.Ticket)
	assert.Equal(t, "CRU-310", *ctx.Ticket)
	assert.Equal(t, []string{
		"implement new authentication flow",
		"rework token refresh handling",
	}, ctx.Commits)
}

func TestIsGeneric(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"update fix change", true},
		{"fix typo", true},
		{"a b", true},
		{"", true},
		{"implement authentication flow", false},
		{"add add add authentication", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGeneric(tt.text))
		})
	}
}
