package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/wahlandcase/attuned.prtitle/internal/termfix"

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wahlandcase/attuned.prtitle/internal/app"
	"github.com/wahlandcase/attuned.prtitle/internal/config"
	"github.com/wahlandcase/attuned.prtitle/internal/extract"
	"github.com/wahlandcase/attuned.prtitle/internal/git"
	"github.com/wahlandcase/attuned.prtitle/internal/github"
	"github.com/wahlandcase/attuned.prtitle/internal/models"
	"github.com/wahlandcase/attuned.prtitle/internal/title"
	"github.com/wahlandcase/attuned.prtitle/internal/ui"
	"github.com/wahlandcase/attuned.prtitle/internal/update"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags
var version = "dev"

var (
	flagBranch      string
	flagBase        string
	flagMaxCommits  int
	flagModel       string
	flagTemperature float64
	flagMaxLength   int
	flagVerbose     bool
	flagCreatePR    bool
	flagInteractive bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "prtitle",
		Short: "Generate PR titles from branch names and commit history",
		Long: `prtitle analyzes the commits a branch carries over its base branch,
extracts ticket and change-type context from the branch name, and
generates a single concise PR title.

Examples:
  prtitle                          # Generate title for the current branch
  prtitle --verbose                # Show the analysis steps
  prtitle --branch feature/auth    # Generate for a specific branch
  prtitle --temperature 0.5        # Pick a different title template
  prtitle --interactive            # Choose among candidate titles
  prtitle --create-pr              # Open (or retitle) the PR via gh`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&flagBranch, "branch", "", "Branch to analyze (defaults to current branch)")
	rootCmd.Flags().StringVar(&flagBase, "base", "", "Base branch to compare against (defaults to main/master)")
	rootCmd.Flags().IntVar(&flagMaxCommits, "max-commits", 20, "Maximum number of commits to analyze")
	rootCmd.Flags().StringVar(&flagModel, "model", "tiny-llama",
		"Model to use ("+strings.Join(models.ModelNames(), ", ")+")")
	rootCmd.Flags().Float64Var(&flagTemperature, "temperature", 0.7, "Template selection temperature (0.1-1.0)")
	rootCmd.Flags().IntVar(&flagMaxLength, "max-length", 50, "Maximum title length")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().BoolVar(&flagCreatePR, "create-pr", false, "Create or retitle the PR via gh CLI")
	rootCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Pick among candidate titles interactively")

	rootCmd.AddCommand(updateCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	applyConfigDefaults(cmd, cfg)

	// Validate generation config before touching the repository
	gen, err := title.NewGenerator(title.Config{
		Model:       flagModel,
		Temperature: flagTemperature,
		MaxLength:   flagMaxLength,
		MaxCommits:  flagMaxCommits,
	})
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	if flagVerbose {
		fmt.Fprintln(os.Stderr, ui.KV("Working directory", cwd))
	}

	repo, err := git.Open(cwd)
	if err != nil {
		return err
	}
	if flagVerbose {
		fmt.Fprintln(os.Stderr, ui.KV("Git repository", repo.Root()))
	}

	branch := flagBranch
	if branch == "" {
		branch, err = repo.CurrentBranch()
		if err != nil {
			return err
		}
	}

	base := flagBase
	if base == "" {
		base = repo.DetectMainBranch()
	}

	if flagVerbose {
		fmt.Fprintln(os.Stderr, ui.KV("Analyzing branch", branch))
		fmt.Fprintln(os.Stderr, ui.KV("Base branch", base))
	}

	if !repo.HasBranch(branch) {
		return &git.BranchNotFoundError{Branch: branch}
	}

	commits, err := repo.CommitsBetween(base, branch, flagMaxCommits)
	if err != nil {
		return err
	}

	if flagVerbose {
		fmt.Fprintln(os.Stderr, ui.KV("Commits found", strconv.Itoa(len(commits))))
		fmt.Fprintln(os.Stderr, ui.RenderCommits(commits, 5))
	}

	proc := extract.NewProcessor(cfg.TicketPrefixes())

	branchCtx := proc.ExtractBranchContext(branch)
	if flagVerbose {
		fmt.Fprintln(os.Stderr, ui.RenderBranchContext(branchCtx))
	}

	cleaned := proc.CleanCommitMessages(commits)
	if flagVerbose && len(cleaned) > 0 {
		fmt.Fprintln(os.Stderr, ui.KV("Cleaned commits", ""))
		fmt.Fprintln(os.Stderr, ui.RenderCleaned(cleaned))
	}

	ctx := proc.Assemble(branchCtx, cleaned)

	var generated string
	if flagInteractive {
		chosen, ok, err := pickTitle(gen.Candidates(ctx))
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no title selected")
		}
		generated = chosen
	} else {
		generated = gen.Generate(ctx)
	}

	fmt.Println(generated)

	if flagCreatePR {
		if err := createPR(repo.Root(), branch, base, generated, commits); err != nil {
			return err
		}
	}

	maybeNudgeUpdate(cfg)
	return nil
}

// applyConfigDefaults lets the config file supply defaults for flags the
// user did not pass on the command line
func applyConfigDefaults(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if !flags.Changed("model") && cfg.Generator.Model != "" {
		flagModel = cfg.Generator.Model
	}
	if !flags.Changed("temperature") && cfg.Generator.Temperature != 0 {
		flagTemperature = cfg.Generator.Temperature
	}
	if !flags.Changed("max-length") && cfg.Generator.MaxLength != 0 {
		flagMaxLength = cfg.Generator.MaxLength
	}
	if !flags.Changed("max-commits") && cfg.Generator.MaxCommits != 0 {
		flagMaxCommits = cfg.Generator.MaxCommits
	}
	if !flags.Changed("base") && cfg.Generator.Base != "" {
		flagBase = cfg.Generator.Base
	}
}

// pickTitle runs the interactive picker on stderr so stdout stays pipeable
func pickTitle(titles []string) (string, bool, error) {
	p := tea.NewProgram(app.New(titles), tea.WithOutput(os.Stderr))

	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("error running picker: %w", err)
	}

	m, ok := final.(app.Model)
	if !ok {
		return "", false, nil
	}
	choice, ok := m.Choice()
	return choice, ok, nil
}

func createPR(repoPath, headBranch, baseBranch, prTitle string, commits []models.CommitInfo) error {
	if err := github.CheckAuth(); err != nil {
		return err
	}

	existing, err := github.GetExistingPR(repoPath, headBranch, baseBranch)
	if err != nil {
		return err
	}

	if existing != nil {
		if err := github.UpdatePRTitle(repoPath, existing.Number, prTitle); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, ui.KV("Updated PR", existing.URL))
		return nil
	}

	pr, err := github.CreatePR(repoPath, headBranch, baseBranch, prTitle, github.BuildPRBody(commits))
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, ui.KV("Created PR", pr.URL))
	return nil
}

// maybeNudgeUpdate prints a hint when a newer release exists. Best
// effort: failures are silent.
func maybeNudgeUpdate(cfg *config.Config) {
	if !cfg.ShouldCheckForUpdate() {
		return
	}
	cfg.RecordUpdateCheck()
	_ = cfg.Save()

	release, err := update.CheckForUpdate(version, cfg.Update.Repo)
	if err != nil || release == nil {
		return
	}
	if cfg.Update.SkippedVersion == release.TagName {
		return
	}

	fmt.Fprintln(os.Stderr, ui.Warning(
		"prtitle "+update.NormalizeVersion(release.TagName)+" is available. Run 'prtitle update' to install."))
}

func updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update prtitle to the latest release",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			release, err := update.CheckForUpdate(version, cfg.Update.Repo)
			if err != nil {
				return err
			}
			if release == nil {
				fmt.Println("prtitle is up to date")
				return nil
			}

			fmt.Printf("Updating to %s...\n", update.NormalizeVersion(release.TagName))
			if err := update.DownloadAndInstall(release, cfg.Update.Repo); err != nil {
				return err
			}

			fmt.Println("Updated. Restart prtitle to use the new version.")
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the prtitle version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}
