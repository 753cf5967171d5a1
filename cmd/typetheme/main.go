// Package main provides the CLI entrypoint for typetheme.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/typetheme/internal/config"
	"github.com/verte-zerg/typetheme/internal/corpus"
	"github.com/verte-zerg/typetheme/internal/generator"
	"github.com/verte-zerg/typetheme/internal/model"
	"github.com/verte-zerg/typetheme/internal/session"
	"github.com/verte-zerg/typetheme/internal/store"
	"github.com/verte-zerg/typetheme/internal/tui"
)

var (
	practiceTheme      string
	practiceResetDelay time.Duration
	practiceSeed       int64
	practiceNoStore    bool

	scoreSample  string
	scoreTyped   string
	scoreElapsed time.Duration

	corpusTheme string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typetheme",
		Short:         "Themed typing-speed practice",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.PersistentFlags().BoolVar(&practiceNoStore, "no-store", false, "ignore samples from the corpus database")
	rootCmd.Flags().StringVar(&practiceTheme, "theme", string(model.DefaultTheme), "text theme")
	rootCmd.Flags().DurationVar(&practiceResetDelay, "reset-delay", model.DefaultResetDelay, "delay before results are acknowledged and a new text is dealt")
	rootCmd.Flags().Int64Var(&practiceSeed, "seed", 0, "random seed for sample selection (0: time-based)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newThemesCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newCorpusCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "theme", &practiceTheme, fileCfg.Practice.Theme)
	applyDurationConfig(cmd, "reset-delay", &practiceResetDelay, fileCfg.Practice.ResetDelay)
	applyInt64Config(cmd, "seed", &practiceSeed, fileCfg.Practice.Seed)

	pool, err := loadPool(cmd.Context(), fileCfg, !practiceNoStore)
	if err != nil {
		return err
	}

	cfg := model.Config{
		Theme:      resolveTheme(pool, practiceTheme),
		ResetDelay: practiceResetDelay,
		Seed:       practiceSeed,
		UseStore:   !practiceNoStore,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	var picker generator.Picker = generator.New()
	if cfg.Seed != 0 {
		picker = generator.NewSeeded(cfg.Seed)
	}
	ctrl := session.NewController(pool, picker, cfg.Theme)
	program := tea.NewProgram(tui.NewModel(ctrl, cfg.ResetDelay), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// loadPool assembles the built-in samples, the [themes] table of the config
// file and, unless disabled, the samples stored in the corpus database.
func loadPool(ctx context.Context, fileCfg config.FileConfig, useStore bool) (corpus.Pool, error) {
	pools := []corpus.Pool{corpus.Builtin(), corpus.FromMap(fileCfg.ThemeSamples())}
	if useStore {
		stored, err := loadStoredSamples(ctx, config.DefaultDBPath())
		if err != nil {
			logErrf("failed to load stored samples: %v\n", err)
		} else {
			pools = append(pools, corpus.FromMap(stored))
		}
	}
	pool := corpus.Merge(pools...)
	if err := pool.Validate(); err != nil {
		return corpus.Pool{}, fmt.Errorf("invalid sample pool: %w", err)
	}
	return pool, nil
}

func loadStoredSamples(ctx context.Context, path string) (map[model.Theme][]string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	defer closeStore(st)
	return st.Pool(contextOrBackground(ctx))
}

func resolveTheme(pool corpus.Pool, name string) model.Theme {
	theme, ok := pool.Resolve(name)
	if !ok {
		logErrf("unknown theme %q; using %s\n", name, model.DefaultTheme)
		return model.DefaultTheme
	}
	if string(theme) != strings.ToLower(strings.TrimSpace(name)) {
		logErrf("using theme %s for %q\n", theme, name)
	}
	return theme
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE:  runThemesCmd,
	}
}

func runThemesCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	pool, err := loadPool(cmd.Context(), fileCfg, !practiceNoStore)
	if err != nil {
		return err
	}
	if err := renderThemes(cmd.OutOrStdout(), pool); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score an attempt without the TUI",
		Args:  cobra.NoArgs,
		RunE:  runScoreCmd,
	}
	cmd.Flags().StringVar(&scoreSample, "sample", "", "sample text")
	cmd.Flags().StringVar(&scoreTyped, "typed", "", "typed text")
	cmd.Flags().DurationVar(&scoreElapsed, "elapsed", 0, "time taken (e.g. 6s)")
	return cmd
}

func runScoreCmd(cmd *cobra.Command, _ []string) error {
	if scoreTyped == "" {
		return fmt.Errorf("--typed must not be empty")
	}
	if scoreElapsed < 0 {
		return fmt.Errorf("--elapsed must be >= 0")
	}
	return writeScore(cmd.OutOrStdout(), scoreSample, scoreTyped, scoreElapsed)
}

func newCorpusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Manage stored sample texts",
	}

	addCmd := &cobra.Command{
		Use:   "add TEXT",
		Short: "Store a sample text",
		Args:  cobra.ExactArgs(1),
		RunE:  runCorpusAddCmd,
	}
	addCmd.Flags().StringVar(&corpusTheme, "theme", "", "theme for the sample")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored sample texts",
		Args:  cobra.NoArgs,
		RunE:  runCorpusListCmd,
	}
	listCmd.Flags().StringVar(&corpusTheme, "theme", "", "theme filter")

	rmCmd := &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a stored sample text",
		Args:  cobra.ExactArgs(1),
		RunE:  runCorpusRmCmd,
	}

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Store every line of a text file as a sample",
		Args:  cobra.ExactArgs(1),
		RunE:  runCorpusImportCmd,
	}
	importCmd.Flags().StringVar(&corpusTheme, "theme", "", "theme for the samples")

	cmd.AddCommand(addCmd, listCmd, rmCmd, importCmd)
	return cmd
}

func runCorpusAddCmd(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(corpusTheme) == "" {
		return fmt.Errorf("--theme must not be empty")
	}
	if !corpus.ValidSample(args[0]) {
		return fmt.Errorf("sample must be a single non-empty line")
	}
	return withStore(func(st *store.Store) error {
		id, err := st.AddSample(contextOrBackground(cmd.Context()), model.Theme(corpusTheme), args[0])
		if err != nil {
			return fmt.Errorf("failed to add sample: %w", err)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Stored sample %d\n", id)
		return err
	})
}

func runCorpusListCmd(cmd *cobra.Command, _ []string) error {
	return withStore(func(st *store.Store) error {
		samples, err := st.ListSamples(contextOrBackground(cmd.Context()), model.Theme(corpusTheme))
		if err != nil {
			return fmt.Errorf("failed to list samples: %w", err)
		}
		return renderSamples(cmd.OutOrStdout(), samples)
	})
}

func runCorpusRmCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid sample id %q: %w", args[0], err)
	}
	return withStore(func(st *store.Store) error {
		removed, err := st.RemoveSample(contextOrBackground(cmd.Context()), id)
		if err != nil {
			return fmt.Errorf("failed to remove sample: %w", err)
		}
		if !removed {
			return fmt.Errorf("sample %d not found", id)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed sample %d\n", id)
		return err
	})
}

func runCorpusImportCmd(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(corpusTheme) == "" {
		return fmt.Errorf("--theme must not be empty")
	}
	lines, err := corpus.LoadLines(args[0])
	if err != nil {
		return fmt.Errorf("failed to load samples: %w", err)
	}
	valid := make([]string, 0, len(lines))
	for _, line := range lines {
		if corpus.ValidSample(line) {
			valid = append(valid, line)
		}
	}
	if skipped := len(lines) - len(valid); skipped > 0 {
		logErrf("Skipping %d invalid lines\n", skipped)
	}
	return withStore(func(st *store.Store) error {
		added, err := st.AddSamples(contextOrBackground(cmd.Context()), model.Theme(corpusTheme), valid)
		if err != nil {
			return fmt.Errorf("failed to import samples: %w", err)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d new samples into %s\n", added, strings.ToLower(corpusTheme))
		return err
	})
}

func withStore(fn func(*store.Store) error) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(st)
	return fn(st)
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyDurationConfig(cmd *cobra.Command, name string, target *time.Duration, value *config.Duration) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = value.Duration
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typetheme configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# theme = %q           # Theme to start with
# reset-delay = %q        # Delay before results are acknowledged
# seed = 0                # Random seed for sample selection (0: time-based)

# Extra samples per theme. New theme names add new themes.
[themes]
# coding = ["fmt.Println(\"hello\")"]
# haiku = ["An old silent pond. A frog jumps into the pond. Splash! Silence again."]
`,
		string(model.DefaultTheme),
		model.DefaultResetDelay.String(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.ResetDelay <= 0 {
		return fmt.Errorf("--reset-delay must be > 0")
	}
	if cfg.Theme == "" {
		return fmt.Errorf("--theme must not be empty")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
