// Package main provides the CLI entrypoint for healthtui.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/davelt/healthtui/internal/config"
	"github.com/davelt/healthtui/internal/content"
	"github.com/davelt/healthtui/internal/model"
	"github.com/davelt/healthtui/internal/session"
	"github.com/davelt/healthtui/internal/stats"
	"github.com/davelt/healthtui/internal/store"
	"github.com/davelt/healthtui/internal/tui"
)

const defaultTrendWindow = 5

var (
	browseTopic   string
	browseSeed    int64
	browseDB      string
	browseArchive bool

	statsTopic       string
	statsSince       string
	statsLast        int
	statsTrendWindow int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "healthtui",
		Short:         "TUI health-education browser and quiz",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runBrowseCmd,
	}

	rootCmd.Flags().StringVar(&browseTopic, "topic", "", "preselect a quiz topic")
	rootCmd.Flags().Int64Var(&browseSeed, "seed", 0, "seed for the question draw (0: random)")
	rootCmd.Flags().StringVar(&browseDB, "db", "", "path to the activity archive (default: XDG data dir)")
	rootCmd.Flags().BoolVar(&browseArchive, "archive", true, "archive session activity on exit")

	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newMythsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runBrowseCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "topic", &browseTopic, fileCfg.Quiz.Topic)
	applyInt64Config(cmd, "seed", &browseSeed, fileCfg.Quiz.Seed)
	applyStringConfig(cmd, "db", &browseDB, fileCfg.Storage.DBPath)
	applyBoolConfig(cmd, "archive", &browseArchive, fileCfg.Storage.Archive)

	catalog := content.DefaultCatalog()
	myths := content.DefaultMythRegistry()
	bank := content.DefaultQuizBank()

	var rnd *rand.Rand
	if browseSeed != 0 {
		rnd = rand.New(rand.NewSource(browseSeed))
	}
	sess := session.New(bank, rnd)

	var st *store.Store
	if browseArchive {
		st, err = store.Open(resolveDBPath())
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
	}

	uiModel := tui.NewModel(catalog, myths, bank, sess)
	if browseTopic != "" {
		uiModel.SelectQuizTopic(browseTopic)
	}
	program := tea.NewProgram(uiModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if st != nil {
		if err := st.InsertActivities(context.Background(), sess.History()); err != nil {
			return fmt.Errorf("failed to archive session: %w", err)
		}
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show lifetime quiz stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsTopic, "topic", "", "topic filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N activities")
	cmd.Flags().IntVar(&statsTrendWindow, "trend-window", defaultTrendWindow, "moving average window for the trend")
	cmd.Flags().StringVar(&browseDB, "db", "", "path to the activity archive (default: XDG data dir)")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "trend-window", &statsTrendWindow, fileCfg.Stats.TrendWindow)
	applyStringConfig(cmd, "db", &browseDB, fileCfg.Storage.DBPath)
	if statsTrendWindow < 1 {
		return fmt.Errorf("--trend-window must be >= 1")
	}

	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if statsLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}

	cfg := model.StatsConfig{
		Topic: content.NormalizeKey(statsTopic),
		Since: sinceTime,
		Last:  statsLast,
	}

	st, err := store.Open(resolveDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	report, err := stats.BuildReport(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	return stats.Render(cmd.OutOrStdout(), report, statsTrendWindow)
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List health topics",
		Args:  cobra.NoArgs,
		RunE:  runTopicsCmd,
	}
}

func runTopicsCmd(cmd *cobra.Command, _ []string) error {
	catalog := content.DefaultCatalog()
	bank := content.DefaultQuizBank()
	for _, category := range catalog.Categories() {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), category); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		for _, topic := range catalog.TopicsInCategory(category) {
			marker := ""
			if bank.Has(topic.Key) {
				marker = " [quiz]"
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "  %-24s %s%s\n", topic.Key, topic.Title, marker); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	return nil
}

func newMythsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "myths",
		Short: "List health myths",
		Args:  cobra.NoArgs,
		RunE:  runMythsCmd,
	}
}

func runMythsCmd(cmd *cobra.Command, _ []string) error {
	registry := content.DefaultMythRegistry()
	for _, myth := range registry.All() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", myth.Key, myth.Myth); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
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

func resolveDBPath() string {
	if browseDB != "" {
		return browseDB
	}
	return config.DefaultDBPath()
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

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
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

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# healthtui configuration
# Uncomment a value to enable it. CLI flags override config values.

[quiz]
# topic = "diabetes"       # Preselect a quiz topic
# seed = 0                 # Seed for the question draw (0: random)

[stats]
# trend-window = %d         # Moving average window for the accuracy trend

[storage]
# db = ""                  # Path to the activity archive
# archive = true           # Archive session activity on exit
`, defaultTrendWindow)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
