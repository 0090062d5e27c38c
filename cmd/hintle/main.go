// Package main provides the CLI entrypoint for hintle.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/hintle/internal/config"
	"github.com/verte-zerg/hintle/internal/logging"
	"github.com/verte-zerg/hintle/internal/model"
	"github.com/verte-zerg/hintle/internal/session"
	"github.com/verte-zerg/hintle/internal/store"
	"github.com/verte-zerg/hintle/internal/tui"
	"github.com/verte-zerg/hintle/internal/wordlist"
)

const (
	defaultWordLength = 5
	defaultMaxGuesses = 6
	defaultShow       = 50
)

const (
	envWordList = "HINTLE_WORDLIST"
	envLogLevel = "HINTLE_LOG_LEVEL"
)

var (
	sessionWordLength int
	sessionMaxGuesses int
	sessionShow       int
	sessionWordList   string
	logLevel          string
)

func main() {
	// A missing .env is the common case.
	_ = godotenv.Load()

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "hintle",
		Short:             "Narrow down word-guessing game answers from colored feedback",
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: setupLogging,
		RunE:              runSessionCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&sessionWordLength, "word-length", defaultWordLength, "letters per word")
	flags.IntVar(&sessionMaxGuesses, "max-guesses", defaultMaxGuesses, "maximum guesses per session")
	flags.IntVar(&sessionShow, "show", defaultShow, "number of candidates to display")
	flags.StringVar(&sessionWordList, "wordlist", "", "path to a newline-separated word list (default: embedded)")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default: warn)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newFilterCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	level := logLevel
	if !cmd.Flags().Changed("log-level") {
		level = os.Getenv(envLogLevel)
	}
	logging.Setup(cmd.ErrOrStderr(), level)
	return nil
}

func runSessionCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sess := session.New(loadSource(cfg.WordList), cfg.WordLength, cfg.MaxGuesses)
	if sess.Corpus().Len() == 0 {
		log.Warn().Str("wordlist", sess.Source().Name).Int("word_length", cfg.WordLength).
			Msg("no words of this length; every guess will leave zero candidates")
	}

	var recorder tui.Recorder
	if historyEnabled(fileCfg) {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			log.Warn().Err(err).Msg("failed to open session log; history is disabled")
		} else {
			defer func() {
				if cerr := st.Close(); cerr != nil {
					log.Error().Err(cerr).Msg("failed to close db")
				}
			}()
			recorder = st
		}
	}

	m := tui.NewModel(cfg, sess, recorder)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveConfig layers defaults, the config file, the environment and
// explicitly set flags, in increasing priority.
func resolveConfig(cmd *cobra.Command) (config.FileConfig, model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "word-length", &sessionWordLength, fileCfg.Session.WordLength)
	applyIntConfig(cmd, "max-guesses", &sessionMaxGuesses, fileCfg.Session.MaxGuesses)
	applyIntConfig(cmd, "show", &sessionShow, fileCfg.Session.Show)
	applyStringConfig(cmd, "wordlist", &sessionWordList, fileCfg.Session.WordList)
	if env := strings.TrimSpace(os.Getenv(envWordList)); env != "" {
		applyStringConfig(cmd, "wordlist", &sessionWordList, &env)
	}

	cfg := model.Config{
		WordLength: sessionWordLength,
		MaxGuesses: sessionMaxGuesses,
		Show:       sessionShow,
		WordList:   strings.TrimSpace(sessionWordList),
	}
	if err := validateConfig(cfg); err != nil {
		return config.FileConfig{}, model.Config{}, err
	}
	return fileCfg, cfg, nil
}

// loadSource reads the configured word list. An unreadable file degrades
// to an empty corpus rather than failing the session.
func loadSource(path string) wordlist.Source {
	if path == "" {
		return wordlist.Embedded()
	}
	src, err := wordlist.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("word list unavailable; continuing with an empty corpus")
		return wordlist.Source{Name: path}
	}
	return src
}

func historyEnabled(cfg config.FileConfig) bool {
	if cfg.History.Enabled == nil {
		return true
	}
	return *cfg.History.Enabled
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
	if err := writeConfigTemplate(path); err != nil {
		return err
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

// writeConfigTemplate creates the config file unless it already exists.
func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
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

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# hintle configuration
# Uncomment a value to enable it. CLI flags override config values.
# %s overrides wordlist, %s sets the log level.

[session]
# word-length = %d        # Letters per word (%d-%d)
# max-guesses = %d        # Maximum guesses per session (1-%d)
# show = %d              # Number of candidates to display
# wordlist = ""           # Path to a newline-separated word list

[history]
# enabled = true          # Record finished sessions
# last = 0                # Sessions shown by "hintle history" (0 = all)
`,
		envWordList,
		envLogLevel,
		defaultWordLength,
		model.MinWordLength,
		model.MaxWordLength,
		defaultMaxGuesses,
		model.MaxMaxGuesses,
		defaultShow,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.WordLength < model.MinWordLength || cfg.WordLength > model.MaxWordLength {
		return fmt.Errorf("--word-length must be between %d and %d", model.MinWordLength, model.MaxWordLength)
	}
	if cfg.MaxGuesses < model.MinMaxGuesses || cfg.MaxGuesses > model.MaxMaxGuesses {
		return fmt.Errorf("--max-guesses must be between %d and %d", model.MinMaxGuesses, model.MaxMaxGuesses)
	}
	if cfg.Show < 1 {
		return fmt.Errorf("--show must be >= 1")
	}
	return nil
}
