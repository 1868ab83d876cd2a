// Package main provides the CLI entrypoint for wordlist.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordlist/internal/config"
	"github.com/verte-zerg/wordlist/internal/model"
	"github.com/verte-zerg/wordlist/internal/wordlist"
)

var (
	configPath string
	dataDir    string
	verbose    bool

	listPaths         []string
	listCombine       []string
	listFallback      string
	listForceFallback bool
	listMutator       string
	listKeepEmpty     bool
	listSplit         string
	listMinLen        int
	listSync          bool
	listCount         bool
	listStream        bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordlist",
		Short:         "Build word lists from dictionary files",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runListCmd,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", config.DefaultConfigPath(), "config file path")
	pf.StringVar(&dataDir, "data-dir", config.DefaultDataDir(), "directory holding default.txt and words/")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.StringArrayVarP(&listPaths, "path", "p", []string{wordlist.DefaultSystemPath}, "word list path or alias to search, in order (repeatable)")
	pf.StringArrayVarP(&listCombine, "combine", "c", nil, "word list path or alias to merge (repeatable, overrides --path)")
	pf.StringVar(&listFallback, "fallback", wordlist.DefaultAlias, "fallback word list when no --path exists (empty disables)")
	pf.BoolVar(&listForceFallback, "force-fallback", false, "always use the fallback word list")
	pf.StringVarP(&listMutator, "mutator", "m", "", "built-in mutator: only-lowercase-alpha, to-lowercase")
	pf.BoolVar(&listKeepEmpty, "keep-empty", false, "keep empty lines when no mutator is set")
	pf.StringVar(&listSplit, "split", "", "split every word on this separator")
	pf.IntVar(&listMinLen, "min-len", 0, "drop words shorter than this many characters")
	pf.BoolVar(&listSync, "sync", false, "read files one at a time instead of concurrently")

	rootCmd.Flags().BoolVar(&listCount, "count", false, "print only the number of words")
	rootCmd.Flags().BoolVar(&listStream, "stream", false, "print words as they are read (combined files may interleave)")

	rootCmd.AddCommand(newAliasesCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newGenCmd())
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newPickCmd())
	rootCmd.AddCommand(newWhichCmd())

	return rootCmd
}

func runListCmd(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}
	cfg := resolveListConfig(cmd, fileCfg)
	if listStream && !listCount && !cfg.Sync {
		return streamList(cmd, logger, cfg)
	}

	list, err := buildList(cmd.Context(), logger, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if listCount {
		_, err := fmt.Fprintln(out, len(list.Words))
		return err
	}
	writer := bufio.NewWriter(out)
	for _, word := range list.Words {
		if _, err := fmt.Fprintln(writer, word); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return writer.Flush()
}

func streamList(cmd *cobra.Command, logger *log.Logger, cfg model.ListConfig) error {
	builder, opts, err := newBuilder(logger, cfg)
	if err != nil {
		return err
	}
	writer := bufio.NewWriter(cmd.OutOrStdout())
	var writeErr error
	info, err := builder.Stream(cmd.Context(), opts, func(word string) {
		if writeErr == nil {
			_, writeErr = fmt.Fprintln(writer, word)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to build word list: %w", err)
	}
	if writeErr != nil {
		return fmt.Errorf("failed to write output: %w", writeErr)
	}
	warnFallback(logger, cfg, info)
	return writer.Flush()
}

func newBuilder(logger *log.Logger, cfg model.ListConfig) (*wordlist.Builder, wordlist.Options, error) {
	mutator, err := buildMutator(cfg)
	if err != nil {
		return nil, wordlist.Options{}, err
	}
	opts := wordlist.Options{
		Paths:         cfg.Paths,
		Combine:       cfg.Combine,
		Fallback:      cfg.Fallback,
		ForceFallback: cfg.ForceFallback,
		Mutator:       mutator,
		KeepEmpty:     cfg.KeepEmpty,
	}
	fsys := afero.NewOsFs()
	return wordlist.NewBuilder(fsys, wordlist.LoadAliases(fsys, dataDir, logger), logger), opts, nil
}

func warnFallback(logger *log.Logger, cfg model.ListConfig, info wordlist.Info) {
	if info.IsFallback && !cfg.ForceFallback {
		logger.Warn("system dictionary not found, using fallback", "path", strings.Join(info.Paths, ", "))
	}
}

func buildList(ctx context.Context, logger *log.Logger, cfg model.ListConfig) (wordlist.List, error) {
	builder, opts, err := newBuilder(logger, cfg)
	if err != nil {
		return wordlist.List{}, err
	}

	var list wordlist.List
	if cfg.Sync {
		list, err = builder.BuildSync(opts)
	} else {
		list, err = builder.Build(ctx, opts)
	}
	if err != nil {
		return wordlist.List{}, fmt.Errorf("failed to build word list: %w", err)
	}
	warnFallback(logger, cfg, list.Info)
	logger.Debug("built word list", "words", len(list.Words), "paths", list.Paths)
	return list, nil
}

func resolveListConfig(cmd *cobra.Command, fileCfg config.FileConfig) model.ListConfig {
	applyStringSliceConfig(cmd, "path", &listPaths, fileCfg.List.Paths)
	applyStringSliceConfig(cmd, "combine", &listCombine, fileCfg.List.Combine)
	applyStringConfig(cmd, "fallback", &listFallback, fileCfg.List.Fallback)
	applyBoolConfig(cmd, "force-fallback", &listForceFallback, fileCfg.List.ForceFallback)
	applyStringConfig(cmd, "mutator", &listMutator, fileCfg.List.Mutator)
	applyBoolConfig(cmd, "keep-empty", &listKeepEmpty, fileCfg.List.KeepEmpty)

	return model.ListConfig{
		Paths:         listPaths,
		Combine:       listCombine,
		Fallback:      listFallback,
		ForceFallback: listForceFallback,
		Mutator:       listMutator,
		KeepEmpty:     listKeepEmpty,
		Split:         listSplit,
		MinLen:        listMinLen,
		Sync:          listSync,
	}
}

// buildMutator layers --split and --min-len over the named built-in mutator.
func buildMutator(cfg model.ListConfig) (wordlist.Mutator, error) {
	base, err := wordlist.ParseMutator(cfg.Mutator)
	if err != nil {
		return wordlist.Mutator{}, err
	}
	if cfg.MinLen < 0 {
		return wordlist.Mutator{}, fmt.Errorf("--min-len must be >= 0")
	}
	if cfg.Split == "" && cfg.MinLen == 0 {
		return base, nil
	}
	return wordlist.Custom(func(word string) wordlist.Result {
		var out []string
		for _, w := range base.Apply(word, cfg.KeepEmpty) {
			parts := []string{w}
			if cfg.Split != "" {
				parts = strings.Split(w, cfg.Split)
			}
			for _, part := range parts {
				if utf8.RuneCountInString(part) >= cfg.MinLen {
					out = append(out, part)
				}
			}
		}
		return wordlist.Many(out...)
	}), nil
}

func loadFileConfig(cmd *cobra.Command) (config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "data-dir", &dataDir, fileCfg.Data.Dir)
	return fileCfg, nil
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
	path := configPath
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

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordlist configuration
# Uncomment a value to enable it. CLI flags override config values.

[list]
# paths = [%q]   # Word lists searched in order
# combine = []                        # Word lists to merge (overrides paths)
# fallback = %q                 # Used when no path exists
# force-fallback = false              # Always use the fallback
# mutator = "only-lowercase-alpha"    # or "to-lowercase"
# keep-empty = false                  # Keep empty lines

[data]
# dir = %q

[pick]
# count = %d                           # Words per pick
# caps = %.2f                          # Probability of capitalized first letter (0-1)
# sep = %q                            # Separator between picked words

[gen]
# exclude = []                        # Exclusion rule files or directories
# out = "words.txt"                   # Output word list
# excluded-out = "excluded.txt"       # Excluded words report
`,
		wordlist.DefaultSystemPath,
		wordlist.DefaultAlias,
		config.DefaultDataDir(),
		defaultPickCount,
		defaultPickCaps,
		defaultPickSep,
	)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "wordlist"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
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

func applyStringSliceConfig(cmd *cobra.Command, name string, target *[]string, value []string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = append([]string(nil), value...)
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

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
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
