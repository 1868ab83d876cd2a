package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordlist/internal/assets"
	"github.com/verte-zerg/wordlist/internal/generator"
	"github.com/verte-zerg/wordlist/internal/model"
	"github.com/verte-zerg/wordlist/internal/progress"
	"github.com/verte-zerg/wordlist/internal/report"
	"github.com/verte-zerg/wordlist/internal/wordgen"
	"github.com/verte-zerg/wordlist/internal/wordlist"
)

const (
	defaultPickCount   = 4
	defaultPickCaps    = 0.0
	defaultPickSep     = " "
	defaultExcludedOut = "excluded.txt"
)

var (
	pickCount int
	pickCaps  float64
	pickSep   string

	genSources     []string
	genExclude     []string
	genOut         string
	genExcludedOut string

	installForce bool
)

func newAliasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aliases",
		Short: "List word list aliases",
		Args:  cobra.NoArgs,
		RunE:  runAliasesCmd,
	}
}

func runAliasesCmd(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	if _, err := loadFileConfig(cmd); err != nil {
		return err
	}
	fsys := afero.NewOsFs()
	aliases := wordlist.LoadAliases(fsys, dataDir, logger)

	rows := make([][]string, 0, len(aliases.Names()))
	for _, name := range aliases.Names() {
		path := aliases.Resolve(name)
		status := "missing"
		if wordlist.IsFile(fsys, path) {
			status = "ok"
		}
		rows = append(rows, []string{name, status, path})
	}
	for _, line := range report.FormatTable([]string{"ALIAS", "STATUS", "PATH"}, rows, nil) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newWhichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "which",
		Short: "Show which files a build would read",
		Args:  cobra.NoArgs,
		RunE:  runWhichCmd,
	}
}

func runWhichCmd(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}
	builder, opts, err := newBuilder(logger, resolveListConfig(cmd, fileCfg))
	if err != nil {
		return err
	}
	fallback, err := builder.WillUseFallback(opts)
	if err != nil {
		return err
	}
	info, err := builder.Plan(opts)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, path := range info.Paths {
		if _, err := fmt.Fprintln(out, path); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if fallback {
		logger.Warn("fallback word list will be used")
	}
	return nil
}

func newPickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Print random words from the word list",
		Args:  cobra.NoArgs,
		RunE:  runPickCmd,
	}
	cmd.Flags().IntVarP(&pickCount, "count", "n", defaultPickCount, "number of words")
	cmd.Flags().Float64Var(&pickCaps, "caps", defaultPickCaps, "probability of capitalized first letter (0-1)")
	cmd.Flags().StringVar(&pickSep, "sep", defaultPickSep, "separator between words")
	return cmd
}

func runPickCmd(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}
	listCfg := resolveListConfig(cmd, fileCfg)
	applyIntConfig(cmd, "count", &pickCount, fileCfg.Pick.Count)
	applyFloatConfig(cmd, "caps", &pickCaps, fileCfg.Pick.CapsPct)
	applyStringConfig(cmd, "sep", &pickSep, fileCfg.Pick.Sep)

	cfg := model.PickConfig{Count: pickCount, CapsPct: pickCaps, Sep: pickSep}
	if err := validatePickConfig(cfg); err != nil {
		return err
	}

	list, err := buildList(cmd.Context(), logger, listCfg)
	if err != nil {
		return err
	}
	words, err := generator.New().Pick(list.Words, cfg.Count, cfg.CapsPct)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(words, cfg.Sep))
	return err
}

func validatePickConfig(cfg model.PickConfig) error {
	if cfg.Count <= 0 {
		return fmt.Errorf("--count must be > 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	return nil
}

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the bundled default word list into the data directory",
		Args:  cobra.NoArgs,
		RunE:  runInstallCmd,
	}
	cmd.Flags().BoolVar(&installForce, "force", false, "overwrite an existing default word list")
	return cmd
}

func runInstallCmd(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	if _, err := loadFileConfig(cmd); err != nil {
		return err
	}
	fsys := afero.NewOsFs()
	outPath := wordlist.LoadAliases(fsys, dataDir, logger).Resolve(wordlist.DefaultAlias)
	if !installForce {
		if _, err := fsys.Stat(outPath); err == nil {
			return fmt.Errorf("word list already exists: %s (use --force to overwrite)", outPath)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to stat word list: %w", err)
		}
	}
	if err := fsys.MkdirAll(filepath.Join(dataDir, "words"), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := wordgen.WriteList(fsys, outPath, assets.DefaultWords()); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	logger.Info("installed default word list", "path", outPath)
	return nil
}

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a word list from text sources",
		Args:  cobra.NoArgs,
		RunE:  runGenCmd,
	}
	cmd.Flags().StringArrayVarP(&genSources, "sources", "s", nil, "word source files, directories or globs (repeatable)")
	cmd.Flags().StringArrayVarP(&genExclude, "exclude", "e", nil, "exclusion rule files or directories (repeatable)")
	cmd.Flags().StringVarP(&genOut, "out", "o", "", "output word list path")
	cmd.Flags().StringVar(&genExcludedOut, "excluded-out", defaultExcludedOut, "path for the excluded words report (empty disables)")
	_ = cmd.MarkFlagRequired("sources")
	return cmd
}

func runGenCmd(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return err
	}
	applyStringSliceConfig(cmd, "exclude", &genExclude, fileCfg.Gen.Exclude)
	applyStringConfig(cmd, "out", &genOut, fileCfg.Gen.Out)
	applyStringConfig(cmd, "excluded-out", &genExcludedOut, fileCfg.Gen.ExcludedOut)
	cfg := model.GenConfig{
		Sources:     genSources,
		Exclude:     genExclude,
		Out:         genOut,
		ExcludedOut: genExcludedOut,
	}

	fsys := afero.NewOsFs()
	sourcePaths, err := wordgen.ResolvePaths(fsys, cfg.Sources)
	if err != nil {
		return fmt.Errorf("failed to resolve sources: %w", err)
	}
	if len(sourcePaths) == 0 {
		if len(cfg.Sources) == 0 {
			return fmt.Errorf("no sources given")
		}
		return fmt.Errorf("no source files found in %q", strings.Join(cfg.Sources, ", "))
	}

	reject, err := wordgen.LoadRejections(cmd.Context(), fsys, cfg.Exclude)
	if err != nil {
		return fmt.Errorf("failed to load exclusions: %w", err)
	}
	logger.Debug("loaded exclusions", "rules", reject.Len())

	var result wordgen.Result
	gen := wordgen.New(fsys, reject, logger)
	err = progress.Run(cmd.ErrOrStderr(), "Generating word list...", func() error {
		var genErr error
		result, genErr = gen.Generate(cmd.Context(), sourcePaths)
		return genErr
	})
	if err != nil {
		return fmt.Errorf("failed to build word list: %w", err)
	}

	if err := printSourceSummary(cmd, result); err != nil {
		return err
	}

	if cfg.ExcludedOut != "" && len(result.Excluded) > 0 {
		if err := wordgen.WriteList(fsys, cfg.ExcludedOut, result.Excluded); err != nil {
			return fmt.Errorf("failed to write %s: %w", cfg.ExcludedOut, err)
		}
		logger.Info("excluded words written", "path", cfg.ExcludedOut, "count", len(result.Excluded))
	}

	if cfg.Out == "" {
		return nil
	}
	if err := wordgen.WriteList(fsys, cfg.Out, result.Words); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.Out, err)
	}
	logger.Info("word list written", "path", cfg.Out, "words", len(result.Words))
	return nil
}

func printSourceSummary(cmd *cobra.Command, result wordgen.Result) error {
	rows := make([][]string, 0, len(result.Sources)+1)
	for _, src := range result.Sources {
		rows = append(rows, []string{src.Path, strconv.Itoa(src.Lines), strconv.Itoa(src.Words)})
	}
	rows = append(rows, []string{"unique words", "", strconv.Itoa(len(result.Words))})
	out := cmd.ErrOrStderr()
	for _, line := range report.FormatTable([]string{"SOURCE", "LINES", "WORDS"}, rows, map[int]bool{1: true, 2: true}) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
