// main.go
// Copyright (c) 2026 Ichijo Hodaka
// ohmcalc（導体の抵抗・オームの法則の逆算）
// - 導体: R, ρ, L, A のうち 3 つから残り 1 つ
// - 回路: U, I, R のうち 2 つから残り 1 つ
// - batch: 問題ファイルをまとめて解き、表 / TSV / xlsx に出力
// - 終了条件：全問終了 or Ctrl-C
//
// 表示は有効数字4桁（%.4g）

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ichijohodaka/ohmcalc/internal/batch"
	"github.com/ichijohodaka/ohmcalc/internal/circuit"
	"github.com/ichijohodaka/ohmcalc/internal/conductor"
	"github.com/ichijohodaka/ohmcalc/internal/material"
	"github.com/ichijohodaka/ohmcalc/internal/report"
	"github.com/ichijohodaka/ohmcalc/internal/token"
)

const defaultConfigPath = "ohmcalc.yaml"

var (
	// Global flags
	configPath string
	verbose    bool
	separator  string

	cfg    = DefaultConfig()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "ohmcalc",
	Short: "Solve conductor resistance and Ohm's law for the one missing quantity",
	Long: `ohmcalc takes the known quantities of a conductor (resistance, resistivity,
length, diameter or area, or a material name) or of a simple circuit (voltage,
current, resistance) and computes the one that is missing.

Tokens are separated by ';' (or given as separate arguments). A token is a
number followed by its unit (10m, 2.5mm2, 0.5ohm, 0.0172ohmxmm2/m, 12v, 2a),
optionally written as value:unit, or a material name (copper, kupfer,
material=alu).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		explicit := cmd.Flags().Changed("config")
		if !explicit {
			path = defaultConfigPath
		}
		c, err := LoadConfig(path, explicit)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("sep") {
			c.Separator = separator
			if err := c.Validate(); err != nil {
				return err
			}
		}
		cfg = c

		logger, err = newLogger(cfg.Log, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var conductorCmd = &cobra.Command{
	Use:     "conductor [tokens...]",
	Aliases: []string{"wire"},
	Short:   "Solve R = ρ·L/A for the missing quantity (exactly 3 of 4 known)",
	Example: `  ohmcalc conductor 100m 2.5mm2 copper
  ohmcalc conductor "0.6884ohm; 100m; material=kupfer"
  ohmcalc conductor --want length 1ohm 1.5mm alu
  ohmcalc conductor -- -4mm2 1m copper   # "--" before negative values`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConductor,
}

var circuitCmd = &cobra.Command{
	Use:     "circuit [tokens...]",
	Aliases: []string{"uri"},
	Short:   "Solve U = R·I for the missing quantity (exactly 2 of 3 known)",
	Example: `  ohmcalc circuit 2a 5ohm
  ohmcalc circuit "12v; 0.5a"
  ohmcalc circuit -- -12v 0.5a   # "--" before negative values`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCircuit,
}

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Solve one problem per line from a file ('-' for stdin)",
	Long: `Each line is "<kind>: <tokens>", where kind is conductor (wire, cable) or
circuit (uri). Blank lines and lines starting with '#' are skipped.

  conductor: 100m; 2.5mm2; copper
  circuit: 2a; 5ohm`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the known materials and their resistivity",
	Args:  cobra.NoArgs,
	RunE:  listMaterials,
}

var (
	wantSlot    string
	xlsxFile    string
	tsvFile     string
	maxPrint    int
	concurrency int
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&separator, "sep", ";", "token separator")

	conductorCmd.Flags().StringVar(&wantSlot, "want", "", "quantity that must come out solved (resistance, resistivity, length, area)")
	circuitCmd.Flags().StringVar(&wantSlot, "want", "", "quantity that must come out solved (voltage, current, resistance)")

	batchCmd.Flags().StringVar(&xlsxFile, "xlsx", "", "write an xlsx report")
	batchCmd.Flags().StringVar(&tsvFile, "tsv", "", "write a tsv report")
	batchCmd.Flags().IntVar(&maxPrint, "max-print", 0, "rows to print (0 uses config)")
	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "parallel solvers (0 uses config)")

	rootCmd.AddCommand(conductorCmd, circuitCmd, batchCmd, materialsCmd)
}

func newLogger(c LogConfig, debug bool) (*zap.Logger, error) {
	var zc zap.Config
	if c.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	if debug {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}

// 引数を 1 本につないでから区切り直す（"10m" "2mm" でも "10m;2mm" でも同じ）
func tokensFromArgs(args []string) []string {
	return token.Split(strings.Join(args, cfg.Separator), cfg.Separator)
}

func runConductor(cmd *cobra.Command, args []string) error {
	var want conductor.Slot
	if wantSlot != "" {
		s, ok := conductor.ParseSlot(strings.ToLower(wantSlot))
		if !ok {
			return fmt.Errorf("unknown conductor quantity %q", wantSlot)
		}
		want = s
	}

	tokens := tokensFromArgs(args)
	rec, err := token.Conductor(tokens)
	if err != nil {
		logger.Debug("conductor input rejected", zap.Strings("tokens", tokens), zap.Error(err))
		return err
	}
	res := conductor.Solve(rec)
	logger.Debug("conductor solved",
		zap.Int("known", rec.Known()),
		zap.Stringer("solved", res.Solved))

	fmt.Fprintln(cmd.OutOrStdout(), report.Conductor(res))
	// 解けなくても（割り算のガード）、欠けているスロットは決まっている
	if missing := rec.State().Missing(); want != conductor.SlotNone && missing != conductor.SlotNone && missing != want {
		return fmt.Errorf("asked for %s, but the missing quantity was %s", want, missing)
	}
	return nil
}

func runCircuit(cmd *cobra.Command, args []string) error {
	var want circuit.Slot
	if wantSlot != "" {
		s, ok := circuit.ParseSlot(strings.ToLower(wantSlot))
		if !ok {
			return fmt.Errorf("unknown circuit quantity %q", wantSlot)
		}
		want = s
	}

	tokens := tokensFromArgs(args)
	rec, err := token.Circuit(tokens)
	if err != nil {
		logger.Debug("circuit input rejected", zap.Strings("tokens", tokens), zap.Error(err))
		return err
	}
	res := circuit.Solve(rec)
	logger.Debug("circuit solved",
		zap.Int("known", rec.Known()),
		zap.Stringer("solved", res.Solved))

	fmt.Fprintln(cmd.OutOrStdout(), report.Circuit(res))
	if missing := rec.State().Missing(); want != circuit.SlotNone && missing != circuit.SlotNone && missing != want {
		return fmt.Errorf("asked for %s, but the missing quantity was %s", want, missing)
	}
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		fp, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer fp.Close()
		in = fp
	}

	problems, err := batch.ParseProblems(in, cfg.Separator)
	if err != nil {
		return err
	}

	// フラグが指定されていれば設定より優先
	run := cfg
	if xlsxFile != "" {
		run.XLSXFile = xlsxFile
	}
	if tsvFile != "" {
		run.TSVFile = tsvFile
	}
	if maxPrint > 0 {
		run.MaxPrint = maxPrint
	}
	if concurrency > 0 {
		run.Concurrency = concurrency
	}

	// Ctrl-C 対応
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(cmd.ErrOrStderr(), "\n[Ctrl-C] interrupt received. stopping...")
			cancel()
		case <-ctx.Done():
		}
	}()

	sum, err := batch.NewRunner(run.Concurrency, logger).Run(ctx, problems)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	PrintSummary(out, sum)
	PrintResultTable(out, "=== results ===", run.Columns, sum.Outcomes, run.MaxPrint)

	if run.XLSXFile != "" {
		if err := SaveToXLSX(run.XLSXFile, run.Columns, sum); err != nil {
			return fmt.Errorf("xlsx save: %w", err)
		}
		fmt.Fprintln(out, "xlsx saved:", run.XLSXFile)
	}
	if run.TSVFile != "" {
		if err := SaveListToTSV(run.TSVFile, run.Columns, sum.Outcomes); err != nil {
			return fmt.Errorf("tsv save: %w", err)
		}
		fmt.Fprintln(out, "tsv saved:", run.TSVFile)
	}

	if sum.Errors > 0 {
		return fmt.Errorf("%d of %d problems rejected", sum.Errors, sum.Total())
	}
	return nil
}

func listMaterials(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	syn := material.Synonyms()
	for _, m := range material.All() {
		fmt.Fprintf(out, "%-10s %10s Ω·mm²/m  (%s)\n", m, fmt4(m.Resistivity()), strings.Join(syn[m], ", "))
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
