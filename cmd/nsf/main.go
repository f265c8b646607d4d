package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
	"github.com/urfave/cli/v2"
	"github.com/victorpoughon/not-so-float/precision"
	"gopkg.in/natefinch/lumberjack.v2"
)

var version = "(devel)"

// setupLogger logs to stderr and, if logFile is set, also appends plain text
// records to logFile.
func setupLogger(verbose bool, logFile string) error {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	logConsole := os.Stderr

	handlers := []slog.Handler{
		tint.NewHandler(logConsole, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.DateTime,
			NoColor:    !isatty.IsTerminal(logConsole.Fd()),
		}),
	}

	if logFile != "" {
		handlers = append(handlers, slog.NewTextHandler(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    5, // MB
			MaxBackups: 4,
			MaxAge:     30, // days
		}, &slog.HandlerOptions{
			Level: logLevel,
		}))
	}

	logger := slog.New(slogmulti.Fanout(handlers...))

	slog.SetDefault(logger)

	return nil
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			slog.Error("Panic", "err", err, "stack", string(debug.Stack()))
			os.Exit(1)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var verbose bool
	verboseFlag := &cli.BoolFlag{
		Name:        "verbose",
		Aliases:     []string{"v"},
		Usage:       "verbose output (includes debug)",
		Destination: &verbose,
	}

	var logFile string
	logFileFlag := &cli.StringFlag{
		Name:        "log-file",
		Usage:       "also append logs to this file, rotated every 5 MB",
		Destination: &logFile,
	}

	cli.VersionFlag.(*cli.BoolFlag).Aliases = []string{"V"}
	app := &cli.App{
		Name:                   "nsf",
		Usage:                  "verified interval arithmetic",
		Version:                version,
		Suggest:                true,
		UseShortOptionHandling: true,
		EnableBashCompletion:   true,
		Flags:                  []cli.Flag{verboseFlag, logFileFlag},
		Before: func(_ *cli.Context) error {
			return setupLogger(verbose, logFile)
		},
		Commands: []*cli.Command{
			{
				Name:      "eval",
				Usage:     "evaluate an operation on unions of intervals, e.g. nsf eval div '[1, 2]' '[-1, 1]'",
				ArgsUsage: "<operation> <operand> [operand]",
				Description: "Operands are written [lo, hi], a bare number, or intervals joined by U.\n" +
					"Operations:\n" + usage(),
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() < 1 {
						return errors.Wrap(ErrUsage, "missing operation")
					}
					op, args := cCtx.Args().First(), cCtx.Args().Tail()
					slog.Debug("Evaluating", "op", op, "args", args)

					result, err := evaluate(op, args)
					if err != nil {
						return errors.Wrapf(err, "failed to evaluate %s", op)
					}
					fmt.Println(result)

					return nil
				},
			},
			{
				Name:  "precision",
				Usage: "measure soundness and tightness of the arithmetic against exact values",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "samples",
						Usage: "random interval pairs per operation",
						Value: precision.DefaultParameters.Samples,
					},
					&cli.StringFlag{
						Name:  "seed",
						Usage: "seed of the random generators, drawn at random if empty",
						Value: string(precision.DefaultParameters.Seed),
					},
					&cli.IntFlag{
						Name:  "magnitude",
						Usage: "sampled bounds are in [2^-magnitude, 2^magnitude] in absolute value",
						Value: precision.DefaultParameters.Magnitude,
					},
					&cli.StringSliceFlag{
						Name:  "op",
						Usage: "operations to measure (add, sub, mul, div), all by default",
					},
				},
				Action: func(cCtx *cli.Context) error {
					return errors.Wrapf(runPrecision(ctx, cCtx), "failed to run precision experiment")
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Failed", "err", err.Error())
		os.Exit(1)
	}
}

func runPrecision(ctx context.Context, cCtx *cli.Context) error {

	params := precision.Parameters{
		Samples:   cCtx.Int("samples"),
		Seed:      []byte(cCtx.String("seed")),
		Magnitude: cCtx.Int("magnitude"),
		Ops:       precision.AllOps,
	}

	if names := cCtx.StringSlice("op"); len(names) > 0 {
		params.Ops = nil
		for _, name := range names {
			op, err := precision.ParseOp(name)
			if err != nil {
				return err
			}
			params.Ops = append(params.Ops, op)
		}
	}

	slog.Debug("Running precision experiment", "samples", humanize.Comma(int64(params.Samples)),
		"magnitude", params.Magnitude, "ops", params.Ops)

	report, err := precision.Run(ctx, params)
	if err != nil {
		return err
	}

	if len(params.Seed) == 0 {
		slog.Info("Drew random seed", "seed", fmt.Sprintf("%x", report.Parameters.Seed))
	}

	table, err := reportTable(report)
	if err != nil {
		return err
	}
	fmt.Print(table)

	slog.Info("Precision experiment done",
		"samples", humanize.Comma(int64(params.Samples*len(params.Ops))),
		"took", report.Duration.Round(time.Millisecond))

	if n := report.Violations(); n > 0 {
		return errors.Errorf("%s results do not contain the exact value", humanize.Comma(int64(n)))
	}

	return nil
}

// reportTable renders one row per operation, with the ulp statistics of both
// bounds in right aligned columns.
func reportTable(report precision.Report) (string, error) {
	headers := []string{"OP", "SAMPLES", "VIOLATIONS",
		"LO AVG", "LO P99", "LO MAX", "HI AVG", "HI P99", "HI MAX"}

	align := make([]tw.Align, len(headers))
	for i := range align {
		align[i] = tw.AlignRight
	}
	align[0] = tw.AlignLeft

	cell := tw.CellConfig{
		Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
		Alignment:  tw.CellAlignment{PerColumn: align},
		Padding:    tw.CellPadding{Global: tw.Padding{Left: " ", Right: "  "}},
	}

	str := &strings.Builder{}
	table := tablewriter.NewTable(str,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.Lines{ShowHeaderLine: tw.On},
				Separators: tw.SeparatorsNone,
			},
		})),
		tablewriter.WithConfig(tablewriter.Config{Header: cell, Row: cell}),
	)

	ulps := func(v float64) string {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}

	table.Header(headers)
	for _, res := range report.Results {
		err := table.Append([]string{
			string(res.Op),
			humanize.Comma(int64(res.Samples)),
			humanize.Comma(int64(res.Violations)),
			ulps(res.Lower.Mean), ulps(res.Lower.P99), ulps(res.Lower.Max),
			ulps(res.Upper.Mean), ulps(res.Upper.P99), ulps(res.Upper.Max),
		})
		if err != nil {
			return "", errors.Wrapf(err, "cannot add %s to report", res.Op)
		}
	}

	if err := table.Render(); err != nil {
		return "", errors.Wrap(err, "cannot render report")
	}

	return str.String(), nil
}
