package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/poker-hands/batch"
	"github.com/luca-patrignani/poker-hands/config"
	"github.com/luca-patrignani/poker-hands/domain/poker"
)

type app struct {
	configPath string
	envFile    string
	verbose    bool

	cfg    config.Config
	logger *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "pokerhands",
		Short:         "Rank and compare five-card poker hands",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file with POKERHANDS_* variables")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.countCmd(), a.classifyCmd(), a.compareCmd())
	return root
}

func (a *app) setup() error {
	if err := config.LoadDotEnv(a.envFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(level)
	return nil
}

// newLogger routes slog through the pterm logger on stderr so stdout only
// carries results.
func newLogger(level slog.Level) *slog.Logger {
	pterm.DefaultLogger.Writer = os.Stderr
	switch {
	case level <= slog.LevelDebug:
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		pterm.DefaultLogger.Level = pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		pterm.DefaultLogger.Level = pterm.LogLevelWarn
	default:
		pterm.DefaultLogger.Level = pterm.LogLevelError
	}
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	return slog.New(handler)
}

func (a *app) countCmd() *cobra.Command {
	var (
		summary     bool
		workers     int
		strictSuits bool
		crossCheck  bool
	)
	cmd := &cobra.Command{
		Use:   "count [file|-]",
		Short: "Count the deals player one wins or ties",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("workers") {
				a.cfg.Workers = workers
			}
			if flags.Changed("strict-suits") {
				a.cfg.StrictSuits = strictSuits
			}
			if flags.Changed("cross-check") {
				a.cfg.CrossCheck = crossCheck
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			input := a.cfg.Input
			if len(args) == 1 {
				input = args[0]
			}

			r, closeInput, err := openInput(cmd, input)
			if err != nil {
				return err
			}
			defer closeInput()

			a.logger.Debug("evaluating hands", "input", input, "workers", a.cfg.Workers,
				"strict_suits", a.cfg.StrictSuits, "cross_check", a.cfg.CrossCheck)
			ev := batch.New(batch.Options{
				Workers:     a.cfg.Workers,
				StrictSuits: a.cfg.StrictSuits,
				CrossCheck:  a.cfg.CrossCheck,
				Logger:      a.logger,
			})
			res, err := ev.Evaluate(cmd.Context(), r)
			if err != nil {
				return fmt.Errorf("evaluate %s: %w", input, err)
			}
			if res.DefaultedSuits > 0 {
				a.logger.Warn("some suit codes were not recognized and counted as diamonds", "cards", res.DefaultedSuits)
			}
			if summary {
				fmt.Fprint(cmd.OutOrStdout(), summaryBox(res, a.cfg.CrossCheck))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Count())
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "number of comparison workers (default from config)")
	cmd.Flags().BoolVar(&strictSuits, "strict-suits", false, "reject unknown suit codes instead of reading them as diamonds")
	cmd.Flags().BoolVar(&crossCheck, "cross-check", false, "compare every deal against the reference evaluator")
	cmd.Flags().BoolVar(&summary, "summary", false, "print a summary instead of the bare count")
	return cmd
}

func openInput(cmd *cobra.Command, input string) (io.Reader, func(), error) {
	if input == "" || input == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func (a *app) classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "classify C1 C2 C3 C4 C5",
		Short:   "Show the category and tie-break key of a hand",
		Example: "  pokerhands classify 4H 4D TC TS JH",
		Args:    cobra.ExactArgs(poker.HandSize),
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := parseCards(args)
			if err != nil {
				return err
			}
			h := poker.NewHand(cards...)
			desc, err := poker.Describe(h)
			if err != nil {
				a.logger.Debug("reference description unavailable", "hand", h.String(), "error", err.Error())
			}
			fmt.Fprint(cmd.OutOrStdout(), handBox("HAND", h, desc))
			return nil
		},
	}
}

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "compare C1 .. C10",
		Short:   "Compare two hands given as ten cards",
		Example: "  pokerhands compare 4H 4D TC TS JH 4C 4S TD TH AH",
		Args:    cobra.ExactArgs(batch.CardsPerLine),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := batch.ParseLine(strings.Join(args, " "), true)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, handBox("PLAYER 1", d.Player1, ""))
			fmt.Fprint(out, handBox("PLAYER 2", d.Player2, ""))
			fmt.Fprintln(out, outcomeLine(poker.Compare(d.Player1, d.Player2)))
			return nil
		},
	}
}

func parseCards(codes []string) ([]poker.Card, error) {
	cards := make([]poker.Card, len(codes))
	for i, code := range codes {
		c, err := poker.ParseCard(code)
		if err != nil {
			return nil, err
		}
		cards[i] = c
	}
	return cards, nil
}
