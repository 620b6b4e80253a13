// Package cli wires the judgeboard report commands.
package cli

import (
	"context"
	"fmt"

	"github.com/okian/judgeboard/internal/adapters/terminal"
	service "github.com/okian/judgeboard/internal/app"
	"github.com/okian/judgeboard/internal/config"
	"github.com/okian/judgeboard/internal/domain/format"
	"github.com/okian/judgeboard/pkg/logger"
	"github.com/spf13/cobra"
)

// All linker flags are set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// state carries flag values and the started service between the root
// pre-run hook and the subcommands.
type state struct {
	noColor  bool
	verbose  bool
	dataset  string
	locale   string
	timezone string

	svc      *service.Service
	renderer *terminal.Renderer
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:   "judgeboard",
		Short: "Inspect hackathon evaluation results from the terminal.",
		Long: `judgeboard reads an evaluation dataset and prints team lists,
per-team reports, a leaderboard and dataset statistics.

Configuration follows the server: JUDGEBOARD_* environment variables and
an optional YAML file named by JUDGEBOARD_CONFIG. Flags override both.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "version", "help":
				return nil
			}
			return st.start(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if st.svc != nil {
				st.svc.Stop()
			}
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.BoolVar(&st.noColor, "no-color", false, "Disable coloured output")
	flags.BoolVarP(&st.verbose, "verbose", "v", false, "Log at debug level to stderr")
	flags.StringVar(&st.dataset, "dataset", "", "Path to the evaluation JSON (default: embedded sample)")
	flags.StringVar(&st.locale, "locale", "", "Locale for dates and numbers, e.g. en-GB")
	flags.StringVar(&st.timezone, "timezone", "", "IANA time zone for evaluation timestamps")

	root.AddCommand(
		newTeamsCommand(st),
		newShowCommand(st),
		newLeaderboardCommand(st),
		newStatsCommand(st),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (st *state) start(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if st.dataset != "" {
		cfg.DatasetPath = st.dataset
	}
	if st.locale != "" {
		cfg.Locale = st.locale
	}
	if st.timezone != "" {
		cfg.Timezone = st.timezone
	}
	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("%w: timezone %q: %w", config.ErrInvalidConfig, cfg.Timezone, err)
	}

	if err := logger.Init(logger.WithWriter(cmd.ErrOrStderr()), logger.WithFormat(cfg.LogFormat)); err != nil {
		return err
	}
	level := "warn"
	if st.verbose {
		level = "debug"
	}
	if err := logger.SetLevelString(level); err != nil {
		return err
	}

	formatter := format.New(format.WithLocale(cfg.Locale), format.WithLocation(loc))
	labels := format.NewLabels(cfg.CriteriaLabels, cfg.OverallLabels)

	st.svc = service.New(
		service.WithLogger(logger.Named("cli")),
		service.WithDatasetPath(cfg.DatasetPath),
		service.WithCriteriaWeights(cfg.CriteriaWeights),
		service.WithFormatter(formatter),
		service.WithLabels(labels),
	)
	if err := st.svc.Start(ctx); err != nil {
		return err
	}

	st.renderer = terminal.New(cmd.OutOrStdout(),
		terminal.WithColors(!st.noColor),
		terminal.WithFormatter(formatter),
		terminal.WithLabels(labels),
	)
	return nil
}
