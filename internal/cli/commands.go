package cli

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/okian/judgeboard/internal/adapters/repository"
	"github.com/okian/judgeboard/internal/adapters/terminal"
	"github.com/spf13/cobra"
)

// ErrInvalidLimit is returned for a negative leaderboard limit.
var ErrInvalidLimit = errors.New("limit must not be negative")

func newTeamsCommand(st *state) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List teams with their average scores.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := st.svc.NewView(cmd.Context())
			if err != nil {
				return err
			}
			view.SetSearchText(search)
			return st.renderer.Teams(view.Filtered(), view.Len(), view.SearchText())
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive team name filter")
	return cmd
}

func newShowCommand(st *state) *cobra.Command {
	var section string
	cmd := &cobra.Command{
		Use:   "show <index|name>",
		Short: "Print the report for one team.",
		Long: `Print the report for one team, selected by its exact or
case-insensitive name or by its dataset index (as listed by "teams").
A name wins over an index when both match.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			view, err := st.svc.NewView(ctx)
			if err != nil {
				return err
			}
			index, err := resolveTeam(ctx, st.svc, args[0])
			if err != nil {
				return err
			}
			if err := view.SelectTeam(index); err != nil {
				return err
			}
			return st.renderer.Team(view, section)
		},
	}
	cmd.Flags().StringVar(&section, "section", terminal.SectionAll,
		"Section to print: "+strings.Join(terminal.Sections(), ", "))
	return cmd
}

type teamFinder interface {
	FindTeam(ctx context.Context, name string) (int, error)
}

// resolveTeam looks arg up as a team name first and falls back to a dataset
// index, so teams named with digits stay reachable by name.
func resolveTeam(ctx context.Context, teams teamFinder, arg string) (int, error) {
	index, err := teams.FindTeam(ctx, arg)
	if err == nil {
		return index, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return -1, err
	}
	if n, convErr := strconv.Atoi(arg); convErr == nil {
		return n, nil
	}
	return -1, fmt.Errorf("team %q: %w", arg, err)
}

func newLeaderboardCommand(st *state) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Rank teams by weighted total.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return ErrInvalidLimit
			}
			standings, err := st.svc.Leaderboard(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return st.renderer.Leaderboard(standings)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show only the top N teams (0 shows all)")
	return cmd
}

func newStatsCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the dataset.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := st.svc.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return st.renderer.Stats(summary)
		},
	}
}

// newVersionCommand shows the build version for diagnostics.
func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of judgeboard.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("judgeboard\n")
			cmd.Printf("  Version: %s\n", version)
			cmd.Printf("  Commit:  %s\n", commit)
			cmd.Printf("  Built:   %s\n", date)
			cmd.Printf("  Runtime: %s\n", runtime.Version())
		},
	}
}
