package cli

import (
	"context"
	"fmt"

	"github.com/soccerstatsqc/league-dashboard/internal/config"
	"github.com/soccerstatsqc/league-dashboard/internal/report"
	"github.com/soccerstatsqc/league-dashboard/internal/usecase"
	"github.com/spf13/cobra"
)

func newResultsCommand(r *runner) *cobra.Command {
	var team string

	cmd := &cobra.Command{
		Use:   "results",
		Short: "Print the results table, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withService(cmd, func(ctx context.Context, svc *usecase.MatchService, _ config.Config) error {
				rows, err := svc.ListResults(ctx, team)
				if err != nil {
					return fmt.Errorf("list results: %w", err)
				}
				if len(rows) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No results.")
					return nil
				}
				return report.WriteResults(cmd.OutOrStdout(), rows)
			})
		},
	}
	cmd.Flags().StringVarP(&team, "team", "t", "", "only show matches involving this team")
	return cmd
}

func newTeamsCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List every team with at least one match",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withService(cmd, func(ctx context.Context, svc *usecase.MatchService, _ config.Config) error {
				teams, err := svc.ListTeams(ctx)
				if err != nil {
					return fmt.Errorf("list teams: %w", err)
				}
				return report.WriteTeams(cmd.OutOrStdout(), teams)
			})
		},
	}
}

func newTimelineCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "timeline <match-id>",
		Short: "Print the positioned events of one match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withService(cmd, func(ctx context.Context, svc *usecase.MatchService, _ config.Config) error {
				tl, err := svc.GetTimeline(ctx, args[0])
				if err != nil {
					return fmt.Errorf("timeline %s: %w", args[0], err)
				}
				return report.WriteTimeline(cmd.OutOrStdout(), tl)
			})
		},
	}
}

func newMatchCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "match <match-id>",
		Short: "Print the header, timeline and statistics of one match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withService(cmd, func(ctx context.Context, svc *usecase.MatchService, _ config.Config) error {
				details, err := svc.GetDetails(ctx, args[0])
				if err != nil {
					return fmt.Errorf("match %s: %w", args[0], err)
				}

				out := cmd.OutOrStdout()
				report.WriteMatchHeader(out, details.Result)
				if err := report.WriteTimeline(out, details.Timeline); err != nil {
					return err
				}
				fmt.Fprintln(out)
				return report.WriteStats(out, details.Result.HomeTeam, details.Result.AwayTeam, details.Stats)
			})
		},
	}
}
