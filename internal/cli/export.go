package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/soccerstatsqc/league-dashboard/internal/config"
	"github.com/soccerstatsqc/league-dashboard/internal/domain/timeline"
	"github.com/soccerstatsqc/league-dashboard/internal/usecase"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
)

type exportFile struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Team        string          `json:"team,omitempty"`
	Matches     []exportedMatch `json:"matches"`
}

type exportedMatch struct {
	ID       string         `json:"id"`
	Date     time.Time      `json:"date"`
	HomeTeam string         `json:"home_team"`
	AwayTeam string         `json:"away_team"`
	Score    string         `json:"score"`
	Groups   []exportGroup  `json:"groups"`
	Markers  []exportMarker `json:"markers"`
}

type exportGroup struct {
	Minute   int     `json:"minute"`
	Label    string  `json:"label"`
	Percent  float64 `json:"percent"`
	Adjusted bool    `json:"adjusted"`
}

type exportMarker struct {
	Minute    string  `json:"minute"`
	Side      string  `json:"side"`
	Kind      string  `json:"kind"`
	Tooltip   string  `json:"tooltip"`
	Icon      string  `json:"icon"`
	Percent   float64 `json:"percent"`
	Offset    int     `json:"offset"`
	Direction string  `json:"direction"`
}

func newExportCommand(r *runner) *cobra.Command {
	var (
		out  string
		team string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every match timeline as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withService(cmd, func(ctx context.Context, svc *usecase.MatchService, cfg config.Config) error {
				file, err := buildExport(ctx, svc, team, cfg.TimelineWorkers)
				if err != nil {
					return err
				}

				if out == "" || out == "-" {
					return writeExport(cmd.OutOrStdout(), file)
				}

				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				if err := writeExport(f, file); err != nil {
					_ = f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("close %s: %w", out, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d matches to %s\n", len(file.Matches), out)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().StringVarP(&team, "team", "t", "", "only export matches involving this team")
	return cmd
}

// buildExport lays out every listed match concurrently. Matches keep the
// results table order.
func buildExport(ctx context.Context, svc *usecase.MatchService, team string, workers int) (exportFile, error) {
	rows, err := svc.ListResults(ctx, team)
	if err != nil {
		return exportFile{}, fmt.Errorf("list results: %w", err)
	}
	if workers < 1 {
		workers = 1
	}

	matches := make([]exportedMatch, len(rows))
	p := pool.New().WithContext(ctx).WithMaxGoroutines(workers).WithCancelOnError()
	for i, row := range rows {
		i, matchID := i, row.MatchID
		p.Go(func(ctx context.Context) error {
			details, err := svc.GetDetails(ctx, matchID)
			if err != nil {
				return fmt.Errorf("export %s: %w", matchID, err)
			}
			matches[i] = exportedMatch{
				ID:       details.Result.ID,
				Date:     details.Result.Date,
				HomeTeam: details.Result.HomeTeam,
				AwayTeam: details.Result.AwayTeam,
				Score:    details.Result.Score,
				Groups:   exportGroups(details.Timeline.Groups),
				Markers:  exportMarkers(details.Timeline.Markers),
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return exportFile{}, err
	}

	return exportFile{
		GeneratedAt: time.Now().UTC(),
		Team:        team,
		Matches:     matches,
	}, nil
}

func exportGroups(groups []timeline.MinuteGroup) []exportGroup {
	out := make([]exportGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, exportGroup{Minute: g.Minute, Label: g.Label, Percent: g.Percent, Adjusted: g.Adjusted})
	}
	return out
}

func exportMarkers(markers []timeline.Marker) []exportMarker {
	out := make([]exportMarker, 0, len(markers))
	for _, m := range markers {
		out = append(out, exportMarker{
			Minute:    m.Event.Minute,
			Side:      string(m.Event.Side),
			Kind:      string(m.Event.Kind),
			Tooltip:   m.Event.Tooltip,
			Icon:      m.Icon,
			Percent:   m.Percent,
			Offset:    m.Offset,
			Direction: string(m.Direction),
		})
	}
	return out
}

func writeExport(w io.Writer, file exportFile) error {
	raw, err := sonic.ConfigStd.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	raw = append(raw, '\n')
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
