package cmd

import (
	"context"
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathfacts/internal/facts"
	"github.com/abhisek/mathfacts/internal/report"
	"github.com/abhisek/mathfacts/internal/screens/stats"
	"github.com/abhisek/mathfacts/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime accuracy and the per-fact grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		mode := e.progress.Mode()
		if m, _ := cmd.Flags().GetString("mode"); m != "" {
			mode = facts.PracticeMode(m)
			if !mode.Valid() {
				return fmt.Errorf("%w: mode %q", store.ErrInvalidSetting, m)
			}
		}
		return printStats(cmd.Context(), cmd.OutOrStdout(), e.progress, mode)
	},
}

func init() {
	statsCmd.Flags().String("mode", "", "Grid to show: tables or single-digit (default: current mode)")
}

func printStats(ctx context.Context, w io.Writer, p *store.Progress, mode facts.PracticeMode) error {
	u, _ := p.ActiveUser()
	lt, err := p.Lifetime(ctx)
	if err != nil {
		return fmt.Errorf("read lifetime: %w", err)
	}
	history, err := p.History(ctx)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}

	fmt.Fprintf(w, "%s\n%s\n\n", u.Name, stats.LifetimeLine(lt))
	_, err = lipgloss.Fprintln(w, stats.RenderGrid(report.NewGrid(history, mode), 0, 0))
	return err
}
