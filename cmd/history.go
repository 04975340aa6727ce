package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathfacts/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past challenges",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		if clear, _ := cmd.Flags().GetBool("clear"); clear {
			if err := e.progress.ClearChallenges(cmd.Context()); err != nil {
				return fmt.Errorf("clear challenges: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Challenge history cleared.")
			return nil
		}
		return printHistory(cmd.Context(), cmd.OutOrStdout(), e.progress)
	},
}

func init() {
	historyCmd.Flags().Bool("clear", false, "Delete all past challenges")
}

func printHistory(ctx context.Context, w io.Writer, p *store.Progress) error {
	challenges, err := p.ListChallenges(ctx)
	if err != nil {
		return fmt.Errorf("list challenges: %w", err)
	}
	if len(challenges) == 0 {
		fmt.Fprintln(w, "No challenges yet.")
		return nil
	}

	fmt.Fprintf(w, "%-17s  %-14s  %-8s  %7s  %-6s  %s\n",
		"Date", "Operation", "Tables", "Score", "Result", "Reward")
	fmt.Fprintln(w, strings.Repeat("─", 72))
	for _, c := range challenges {
		date := c.Date
		if when := c.When(); !when.IsZero() {
			date = when.Local().Format("2006-01-02 15:04")
		}
		result := "fail"
		if c.Success {
			result = "pass"
		}
		fmt.Fprintf(w, "%-17s  %-14s  %-8s  %3d/%-3d  %-6s  %s\n",
			date, c.Operation, joinInts(c.Tables), c.Correct, c.Total, result, c.Reward)
	}
	fmt.Fprintf(w, "\n%d challenges\n", len(challenges))
	return nil
}

func joinInts(nums []int) string {
	if len(nums) == 0 {
		return "-"
	}
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ",")
}
