package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathfacts/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the active learner's data",
	Long:  "Wipes the active learner's problem history, lifetime totals and challenges. With --lifetime only the lifetime totals are cleared.",
	RunE: withProgress(func(cmd *cobra.Command, p *store.Progress, args []string) error {
		lifetimeOnly, _ := cmd.Flags().GetBool("lifetime")
		yes, _ := cmd.Flags().GetBool("yes")
		return runReset(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), p, lifetimeOnly, yes)
	}),
}

func init() {
	resetCmd.Flags().Bool("lifetime", false, "Only reset lifetime totals")
	resetCmd.Flags().BoolP("yes", "y", false, "Skip confirmation")
}

func runReset(ctx context.Context, in io.Reader, out io.Writer, p *store.Progress, lifetimeOnly, yes bool) error {
	u, ok := p.ActiveUser()
	if !ok {
		return store.ErrNoActiveUser
	}

	what := "all progress"
	if lifetimeOnly {
		what = "lifetime totals"
	}
	if !yes {
		fmt.Fprintf(out, "Reset %s for %s? (y/N): ", what, u.Name)
		input, _ := bufio.NewReader(in).ReadString('\n')
		input = strings.TrimSpace(strings.ToLower(input))
		if input != "y" && input != "yes" {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	var err error
	if lifetimeOnly {
		err = p.ResetLifetime(ctx)
	} else {
		err = p.ResetUser(ctx)
	}
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	fmt.Fprintf(out, "Reset %s for %s.\n", what, u.Name)
	return nil
}
