package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathfacts/internal/facts"
	"github.com/abhisek/mathfacts/internal/store"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change practice settings",
	Long:  "Without flags, prints the current settings. Flags change the practice mode, selected tables or keypad preference.",
	RunE: withProgress(func(cmd *cobra.Command, p *store.Progress, args []string) error {
		ctx := cmd.Context()
		flags := cmd.Flags()

		if flags.Changed("mode") {
			m, _ := flags.GetString("mode")
			if err := p.SetMode(ctx, facts.PracticeMode(m)); err != nil {
				return fmt.Errorf("set mode: %w", err)
			}
		}
		if flags.Changed("tables") {
			tables, _ := flags.GetIntSlice("tables")
			if err := p.SetSelectedNumbers(ctx, tables); err != nil {
				return fmt.Errorf("set tables: %w", err)
			}
		}
		if flags.Changed("keypad") {
			keypad, _ := flags.GetBool("keypad")
			if err := p.SetUseCustomKeypad(ctx, keypad); err != nil {
				return fmt.Errorf("set keypad: %w", err)
			}
		}
		return printSettings(ctx, cmd.OutOrStdout(), p)
	}),
}

func init() {
	settingsCmd.Flags().String("mode", "", "Practice mode: tables or single-digit")
	settingsCmd.Flags().IntSlice("tables", nil, "Selected multiplication tables, e.g. 2,3,5")
	settingsCmd.Flags().Bool("keypad", false, "Prefer the on-screen keypad")
}

func printSettings(_ context.Context, w io.Writer, p *store.Progress) error {
	fmt.Fprintf(w, "mode:    %s\n", p.Mode())
	fmt.Fprintf(w, "tables:  %s\n", joinInts(p.SelectedNumbers()))
	fmt.Fprintf(w, "keypad:  %t\n", p.UseCustomKeypad())
	return nil
}
