package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathfacts/internal/store"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage learners",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List learners; the active one is marked with *",
	Args:  cobra.NoArgs,
	RunE: withProgress(func(cmd *cobra.Command, p *store.Progress, args []string) error {
		return printUsers(cmd.OutOrStdout(), p)
	}),
}

var usersAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a learner and make them active",
	Args:  cobra.MinimumNArgs(1),
	RunE: withProgress(func(cmd *cobra.Command, p *store.Progress, args []string) error {
		u, err := addUser(cmd.Context(), p, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) and switched to them.\n", u.Name, u.ID)
		return nil
	}),
}

var usersSwitchCmd = &cobra.Command{
	Use:   "switch ID",
	Short: "Make an existing learner active",
	Args:  cobra.ExactArgs(1),
	RunE: withProgress(func(cmd *cobra.Command, p *store.Progress, args []string) error {
		u, err := switchUser(cmd.Context(), p, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Switched to %s.\n", u.Name)
		return nil
	}),
}

var usersRenameCmd = &cobra.Command{
	Use:   "rename ID NAME",
	Short: "Rename a learner",
	Args:  cobra.MinimumNArgs(2),
	RunE: withProgress(func(cmd *cobra.Command, p *store.Progress, args []string) error {
		u, err := renameUser(cmd.Context(), p, args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s.\n", u.ID, u.Name)
		return nil
	}),
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a learner and all their progress",
	Args:  cobra.ExactArgs(1),
	RunE: withProgress(func(cmd *cobra.Command, p *store.Progress, args []string) error {
		if err := p.DeleteUser(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", args[0])
		return nil
	}),
}

func init() {
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersAddCmd)
	usersCmd.AddCommand(usersSwitchCmd)
	usersCmd.AddCommand(usersRenameCmd)
	usersCmd.AddCommand(usersDeleteCmd)
}

// withProgress opens the environment around a non-TUI command body.
func withProgress(run func(cmd *cobra.Command, p *store.Progress, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()
		return run(cmd, e.progress, args)
	}
}

func printUsers(w io.Writer, p *store.Progress) error {
	active, _ := p.ActiveUser()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tNAME\tANSWERED")
	for _, u := range p.ListUsers() {
		mark := ""
		if u.ID == active.ID {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", mark, u.ID, u.Name, u.LifetimeStats.Total)
	}
	return tw.Flush()
}

// addUser creates a learner whose id is derived from name.
func addUser(ctx context.Context, p *store.Progress, name string) (store.User, error) {
	name = strings.TrimSpace(name)
	id := store.UserIDFromName(name)
	if id == "" {
		return store.User{}, fmt.Errorf("user name must not be empty")
	}
	for _, u := range p.ListUsers() {
		if u.ID == id {
			return store.User{}, fmt.Errorf("user %q already exists", id)
		}
	}
	u, err := p.SetActiveUser(ctx, id, name)
	if err != nil {
		return store.User{}, fmt.Errorf("add user: %w", err)
	}
	return u, nil
}

func switchUser(ctx context.Context, p *store.Progress, id string) (store.User, error) {
	if !hasUser(p, id) {
		return store.User{}, fmt.Errorf("%w: %q", store.ErrUnknownUser, id)
	}
	u, err := p.SetActiveUser(ctx, id, "")
	if err != nil {
		return store.User{}, fmt.Errorf("switch user: %w", err)
	}
	return u, nil
}

// renameUser renames id while keeping the active user unchanged.
func renameUser(ctx context.Context, p *store.Progress, id, name string) (store.User, error) {
	if strings.TrimSpace(name) == "" {
		return store.User{}, fmt.Errorf("user name must not be empty")
	}
	if !hasUser(p, id) {
		return store.User{}, fmt.Errorf("%w: %q", store.ErrUnknownUser, id)
	}
	prev, hadActive := p.ActiveUser()
	u, err := p.SetActiveUser(ctx, id, name)
	if err != nil {
		return store.User{}, fmt.Errorf("rename user: %w", err)
	}
	if hadActive && prev.ID != id {
		if _, err := p.SetActiveUser(ctx, prev.ID, ""); err != nil {
			return store.User{}, fmt.Errorf("restore active user: %w", err)
		}
	}
	return u, nil
}

func hasUser(p *store.Progress, id string) bool {
	for _, u := range p.ListUsers() {
		if u.ID == id {
			return true
		}
	}
	return false
}
