package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peircelab/peirce/pkg/graph"
	"github.com/peircelab/peirce/pkg/session"
)

// sessionsCommand creates the command group for managing derivation sessions.
func (c *CLI) sessionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sessions",
		Aliases: []string{"session"},
		Short:   "Manage saved derivation sessions",
	}

	cmd.AddCommand(c.sessionsListCommand())
	cmd.AddCommand(c.sessionsShowCommand())
	cmd.AddCommand(c.sessionsDeleteCommand())

	return cmd
}

// sessionsListCommand creates the "sessions list" subcommand.
func (c *CLI) sessionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved derivations",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newSessionStore()
			if err != nil {
				return err
			}
			defer store.Close(cmd.Context())

			all, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(all) == 0 {
				printInfo("No saved sessions")
				printNextStep("Start one", fmt.Sprintf("%s prove \"(A, [A])\"", appName))
				return nil
			}
			for _, s := range all {
				printInfo("%s  %s", s.ID, StyleDim.Render(s.UpdatedAt.Local().Format("2006-01-02 15:04")))
				printDetail("%s %s %s  (%d steps)", s.Premise, iconArrow, s.Current, len(s.Steps))
			}
			return nil
		},
	}
}

// sessionsShowCommand creates the "sessions show" subcommand.
func (c *CLI) sessionsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a derivation step by step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newSessionStore()
			if err != nil {
				return err
			}
			defer store.Close(cmd.Context())

			s, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printSession(s)
			return nil
		},
	}
}

// sessionsDeleteCommand creates the "sessions delete" subcommand.
func (c *CLI) sessionsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved derivation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newSessionStore()
			if err != nil {
				return err
			}
			defer store.Close(cmd.Context())

			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
}

// printSession prints a complete derivation.
func printSession(s *session.Session) {
	printKeyValue("Session", s.ID)
	printKeyValue("Created", s.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Println()
	printGraph(s.Premise)
	for _, step := range s.Steps {
		addr := graph.Address(step.Address)
		printDetail("%s %s at %s", iconArrow, step.Rule, addr.String())
		printGraph(step.Result)
	}
}
