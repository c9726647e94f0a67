package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/peircelab/peirce/pkg/graph"
	"github.com/peircelab/peirce/pkg/session"
)

// proveCommand creates the prove command, an interactive derivation explorer.
func (c *CLI) proveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prove <graph>",
		Short: "Interactively derive consequences of a graph",
		Long: `Open an interactive explorer for deriving consequences of a graph.

Every legal rule application is listed with a preview of its result.
Applying a candidate advances the derivation; steps can be undone and the
whole derivation saved as a session.

Keys:
  up/down  select a candidate
  enter    apply the selected candidate
  u        undo the last step
  s        save the derivation and quit
  q        quit without saving`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readGraphArg(args[0])
			if err != nil {
				return err
			}
			g, err := graph.Parse(text)
			if err != nil {
				return err
			}

			model := newProveModel(g)
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}

			m, ok := final.(proveModel)
			if !ok || !m.save {
				return nil
			}
			return c.saveDerivation(cmd, &m)
		},
	}
}

// saveDerivation persists the finished derivation as a session.
func (c *CLI) saveDerivation(cmd *cobra.Command, m *proveModel) error {
	store, err := c.newSessionStore()
	if err != nil {
		return err
	}
	defer store.Close(cmd.Context())

	s := session.New(m.premise.String())
	for _, step := range m.steps {
		s.Record(string(step.rule), step.addr, step.result)
	}
	if err := store.Put(cmd.Context(), s); err != nil {
		return err
	}

	printSuccess("Saved derivation %s (%d steps)", s.ID, len(s.Steps))
	printNextStep("Replay it", fmt.Sprintf("%s sessions show %s", appName, s.ID))
	return nil
}
