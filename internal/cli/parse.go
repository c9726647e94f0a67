package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/peircelab/peirce/pkg/graph"
)

// parseCommand creates the parse command. It reads a graph in bracket
// notation, canonicalizes it, and prints the canonical form with basic
// statistics.
func (c *CLI) parseCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "parse <graph>",
		Short: "Parse a graph and print its canonical form",
		Long: `Parse a graph in bracket notation and print its canonical form.

The sheet of assertion is written with round brackets, cuts with square
brackets, atoms as bare names separated by commas.

Examples:
  peirce parse "(A, [B])"
  peirce parse "([[man], mortal])"
  echo "(A, [A])" | peirce parse -`,
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
			if quiet {
				fmt.Println(g.String())
				return nil
			}
			printGraph(g.String())
			printDetail("%d atoms, %d cuts, depth %d", countAtoms(g), countCuts(g), depth(g))
			printNextStep("Find candidates", fmt.Sprintf("%s find erasure %q", appName, g.String()))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the canonical form")
	return cmd
}

// readGraphArg returns the graph text, reading stdin when arg is "-".
func readGraphArg(arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// countAtoms returns the total number of atoms in the tree.
func countAtoms(g *graph.Graph) int {
	n := g.NumAtoms()
	for _, child := range g.Children {
		n += countAtoms(child)
	}
	return n
}

// countCuts returns the total number of cuts in the tree.
func countCuts(g *graph.Graph) int {
	n := g.NumChildren()
	for _, child := range g.Children {
		n += countCuts(child)
	}
	return n
}

// depth returns the maximum nesting depth below g.
func depth(g *graph.Graph) int {
	max := 0
	for _, child := range g.Children {
		if d := depth(child) + 1; d > max {
			max = d
		}
	}
	return max
}
