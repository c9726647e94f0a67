package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/peircelab/peirce/pkg/graph"
	"github.com/peircelab/peirce/pkg/rules"
)

// findCommand creates the find command. It enumerates every address where a
// transformation rule can legally be applied.
func (c *CLI) findCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "find <rule> <graph>",
		Short: "List addresses where a rule can be applied",
		Long: fmt.Sprintf(`List every address where a transformation rule can be applied.

Addresses are dot-separated index paths from the root. At each level,
indices first count the cuts, then the atoms.

Rules: %s

Examples:
  peirce find double-cut "([[A]])"
  peirce find erasure "(A, [B, C])"
  peirce find deiteration "(A, [A])"`, ruleList()),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := rules.ParseRule(args[0])
			if err != nil {
				return err
			}
			text, err := readGraphArg(args[1])
			if err != nil {
				return err
			}
			g, err := graph.Parse(text)
			if err != nil {
				return err
			}
			addrs, err := rules.Find(rule, g)
			if err != nil {
				return err
			}

			if quiet {
				for _, a := range addrs {
					fmt.Println(a.String())
				}
				return nil
			}

			if len(addrs) == 0 {
				printInfo("No %s candidates in %s", rule, g.String())
				return nil
			}
			printInfo("%d %s candidate(s) in %s", len(addrs), rule, g.String())
			for _, a := range addrs {
				preview, err := rules.Apply(rule, g, a)
				if err != nil {
					return err
				}
				printDetail("%-8s %s %s", a.String(), iconArrow, preview.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the addresses")
	return cmd
}

// applyCommand creates the apply command. It applies a transformation rule
// at one address and prints the canonical result.
func (c *CLI) applyCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "apply <rule> <address> <graph>",
		Short: "Apply a rule at an address and print the result",
		Long: fmt.Sprintf(`Apply a transformation rule at a specific address.

The graph is canonicalized before the address is resolved, so addresses
refer to positions in the canonical form (as printed by "%s parse").

Rules: %s

Examples:
  peirce apply double-cut 0 "([[A]])"
  peirce apply erasure 0.0 "(A, [B, C])"
  peirce apply deiteration 0.0 "(A, [A])"`, appName, ruleList()),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := rules.ParseRule(args[0])
			if err != nil {
				return err
			}
			addr, err := graph.ParseAddress(args[1])
			if err != nil {
				return err
			}
			text, err := readGraphArg(args[2])
			if err != nil {
				return err
			}
			g, err := graph.Parse(text)
			if err != nil {
				return err
			}
			result, err := rules.Apply(rule, g, addr)
			if err != nil {
				return err
			}

			if quiet {
				fmt.Println(result.String())
				return nil
			}
			printSuccess("%s at %s", rule, addr.String())
			printDetail("%s %s %s", g.String(), iconArrow, result.String())
			printGraph(result.String())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the result")
	return cmd
}

// ruleList returns the rule names for help text.
func ruleList() string {
	names := make([]string, 0, len(rules.Rules()))
	for _, r := range rules.Rules() {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}
