package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/casegen/model"
	"github.com/katalvlaran/casegen/project"
	"github.com/katalvlaran/casegen/resolver"
)

// OrderCmd prints the generation order of a project's variables.
var OrderCmd = &cobra.Command{
	Use:   "order <project>",
	Short: "Show the variable generation order",
	Long: `Show the order in which variables are generated, grouped by
dependency depth. Variables of one level only depend on earlier levels.`,
	Args: cobra.ExactArgs(1),
	RunE: runOrder,
}

func runOrder(cmd *cobra.Command, args []string) error {
	p, err := project.Load(args[0])
	if err != nil {
		return err
	}
	if err := model.CheckDefinitions(p.Variables); err != nil {
		return err
	}

	levels, err := resolver.Levels(p.Variables)
	if err != nil {
		return err
	}

	byID := make(map[string]model.Variable, len(p.Variables))
	for _, v := range p.Variables {
		byID[v.ID] = v
	}
	deps := resolver.Graph(p.Variables)

	w := cmd.OutOrStdout()
	for i, level := range levels {
		fmt.Fprintln(w, pterm.LightCyan(fmt.Sprintf("level %d", i)))
		for _, id := range level {
			v := byID[id]
			line := fmt.Sprintf("  %-12s %-7s", v.Label(), v.Type)
			if s := model.Summary(v, p.Variables); s != "" {
				line += " " + pterm.Gray(s)
			}
			if d := deps[id]; len(d) > 0 {
				names := make([]string, len(d))
				for j, dep := range d {
					names[j] = byID[dep].Label()
				}
				line += " " + pterm.Yellow("<- "+strings.Join(names, ", "))
			}
			fmt.Fprintln(w, line)
		}
	}

	return nil
}
