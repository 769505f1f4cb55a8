package commands

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/casegen/engine"
	"github.com/katalvlaran/casegen/model"
	"github.com/katalvlaran/casegen/project"
)

// ValidateCmd reports problems in a project file without generating.
var ValidateCmd = &cobra.Command{
	Use:   "validate <project>",
	Short: "Check a project for constraint problems",
	Long: `Check a project file for problems.

Warnings (inverted ranges, links to unknown variables) do not stop
generation; casegen falls back to defaults for them. Errors do, and make
this command exit with a non-zero status.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	ValidateCmd.Flags().BoolP("json", "j", false, "Output issues as JSON")
}

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := project.Load(args[0])
	if err != nil {
		return err
	}

	issues := model.Validate(p.Variables)
	count := max(p.Count, 1)
	reqErr := engine.Validate(p.Variables, count, p.Output, cfg.Generate.MaxCount)

	errs := 0
	for _, is := range issues {
		if is.Severity == model.SeverityError {
			errs++
		}
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		doc := struct {
			Issues  []model.Issue `json:"issues"`
			Request string        `json:"request,omitempty"`
		}{Issues: issues}
		if doc.Issues == nil {
			doc.Issues = []model.Issue{}
		}
		if reqErr != nil {
			doc.Request = reqErr.Error()
		}
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return errors.Wrap(err, "format issues")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else {
		w := cmd.OutOrStdout()
		for _, is := range issues {
			printer := pterm.Warning
			if is.Severity == model.SeverityError {
				printer = pterm.Error
			}
			fmt.Fprint(w, printer.Sprintf("%s: %s\n", is.VariableName, is.Message))
		}
		if reqErr != nil {
			fmt.Fprint(w, pterm.Error.Sprintf("%v\n", reqErr))
			if hints := errors.GetAllHints(reqErr); len(hints) > 0 {
				fmt.Fprint(w, pterm.Info.Sprintf("%s\n", hints[0]))
			}
		}
		if errs == 0 && reqErr == nil {
			fmt.Fprint(w, pterm.Success.Sprintf("%s: %d variables, %d warnings\n", args[0], len(p.Variables), len(issues)))
		}
	}

	if reqErr != nil {
		return errors.Wrap(reqErr, "invalid project")
	}
	if errs > 0 {
		return errors.Newf("%d error(s) in %s", errs, args[0])
	}
	return nil
}
