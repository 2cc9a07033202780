package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fishbone/pkg/errors"
)

// validateCommand creates the validate command for checking diagram files.
func (c *CLI) validateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a diagram file against the supported model",
		Long: `Check that a diagram file decodes and fits the fixed-slot model:
1 to 6 categories, at most 6 causes per category, well-formed labels.

Exits non-zero with the violated constraint if the file is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0])
		},
	}

	return cmd
}

func (c *CLI) runValidate(input string) error {
	d, err := c.newRunner().Load(input)
	if err != nil {
		printError("Validation failed")
		if code := errors.GetCode(err); code != "" {
			printInfo("%s", errors.UserMessage(err))
		}
		return err
	}

	printSuccess("%s is valid", input)
	printStats(len(d.Categories), d.CauseCount())
	printNextStep("Render it", fmt.Sprintf("%s render %s", appName, input))
	return nil
}
