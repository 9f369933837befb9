package cmd

import (
	"errors"
	"fmt"

	"bennypowers.dev/swatchnorm/internal/audit"
	"github.com/spf13/cobra"
)

// ErrCheckFailed is returned when check finds errors, or warnings in strict mode
var ErrCheckFailed = errors.New("check failed")

func newCheckCommand(app *App) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [pattern...]",
		Short: "Report swatches the rewrite would skip or change lossily",
		Long: "Audits pages without modifying them. Patterns are doublestar globs relative\n" +
			"to the working directory; without arguments the configured check.files are used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns := args
			if len(patterns) == 0 {
				patterns = app.Config.CheckPatterns()
			}
			if !cmd.Flags().Changed("strict") {
				strict = app.Config.Check.Strict
			}

			report, err := audit.New(app.Dir).Run(patterns)
			if err != nil {
				return err
			}

			for _, f := range report.Findings {
				fmt.Fprintln(app.Stdout, f.String())
			}

			errs := report.Count(audit.SeverityError)
			warns := report.Count(audit.SeverityWarning)
			fmt.Fprintf(app.Stdout, "%d files, %d errors, %d warnings, %d notes\n",
				len(report.Files), errs, warns, report.Count(audit.SeverityInfo))

			if report.Failed(strict) {
				return fmt.Errorf("%w: %d errors, %d warnings", ErrCheckFailed, errs, warns)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on warnings as well as errors")
	return cmd
}
