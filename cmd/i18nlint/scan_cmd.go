package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	var flags ruleFlags
	var failOnDiagnostics bool

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Lint a file or directory for hard-coded strings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if len(args) == 1 {
				target = args[0]
			}

			scanner, err := flags.newScanner(target)
			if err != nil {
				return err
			}

			report, err := scanner.Run(cmd.Context(), target)
			if err != nil {
				return err
			}

			if flags.jsonOutput {
				if err := emitJSON(report); err != nil {
					return err
				}
			} else {
				printReport(report, !flags.noColor)
			}

			if failOnDiagnostics && report.DiagnosticCount() > 0 {
				return exitCodeError{
					code: 3,
					err:  fmt.Errorf("%d literal strings need externalization", report.DiagnosticCount()),
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&failOnDiagnostics, "fail-on-diagnostics", true, "exit non-zero when diagnostics are found")
	return cmd
}
