package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ttacon/chalk"

	"github.com/spatialeval/scenegen/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	printValidationReportTo(os.Stdout, r)
}

func printValidationReportTo(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "%sERRORS (%d):%s\n", chalk.Red, len(r.Errors), chalk.Reset)
		for _, e := range r.Errors {
			printResult(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "%sWARNINGS (%d):%s\n", chalk.Yellow, len(r.Warnings), chalk.Reset)
		for _, warn := range r.Warnings {
			printResult(w, warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "%sResult: VALID%s (%s)\n", chalk.Green, chalk.Reset, r.Summary)
	} else {
		fmt.Fprintf(w, "%sResult: INVALID%s (%s)\n", chalk.Red, chalk.Reset, r.Summary)
	}
}

func printResult(w io.Writer, res validation.Result) {
	fmt.Fprintf(w, "  [%s] %s\n", res.Level, res.Message)
	if res.ObjectID != "" {
		fmt.Fprintf(w, "    object: %s\n", res.ObjectID)
	}
	if res.SpecPath != "" {
		fmt.Fprintf(w, "    -> %s = %v\n", res.SpecPath, res.ActualValue)
	}
	if res.Expected != "" {
		fmt.Fprintf(w, "    expected: %s\n", res.Expected)
	}
	if res.ConflictWith != "" {
		fmt.Fprintf(w, "    conflicts with: %s\n", res.ConflictWith)
	}
	for _, s := range res.Suggestions {
		fmt.Fprintf(w, "    * %s\n", s)
	}
}
