package main

import (
	"fmt"
	"strconv"

	"github.com/cyp0633/libjalali/jalali"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func newToPersianCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "to-persian YYYY-MM-DD...",
		Short: "Convert Gregorian dates to Persian dates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]mo.Result[string], len(args))
			for i, arg := range args {
				results[i] = a.toPersian(arg)
			}
			return a.report(cmd, args, results)
		},
	}
}

func (a *app) toPersian(arg string) mo.Result[string] {
	g, err := jalali.ParseGregorian(arg)
	if err != nil {
		return mo.Err[string](err)
	}
	p, err := jalali.ToPersian(g)
	if err != nil {
		return mo.Err[string](err)
	}
	return mo.TupleToResult(a.persian(p))
}

func newToGregorianCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "to-gregorian YYYY/MM/DD...",
		Short: "Convert Persian dates to Gregorian dates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]mo.Result[string], len(args))
			for i, arg := range args {
				results[i] = toGregorian(arg)
			}
			return a.report(cmd, args, results)
		},
	}
}

func toGregorian(arg string) mo.Result[string] {
	p, err := jalali.Parse(arg)
	if err != nil {
		return mo.Err[string](err)
	}
	g, err := jalali.ToGregorian(p)
	if err != nil {
		return mo.Err[string](err)
	}
	return mo.Ok(g.String())
}

func newLeapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "leap YEAR...",
		Short: "Report whether Persian years are leap years",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]mo.Result[string], len(args))
			for i, arg := range args {
				results[i] = leapYear(arg)
			}
			return a.report(cmd, args, results)
		},
	}
}

func leapYear(arg string) mo.Result[string] {
	year, err := parseInt(arg)
	if err != nil {
		return mo.Err[string](err)
	}
	leap, err := jalali.IsLeapYear(year)
	if err != nil {
		return mo.Err[string](err)
	}
	if leap {
		return mo.Ok("leap")
	}
	return mo.Ok("common")
}

// report prints one line per argument, results to stdout and failures to
// stderr, and fails if any argument failed.
func (a *app) report(cmd *cobra.Command, args []string, results []mo.Result[string]) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	failed := 0
	for i, result := range results {
		value, err := result.Get()
		if err != nil {
			failed++
			a.logger.Debug("conversion failed", "input", args[i], "error", err)
			fmt.Fprintf(errOut, "%s\terror: %v\n", args[i], err)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", args[i], a.digits(value))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(results))
	}
	return nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(jalali.FromPersianDigits(s))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return n, nil
}
