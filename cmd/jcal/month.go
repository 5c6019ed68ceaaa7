package main

import (
	"fmt"

	"github.com/cyp0633/libjalali/internal/render"
	"github.com/cyp0633/libjalali/jalali"
	"github.com/spf13/cobra"
)

func newMonthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "month YEAR MONTH",
		Short: "Print a Persian month grid",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseInt(args[0])
			if err != nil {
				return err
			}
			month, err := parseInt(args[1])
			if err != nil {
				return err
			}

			view, err := render.NewMonthView(year, jalali.Month(month))
			if err != nil {
				return fmt.Errorf("failed to build month %s: %w", args[1], err)
			}
			a.logger.Debug("rendering month", "year", year, "month", month, "format", a.cfg.Output)
			return render.Write(cmd.OutOrStdout(), a.cfg.Output, a.renderOptions(), view)
		},
	}
}

func newYearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "year YEAR",
		Short: "Print all twelve month grids of a Persian year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseInt(args[0])
			if err != nil {
				return err
			}

			views, err := render.NewYearView(year)
			if err != nil {
				return fmt.Errorf("failed to build year %d: %w", year, err)
			}
			a.logger.Debug("rendering year", "year", year, "format", a.cfg.Output)
			return render.Write(cmd.OutOrStdout(), a.cfg.Output, a.renderOptions(), views...)
		},
	}
}

func newTodayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Print today's Persian date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := jalali.Today()
			if err != nil {
				return err
			}
			today, err := a.persian(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.digits(today))
			return nil
		},
	}
}

func (a *app) renderOptions() render.Options {
	return render.Options{PersianDigits: a.cfg.PersianDigits}
}
