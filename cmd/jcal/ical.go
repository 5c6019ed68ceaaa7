package main

import (
	"fmt"

	"github.com/cyp0633/libjalali/icalendar"
	"github.com/cyp0633/libjalali/jalali"
	"github.com/spf13/cobra"
)

func newICalCmd(a *app) *cobra.Command {
	var repeatYears int

	cmd := &cobra.Command{
		Use:   "ical YYYY/MM/DD SUMMARY",
		Short: "Emit an all-day iCalendar event on a Persian date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := jalali.Parse(args[0])
			if err != nil {
				return err
			}

			event, err := icalendar.NewAllDayEvent(p, args[1])
			if err != nil {
				return fmt.Errorf("failed to create event: %w", err)
			}
			if err := icalendar.RepeatYearly(event, repeatYears); err != nil {
				return fmt.Errorf("failed to add yearly dates: %w", err)
			}
			a.logger.Debug("created event", "date", p.String(), "repeat_years", repeatYears)
			return icalendar.Encode(cmd.OutOrStdout(), icalendar.NewCalendar(event))
		},
	}
	cmd.Flags().IntVar(&repeatYears, "repeat-years", 0, "repeat on the same Persian date for this many following years")
	return cmd
}
