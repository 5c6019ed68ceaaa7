package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/cyp0633/libjalali/internal/render"
	"github.com/cyp0633/libjalali/jalali"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type config struct {
	Output        string `mapstructure:"output"`
	PersianDigits bool   `mapstructure:"persian_digits"`
	Weekday       bool   `mapstructure:"weekday"`
	Verbose       bool   `mapstructure:"verbose"`
}

type app struct {
	v      *viper.Viper
	cfg    config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	root := &cobra.Command{
		Use:           "jcal",
		Short:         "Persian (Solar Hijri) calendar tool",
		Long:          `jcal converts dates between the Gregorian and Persian calendars, answers leap-year questions and prints Persian month grids.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("output", "o", render.FormatText, "output format for month views: text, json or xml")
	flags.Bool("persian-digits", false, "print Persian numerals")
	flags.BoolP("weekday", "w", false, "include the weekday when printing Persian dates")
	flags.BoolP("verbose", "v", false, "log debug output to stderr")

	a.v.SetEnvPrefix("JCAL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	a.v.SetDefault("output", render.FormatText)
	for key, flag := range map[string]string{
		"output":         "output",
		"persian_digits": "persian-digits",
		"weekday":        "weekday",
		"verbose":        "verbose",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		newToPersianCmd(a),
		newToGregorianCmd(a),
		newLeapCmd(a),
		newMonthCmd(a),
		newYearCmd(a),
		newTodayCmd(a),
		newICalCmd(a),
	)
	return root
}

func (a *app) load(stderr io.Writer) error {
	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	switch a.cfg.Output {
	case render.FormatText, render.FormatJSON, render.FormatXML:
	default:
		return fmt.Errorf("invalid configuration: %w: %q", render.ErrUnknownFormat, a.cfg.Output)
	}

	level := slog.LevelWarn
	if a.cfg.Verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configuration loaded",
		"output", a.cfg.Output,
		"persian_digits", a.cfg.PersianDigits,
		"weekday", a.cfg.Weekday)
	return nil
}

// digits applies the --persian-digits setting.
func (a *app) digits(s string) string {
	if a.cfg.PersianDigits {
		return jalali.ToPersianDigits(s)
	}
	return s
}

// persian renders a Persian date per the --weekday setting.
func (a *app) persian(p jalali.PersianDate) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	if a.cfg.Weekday {
		return jalali.Format(p, true)
	}
	return p.String(), nil
}
