// Package render lays Persian months out as text, JSON or XML.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/cyp0633/libjalali/jalali"
)

// ErrUnknownFormat is returned by Write for an unsupported output format
var ErrUnknownFormat = errors.New("unknown output format")

// Output formats accepted by Write
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatXML  = "xml"
)

// DayCell is one day of a month view
type DayCell struct {
	Day       int    `json:"day"`
	Weekday   int    `json:"weekday"`
	Gregorian string `json:"gregorian"`
}

// MonthView is a Persian month ready for display
type MonthView struct {
	Year   int       `json:"year"`
	Month  int       `json:"month"`
	Name   string    `json:"name"`
	Offset int       `json:"offset"`
	Days   []DayCell `json:"days"`

	grid jalali.MonthGrid
}

// Options controls text rendering
type Options struct {
	PersianDigits bool
}

// NewMonthView collects the days of the given month.
func NewMonthView(year int, month jalali.Month) (MonthView, error) {
	grid, err := jalali.NewMonthGrid(year, month)
	if err != nil {
		return MonthView{}, err
	}

	view := MonthView{
		Year:   year,
		Month:  int(month),
		Name:   month.String(),
		Offset: int(grid.Offset),
		Days:   make([]DayCell, 0, grid.Days),
		grid:   grid,
	}
	for d := 1; d <= grid.Days; d++ {
		g, err := jalali.ToGregorian(jalali.PersianDate{Year: year, Month: month, Day: d})
		if err != nil {
			return MonthView{}, err
		}
		view.Days = append(view.Days, DayCell{
			Day:       d,
			Weekday:   (view.Offset + d - 1) % 7,
			Gregorian: g.String(),
		})
	}
	return view, nil
}

// NewYearView returns the twelve months of a year.
func NewYearView(year int) ([]MonthView, error) {
	views := make([]MonthView, 0, 12)
	for m := jalali.Farvardin; m <= jalali.Esfand; m++ {
		v, err := NewMonthView(year, m)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// Write renders views in the named format.
func Write(w io.Writer, format string, opts Options, views ...MonthView) error {
	switch format {
	case FormatText:
		for i, v := range views {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := Text(w, v, opts); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		if len(views) == 1 {
			return JSON(w, views[0])
		}
		return writeJSON(w, views)
	case FormatXML:
		return XML(w, views...)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Text writes a Saturday-first grid headed by the month name and year.
func Text(w io.Writer, v MonthView, opts Options) error {
	num := strconv.Itoa
	if opts.PersianDigits {
		num = jalali.FormatNumber
	}

	var b strings.Builder
	b.WriteString(v.Name + " " + num(v.Year) + "\n")

	for d := jalali.Shanbeh; d <= jalali.Jomeh; d++ {
		fmt.Fprintf(&b, "%3s", string([]rune(d.String())[:1]))
	}
	b.WriteString("\n")

	for _, week := range v.grid.Weeks() {
		var row strings.Builder
		for _, day := range week {
			cell := ""
			if day > 0 {
				cell = num(day)
			}
			fmt.Fprintf(&row, "%3s", cell)
		}
		b.WriteString(strings.TrimRight(row.String(), " ") + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// JSON writes the view as an indented JSON object.
func JSON(w io.Writer, v MonthView) error {
	return writeJSON(w, v)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// XML writes a <calendar> document with one <month> per view.
func XML(w io.Writer, views ...MonthView) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("calendar")

	for _, v := range views {
		month := root.CreateElement("month")
		month.CreateAttr("year", strconv.Itoa(v.Year))
		month.CreateAttr("number", strconv.Itoa(v.Month))
		month.CreateAttr("name", v.Name)

		cells := v.Days
		for _, week := range v.grid.Weeks() {
			weekElem := month.CreateElement("week")
			for _, day := range week {
				if day == 0 {
					continue
				}
				cell := cells[day-1]
				dayElem := weekElem.CreateElement("day")
				dayElem.CreateAttr("number", strconv.Itoa(cell.Day))
				dayElem.CreateAttr("weekday", jalali.Weekday(cell.Weekday).String())
				dayElem.CreateAttr("gregorian", cell.Gregorian)
			}
		}
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write XML: %w", err)
	}
	return nil
}
