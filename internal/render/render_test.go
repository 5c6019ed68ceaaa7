package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/cyp0633/libjalali/jalali"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func farvardin1403(t *testing.T) MonthView {
	t.Helper()
	v, err := NewMonthView(1403, jalali.Farvardin)
	require.NoError(t, err)
	return v
}

func TestNewMonthView(t *testing.T) {
	v := farvardin1403(t)
	assert.Equal(t, 1403, v.Year)
	assert.Equal(t, 1, v.Month)
	assert.Equal(t, "فروردین", v.Name)
	assert.Equal(t, int(jalali.Chaharshanbeh), v.Offset)
	require.Len(t, v.Days, 31)
	assert.Equal(t, DayCell{Day: 1, Weekday: 4, Gregorian: "2024-03-20"}, v.Days[0])
	assert.Equal(t, DayCell{Day: 4, Weekday: 0, Gregorian: "2024-03-23"}, v.Days[3])
	assert.Equal(t, DayCell{Day: 31, Weekday: 6, Gregorian: "2024-04-19"}, v.Days[30])

	_, err := NewMonthView(1404, 13)
	assert.ErrorIs(t, err, jalali.ErrInvalidMonth)
}

func TestNewYearView(t *testing.T) {
	views, err := NewYearView(1403)
	require.NoError(t, err)
	require.Len(t, views, 12)
	assert.Len(t, views[11].Days, 30)

	views, err = NewYearView(1404)
	require.NoError(t, err)
	assert.Len(t, views[11].Days, 29)

	_, err = NewYearView(jalali.MaxYear + 1)
	assert.ErrorIs(t, err, jalali.ErrYearOutOfRange)
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, farvardin1403(t), Options{}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"فروردین 1403",
		"  ش  ی  د  س  چ  پ  ج",
		"              1  2  3",
		"  4  5  6  7  8  9 10",
		" 11 12 13 14 15 16 17",
		" 18 19 20 21 22 23 24",
		" 25 26 27 28 29 30 31",
	}, lines)
}

func TestText_PersianDigits(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, farvardin1403(t), Options{PersianDigits: true}))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "فروردین ۱۴۰۳", lines[0])
	assert.Equal(t, "  ۴  ۵  ۶  ۷  ۸  ۹ ۱۰", lines[3])
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, farvardin1403(t)))

	var got MonthView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 1403, got.Year)
	assert.Equal(t, "فروردین", got.Name)
	assert.Equal(t, 4, got.Offset)
	assert.Len(t, got.Days, 31)
	assert.Equal(t, "2024-04-19", got.Days[30].Gregorian)
}

func TestXML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, XML(&buf, farvardin1403(t)))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

	month := doc.FindElement("/calendar/month")
	require.NotNil(t, month)
	assert.Equal(t, "1403", month.SelectAttrValue("year", ""))
	assert.Equal(t, "فروردین", month.SelectAttrValue("name", ""))
	assert.Len(t, month.SelectElements("week"), 5)
	assert.Len(t, doc.FindElements("//day"), 31)

	first := doc.FindElement("//day[@number='1']")
	require.NotNil(t, first)
	assert.Equal(t, "2024-03-20", first.SelectAttrValue("gregorian", ""))
	assert.Equal(t, "چهارشنبه", first.SelectAttrValue("weekday", ""))
}

func TestWrite(t *testing.T) {
	views, err := NewYearView(1403)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatXML, Options{}, views...))
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	assert.Len(t, doc.FindElements("//month"), 12)
	assert.Len(t, doc.FindElements("//day"), 366)

	buf.Reset()
	require.NoError(t, Write(&buf, FormatJSON, Options{}, views...))
	var months []MonthView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &months))
	assert.Len(t, months, 12)

	buf.Reset()
	require.NoError(t, Write(&buf, FormatText, Options{}, views[:2]...))
	assert.Contains(t, buf.String(), "فروردین 1403\n")
	assert.Contains(t, buf.String(), "\nاردیبهشت 1403\n")

	err = Write(&buf, "yaml", Options{}, views...)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
