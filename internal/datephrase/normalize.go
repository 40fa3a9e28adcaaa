// Package datephrase recognizes date and time phrases in free text and
// normalizes them into a canonical form before handing them to a strict
// calendar parser.
//
// Callers are expected to collapse whitespace before calling; tabs, newlines
// and repeated spaces are not handled.
package datephrase

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	// ErrNoMatch is returned when a candidate does not look like any known layout.
	ErrNoMatch = errors.New("not a recognized date phrase")
	// ErrAmbiguous is returned when neither day/month reading of a bare numeric
	// date is valid.
	ErrAmbiguous = errors.New("unresolvable ambiguous date")
	// ErrCalendar wraps rejections from the calendar parser.
	ErrCalendar = errors.New("calendar parse failed")
)

// DateTime is a recognized date, with the clock and zone when the phrase had them.
type DateTime struct {
	Time     time.Time
	HasClock bool
	// Zone is the offset or abbreviation as written (e.g. "+0100", "GMT").
	// Empty when the phrase carried none; Time is then in UTC.
	Zone string
}

// Order selects how bare numeric dates such as 05/06/2014 are read.
type Order int

const (
	// MonthFirst reads month/day/year, swapping to day/month/year only when
	// the first field cannot be a month.
	MonthFirst Order = iota
	// DayFirst reads day/month/year unconditionally.
	DayFirst
	// RejectAmbiguous rejects every bare numeric date.
	RejectAmbiguous
)

func (o Order) String() string {
	switch o {
	case MonthFirst:
		return "month-first"
	case DayFirst:
		return "day-first"
	case RejectAmbiguous:
		return "reject-ambiguous"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// OrderVote collects evidence about how the bare numeric dates in a set of
// phrases are written. The zero value is ready to use.
type OrderVote struct {
	dayFirst   bool
	monthFirst bool
}

// Add records candidate if it is a bare numeric date that only one reading
// makes valid.
func (v *OrderVote) Add(candidate string) {
	first, second, _, ok := Patterns().ambiguousFields(candidate)
	if !ok {
		return
	}
	switch {
	case first > 12 && second <= 12:
		v.dayFirst = true
	case second > 12 && first <= 12:
		v.monthFirst = true
	}
}

// Order returns the reading the evidence supports: DayFirst if any phrase
// needs it, RejectAmbiguous if phrases need both readings, MonthFirst otherwise.
func (v *OrderVote) Order() Order {
	switch {
	case v.dayFirst && v.monthFirst:
		return RejectAmbiguous
	case v.dayFirst:
		return DayFirst
	default:
		return MonthFirst
	}
}

// Parse returns the date a candidate phrase denotes, or nil if it is not a
// recognizable date.
func Parse(candidate string) *DateTime {
	dt, _ := ParseDetailed(candidate)
	return dt
}

// ParseDetailed is Parse with the reason for rejection. The error wraps one of
// ErrNoMatch, ErrAmbiguous or ErrCalendar.
func ParseDetailed(candidate string) (*DateTime, error) {
	return ParseWithOrder(candidate, MonthFirst)
}

// ParseWithOrder is ParseDetailed with an explicit reading for bare numeric dates.
func ParseWithOrder(candidate string, order Order) (*DateTime, error) {
	c := Patterns()
	if !c.Match(candidate) {
		return nil, fmt.Errorf("%q: %w", candidate, ErrNoMatch)
	}

	s, err := c.disambiguate(candidate, order)
	if err != nil {
		return nil, err
	}

	s = c.rewrite(s)
	dt, err := c.parseCalendar(s)
	if err != nil {
		return nil, fmt.Errorf("%q: %w: %w", s, ErrCalendar, err)
	}
	return dt, nil
}

// Disambiguate rewrites a bare numeric date (11/27/2014, 27/11/2014) into
// YYYY-MM-DD, reading it month-first unless the first field exceeds 12.
// Other candidates are returned unchanged. The day field is not range checked.
func Disambiguate(candidate string) (string, error) {
	return Patterns().disambiguate(candidate, MonthFirst)
}

func (c *Catalog) disambiguate(candidate string, order Order) (string, error) {
	first, second, year, ok := c.ambiguousFields(candidate)
	if !ok {
		return candidate, nil
	}

	month, day := first, second
	switch order {
	case RejectAmbiguous:
		return "", fmt.Errorf("%q: %w", candidate, ErrAmbiguous)
	case DayFirst:
		month, day = second, first
		if month > 12 {
			return "", fmt.Errorf("%q read day-first: %w", candidate, ErrAmbiguous)
		}
	default:
		if month > 12 {
			if day > 12 {
				return "", fmt.Errorf("%q: %w", candidate, ErrAmbiguous)
			}
			month, day = day, month
		}
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), nil
}

func (c *Catalog) ambiguousFields(candidate string) (first, second, year int, ok bool) {
	m := c.ambiguousExact.FindStringSubmatch(candidate)
	if m == nil {
		return 0, 0, 0, false
	}
	// The groups are all digits of bounded width, so Atoi cannot fail.
	first, _ = strconv.Atoi(m[1])
	second, _ = strconv.Atoi(m[2])
	year, _ = strconv.Atoi(m[3])
	return first, second, year, true
}

// Rewrite applies the ordinal, month-name and month-first rewrites in order.
func Rewrite(s string) string {
	return Patterns().rewrite(s)
}

func (c *Catalog) rewrite(s string) string {
	s = c.stripOrdinals(s)
	s = c.shortenMonths(s)
	return c.rearrangeMonthFirst(s)
}

// StripOrdinals removes st/nd/rd/th following a number ("21st" -> "21").
func StripOrdinals(s string) string {
	return Patterns().stripOrdinals(s)
}

func (c *Catalog) stripOrdinals(s string) string {
	return c.ordinal.ReplaceAllString(s, "${1}")
}

// ShortenMonths replaces full month names with their abbreviations
// ("NOVEMBER" -> "Nov").
func ShortenMonths(s string) string {
	return Patterns().shortenMonths(s)
}

func (c *Catalog) shortenMonths(s string) string {
	return c.fullMonthWord.ReplaceAllStringFunc(s, func(name string) string {
		short, _ := c.ShortMonth(name)
		return short
	})
}

// RearrangeMonthFirst moves a leading abbreviated month after the day that
// follows it ("jun-01-2012" -> "01-Jun-2012").
func RearrangeMonthFirst(s string) string {
	return Patterns().rearrangeMonthFirst(s)
}

func (c *Catalog) rearrangeMonthFirst(s string) string {
	m := c.monthFirst.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	month, _ := c.MonthCase(s[m[2]:m[3]])
	return s[m[4]:m[5]] + "-" + month + s[m[1]:]
}

// ParseAll parses phrases that belong together, such as the dates in a single
// query. If any bare numeric date can only be read day-first, all of them are
// read day-first. If the set also holds one that can only be read
// month-first, every bare numeric date in it is rejected.
func ParseAll(candidates []string) []*DateTime {
	var vote OrderVote
	for _, s := range candidates {
		vote.Add(s)
	}
	order := vote.Order()

	out := make([]*DateTime, len(candidates))
	for i, s := range candidates {
		out[i], _ = ParseWithOrder(s, order)
	}
	return out
}

// Match is a date phrase found in free text.
type Match struct {
	Text  string
	Start int
	End   int
	Value *DateTime
}

// FindAll returns every date phrase in text that parses, in order of
// appearance. A phrase must start and end on a word boundary. Overlapping
// phrases are not reported.
func FindAll(text string) []Match {
	c := Patterns()
	var out []Match
	for _, loc := range c.find.FindAllStringIndex(text, -1) {
		phrase := text[loc[0]:loc[1]]
		dt := Parse(phrase)
		if dt == nil {
			continue
		}
		out = append(out, Match{Text: phrase, Start: loc[0], End: loc[1], Value: dt})
	}
	return out
}
