package datephrase

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/tkuchiki/go-timezone"
)

// Date layouts tried, in order, once separators have been folded to "-".
var dateLayouts = []string{
	"2-Jan-2006",
	"Jan-2-2006",
	"2-Jan-06",
	"Jan-2-06",
}

var (
	dateSeparators = regexp.MustCompile(`[.\\/,_ -]+`)
	isoDate        = regexp.MustCompile(`^([0-9]{4})-?([0-9]{1,2})-?([0-9]{1,2})$`)
	clockFields    = regexp.MustCompile(`(?i)^([0-9]{2}):?([0-9]{2}):?([0-9]{2}) ?(am|pm)?$`)
)

var zoneTable = sync.OnceValue(timezone.New)

// parseCalendar is the strict parser run on a rewritten phrase. It accepts a
// date, an optional clock and an optional zone, and rejects any residue.
func (c *Catalog) parseCalendar(s string) (*DateTime, error) {
	s = strings.TrimSpace(c.weekdayPrefix.ReplaceAllString(s, ""))

	m := c.calendarSplit.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("unrecognized layout %q", s)
	}
	datePart, clock := m[1], m[2]
	zone := m[3]
	if zone == "" {
		zone = m[4]
	}

	d, err := parseDatePart(datePart)
	if err != nil {
		return nil, err
	}

	loc := time.UTC
	if zone != "" {
		loc, err = zoneLocation(zone)
		if err != nil {
			return nil, err
		}
	}

	var hh, mm, ss int
	if clock != "" {
		t, err := parseClock(clock)
		if err != nil {
			return nil, err
		}
		hh, mm, ss = t.Clock()
	}

	return &DateTime{
		Time:     time.Date(d.Year(), d.Month(), d.Day(), hh, mm, ss, 0, loc),
		HasClock: clock != "",
		Zone:     zone,
	}, nil
}

func parseDatePart(s string) (time.Time, error) {
	s = dateSeparators.ReplaceAllString(s, "-")

	if m := isoDate.FindStringSubmatch(s); m != nil {
		t, err := time.Parse("2006-1-2", m[1]+"-"+m[2]+"-"+m[3])
		if err != nil {
			return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
		}
		return t, nil
	}

	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, fmt.Errorf("parse date %q: %w", s, firstErr)
}

func parseClock(s string) (time.Time, error) {
	m := clockFields.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("unrecognized clock %q", s)
	}
	value, layout := m[1]+":"+m[2]+":"+m[3], "15:04:05"
	if m[4] != "" {
		value, layout = value+strings.ToUpper(m[4]), "03:04:05PM"
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return t, nil
}

// zoneLocation turns a zone token into a fixed location named after the
// token. Abbreviations take the first offset the zone table lists for them,
// including ones the table reports as ambiguous (PST, IST, CST). Abbreviations
// it does not know get offset 0.
func zoneLocation(zone string) (*time.Location, error) {
	if zone[0] == '+' || zone[0] == '-' {
		t, err := time.Parse("-0700", zone)
		if err != nil {
			return nil, fmt.Errorf("parse offset %q: %w", zone, err)
		}
		_, offset := t.Zone()
		return time.FixedZone(zone, offset), nil
	}

	abbr := strings.ToUpper(zone)
	switch abbr {
	case "UTC", "GMT", "UCT":
		return time.FixedZone(abbr, 0), nil
	}
	infos, err := zoneTable().GetTzAbbreviationInfo(abbr)
	if err != nil && !errors.Is(err, timezone.ErrAmbiguousTzAbbreviations) {
		return time.FixedZone(abbr, 0), nil
	}
	if len(infos) == 0 {
		return time.FixedZone(abbr, 0), nil
	}
	return time.FixedZone(abbr, infos[0].Offset()), nil
}

// Format renders a DateTime for display: "27 Nov 2014", or
// "09 Aug 2014 18:20:00 GMT" when the phrase had a clock.
func Format(dt *DateTime) string {
	if dt == nil {
		return ""
	}
	switch {
	case !dt.HasClock:
		return dt.Time.Format("02 Jan 2006")
	case dt.Zone == "":
		return dt.Time.Format("02 Jan 2006 15:04:05")
	default:
		return dt.Time.Format("02 Jan 2006 15:04:05 MST")
	}
}
