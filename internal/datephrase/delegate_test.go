package datephrase

import (
	"strings"
	"testing"
	"time"
)

func TestZoneLocation(t *testing.T) {
	tests := []struct {
		zone   string
		name   string
		offset int
	}{
		{zone: "+0100", name: "+0100", offset: 3600},
		{zone: "-0500", name: "-0500", offset: -5 * 3600},
		{zone: "+0530", name: "+0530", offset: 5*3600 + 30*60},
		{zone: "GMT", name: "GMT", offset: 0},
		{zone: "utc", name: "UTC", offset: 0},
		{zone: "UCT", name: "UCT", offset: 0},
		{zone: "PST", name: "PST", offset: -8 * 3600},
		{zone: "ist", name: "IST", offset: 5*3600 + 30*60},
		{zone: "CST", name: "CST", offset: -6 * 3600},
	}
	for _, tt := range tests {
		loc, err := zoneLocation(tt.zone)
		if err != nil {
			t.Errorf("zoneLocation(%q): %v", tt.zone, err)
			continue
		}
		name, off := time.Date(2014, 1, 1, 0, 0, 0, 0, loc).Zone()
		if name != tt.name || off != tt.offset {
			t.Errorf("zoneLocation(%q) = %s %d; want %s %d", tt.zone, name, off, tt.name, tt.offset)
		}
	}
}

func TestZoneLocation_AmbiguousAbbreviations(t *testing.T) {
	for _, abbr := range []string{"PST", "IST", "CST", "BST", "pst"} {
		infos, _ := zoneTable().GetTzAbbreviationInfo(strings.ToUpper(abbr))
		if len(infos) < 2 {
			t.Fatalf("zone table lists %d zones for %s; want several", len(infos), abbr)
		}
		loc, err := zoneLocation(abbr)
		if err != nil {
			t.Fatalf("zoneLocation(%q): %v", abbr, err)
		}
		name, off := time.Date(2014, 1, 1, 0, 0, 0, 0, loc).Zone()
		if name != strings.ToUpper(abbr) || off != infos[0].Offset() {
			t.Errorf("zoneLocation(%q) = %s %d; want %s %d", abbr, name, off, strings.ToUpper(abbr), infos[0].Offset())
		}
		if off == 0 {
			t.Errorf("zoneLocation(%q) fell back to UTC", abbr)
		}
	}
}

func TestZoneLocation_UnknownAbbreviation(t *testing.T) {
	loc, err := zoneLocation("QQQQ")
	if err != nil {
		t.Fatalf("zoneLocation: %v", err)
	}
	if name, off := time.Date(2014, 1, 1, 0, 0, 0, 0, loc).Zone(); name != "QQQQ" || off != 0 {
		t.Errorf("zoneLocation(QQQQ) = %s %d; want QQQQ 0", name, off)
	}
}

func TestParseDatePart(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{in: "2014-11-27", want: time.Date(2014, 11, 27, 0, 0, 0, 0, time.UTC)},
		{in: "20141127", want: time.Date(2014, 11, 27, 0, 0, 0, 0, time.UTC)},
		{in: "27 Nov 2014", want: time.Date(2014, 11, 27, 0, 0, 0, 0, time.UTC)},
		{in: "01-Jun/2012", want: time.Date(2012, 6, 1, 0, 0, 0, 0, time.UTC)},
		{in: "Jun 1 2012", want: time.Date(2012, 6, 1, 0, 0, 0, 0, time.UTC)},
		{in: "08-Feb-94", want: time.Date(1994, 2, 8, 0, 0, 0, 0, time.UTC)},
		{in: "1_Jun_12", want: time.Date(2012, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := parseDatePart(tt.in)
		if err != nil {
			t.Errorf("parseDatePart(%q): %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseDatePart(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"27-11-2014", "Nov 2014", "2014-02-29", "31 Apr 2014"} {
		if _, err := parseDatePart(in); err == nil {
			t.Errorf("parseDatePart(%q) accepted", in)
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in                   string
		hour, minute, second int
	}{
		{in: "18:20:00", hour: 18, minute: 20},
		{in: "182005", hour: 18, minute: 20, second: 5},
		{in: "12:00:00 am", hour: 0},
		{in: "12:30:15PM", hour: 12, minute: 30, second: 15},
		{in: "07:08:09 pm", hour: 19, minute: 8, second: 9},
	}
	for _, tt := range tests {
		got, err := parseClock(tt.in)
		if err != nil {
			t.Errorf("parseClock(%q): %v", tt.in, err)
			continue
		}
		h, m, s := got.Clock()
		if h != tt.hour || m != tt.minute || s != tt.second {
			t.Errorf("parseClock(%q) = %02d:%02d:%02d", tt.in, h, m, s)
		}
	}
}

func TestParseCalendar_RejectsResidue(t *testing.T) {
	c := Patterns()
	for _, s := range []string{"2014-11-27 later", "27 Nov 2014 ZZZ", "Nov 2014"} {
		if _, err := c.parseCalendar(s); err == nil {
			t.Errorf("parseCalendar(%q) accepted", s)
		}
	}
}
