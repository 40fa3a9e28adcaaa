package datephrase

import (
	"strings"
	"sync"
	"testing"
)

func TestPatterns_Memoized(t *testing.T) {
	a := Patterns()
	b := Patterns()
	if a != b {
		t.Fatal("Patterns returned different catalogs")
	}
	if a.Regexp() != b.Regexp() {
		t.Fatal("Patterns returned different compiled regexps")
	}
}

func TestPatterns_ConcurrentFirstUse(t *testing.T) {
	const n = 16
	got := make([]*Catalog, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Patterns()
		}(i)
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		if got[i] != got[0] {
			t.Fatalf("goroutine %d saw a different catalog", i)
		}
	}
}

func TestCatalog_MonthMaps(t *testing.T) {
	c := Patterns()
	if len(c.fullToShort) != 12 || len(c.shortCase) != 12 {
		t.Fatalf("expected 12 months, got %d full and %d short", len(c.fullToShort), len(c.shortCase))
	}

	want := map[string]string{
		"january": "Jan", "FEBRUARY": "Feb", "March": "Mar", "april": "Apr",
		"may": "May", "june": "Jun", "July": "Jul", "august": "Aug",
		"SePtEmBeR": "Sep", "october": "Oct", "november": "Nov", "December": "Dec",
	}
	for full, short := range want {
		got, ok := c.ShortMonth(full)
		if !ok || got != short {
			t.Errorf("ShortMonth(%q) = %q, %v; want %q", full, got, ok, short)
		}
	}

	for _, in := range []string{"jun", "JUN", "jUn", "Jun"} {
		if got, ok := c.MonthCase(in); !ok || got != "Jun" {
			t.Errorf("MonthCase(%q) = %q, %v; want Jun", in, got, ok)
		}
	}
	if _, ok := c.MonthCase("Juni"); ok {
		t.Error("MonthCase accepted a non-abbreviation")
	}
}

func TestCatalog_ZoneAbbreviationsKeepDuplicates(t *testing.T) {
	unique := uniqueLongestFirst(timeZoneAbbreviations)
	if len(unique) >= len(timeZoneAbbreviations) {
		t.Fatalf("expected repeated abbreviations in the zone list, got %d unique of %d",
			len(unique), len(timeZoneAbbreviations))
	}
	for i := 1; i < len(unique); i++ {
		if len(unique[i]) > len(unique[i-1]) {
			t.Fatalf("zone %q sorted after shorter %q", unique[i], unique[i-1])
		}
	}
	for _, z := range timeZoneAbbreviations {
		if len(z) < 3 || len(z) > 5 || strings.ToUpper(z) != z {
			t.Errorf("zone abbreviation %q is not 3-5 upper-case letters", z)
		}
	}
}

func TestCatalog_ZoneTokenNotShadowed(t *testing.T) {
	s := "2014-11-27 18:20:00 PETT"
	if got := Patterns().Regexp().FindString(s); got != s {
		t.Errorf("FindString(%q) = %q; want whole phrase", s, got)
	}
}

func TestCatalog_Gate(t *testing.T) {
	accept := []string{
		"2014-11-27",
		"20141127",
		"2014-11-27T18:20:00",
		"2014-11-27 18:20:00 +0100",
		"2014-11-27 182000 UTC",
		"Sat, 09 Aug 2014 18:20:00",
		"sat, 09 aug 2014",
		"08-Feb-94 14:15:29 GMT",
		"08-Feb-1994 GMT",
		"27-Nov-2014",
		"27_nov_14",
		"27/November/2014",
		"Jun 1st 2012",
		"June 1 2012",
		"Jun-01-2012",
		"June.01.2012",
		"1st Jun 2012",
		"27 November 2014",
		"27/11/2014",
		"11/27/2014",
		"13/13/2014",
		"on 2014-11-27 at noon",
	}
	for _, s := range accept {
		if !Patterns().Match(s) {
			t.Errorf("gate rejected %q", s)
		}
	}

	reject := []string{
		"",
		"hello world",
		"version 1.2",
		"12:30",
		"Jun 2012",
		"next tuesday",
	}
	for _, s := range reject {
		if Patterns().Match(s) {
			t.Errorf("gate accepted %q", s)
		}
	}
}

func TestCatalog_IsAmbiguous(t *testing.T) {
	for _, s := range []string{"11/27/2014", "27.11.2014", "1-2-2014", "5_6\\2014"} {
		if !Patterns().IsAmbiguous(s) {
			t.Errorf("IsAmbiguous(%q) = false", s)
		}
	}
	for _, s := range []string{"2014-11-27", "11/27/14", "x11/27/2014", "11/27/2014 10:00:00"} {
		if Patterns().IsAmbiguous(s) {
			t.Errorf("IsAmbiguous(%q) = true", s)
		}
	}
}
