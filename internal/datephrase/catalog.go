package datephrase

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

var shortWeekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var fullMonths = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Sub-patterns shared by the layouts. All are compiled case-insensitively.
const (
	time24h       = `(?:[01][0-9]|2[0-3]):?[0-5][0-9]:?[0-5][0-9]`
	time12h       = `(?:0[1-9]|1[0-2]):[0-5][0-9]:[0-5][0-9] ?(?:am|pm)`
	dateNumber    = `[0-3]?[0-9]`
	dateDelim     = `[.\\/,_-]`
	ordinalSuffix = `(?:st|nd|rd|th)`
)

// Catalog is the compiled set of date-phrase recognizers. It is built once by
// Patterns and is read-only afterwards.
type Catalog struct {
	shortWeekday string
	shortMonth   string
	fullMonth    string
	timeZone     string
	ambiguous    string

	fullToShort map[string]string
	shortCase   map[string]string

	composite      *regexp.Regexp
	find           *regexp.Regexp
	ambiguousExact *regexp.Regexp
	ordinal        *regexp.Regexp
	fullMonthWord  *regexp.Regexp
	monthFirst     *regexp.Regexp

	weekdayPrefix *regexp.Regexp
	calendarSplit *regexp.Regexp
}

var patterns = sync.OnceValue(buildCatalog)

// Patterns returns the process-wide catalog. The first call compiles it; every
// later call returns the same value.
func Patterns() *Catalog {
	return patterns()
}

func buildCatalog() *Catalog {
	c := &Catalog{
		fullToShort: make(map[string]string, len(fullMonths)),
		shortCase:   make(map[string]string, len(fullMonths)),
	}

	shorts := make([]string, len(fullMonths))
	for i, name := range fullMonths {
		short := name[:3]
		shorts[i] = short
		c.fullToShort[strings.ToLower(name)] = short
		c.shortCase[strings.ToLower(short)] = short
	}

	c.shortWeekday = alternation(shortWeekdays)
	c.shortMonth = alternation(shorts)
	c.fullMonth = alternation(fullMonths)
	c.timeZone = `(?:[+-][0-9]{4}|` + alternation(uniqueLongestFirst(timeZoneAbbreviations)) + `)`
	c.ambiguous = dateNumber + dateDelim + dateNumber + dateDelim + `[0-9]{4}`

	anyMonth := `(?:` + c.fullMonth + `|` + c.shortMonth + `)`
	year := `[0-9]{2,4}`

	layouts := []string{
		// ISO-like: 2014-11-27, 20141127, 2014-11-27T18:20:00 +0100
		`[0-9]{4}-?[01]?[0-9]-?` + dateNumber + `(?:[ T]` + time24h + `)?(?: ?` + c.timeZone + `)?`,
		// HTTP: Sat, 09 Aug 2014 18:20:00
		c.shortWeekday + `, [0-9]{2} ` + c.shortMonth + ` [0-9]{4}(?: ?` + time24h + `)?`,
		// RFC850: 08-Feb-94 14:15:29 GMT
		`[0-9]{2}-` + c.shortMonth + `-(?:[0-9]{4}|[0-9]{2}) (?:` + time24h + ` )?` + c.timeZone,
		dateNumber + dateDelim + c.shortMonth + dateDelim + year,
		dateNumber + dateDelim + c.fullMonth + dateDelim + year,
		anyMonth + ` ` + dateNumber + `(?: ?` + ordinalSuffix + `)? [0-9]{4}`,
		c.shortMonth + dateDelim + dateNumber + dateDelim + year,
		c.fullMonth + dateDelim + dateNumber + dateDelim + year,
		dateNumber + `(?: ?` + ordinalSuffix + `)? ` + anyMonth + ` [0-9]{4}`,
		c.ambiguous,
	}
	c.composite = regexp.MustCompile(`(?i)(?:` + strings.Join(layouts, `)|(?:`) + `)`)
	// Extraction only takes whole words, so digits inside longer numbers and
	// zone-like prefixes of following words are not picked up.
	c.find = regexp.MustCompile(`(?i)\b(?:(?:` + strings.Join(layouts, `)|(?:`) + `))\b`)

	c.ambiguousExact = regexp.MustCompile(`^([0-9]{1,2})` + dateDelim + `([0-9]{1,2})` + dateDelim + `([0-9]{4})$`)
	c.ordinal = regexp.MustCompile(`(?i)([0-9]+)` + ordinalSuffix)
	c.fullMonthWord = regexp.MustCompile(`(?i)` + c.fullMonth)
	c.monthFirst = regexp.MustCompile(`(?i)^(` + c.shortMonth + `)` + dateDelim + `([0-9]{1,2})`)

	c.weekdayPrefix = regexp.MustCompile(`(?i)^` + c.shortWeekday + `[a-z]*, *`)
	c.calendarSplit = regexp.MustCompile(`(?i)^(.+?)(?:[ T](` + time12h + `|` + time24h + `)(?: ?(` + c.timeZone + `))?| (` + c.timeZone + `))?$`)

	return c
}

// Regexp returns the compiled composite pattern, the logical OR of every
// supported layout.
func (c *Catalog) Regexp() *regexp.Regexp {
	return c.composite
}

// Match reports whether s contains anything that looks like a date phrase.
func (c *Catalog) Match(s string) bool {
	return c.composite.MatchString(s)
}

// IsAmbiguous reports whether s is exactly a bare numeric date such as 11/27/2014.
func (c *Catalog) IsAmbiguous(s string) bool {
	return c.ambiguousExact.MatchString(s)
}

// ShortMonth returns the abbreviation for a full month name, in any case.
func (c *Catalog) ShortMonth(full string) (string, bool) {
	s, ok := c.fullToShort[strings.ToLower(full)]
	return s, ok
}

// MonthCase returns the fixed-case form of a month abbreviation ("jUN" -> "Jun").
func (c *Catalog) MonthCase(short string) (string, bool) {
	s, ok := c.shortCase[strings.ToLower(short)]
	return s, ok
}

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return `(?:` + strings.Join(quoted, `|`) + `)`
}

// uniqueLongestFirst drops repeated names and orders the rest so that no entry
// is shadowed by a shorter prefix (PETT before PET).
func uniqueLongestFirst(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}
