package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-screener/internal/textnorm"
)

const maxPlausibleYears = 50

// yearPatterns capture a year count in group 1.
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*[+-]?\s*(?:years?|yrs?|yr)`),
	regexp.MustCompile(`(\d+)\s*[+-]?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`experience[\s:]+(\d+)\s*[+-]?\s*years?`),
	regexp.MustCompile(`(\d+)\s*[+-]?\s*years?\s+in`),
}

var (
	yearRange    = regexp.MustCompile(`(\d{4})\s*[-–]\s*(\d{4})`)
	sectionRange = regexp.MustCompile(`(\d{4})\s*[-–]\s*(\d{4}|present|current)`)
)

// ExperienceYears returns the largest plausible years-of-experience signal in raw
// text, or nil when there is none. now resolves "present" and "current".
func ExperienceYears(raw string, now time.Time) *int {
	normalized := textnorm.Normalize(raw)
	if normalized == "" {
		return nil
	}

	best, found := 0, false
	consider := func(years int) {
		if years < 0 || years > maxPlausibleYears {
			return
		}
		if !found || years > best {
			best, found = years, true
		}
	}

	for _, re := range yearPatterns {
		for _, m := range re.FindAllStringSubmatch(normalized, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil {
				consider(n)
			}
		}
	}
	for _, m := range yearRange.FindAllStringSubmatch(normalized, -1) {
		start, err1 := strconv.Atoi(m[1])
		end, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			consider(end - start)
		}
	}

	section := textnorm.FindSection(textnorm.Clean(raw), textnorm.ExperienceHeaders, textnorm.SectionOptions{})
	if total, ok := sumDateRanges(textnorm.Normalize(section), now.Year()); ok {
		consider(total)
	}

	if !found {
		return nil
	}
	return &best
}

// sumDateRanges adds up every plausible date range in an experience section.
func sumDateRanges(section string, currentYear int) (int, bool) {
	total, counted := 0, false
	for _, m := range sectionRange.FindAllStringSubmatch(section, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := currentYear
		if e := strings.ToLower(m[2]); e != "present" && e != "current" {
			if end, err = strconv.Atoi(e); err != nil {
				continue
			}
		}
		years := end - start
		if years < 0 || years > maxPlausibleYears {
			continue
		}
		total += years
		counted = true
	}
	return total, counted
}
