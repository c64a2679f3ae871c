package extraction

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	statedYears = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years|yrs)(?:\s+of)?\s+experience`)
	yearRange   = regexp.MustCompile(`(?i)(\d{4})\s*(?:-|to|–)\s*(?:(\d{4})|present|current)`)
)

// yearsOfExperience prefers a stated "N years of experience". Otherwise it
// sums the year ranges in the experience durations, with an open range
// ending in the year of now.
func yearsOfExperience(doc *document, experience []types.ExperienceEntry, now time.Time) int {
	if m := statedYears.FindStringSubmatch(doc.text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			// too many digits for an int
			return types.MaxYearsOfExperience
		}
		return n
	}

	months := 0
	for _, entry := range experience {
		m := yearRange.FindStringSubmatch(entry.Duration)
		if m == nil {
			continue
		}
		start, _ := strconv.Atoi(m[1])
		end := now.Year()
		if m[2] != "" {
			end, _ = strconv.Atoi(m[2])
		}
		months += max(0, (end-start)*12)
	}
	return int(math.Round(float64(months) / 12))
}
