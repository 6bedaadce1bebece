package base

import (
	"regexp"
	"strings"

	"github.com/teranos/tempex/scatex"
)

var (
	meridiemRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))? ?(am|pm|a\.m|p\.m)\.?$`)
	clock24Re  = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
)

// parseTimeOfDayName reads named periods of the day, singular or plural.
func parseTimeOfDayName(text string) (scatex.Expression, bool) {
	if kind, ok := timeOfDayKinds[text]; ok {
		return scatex.TimeOfDay{Kind: kind}, true
	}
	if kind, ok := timeOfDayKinds[strings.TrimSuffix(text, "s")]; ok {
		return scatex.TimeOfDay{Kind: kind}, true
	}
	if text == "tonight" {
		return scatex.TimeOfDay{Kind: scatex.Night}, true
	}
	return nil, false
}

// parseClock reads clock times. A bare clock has no calendar date, so
// the node is partial: it evaluates open until an intersection or merge
// supplies the day.
func parseClock(text string) (scatex.Expression, bool) {
	if m := meridiemRe.FindStringSubmatch(text); m != nil {
		hour := atoi(m[1])
		if hour < 1 || hour > 12 {
			return nil, false
		}
		if hour == 12 {
			hour = 0
		}
		if strings.HasPrefix(m[3], "p") {
			hour += 12
		}
		if m[2] != "" {
			return scatex.Minute{Minute: atoi(m[2]), Hour: scatex.Int(hour)}, true
		}
		return scatex.Hour{Hour: hour}, true
	}

	if m := clock24Re.FindStringSubmatch(text); m != nil {
		hour := atoi(m[1])
		minute := atoi(m[2])
		if hour > 23 || minute > 59 {
			return nil, false
		}
		if m[3] != "" {
			second := atoi(m[3])
			if second > 59 {
				return nil, false
			}
			return scatex.Second{Second: second, Minute: scatex.Int(minute), Hour: scatex.Int(hour)}, true
		}
		return scatex.Minute{Minute: minute, Hour: scatex.Int(hour)}, true
	}

	return nil, false
}
