package calendar

import (
	"fmt"
	"strings"

	"github.com/teambition/rrule-go"
)

// ParseRecurrence parses a recurring holiday rule: "weekends", a weekday
// such as "every sunday" or "sundays", or a raw RRULE such as
// "FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25".
func ParseRecurrence(s string) (*rrule.RRule, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if isRawRRule(s) {
		raw := strings.TrimPrefix(strings.ToUpper(s), "RRULE:")
		r, err := rrule.StrToRRule(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RRULE %q: %w", raw, err)
		}
		return r, nil
	}

	if s == "weekends" || s == "every weekend" {
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rrule.SA, rrule.SU},
		})
	}

	name := strings.TrimSuffix(strings.TrimPrefix(s, "every "), "s")
	if wd, ok := rruleWeekdays[name]; ok {
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{wd},
		})
	}

	return nil, fmt.Errorf("unrecognized holiday rule %q (try \"weekends\", \"every sunday\" or an RRULE)", s)
}

func isRawRRule(s string) bool {
	return strings.HasPrefix(s, "freq=") || strings.HasPrefix(s, "rrule:")
}

var rruleWeekdays = map[string]rrule.Weekday{
	"sunday":    rrule.SU,
	"monday":    rrule.MO,
	"tuesday":   rrule.TU,
	"wednesday": rrule.WE,
	"thursday":  rrule.TH,
	"friday":    rrule.FR,
	"saturday":  rrule.SA,
}
