package reminders

import (
	"math"
	"sort"
	"time"
)

// adherenceWindowDays is the trailing window used for the percentage and
// the chart: today plus the six preceding days.
const adherenceWindowDays = 7

// UpcomingDose is one of today's doses that has no recorded outcome yet.
type UpcomingDose struct {
	ReminderID string
	Name       string
	Dose       string
	Time       string // "HH:MM"
	At         time.Time
	Overdue    bool
}

// UpcomingDoses resolves today's still-unhandled doses across the given
// reminders, sorted by time of day ascending. A dose already logged
// today (taken or skipped) is never listed again. A dose scheduled
// exactly at now is reported as upcoming, not overdue.
func UpcomingDoses(rs []MedicationReminder, now time.Time) []UpcomingDose {
	out := make([]UpcomingDose, 0)

	for _, r := range rs {
		if !r.ActiveOn(now) {
			continue
		}
		for _, tod := range r.Times {
			if _, logged := r.logFor(now, tod); logged {
				continue
			}
			at, ok := combine(now, tod)
			if !ok {
				continue
			}
			out = append(out, UpcomingDose{
				ReminderID: r.ID,
				Name:       r.Name,
				Dose:       r.Dose,
				Time:       tod,
				At:         at,
				Overdue:    at.Before(now),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].Name < out[j].Name
	})

	return out
}

// AdherencePercent computes the integer percentage of expected doses
// logged as taken over the trailing 7 calendar days. Skipped logs count
// against the percentage (the slot stays expected, not taken). When no
// doses were expected in the window the reminder reads as fully
// compliant (100).
func AdherencePercent(r MedicationReminder, now time.Time) int {
	expected, taken := 0, 0

	for off := adherenceWindowDays - 1; off >= 0; off-- {
		day := now.AddDate(0, 0, -off)
		if !r.ActiveOn(day) {
			continue
		}
		expected += len(r.Times)
		for _, l := range r.Adherence {
			if l.Status == DoseTaken && sameDate(l.At, day) {
				taken++
			}
		}
	}

	if expected == 0 {
		return 100
	}

	pct := int(math.Round(100 * float64(taken) / float64(expected)))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}

// DayStatus classifies one chart day.
type DayStatus string

const (
	DayNoData   DayStatus = "no-data"
	DayPartial  DayStatus = "partial"
	DayComplete DayStatus = "complete"
)

// ChartDay is one bucket of the trailing 7-day adherence chart,
// oldest first.
type ChartDay struct {
	Date   time.Time
	Status DayStatus
}

// WeeklyChart buckets the trailing 7 days. A day with no logs is
// no-data even outside the active window; a day where every scheduled
// time has a taken log is complete; anything else logged is partial.
func WeeklyChart(r MedicationReminder, now time.Time) []ChartDay {
	out := make([]ChartDay, 0, adherenceWindowDays)

	for off := adherenceWindowDays - 1; off >= 0; off-- {
		day := dateOnly(now.AddDate(0, 0, -off))

		logged, taken := 0, 0
		for _, l := range r.Adherence {
			if !sameDate(l.At, day) {
				continue
			}
			logged++
			if l.Status == DoseTaken {
				taken++
			}
		}

		status := DayNoData
		switch {
		case logged == 0:
			status = DayNoData
		case len(r.Times) > 0 && taken == len(r.Times):
			status = DayComplete
		default:
			status = DayPartial
		}

		out = append(out, ChartDay{Date: day, Status: status})
	}

	return out
}

// combine builds the instant for a "HH:MM" time of day on day's
// calendar date, in day's location.
func combine(day time.Time, timeOfDay string) (time.Time, bool) {
	parsed, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return time.Time{}, false
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), true
}
