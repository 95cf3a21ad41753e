package reminders

import "time"

// Frequency is the advisory dosing label. It is not enforced against
// the number of scheduled times.
type Frequency string

const (
	FrequencyOnceDaily  Frequency = "once-daily"
	FrequencyTwiceDaily Frequency = "twice-daily"
	FrequencyThreeTimes Frequency = "three-times"
	FrequencyFourTimes  Frequency = "four-times"
	FrequencyAsNeeded   Frequency = "as-needed"
)

func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyOnceDaily, FrequencyTwiceDaily, FrequencyThreeTimes,
		FrequencyFourTimes, FrequencyAsNeeded:
		return true
	}
	return false
}

type DoseStatus string

const (
	DoseTaken   DoseStatus = "taken"
	DoseSkipped DoseStatus = "skipped"
)

// AdherenceLog is one recorded outcome for one scheduled dose slot.
// At combines the calendar date with one of the reminder's scheduled
// times; there is at most one log per (date, time) slot.
type AdherenceLog struct {
	At     time.Time
	Status DoseStatus
}

// MedicationReminder is a configured medication with a dosing schedule
// owned by exactly one user.
type MedicationReminder struct {
	ID     string
	UserID string

	Name      string
	Dose      string
	Frequency Frequency

	// Times are scheduled times of day ("HH:MM", 24h), sorted ascending.
	Times []string

	// Active window [StartDate, EndDate], inclusive. Nil EndDate means
	// open-ended. Both are date-only values.
	StartDate time.Time
	EndDate   *time.Time

	Notes string

	Adherence []AdherenceLog

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActiveOn reports whether the reminder expects doses on the given
// calendar day.
func (r MedicationReminder) ActiveOn(day time.Time) bool {
	d := dateOnly(day)
	if d.Before(dateOnly(r.StartDate)) {
		return false
	}
	if r.EndDate != nil && d.After(dateOnly(*r.EndDate)) {
		return false
	}
	return true
}

// logFor returns the log recorded for the (day, timeOfDay) slot, if any.
func (r MedicationReminder) logFor(day time.Time, timeOfDay string) (AdherenceLog, bool) {
	for _, l := range r.Adherence {
		if sameDate(l.At, day) && l.At.Format("15:04") == timeOfDay {
			return l, true
		}
	}
	return AdherenceLog{}, false
}

// dateOnly strips the time-of-day, keeping the calendar date as seen in
// t's own location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
