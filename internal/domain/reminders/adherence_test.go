package reminders

import (
	"testing"
	"time"
)

func mustCombine(t *testing.T, day time.Time, tod string) time.Time {
	t.Helper()
	at, ok := combine(day, tod)
	if !ok {
		t.Fatalf("combine(%v, %q) failed", day, tod)
	}
	return at
}

func activeReminder(times []string, start time.Time, end *time.Time) MedicationReminder {
	return MedicationReminder{
		ID:        "rem-1",
		UserID:    "user-1",
		Name:      "Metformin",
		Dose:      "500mg",
		Frequency: FrequencyTwiceDaily,
		Times:     times,
		StartDate: dateOnly(start),
		EndDate:   end,
		Adherence: []AdherenceLog{},
	}
}

func TestUpcomingDoses_SkipsLoggedSlots(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	r := activeReminder([]string{"08:00", "20:00"}, now.AddDate(0, 0, -3), nil)

	// Morning dose already taken today.
	r.Adherence = []AdherenceLog{
		{At: mustCombine(t, now, "08:00"), Status: DoseTaken},
	}

	got := UpcomingDoses([]MedicationReminder{r}, now)
	if len(got) != 1 {
		t.Fatalf("expected 1 upcoming dose, got %d: %#v", len(got), got)
	}
	if got[0].Time != "20:00" {
		t.Fatalf("expected 20:00, got %s", got[0].Time)
	}
	if got[0].Overdue {
		t.Fatalf("20:00 should not be overdue at noon")
	}
}

func TestUpcomingDoses_SkippedSlotIsNotListedAgain(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	r := activeReminder([]string{"08:00"}, now.AddDate(0, 0, -3), nil)
	r.Adherence = []AdherenceLog{
		{At: mustCombine(t, now, "08:00"), Status: DoseSkipped},
	}

	got := UpcomingDoses([]MedicationReminder{r}, now)
	if len(got) != 0 {
		t.Fatalf("expected no upcoming doses, got %#v", got)
	}
}

func TestUpcomingDoses_OverdueBeforeNow_UpcomingAtNow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	r := activeReminder([]string{"08:00", "12:00", "18:00"}, now.AddDate(0, 0, -1), nil)

	got := UpcomingDoses([]MedicationReminder{r}, now)
	if len(got) != 3 {
		t.Fatalf("expected 3 doses, got %d", len(got))
	}
	if !got[0].Overdue {
		t.Fatalf("08:00 should be overdue at noon")
	}
	// Exactly at now counts as upcoming, not overdue.
	if got[1].Overdue {
		t.Fatalf("12:00 should not be overdue at exactly noon")
	}
	if got[2].Overdue {
		t.Fatalf("18:00 should not be overdue at noon")
	}
}

func TestUpcomingDoses_InactiveReminderContributesNothing(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	notStarted := activeReminder([]string{"08:00"}, now.AddDate(0, 0, 2), nil)

	ended := now.AddDate(0, 0, -1)
	expired := activeReminder([]string{"08:00"}, now.AddDate(0, 0, -10), &ended)

	got := UpcomingDoses([]MedicationReminder{notStarted, expired}, now)
	if len(got) != 0 {
		t.Fatalf("expected no doses from inactive reminders, got %#v", got)
	}
}

func TestUpcomingDoses_SortedByTimeThenName(t *testing.T) {
	now := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)

	a := activeReminder([]string{"08:00"}, now.AddDate(0, 0, -1), nil)
	a.ID, a.Name = "rem-a", "Aspirin"
	b := activeReminder([]string{"07:00", "08:00"}, now.AddDate(0, 0, -1), nil)
	b.ID, b.Name = "rem-b", "Zinc"

	got := UpcomingDoses([]MedicationReminder{b, a}, now)
	if len(got) != 3 {
		t.Fatalf("expected 3 doses, got %d", len(got))
	}
	if got[0].Time != "07:00" {
		t.Fatalf("expected 07:00 first, got %s", got[0].Time)
	}
	if got[1].Name != "Aspirin" || got[2].Name != "Zinc" {
		t.Fatalf("expected name tiebreak at 08:00, got %s then %s", got[1].Name, got[2].Name)
	}
}

func TestAdherencePercent_NoExpectedDoses_ReadsFull(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	// Starts tomorrow: nothing expected in the trailing window.
	r := activeReminder([]string{"08:00"}, now.AddDate(0, 0, 1), nil)

	if pct := AdherencePercent(r, now); pct != 100 {
		t.Fatalf("expected 100 with no expected doses, got %d", pct)
	}
}

func TestAdherencePercent_CountsTakenOnly(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	// Active the whole window: 7 days x 2 times = 14 expected.
	r := activeReminder([]string{"08:00", "20:00"}, now.AddDate(0, 0, -30), nil)

	for off := 0; off < 7; off++ {
		day := now.AddDate(0, 0, -off)
		r.Adherence = append(r.Adherence, AdherenceLog{At: mustCombine(t, day, "08:00"), Status: DoseTaken})
	}
	// One evening skipped, the rest unlogged.
	r.Adherence = append(r.Adherence, AdherenceLog{At: mustCombine(t, now, "20:00"), Status: DoseSkipped})

	// 7 taken of 14 expected.
	if pct := AdherencePercent(r, now); pct != 50 {
		t.Fatalf("expected 50, got %d", pct)
	}
}

func TestAdherencePercent_PartialWindowActivity(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	// Started 2 days ago: only 3 active days inside the window.
	r := activeReminder([]string{"09:00"}, now.AddDate(0, 0, -2), nil)

	r.Adherence = []AdherenceLog{
		{At: mustCombine(t, now.AddDate(0, 0, -2), "09:00"), Status: DoseTaken},
		{At: mustCombine(t, now.AddDate(0, 0, -1), "09:00"), Status: DoseTaken},
	}

	// 2 of 3 expected, rounded.
	if pct := AdherencePercent(r, now); pct != 67 {
		t.Fatalf("expected 67, got %d", pct)
	}
}

func TestWeeklyChart_BucketsDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	r := activeReminder([]string{"08:00", "20:00"}, now.AddDate(0, 0, -30), nil)

	yesterday := now.AddDate(0, 0, -1)
	r.Adherence = []AdherenceLog{
		// Today complete.
		{At: mustCombine(t, now, "08:00"), Status: DoseTaken},
		{At: mustCombine(t, now, "20:00"), Status: DoseTaken},
		// Yesterday partial: one taken, one skipped.
		{At: mustCombine(t, yesterday, "08:00"), Status: DoseTaken},
		{At: mustCombine(t, yesterday, "20:00"), Status: DoseSkipped},
	}

	week := WeeklyChart(r, now)
	if len(week) != 7 {
		t.Fatalf("expected 7 chart days, got %d", len(week))
	}
	if !week[0].Date.Before(week[6].Date) {
		t.Fatalf("expected oldest day first")
	}
	for _, d := range week[:5] {
		if d.Status != DayNoData {
			t.Fatalf("expected no-data for unlogged day %v, got %s", d.Date, d.Status)
		}
	}
	if week[5].Status != DayPartial {
		t.Fatalf("expected partial yesterday, got %s", week[5].Status)
	}
	if week[6].Status != DayComplete {
		t.Fatalf("expected complete today, got %s", week[6].Status)
	}
}

func TestWeeklyChart_LogsOutsideActiveWindowStillCount(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	ended := now.AddDate(0, 0, -3)
	r := activeReminder([]string{"08:00"}, now.AddDate(0, 0, -30), &ended)

	// Logged on a day after the end date.
	r.Adherence = []AdherenceLog{
		{At: mustCombine(t, now.AddDate(0, 0, -1), "08:00"), Status: DoseTaken},
	}

	week := WeeklyChart(r, now)
	if week[5].Status != DayComplete {
		t.Fatalf("expected complete from logged day outside window, got %s", week[5].Status)
	}
}
