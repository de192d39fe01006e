package schedule

import (
	"testing"

	"github.com/pros100kyiv/HUBbase-sub001/models"
)

func TestGapsSummary_SweepAndOrdering(t *testing.T) {
	m := testMaster(t, "m1", "Olya")
	eng := newTestEngine([]models.Master{m}, []models.Appointment{
		booked("m1", "2024-06-10", "10:00", "11:00", models.StatusConfirmed),
		booked("m1", "2024-06-10", "13:00", "14:30", models.StatusNew),
	})

	res, err := eng.GapsSummary(GapsArgs{Date: "2024-06-10", MinGapMinutes: 30, MasterID: "m1"})
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalAppointments != 2 {
		t.Fatalf("expected 2 appointments, got %d", res.TotalAppointments)
	}
	// Window 09:00-18:00 minus 10:00-11:00 and 13:00-14:30, largest first.
	want := []Gap{
		{Start: "14:30", End: "18:00", Minutes: 210},
		{Start: "11:00", End: "13:00", Minutes: 120},
		{Start: "09:00", End: "10:00", Minutes: 60},
	}
	if len(res.Gaps) != len(want) {
		t.Fatalf("expected %d gaps, got %+v", len(want), res.Gaps)
	}
	for i, g := range want {
		if res.Gaps[i] != g {
			t.Errorf("gap %d = %+v, want %+v", i, res.Gaps[i], g)
		}
	}
	if res.TotalGaps != 3 {
		t.Errorf("expected totalGaps 3, got %d", res.TotalGaps)
	}
}

func TestGapsSummary_OffDayOverride(t *testing.T) {
	m := testMaster(t, "m1", "Olya")
	m.ScheduleDateOverrides = overridesJSON(t, models.DateOverrides{
		"2024-06-11": {Enabled: false},
	})
	eng := newTestEngine([]models.Master{m}, nil)

	res, err := eng.GapsSummary(GapsArgs{Date: "2024-06-11", MasterID: "m1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Gaps) != 0 {
		t.Fatalf("expected no gaps on an off day, got %+v", res.Gaps)
	}
	if res.Note != "no_working_hours" {
		t.Fatalf("expected no_working_hours note, got %q", res.Note)
	}
}

func TestGapsSummary_MasterRequired(t *testing.T) {
	eng := newTestEngine(nil, nil)

	res, err := eng.GapsSummary(GapsArgs{Date: "2024-06-10"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Error != "master_required" {
		t.Fatalf("expected master_required, got %q", res.Error)
	}
}

func TestGapsSummary_ThresholdFilters(t *testing.T) {
	m := testMaster(t, "m1", "Olya")
	eng := newTestEngine([]models.Master{m}, []models.Appointment{
		booked("m1", "2024-06-10", "09:00", "12:00", models.StatusConfirmed),
		booked("m1", "2024-06-10", "12:20", "18:00", models.StatusConfirmed),
	})

	// The 20-minute hole at midday is below the 30-minute threshold.
	res, err := eng.GapsSummary(GapsArgs{Date: "2024-06-10", MinGapMinutes: 30, MasterID: "m1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Gaps) != 0 {
		t.Fatalf("sub-threshold gap leaked: %+v", res.Gaps)
	}
}

func TestGapsSummary_ClipsBookingsToWindow(t *testing.T) {
	m := testMaster(t, "m1", "Olya")
	eng := newTestEngine([]models.Master{m}, []models.Appointment{
		booked("m1", "2024-06-10", "07:00", "09:30", models.StatusConfirmed),
		booked("m1", "2024-06-10", "17:00", "20:00", models.StatusConfirmed),
	})

	res, err := eng.GapsSummary(GapsArgs{Date: "2024-06-10", MinGapMinutes: 30, MasterID: "m1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Gaps) != 1 {
		t.Fatalf("expected a single midday gap, got %+v", res.Gaps)
	}
	g := res.Gaps[0]
	if g.Start != "09:30" || g.End != "17:00" || g.Minutes != 450 {
		t.Fatalf("unexpected gap: %+v", g)
	}
}

// Gaps plus clipped busy intervals must cover the window exactly when the
// bookings are disjoint and the threshold is at its minimum.
func TestGapsSummary_ComplementsBusySet(t *testing.T) {
	m := testMaster(t, "m1", "Olya")
	appts := []models.Appointment{
		booked("m1", "2024-06-10", "09:00", "09:45", models.StatusNew),
		booked("m1", "2024-06-10", "11:00", "12:30", models.StatusConfirmed),
		booked("m1", "2024-06-10", "15:00", "16:00", models.StatusNew),
	}
	eng := newTestEngine([]models.Master{m}, appts)

	res, err := eng.GapsSummary(GapsArgs{Date: "2024-06-10", MinGapMinutes: 10, MasterID: "m1", Limit: 80})
	if err != nil {
		t.Fatal(err)
	}

	busyTotal := 0
	for _, a := range appts {
		s, _ := MinuteFromHHMM(a.StartTime)
		e2, _ := MinuteFromHHMM(a.EndTime)
		busyTotal += e2 - s
	}
	gapTotal := 0
	for _, g := range res.Gaps {
		gapTotal += g.Minutes
	}
	windowTotal := (18 - 9) * 60
	if busyTotal+gapTotal != windowTotal {
		t.Fatalf("gaps (%d) + busy (%d) != window (%d)", gapTotal, busyTotal, windowTotal)
	}
}
