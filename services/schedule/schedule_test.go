package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pros100kyiv/HUBbase-sub001/models"
)

// --- fixtures ---

type fakeMasters struct {
	masters []models.Master
}

func (f *fakeMasters) GetByID(id string) (*models.Master, error) {
	for i := range f.masters {
		if f.masters[i].ID == id {
			return &f.masters[i], nil
		}
	}
	return nil, nil
}

func (f *fakeMasters) GetAllActive() ([]models.Master, error) {
	var out []models.Master
	for _, m := range f.masters {
		if m.Active {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeAppointments struct {
	appts []models.Appointment
}

func (f *fakeAppointments) GetByMasterAndDate(masterID, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.MasterID == masterID && a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func weeklyJSON(t *testing.T, ws models.WeeklySchedule) string {
	t.Helper()
	b, err := json.Marshal(ws)
	if err != nil {
		t.Fatalf("marshal weekly schedule: %v", err)
	}
	return string(b)
}

func overridesJSON(t *testing.T, ov models.DateOverrides) string {
	t.Helper()
	b, err := json.Marshal(ov)
	if err != nil {
		t.Fatalf("marshal overrides: %v", err)
	}
	return string(b)
}

// monFri returns a weekly schedule with Monday-Friday enabled at the given hours.
func monFri(t *testing.T, start, end string) string {
	t.Helper()
	ws := models.WeeklySchedule{}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
		ws[day] = models.DaySchedule{Enabled: true, Start: start, End: end}
	}
	return weeklyJSON(t, ws)
}

func testMaster(t *testing.T, id, name string) models.Master {
	t.Helper()
	return models.Master{
		ID:           id,
		Name:         name,
		Active:       true,
		WorkingHours: monFri(t, "09:00", "18:00"),
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTestEngine(masters []models.Master, appts []models.Appointment) *Engine {
	return NewEngine(&fakeMasters{masters: masters}, &fakeAppointments{appts: appts})
}

func booked(masterID, date, start, end, status string) models.Appointment {
	return models.Appointment{
		ID: "appt-" + start, MasterID: masterID, Date: date,
		StartTime: start, EndTime: end, Status: status,
	}
}

// --- resolver ---

func TestResolveDay_Weekly(t *testing.T) {
	m := testMaster(t, "m1", "Olya")

	day := ResolveDay(&m, "2024-06-10") // Monday
	if !day.Enabled {
		t.Fatalf("expected Monday enabled, got %+v", day)
	}
	if day.StartHour != 9 || day.EndHour != 18 {
		t.Fatalf("expected 9..18, got %v..%v", day.StartHour, day.EndHour)
	}
	if day.Source != SourceWeekly {
		t.Fatalf("expected source weekly, got %q", day.Source)
	}

	day = ResolveDay(&m, "2024-06-09") // Sunday, no weekly entry
	if day.Enabled {
		t.Fatalf("expected Sunday off, got %+v", day)
	}
	if day.Source != SourceNone {
		t.Fatalf("expected source none, got %q", day.Source)
	}
}

func TestResolveDay_OverrideWinsEvenWhenDisabled(t *testing.T) {
	m := testMaster(t, "m1", "Olya")
	m.ScheduleDateOverrides = overridesJSON(t, models.DateOverrides{
		"2024-06-11": {Enabled: false},
	})

	day := ResolveDay(&m, "2024-06-11") // Tuesday with weekly hours, but override disables
	if day.Enabled {
		t.Fatalf("override must win over weekly schedule, got %+v", day)
	}
	if day.Source != SourceOverride {
		t.Fatalf("expected source override, got %q", day.Source)
	}
}

func TestResolveDay_OverrideExtendsHours(t *testing.T) {
	m := testMaster(t, "m1", "Olya")
	m.ScheduleDateOverrides = overridesJSON(t, models.DateOverrides{
		"2024-06-10": {Enabled: true, Start: "12:00", End: "20:00"},
	})

	day := ResolveDay(&m, "2024-06-10")
	if !day.Enabled || day.StartHour != 12 || day.EndHour != 20 {
		t.Fatalf("expected override hours 12..20, got %+v", day)
	}
	if day.Source != SourceOverride {
		t.Fatalf("expected source override, got %q", day.Source)
	}
}

func TestResolveDay_MalformedBlobsDegradeToOff(t *testing.T) {
	m := testMaster(t, "m1", "Olya")
	m.WorkingHours = "{not json"

	if day := ResolveDay(&m, "2024-06-10"); day.Enabled {
		t.Fatalf("malformed weekly blob must mean off, got %+v", day)
	}

	m = testMaster(t, "m1", "Olya")
	m.WorkingHours = weeklyJSON(t, models.WeeklySchedule{
		"monday": {Enabled: true, Start: "18:00", End: "09:00"},
	})
	if day := ResolveDay(&m, "2024-06-10"); day.Enabled {
		t.Fatalf("inverted range must mean off, got %+v", day)
	}

	m.WorkingHours = weeklyJSON(t, models.WeeklySchedule{
		"monday": {Enabled: true, Start: "long", End: "18:00"},
	})
	if day := ResolveDay(&m, "2024-06-10"); day.Enabled {
		t.Fatalf("unparsable hours must mean off, got %+v", day)
	}
}

func TestWeekdayKeyRotation(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2024-06-10", "monday"},
		{"2024-06-14", "friday"},
		{"2024-06-15", "saturday"},
		{"2024-06-16", "sunday"},
		{"bogus", ""},
	}
	for _, tc := range cases {
		if got := WeekdayKey(tc.date); got != tc.want {
			t.Errorf("WeekdayKey(%q) = %q, want %q", tc.date, got, tc.want)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	now := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	if got := NormalizeDate("2024-06-10", now); got != "2024-06-10" {
		t.Errorf("valid date rewritten: %q", got)
	}
	for _, bad := range []string{"", "10.06.2024", "2024-13-40", "tomorrow"} {
		if got := NormalizeDate(bad, now); got != "2024-06-12" {
			t.Errorf("NormalizeDate(%q) = %q, want today", bad, got)
		}
	}
}

func TestClampOrDefault(t *testing.T) {
	cases := []struct {
		v, min, max, def, want int
	}{
		{1, 5, 360, 60, 5},
		{10000, 5, 360, 60, 360},
		{-3, 1, 80, 20, 1},
		{0, 5, 360, 60, 60},
		{45, 5, 360, 60, 45},
	}
	for _, tc := range cases {
		if got := ClampOrDefault("arg", tc.v, tc.min, tc.max, tc.def); got != tc.want {
			t.Errorf("ClampOrDefault(%d, %d, %d, %d) = %d, want %d", tc.v, tc.min, tc.max, tc.def, got, tc.want)
		}
	}
}

// --- master resolution ---

func TestResolveMaster(t *testing.T) {
	early := testMaster(t, "m1", "Oleksandra")
	late := testMaster(t, "m2", "Sandra")
	late.CreatedAt = early.CreatedAt.AddDate(0, 1, 0)
	inactive := testMaster(t, "m3", "Sandro")
	inactive.Active = false

	eng := newTestEngine([]models.Master{early, late, inactive}, nil)

	m, err := eng.ResolveMaster("m2", "")
	if err != nil || m == nil || m.ID != "m2" {
		t.Fatalf("by id: got %+v, err %v", m, err)
	}

	// Case-insensitive substring: both active names contain "sandr",
	// earliest-created wins the tie.
	m, err = eng.ResolveMaster("", "SANDR")
	if err != nil || m == nil || m.ID != "m1" {
		t.Fatalf("by name: got %+v, err %v", m, err)
	}

	// Inactive masters are not matched by name.
	m, err = eng.ResolveMaster("", "Sandro")
	if err != nil {
		t.Fatal(err)
	}
	if m != nil && m.ID == "m3" {
		t.Fatalf("inactive master matched: %+v", m)
	}

	m, err = eng.ResolveMaster("", "")
	if err != nil || m != nil {
		t.Fatalf("empty inputs must resolve to nil, got %+v, err %v", m, err)
	}
}
