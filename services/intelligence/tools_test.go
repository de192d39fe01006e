package ai

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pros100kyiv/HUBbase-sub001/models"
	"github.com/pros100kyiv/HUBbase-sub001/services/schedule"
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

func (f *fakeAppointments) GetByID(id string) (*models.Appointment, error) {
	for i := range f.appts {
		if f.appts[i].ID == id {
			return &f.appts[i], nil
		}
	}
	return nil, nil
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

func (f *fakeAppointments) GetByDate(date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointments) Create(appt *models.Appointment) error    { return nil }
func (f *fakeAppointments) Update(appt *models.Appointment) error    { return nil }
func (f *fakeAppointments) UpdateStatus(id, status string) error     { return nil }
func (f *fakeAppointments) Delete(id string) error                   { return nil }
func (f *fakeAppointments) CompleteBefore(d, t string) (int64, error) { return 0, nil }

type fakeClients struct {
	clients []models.Client
}

func (f *fakeClients) GetByID(id string) (*models.Client, error) { return nil, nil }
func (f *fakeClients) GetAll() ([]models.Client, error)          { return f.clients, nil }

func (f *fakeClients) Search(query string) ([]models.Client, error) {
	var out []models.Client
	for _, c := range f.clients {
		if containsFold(c.Name, query) || containsFold(c.Phone, query) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClients) Create(client *models.Client) error { return nil }
func (f *fakeClients) Update(client *models.Client) error { return nil }
func (f *fakeClients) Delete(id string) error             { return nil }

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func monFri(t *testing.T, start, end string) string {
	t.Helper()
	ws := models.WeeklySchedule{}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
		ws[day] = models.DaySchedule{Enabled: true, Start: start, End: end}
	}
	b, err := json.Marshal(ws)
	if err != nil {
		t.Fatalf("marshal weekly schedule: %v", err)
	}
	return string(b)
}

func newTestToolSet(t *testing.T) *ToolSet {
	t.Helper()
	masters := []models.Master{{
		ID:           "m1",
		Name:         "Anna",
		Active:       true,
		WorkingHours: monFri(t, "09:00", "18:00"),
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
	appts := &fakeAppointments{appts: []models.Appointment{
		{ID: "a1", MasterID: "m1", ClientName: "Olga", Date: "2024-06-10", StartTime: "10:00", EndTime: "11:00", Status: models.StatusConfirmed},
		{ID: "a2", MasterID: "m1", ClientName: "Ira", Date: "2024-06-10", StartTime: "14:00", EndTime: "15:00", Status: models.StatusCancelled},
	}}
	clients := &fakeClients{clients: []models.Client{
		{ID: "c1", Name: "Olga Petrenko", Phone: "+380501112233"},
		{ID: "c2", Name: "Ira Kovalenko", Phone: "+380671234567"},
	}}
	return &ToolSet{
		Engine:       schedule.NewEngine(&fakeMasters{masters: masters}, appts),
		Clients:      clients,
		Appointments: appts,
	}
}

// --- tests ---

func TestDispatchFreeSlots(t *testing.T) {
	ts := newTestToolSet(t)

	res, err := ts.Dispatch("free_slots", map[string]any{
		"date":            "2024-06-10",
		"masterId":        "m1",
		"durationMinutes": float64(60),
	})
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	slots, ok := res["slots"].([]any)
	if !ok {
		t.Fatalf("slots missing from result: %#v", res)
	}
	has := func(want string) bool {
		for _, s := range slots {
			if s == want {
				return true
			}
		}
		return false
	}
	if !has("2024-06-10T09:00") {
		t.Errorf("expected 09:00 slot, got %v", slots)
	}
	if has("2024-06-10T10:30") {
		t.Errorf("10:30 overlaps the booked hour, got %v", slots)
	}
}

func TestDispatchFreeSlotsCoercesStringArgs(t *testing.T) {
	ts := newTestToolSet(t)

	res, err := ts.Dispatch("free_slots", map[string]any{
		"date":            "2024-06-10",
		"masterName":      "anna",
		"durationMinutes": "90",
		"limit":           "2",
	})
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if got := res["durationMinutes"]; got != float64(90) {
		t.Errorf("durationMinutes = %v, want 90", got)
	}
	if slots := res["slots"].([]any); len(slots) != 2 {
		t.Errorf("limit not honored, got %d slots", len(slots))
	}
}

func TestDispatchMasterRequired(t *testing.T) {
	ts := newTestToolSet(t)

	for _, tool := range []string{"free_slots", "gaps_summary"} {
		res, err := ts.Dispatch(tool, map[string]any{"date": "2024-06-10"})
		if err != nil {
			t.Fatalf("%s: %v", tool, err)
		}
		if res["error"] != "master_required" {
			t.Errorf("%s without master: error = %v, want master_required", tool, res["error"])
		}
		if res["hint"] == "" || res["hint"] == nil {
			t.Errorf("%s without master: expected a hint", tool)
		}
	}
}

func TestDispatchGapsSummary(t *testing.T) {
	ts := newTestToolSet(t)

	res, err := ts.Dispatch("gaps_summary", map[string]any{
		"date":     "2024-06-10",
		"masterId": "m1",
	})
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	gaps, ok := res["gaps"].([]any)
	if !ok {
		t.Fatalf("gaps missing from result: %#v", res)
	}
	// One booked hour inside 09:00-18:00 leaves two gaps, largest first.
	if len(gaps) != 2 {
		t.Fatalf("got %d gaps, want 2", len(gaps))
	}
	first := gaps[0].(map[string]any)
	if first["minutes"] != float64(420) {
		t.Errorf("largest gap = %v minutes, want 420", first["minutes"])
	}
}

func TestDispatchWhoWorking(t *testing.T) {
	ts := newTestToolSet(t)

	res, err := ts.Dispatch("who_working", map[string]any{"date": "2024-06-10"})
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	working, ok := res["working"].([]any)
	if !ok || len(working) != 1 {
		t.Fatalf("working = %#v, want one master", res["working"])
	}
}

func TestDispatchFindClient(t *testing.T) {
	ts := newTestToolSet(t)

	res, err := ts.Dispatch("find_client", map[string]any{"query": "olga"})
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if res["total"] != 1 {
		t.Fatalf("total = %v, want 1", res["total"])
	}
	clients := res["clients"].([]map[string]any)
	if clients[0]["name"] != "Olga Petrenko" {
		t.Errorf("client = %v", clients[0])
	}

	res, err = ts.Dispatch("find_client", map[string]any{})
	if err != nil {
		t.Fatalf("dispatch empty query: %v", err)
	}
	if res["error"] != "query_required" {
		t.Errorf("empty query: error = %v, want query_required", res["error"])
	}
}

func TestDispatchDayAppointments(t *testing.T) {
	ts := newTestToolSet(t)

	res, err := ts.Dispatch("day_appointments", map[string]any{
		"date":     "2024-06-10",
		"masterId": "m1",
	})
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if res["total"] != 2 {
		t.Errorf("total = %v, want 2 (cancelled ones are listed too)", res["total"])
	}
	master := res["master"].(map[string]any)
	if master["name"] != "Anna" {
		t.Errorf("master = %v", master)
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	ts := newTestToolSet(t)
	if _, err := ts.Dispatch("book_flight", nil); err == nil {
		t.Fatal("expected error for unknown tool")
	}
}
