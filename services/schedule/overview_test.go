package schedule

import (
	"testing"

	"github.com/pros100kyiv/HUBbase-sub001/models"
)

func TestWhoWorking(t *testing.T) {
	working := testMaster(t, "m1", "Olya")
	off := testMaster(t, "m2", "Ira")
	off.ScheduleDateOverrides = overridesJSON(t, models.DateOverrides{
		"2024-06-10": {Enabled: false},
	})
	eng := newTestEngine([]models.Master{working, off}, []models.Appointment{
		booked("m1", "2024-06-10", "10:00", "11:00", models.StatusConfirmed),
		booked("m1", "2024-06-10", "11:00", "12:00", models.StatusCancelled),
	})

	res, err := eng.WhoWorking("2024-06-10")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Working) != 1 || len(res.Off) != 1 {
		t.Fatalf("unexpected split: working %+v off %+v", res.Working, res.Off)
	}
	w := res.Working[0]
	if w.ID != "m1" || w.Start != "09:00" || w.End != "18:00" {
		t.Fatalf("unexpected working entry: %+v", w)
	}
	if w.Appointments != 1 {
		t.Fatalf("cancelled appointment counted: %+v", w)
	}
	if w.Source != SourceWeekly {
		t.Fatalf("expected weekly source, got %q", w.Source)
	}
	if res.Off[0] != "Ira" {
		t.Fatalf("expected Ira off, got %v", res.Off)
	}
}
