package schedule

import (
	"reflect"
	"testing"

	"github.com/pros100kyiv/HUBbase-sub001/models"
)

func containsSlot(slots []string, s string) bool {
	for _, v := range slots {
		if v == s {
			return true
		}
	}
	return false
}

func TestFreeSlots_AroundBooking(t *testing.T) {
	m := testMaster(t, "m1", "Olya")
	eng := newTestEngine([]models.Master{m}, []models.Appointment{
		booked("m1", "2024-06-10", "10:00", "11:00", models.StatusConfirmed),
	})

	res, err := eng.FreeSlots(FreeSlotsArgs{Date: "2024-06-10", DurationMinutes: 60, MasterID: "m1"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Error != "" {
		t.Fatalf("unexpected error field: %q", res.Error)
	}
	if res.TotalBusy != 1 {
		t.Fatalf("expected 1 busy interval, got %d", res.TotalBusy)
	}
	if !containsSlot(res.Slots, "2024-06-10T09:00") {
		t.Errorf("expected 09:00 slot, got %v", res.Slots)
	}
	if !containsSlot(res.Slots, "2024-06-10T11:00") {
		t.Errorf("expected 11:00 slot, got %v", res.Slots)
	}
	if containsSlot(res.Slots, "2024-06-10T10:00") || containsSlot(res.Slots, "2024-06-10T10:30") {
		t.Errorf("conflicting slots returned: %v", res.Slots)
	}
}

func TestFreeSlots_NoScheduleMeansEmpty(t *testing.T) {
	m := testMaster(t, "m1", "Olya")
	m.WorkingHours = ""
	eng := newTestEngine([]models.Master{m}, nil)

	res, err := eng.FreeSlots(FreeSlotsArgs{Date: "2024-06-10", MasterID: "m1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Slots) != 0 {
		t.Fatalf("expected no slots without a schedule, got %v", res.Slots)
	}
	if res.Error != "" {
		t.Fatalf("day off is not an error condition, got %q", res.Error)
	}
}

func TestFreeSlots_MasterRequired(t *testing.T) {
	eng := newTestEngine(nil, nil)

	res, err := eng.FreeSlots(FreeSlotsArgs{Date: "2024-06-10"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Error != "master_required" {
		t.Fatalf("expected master_required, got %q", res.Error)
	}
	if res.Hint == "" {
		t.Fatal("expected a hint for the caller")
	}
}

func TestFreeSlots_CancelledBookingsIgnored(t *testing.T) {
	m := testMaster(t, "m1", "Olya")
	eng := newTestEngine([]models.Master{m}, []models.Appointment{
		booked("m1", "2024-06-10", "10:00", "11:00", models.StatusCancelled),
	})

	res, err := eng.FreeSlots(FreeSlotsArgs{Date: "2024-06-10", DurationMinutes: 60, MasterID: "m1"})
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalBusy != 0 {
		t.Fatalf("cancelled booking counted as busy: %d", res.TotalBusy)
	}
	if !containsSlot(res.Slots, "2024-06-10T10:00") {
		t.Errorf("cancelled booking blocked a slot: %v", res.Slots)
	}
}

func TestFreeSlots_DurationLongerThanWindow(t *testing.T) {
	m := testMaster(t, "m1", "Olya")
	m.WorkingHours = weeklyJSON(t, models.WeeklySchedule{
		"monday": {Enabled: true, Start: "09:00", End: "10:00"},
	})
	eng := newTestEngine([]models.Master{m}, nil)

	res, err := eng.FreeSlots(FreeSlotsArgs{Date: "2024-06-10", DurationMinutes: 120, MasterID: "m1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Slots) != 0 {
		t.Fatalf("duration longer than window must yield no slots, got %v", res.Slots)
	}
}

func TestFreeSlots_ArgumentClamping(t *testing.T) {
	m := testMaster(t, "m1", "Olya")
	eng := newTestEngine([]models.Master{m}, nil)

	res, err := eng.FreeSlots(FreeSlotsArgs{Date: "2024-06-10", DurationMinutes: 1, MasterID: "m1"})
	if err != nil {
		t.Fatal(err)
	}
	if res.DurationMinutes != 5 {
		t.Errorf("duration 1 must clamp to 5, got %d", res.DurationMinutes)
	}

	res, err = eng.FreeSlots(FreeSlotsArgs{Date: "2024-06-10", DurationMinutes: 10000, MasterID: "m1"})
	if err != nil {
		t.Fatal(err)
	}
	if res.DurationMinutes != 360 {
		t.Errorf("duration 10000 must clamp to 360, got %d", res.DurationMinutes)
	}

	res, err = eng.FreeSlots(FreeSlotsArgs{Date: "2024-06-10", DurationMinutes: 30, Limit: -4, MasterID: "m1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Slots) != 1 {
		t.Errorf("negative limit must clamp to 1, got %d slots", len(res.Slots))
	}
}

func TestFreeSlots_Idempotent(t *testing.T) {
	m := testMaster(t, "m1", "Olya")
	eng := newTestEngine([]models.Master{m}, []models.Appointment{
		booked("m1", "2024-06-10", "12:00", "13:30", models.StatusNew),
	})
	args := FreeSlotsArgs{Date: "2024-06-10", DurationMinutes: 45, MasterID: "m1"}

	first, err := eng.FreeSlots(args)
	if err != nil {
		t.Fatal(err)
	}
	second, err := eng.FreeSlots(args)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical calls diverged:\n%+v\n%+v", first, second)
	}
}

// Every returned slot must be conflict-free against the busy set under the
// half-open overlap test.
func TestFreeSlots_NoOverlapProperty(t *testing.T) {
	m := testMaster(t, "m1", "Olya")
	appts := []models.Appointment{
		booked("m1", "2024-06-10", "09:30", "10:15", models.StatusNew),
		booked("m1", "2024-06-10", "12:00", "14:00", models.StatusConfirmed),
		booked("m1", "2024-06-10", "16:45", "17:30", models.StatusNew),
	}
	eng := newTestEngine([]models.Master{m}, appts)

	res, err := eng.FreeSlots(FreeSlotsArgs{Date: "2024-06-10", DurationMinutes: 90, MasterID: "m1", Limit: 80})
	if err != nil {
		t.Fatal(err)
	}
	for _, slot := range res.Slots {
		start, ok := MinuteFromHHMM(slot[len("2024-06-10T"):])
		if !ok {
			t.Fatalf("unparsable slot %q", slot)
		}
		end := start + 90
		for _, a := range appts {
			busyStart, _ := MinuteFromHHMM(a.StartTime)
			busyEnd, _ := MinuteFromHHMM(a.EndTime)
			if start < busyEnd && end > busyStart {
				t.Errorf("slot %q overlaps booking %s-%s", slot, a.StartTime, a.EndTime)
			}
		}
	}
}

func TestFreeSlots_FullyFreeDayIsStepAligned(t *testing.T) {
	m := testMaster(t, "m1", "Olya")
	m.WorkingHours = weeklyJSON(t, models.WeeklySchedule{
		"monday": {Enabled: true, Start: "09:00", End: "11:00"},
	})
	eng := newTestEngine([]models.Master{m}, nil)

	res, err := eng.FreeSlots(FreeSlotsArgs{Date: "2024-06-10", DurationMinutes: 30, MasterID: "m1"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"2024-06-10T09:00", "2024-06-10T09:30", "2024-06-10T10:00", "2024-06-10T10:30"}
	if !reflect.DeepEqual(res.Slots, want) {
		t.Fatalf("got %v, want %v", res.Slots, want)
	}
}
