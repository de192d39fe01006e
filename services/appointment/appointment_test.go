package appointment

import (
	"errors"
	"testing"
	"time"

	"github.com/pros100kyiv/HUBbase-sub001/models"
	"github.com/pros100kyiv/HUBbase-sub001/services/schedule"
)

type memRepo struct {
	appts []models.Appointment
}

func (r *memRepo) GetByID(id string) (*models.Appointment, error) {
	for i := range r.appts {
		if r.appts[i].ID == id {
			return &r.appts[i], nil
		}
	}
	return nil, nil
}

func (r *memRepo) GetByMasterAndDate(masterID, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.MasterID == masterID && a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memRepo) GetByDate(date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memRepo) Create(a *models.Appointment) error {
	r.appts = append(r.appts, *a)
	return nil
}

func (r *memRepo) Update(a *models.Appointment) error {
	for i := range r.appts {
		if r.appts[i].ID == a.ID {
			r.appts[i] = *a
			return nil
		}
	}
	return errors.New("not found")
}

func (r *memRepo) UpdateStatus(id, status string) error {
	for i := range r.appts {
		if r.appts[i].ID == id {
			r.appts[i].Status = status
			return nil
		}
	}
	return errors.New("not found")
}

func (r *memRepo) Delete(id string) error { return nil }

func (r *memRepo) CompleteBefore(date, timeHHMM string) (int64, error) { return 0, nil }

func newService(seed ...models.Appointment) (*DefaultAppointmentService, *memRepo) {
	repo := &memRepo{appts: seed}
	return &DefaultAppointmentService{Repo: repo}, repo
}

func TestCreateAppointmentRejectsOverlap(t *testing.T) {
	svc, _ := newService(models.Appointment{
		ID: "a1", MasterID: "m1", Date: "2024-06-10",
		StartTime: "10:00", EndTime: "11:00", Status: models.StatusConfirmed,
	})

	cases := []struct {
		name       string
		start, end string
		wantTaken  bool
	}{
		{"inside", "10:15", "10:45", true},
		{"straddles start", "09:30", "10:30", true},
		{"straddles end", "10:30", "11:30", true},
		{"touches end", "11:00", "12:00", false},
		{"touches start", "09:00", "10:00", false},
		{"disjoint", "13:00", "14:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateAppointment(&models.Appointment{
				MasterID: "m1", Date: "2024-06-10",
				StartTime: tc.start, EndTime: tc.end,
			})
			if tc.wantTaken && !errors.Is(err, ErrSlotTaken) {
				t.Fatalf("expected ErrSlotTaken, got %v", err)
			}
			if !tc.wantTaken && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCreateAppointmentIgnoresCancelledOverlap(t *testing.T) {
	svc, _ := newService(models.Appointment{
		ID: "a1", MasterID: "m1", Date: "2024-06-10",
		StartTime: "10:00", EndTime: "11:00", Status: models.StatusCancelled,
	})

	created, err := svc.CreateAppointment(&models.Appointment{
		MasterID: "m1", Date: "2024-06-10",
		StartTime: "10:00", EndTime: "11:00",
	})
	if err != nil {
		t.Fatalf("cancelled booking should not block the slot: %v", err)
	}
	if created.Status != models.StatusNew {
		t.Errorf("default status = %q, want %q", created.Status, models.StatusNew)
	}
	if created.ID == "" {
		t.Error("expected a generated id")
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	svc, _ := newService()

	cases := []struct {
		name string
		appt models.Appointment
	}{
		{"missing master", models.Appointment{Date: "2024-06-10", StartTime: "10:00", EndTime: "11:00"}},
		{"inverted range", models.Appointment{MasterID: "m1", Date: "2024-06-10", StartTime: "11:00", EndTime: "10:00"}},
		{"empty range", models.Appointment{MasterID: "m1", Date: "2024-06-10", StartTime: "10:00", EndTime: "10:00"}},
		{"bad time", models.Appointment{MasterID: "m1", Date: "2024-06-10", StartTime: "ten", EndTime: "11:00"}},
		{"unknown status", models.Appointment{MasterID: "m1", Date: "2024-06-10", StartTime: "10:00", EndTime: "11:00", Status: "Pending"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateAppointment(&tc.appt); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestUpdateAppointmentExcludesSelfFromOverlap(t *testing.T) {
	svc, _ := newService(models.Appointment{
		ID: "a1", MasterID: "m1", Date: "2024-06-10",
		StartTime: "10:00", EndTime: "11:00", Status: models.StatusConfirmed,
	})

	// Shifting a booking within its own original span is allowed.
	_, err := svc.UpdateAppointment(&models.Appointment{
		ID: "a1", MasterID: "m1", Date: "2024-06-10",
		StartTime: "10:30", EndTime: "11:30", Status: models.StatusConfirmed,
	})
	if err != nil {
		t.Fatalf("update overlapping itself should pass: %v", err)
	}
}

func TestListAppointmentsDefaultsToToday(t *testing.T) {
	today := schedule.DateKey(time.Now())
	svc, _ := newService(
		models.Appointment{ID: "a1", MasterID: "m1", Date: today, StartTime: "10:00", EndTime: "11:00", Status: models.StatusNew},
		models.Appointment{ID: "a2", MasterID: "m1", Date: "2024-06-10", StartTime: "10:00", EndTime: "11:00", Status: models.StatusNew},
	)

	for _, date := range []string{"", "not-a-date"} {
		appts, err := svc.ListAppointments(date, "")
		if err != nil {
			t.Fatalf("list with date %q: %v", date, err)
		}
		if len(appts) != 1 || appts[0].ID != "a1" {
			t.Fatalf("date %q should default to today's bookings, got %+v", date, appts)
		}
	}

	appts, err := svc.ListAppointments("2024-06-10", "m1")
	if err != nil {
		t.Fatal(err)
	}
	if len(appts) != 1 || appts[0].ID != "a2" {
		t.Fatalf("explicit date ignored, got %+v", appts)
	}
}

func TestSetStatusRejectsUnknown(t *testing.T) {
	svc, _ := newService(models.Appointment{ID: "a1", Status: models.StatusNew})
	if err := svc.SetStatus("a1", "Archived"); err == nil {
		t.Fatal("expected error for unknown status")
	}
	if err := svc.SetStatus("a1", models.StatusDone); err != nil {
		t.Fatalf("valid status rejected: %v", err)
	}
}
