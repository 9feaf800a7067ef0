package service

import (
	"errors"
	"testing"

	"github.com/suribe27/PROYECTO-HOTEL-FINAL/internal/model"
	"github.com/suribe27/PROYECTO-HOTEL-FINAL/internal/repository"
)

// stubRenderer records rendered reports and can be forced to fail.
type stubRenderer struct {
	rendered   []model.ReportData
	shouldFail bool
}

func (r *stubRenderer) Render(data model.ReportData) error {
	if r.shouldFail {
		return errors.New("disk full")
	}
	r.rendered = append(r.rendered, data)
	return nil
}

func newReservationService() (*ReservationService, *RoomService, *stubRenderer) {
	roomRepo := repository.NewRoomRepository()
	renderer := &stubRenderer{}
	svc := NewReservationService(roomRepo, repository.NewReservationRepository(), renderer)
	return svc, NewRoomService(roomRepo), renderer
}

func TestReservationService_CreateReservation(t *testing.T) {
	svc, rooms, _ := newReservationService()
	if _, err := rooms.RegisterRoom("101", "Single", 50, "cozy"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	res, err := svc.CreateReservation("a@x.com", "101", "2024-01-01", "2024-01-05")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if res.ID == "" {
		t.Error("Expected confirmation code to be set")
	}
	if res.OwnerEmail != "a@x.com" || res.RoomNumber != "101" {
		t.Errorf("Unexpected reservation: %+v", res)
	}

	_, err = svc.CreateReservation("b@x.com", "999", "2024-01-01", "2024-01-05")
	if !errors.Is(err, repository.ErrRoomNotFound) {
		t.Errorf("Expected ErrRoomNotFound, got: %v", err)
	}

	_, err = svc.CreateReservation("b@x.com", "101", "2024-02-01", "2024-02-03")
	if !errors.Is(err, repository.ErrRoomUnavailable) {
		t.Errorf("Expected ErrRoomUnavailable, got: %v", err)
	}
}

func TestReservationService_CreateReservationValidation(t *testing.T) {
	svc, rooms, _ := newReservationService()
	if _, err := rooms.RegisterRoom("101", "Single", 50, "cozy"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	cases := []struct {
		name, email, room, start, end string
	}{
		{"missing email", "", "101", "2024-01-01", "2024-01-05"},
		{"missing room", "a@x.com", "", "2024-01-01", "2024-01-05"},
		{"missing start", "a@x.com", "101", "", "2024-01-05"},
		{"missing end", "a@x.com", "101", "2024-01-01", ""},
		{"malformed start", "a@x.com", "101", "January 1st", "2024-01-05"},
		{"malformed end", "a@x.com", "101", "2024-01-01", "05/01/2024"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateReservation(tc.email, tc.room, tc.start, tc.end); !errors.Is(err, ErrValidation) {
				t.Errorf("Expected ErrValidation, got: %v", err)
			}
		})
	}
}

func TestReservationService_ModifyKeepsRoomBlocked(t *testing.T) {
	svc, rooms, _ := newReservationService()
	if _, err := rooms.RegisterRoom("101", "Single", 50, "cozy"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if _, err := svc.CreateReservation("a@x.com", "101", "2024-01-01", "2024-01-05"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if err := svc.ModifyReservation("a@x.com", "2024-06-01", "2024-06-10"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// Exclusivity survives a modify; only cancel releases the room.
	if _, err := svc.CreateReservation("b@x.com", "101", "2024-02-01", "2024-02-03"); !errors.Is(err, repository.ErrRoomUnavailable) {
		t.Errorf("Expected ErrRoomUnavailable after modify, got: %v", err)
	}

	if err := svc.ModifyReservation("nobody@x.com", "2024-06-01", "2024-06-10"); !errors.Is(err, repository.ErrReservationNotFound) {
		t.Errorf("Expected ErrReservationNotFound, got: %v", err)
	}
}

func TestReservationService_CancelReleasesRoom(t *testing.T) {
	svc, rooms, _ := newReservationService()
	if _, err := rooms.RegisterRoom("101", "Single", 50, "cozy"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if _, err := svc.CreateReservation("a@x.com", "101", "2024-01-01", "2024-01-05"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if err := svc.CancelReservation("a@x.com"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, err := svc.CreateReservation("b@x.com", "101", "2024-02-01", "2024-02-03"); err != nil {
		t.Errorf("Expected room to be free after cancel, got: %v", err)
	}

	if err := svc.CancelReservation("a@x.com"); !errors.Is(err, repository.ErrReservationNotFound) {
		t.Errorf("Expected ErrReservationNotFound, got: %v", err)
	}
	if err := svc.CancelReservation(""); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for empty email, got: %v", err)
	}
}

func TestReservationService_GenerateReport(t *testing.T) {
	svc, rooms, renderer := newReservationService()
	for _, n := range []string{"101", "102", "103"} {
		if _, err := rooms.RegisterRoom(n, "Single", 50, "cozy"); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
	}
	seed := []struct{ email, room, start, end string }{
		{"c@x.com", "103", "2024-03-15", "2024-03-20"},
		{"a@x.com", "101", "2024-01-10", "2024-01-12"},
		{"b@x.com", "102", "2024-02-01", "2024-02-05"},
	}
	for _, s := range seed {
		if _, err := svc.CreateReservation(s.email, s.room, s.start, s.end); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
	}

	// Range bounds are inclusive on the start date.
	data, err := svc.GenerateReport("2024-01-10", "2024-02-01")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if data.Title != "Reporte de Reservas" {
		t.Errorf("Unexpected title: %q", data.Title)
	}
	if len(data.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %+v", len(data.Entries), data.Entries)
	}
	if data.Entries[0].Email != "a@x.com" || data.Entries[1].Email != "b@x.com" {
		t.Errorf("Expected entries ordered by email, got: %+v", data.Entries)
	}
	if len(renderer.rendered) != 1 {
		t.Fatalf("Expected one rendered report, got %d", len(renderer.rendered))
	}

	// A non-overlapping range yields an empty report without error.
	data, err = svc.GenerateReport("2025-01-01", "2025-12-31")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(data.Entries) != 0 {
		t.Errorf("Expected empty report, got: %+v", data.Entries)
	}

	if _, err := svc.GenerateReport("", "2024-02-01"); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for missing date, got: %v", err)
	}
}

func TestReservationService_GenerateReportRendererFailure(t *testing.T) {
	svc, _, renderer := newReservationService()
	renderer.shouldFail = true

	_, err := svc.GenerateReport("2024-01-01", "2024-12-31")
	if !errors.Is(err, ErrReportGeneration) {
		t.Errorf("Expected ErrReportGeneration, got: %v", err)
	}
}
