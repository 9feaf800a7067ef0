package service

import (
	"fmt"
	"strings"

	"github.com/suribe27/PROYECTO-HOTEL-FINAL/internal/model"
	"github.com/suribe27/PROYECTO-HOTEL-FINAL/internal/repository"
)

// reportTitle is the fixed heading of the generated reservation report.
const reportTitle = "Reporte de Reservas"

// ReportRenderer lays out a composed report as a document artifact. The
// service composes the data; the renderer owns pagination and file output.
type ReportRenderer interface {
	Render(data model.ReportData) error
}

// ReservationService orchestrates the reservation lifecycle and report
// generation. Room existence is checked against the room store before any
// booking; per-room exclusivity is enforced by the reservation store itself.
type ReservationService struct {
	rooms        *repository.RoomRepository
	reservations *repository.ReservationRepository
	renderer     ReportRenderer
}

// NewReservationService constructs a ReservationService with its dependencies.
func NewReservationService(
	rooms *repository.RoomRepository,
	reservations *repository.ReservationRepository,
	renderer ReportRenderer,
) *ReservationService {
	return &ReservationService{rooms: rooms, reservations: reservations, renderer: renderer}
}

// CreateReservation books a room for an account. It fails with
// repository.ErrRoomNotFound when the room was never registered and with
// repository.ErrRoomUnavailable when any active reservation already holds
// the room. A prior reservation held by the same account for a different
// room is replaced, not kept alongside.
func (s *ReservationService) CreateReservation(email, roomNumber, startDate, endDate string) (*model.Reservation, error) {
	email = strings.TrimSpace(email)
	roomNumber = strings.TrimSpace(roomNumber)
	if email == "" {
		return nil, validationError("email is required")
	}
	if roomNumber == "" {
		return nil, validationError("room number is required")
	}
	if err := checkDate("start date", startDate); err != nil {
		return nil, err
	}
	if err := checkDate("end date", endDate); err != nil {
		return nil, err
	}

	if _, err := s.rooms.GetByNumber(roomNumber); err != nil {
		return nil, err
	}
	return s.reservations.Create(model.Reservation{
		OwnerEmail: email,
		RoomNumber: roomNumber,
		StartDate:  startDate,
		EndDate:    endDate,
	})
}

// ModifyReservation changes the date range of the account's reservation in
// place. The room binding is untouched, so the room stays blocked for
// everyone else.
func (s *ReservationService) ModifyReservation(email, newStartDate, newEndDate string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return validationError("email is required")
	}
	if err := checkDate("start date", newStartDate); err != nil {
		return err
	}
	if err := checkDate("end date", newEndDate); err != nil {
		return err
	}
	return s.reservations.UpdateDates(email, newStartDate, newEndDate)
}

// CancelReservation removes the account's reservation and releases its room
// for new bookings.
func (s *ReservationService) CancelReservation(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return validationError("email is required")
	}
	return s.reservations.Delete(email)
}

// GenerateReport composes the report of reservations whose start date falls
// within [startDate, endDate] inclusive, ordered by owner email, and hands
// it to the renderer. The composed data is returned so callers can show a
// summary alongside the generated document; renderer failures surface as
// ErrReportGeneration.
func (s *ReservationService) GenerateReport(startDate, endDate string) (*model.ReportData, error) {
	if err := checkDate("start date", startDate); err != nil {
		return nil, err
	}
	if err := checkDate("end date", endDate); err != nil {
		return nil, err
	}

	entries := []model.ReportEntry{}
	for _, res := range s.reservations.List() {
		if res.StartDate >= startDate && res.StartDate <= endDate {
			entries = append(entries, model.ReportEntry{
				Email:      res.OwnerEmail,
				RoomNumber: res.RoomNumber,
				StartDate:  res.StartDate,
				EndDate:    res.EndDate,
			})
		}
	}

	data := &model.ReportData{
		Title:     reportTitle,
		StartDate: startDate,
		EndDate:   endDate,
		Entries:   entries,
	}
	if err := s.renderer.Render(*data); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReportGeneration, err)
	}
	return data, nil
}
