package service

import (
	"fmt"
	"strings"

	"github.com/suribe27/PROYECTO-HOTEL-FINAL/internal/model"
	"github.com/suribe27/PROYECTO-HOTEL-FINAL/internal/repository"
)

// noRoomsMessage is the sentinel listing returned when no rooms exist.
const noRoomsMessage = "No rooms available."

// RoomService orchestrates room inventory operations.
type RoomService struct {
	rooms *repository.RoomRepository
}

// NewRoomService constructs a RoomService with its dependencies.
func NewRoomService(rooms *repository.RoomRepository) *RoomService {
	return &RoomService{rooms: rooms}
}

// RegisterRoom validates the fields and inserts a new room. Room numbers are
// unique; a second registration of the same number fails with
// repository.ErrRoomExists.
func (s *RoomService) RegisterRoom(number, roomType string, price float64, description string) (*model.Room, error) {
	number = strings.TrimSpace(number)
	roomType = strings.TrimSpace(roomType)
	description = strings.TrimSpace(description)
	if number == "" {
		return nil, validationError("room number is required")
	}
	if roomType == "" {
		return nil, validationError("room type is required")
	}
	if price <= 0 {
		return nil, validationError("price must be greater than zero")
	}
	if description == "" {
		return nil, validationError("description is required")
	}
	return s.rooms.Create(model.Room{
		Number:      number,
		Type:        roomType,
		Price:       price,
		Description: description,
	})
}

// ListAvailableRooms returns a human-readable listing of every registered
// room, one per line ordered by room number, or a sentinel message when the
// inventory is empty.
//
// Despite the name, the listing does not exclude rooms held by an active
// reservation; it covers the whole inventory. Callers have always shown it
// as the "available rooms" view, so the name stays until product decides
// whether the filter or the label is wrong.
func (s *RoomService) ListAvailableRooms() string {
	rooms := s.rooms.List()
	if len(rooms) == 0 {
		return noRoomsMessage
	}

	lines := make([]string, 0, len(rooms))
	for _, room := range rooms {
		lines = append(lines, fmt.Sprintf("Room %s: %s, Price: %v", room.Number, room.Type, room.Price))
	}
	return strings.Join(lines, "\n")
}
