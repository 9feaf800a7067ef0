// Package model defines the core domain types for the hotel reservation system.
package model

import "time"

// Account represents a registered guest account, identified by email.
type Account struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Room represents a bookable unit, identified by its room number.
// Rooms are immutable once registered.
type Room struct {
	Number      string  `json:"number"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// Reservation binds one account to one room for a date range.
// The reservation store is keyed by OwnerEmail, so an account holds at most
// one reservation at a time; creating a new one replaces the old one. ID is
// an informational confirmation code, not a store key.
type Reservation struct {
	ID         string    `json:"id"`
	OwnerEmail string    `json:"owner_email"`
	RoomNumber string    `json:"room_number"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReportEntry is one reservation line in a generated report.
type ReportEntry struct {
	Email      string `json:"email"`
	RoomNumber string `json:"room_number"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// ReportData is the ordered content of a reservation report, ready for a
// renderer to lay out.
type ReportData struct {
	Title     string        `json:"title"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Entries   []ReportEntry `json:"entries"`
}

// CreateAccountRequest is the payload for creating a new account.
type CreateAccountRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for authenticating an account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the payload for changing an account password.
type ChangePasswordRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// RegisterRoomRequest is the payload for registering a new room.
type RegisterRoomRequest struct {
	Number      string  `json:"number"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// CreateReservationRequest is the payload for booking a room.
type CreateReservationRequest struct {
	Email      string `json:"email"`
	RoomNumber string `json:"room_number"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// ModifyReservationRequest is the payload for changing a reservation's dates.
type ModifyReservationRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// GenerateReportRequest is the payload for generating a reservation report.
type GenerateReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
