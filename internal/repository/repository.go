// Package repository implements the in-memory record stores for the hotel
// reservation system. Each store owns a mutex-guarded map and is the system
// of record for one entity type; nothing survives process exit.
package repository

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/suribe27/PROYECTO-HOTEL-FINAL/internal/model"
)

// ErrDuplicateAccount is returned when an email is already registered.
var ErrDuplicateAccount = errors.New("an account with this email already exists")

// ErrAccountNotFound is returned when no account matches the given email.
var ErrAccountNotFound = errors.New("account not found")

// ErrRoomExists is returned when a room number is already registered.
var ErrRoomExists = errors.New("a room with this number already exists")

// ErrRoomNotFound is returned when no room matches the given number.
var ErrRoomNotFound = errors.New("room not found")

// ErrRoomUnavailable is returned when a room is already held by an active
// reservation. Exclusivity is per room, not per date range: a booked room
// is blocked entirely until its reservation is cancelled.
var ErrRoomUnavailable = errors.New("room is already reserved")

// ErrReservationNotFound is returned when an account has no reservation.
var ErrReservationNotFound = errors.New("no reservation found for this account")

// AccountRepository stores accounts keyed by email.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]model.Account
}

// NewAccountRepository constructs an empty AccountRepository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]model.Account)}
}

// Create inserts a new account or returns ErrDuplicateAccount.
func (r *AccountRepository) Create(account model.Account) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.Email]; exists {
		return nil, ErrDuplicateAccount
	}
	account.CreatedAt = time.Now().UTC()
	r.accounts[account.Email] = account
	return &account, nil
}

// GetByEmail returns a copy of the account or ErrAccountNotFound.
func (r *AccountRepository) GetByEmail(email string) (*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.accounts[email]
	if !exists {
		return nil, ErrAccountNotFound
	}
	return &account, nil
}

// UpdatePassword overwrites the stored password for an existing account.
func (r *AccountRepository) UpdatePassword(email, newPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, exists := r.accounts[email]
	if !exists {
		return ErrAccountNotFound
	}
	account.Password = newPassword
	r.accounts[email] = account
	return nil
}

// RoomRepository stores rooms keyed by room number.
type RoomRepository struct {
	mu    sync.RWMutex
	rooms map[string]model.Room
}

// NewRoomRepository constructs an empty RoomRepository.
func NewRoomRepository() *RoomRepository {
	return &RoomRepository{rooms: make(map[string]model.Room)}
}

// Create inserts a new room or returns ErrRoomExists.
func (r *RoomRepository) Create(room model.Room) (*model.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rooms[room.Number]; exists {
		return nil, ErrRoomExists
	}
	r.rooms[room.Number] = room
	return &room, nil
}

// GetByNumber returns a copy of the room or ErrRoomNotFound.
func (r *RoomRepository) GetByNumber(number string) (*model.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, exists := r.rooms[number]
	if !exists {
		return nil, ErrRoomNotFound
	}
	return &room, nil
}

// List returns all registered rooms ordered by room number.
func (r *RoomRepository) List() []model.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]model.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Number < rooms[j].Number })
	return rooms
}

// ReservationRepository stores reservations keyed by the owner's email, so
// each account holds at most one reservation at a time.
type ReservationRepository struct {
	mu           sync.RWMutex
	reservations map[string]model.Reservation
}

// NewReservationRepository constructs an empty ReservationRepository.
func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{reservations: make(map[string]model.Reservation)}
}

// Create stores a reservation under the owner's email, assigning a fresh
// confirmation code. The per-room exclusivity invariant is enforced here:
// if any stored reservation already references the requested room, including
// the caller's own, it fails with ErrRoomUnavailable. A reservation the
// caller holds for a *different* room is silently replaced.
func (r *ReservationRepository) Create(res model.Reservation) (*model.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.reservations {
		if existing.RoomNumber == res.RoomNumber {
			return nil, ErrRoomUnavailable
		}
	}
	res.ID = uuid.New().String()
	res.CreatedAt = time.Now().UTC()
	r.reservations[res.OwnerEmail] = res
	return &res, nil
}

// GetByEmail returns a copy of the account's reservation or ErrReservationNotFound.
func (r *ReservationRepository) GetByEmail(email string) (*model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, exists := r.reservations[email]
	if !exists {
		return nil, ErrReservationNotFound
	}
	return &res, nil
}

// UpdateDates mutates the stored reservation's date range in place. The room
// and confirmation code are unchanged, so exclusivity is unaffected.
func (r *ReservationRepository) UpdateDates(email, startDate, endDate string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, exists := r.reservations[email]
	if !exists {
		return ErrReservationNotFound
	}
	res.StartDate = startDate
	res.EndDate = endDate
	r.reservations[email] = res
	return nil
}

// Delete removes the account's reservation, releasing the room for new
// bookings, or returns ErrReservationNotFound.
func (r *ReservationRepository) Delete(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.reservations[email]; !exists {
		return ErrReservationNotFound
	}
	delete(r.reservations, email)
	return nil
}

// List returns all stored reservations ordered by owner email.
func (r *ReservationRepository) List() []model.Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]model.Reservation, 0, len(r.reservations))
	for _, res := range r.reservations {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].OwnerEmail < all[j].OwnerEmail })
	return all
}
