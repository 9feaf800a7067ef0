// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer. It is the presentation
// adapter: the services never talk to a user directly, they return typed
// results that this package maps to status codes and JSON envelopes.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/suribe27/PROYECTO-HOTEL-FINAL/internal/model"
	"github.com/suribe27/PROYECTO-HOTEL-FINAL/internal/repository"
	"github.com/suribe27/PROYECTO-HOTEL-FINAL/internal/service"
)

// Handler holds all HTTP handlers for the reservation API.
type Handler struct {
	accounts     *service.AccountService
	rooms        *service.RoomService
	reservations *service.ReservationService
}

// New constructs a Handler.
func New(
	accounts *service.AccountService,
	rooms *service.RoomService,
	reservations *service.ReservationService,
) *Handler {
	return &Handler{accounts: accounts, rooms: rooms, reservations: reservations}
}

// Routes returns the API route tree. Middleware is installed by the caller.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", HealthCheck)

	r.Route("/accounts", func(r chi.Router) {
		r.Post("/", h.CreateAccount)
		r.Post("/login", h.Login)
		r.Put("/password", h.ChangePassword)
	})

	r.Route("/rooms", func(r chi.Router) {
		r.Post("/", h.RegisterRoom)
		r.Get("/", h.ListRooms)
	})

	r.Route("/reservations", func(r chi.Router) {
		r.Post("/", h.CreateReservation)
		r.Put("/{email}", h.ModifyReservation)
		r.Delete("/{email}", h.CancelReservation)
	})

	r.Post("/reports", h.GenerateReport)

	return r
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// ─── Account handlers ─────────────────────────────────────────────────────────

// CreateAccount handles POST /accounts
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	account, err := h.accounts.CreateAccount(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, account)
}

// Login handles POST /accounts/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	account, err := h.accounts.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, account)
}

// ChangePassword handles PUT /accounts/password
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req model.ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.accounts.ChangePassword(req.Email, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "password changed"})
}

// ─── Room handlers ────────────────────────────────────────────────────────────

// RegisterRoom handles POST /rooms
func (h *Handler) RegisterRoom(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRoomRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	room, err := h.rooms.RegisterRoom(req.Number, req.Type, req.Price, req.Description)
	if err != nil {
		if errors.Is(err, repository.ErrRoomExists) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, room)
}

// ListRooms handles GET /rooms
// Returns the human-readable room listing as plain text, one room per line.
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.rooms.ListAvailableRooms()))
}

// ─── Reservation handlers ─────────────────────────────────────────────────────

// CreateReservation handles POST /reservations
func (h *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req model.CreateReservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	res, err := h.reservations.CreateReservation(req.Email, req.RoomNumber, req.StartDate, req.EndDate)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, repository.ErrRoomUnavailable):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// ModifyReservation handles PUT /reservations/{email}
func (h *Handler) ModifyReservation(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var req model.ModifyReservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.reservations.ModifyReservation(email, req.StartDate, req.EndDate); err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "reservation updated"})
}

// CancelReservation handles DELETE /reservations/{email}
func (h *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	if err := h.reservations.CancelReservation(email); err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "reservation cancelled"})
}

// GenerateReport handles POST /reports
// Writes the PDF to the configured path and returns the composed data.
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateReportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	data, err := h.reservations.GenerateReport(req.StartDate, req.EndDate)
	if err != nil {
		if errors.Is(err, service.ErrReportGeneration) {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, data)
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
