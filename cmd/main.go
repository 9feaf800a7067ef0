// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/suribe27/PROYECTO-HOTEL-FINAL/internal/config"
	"github.com/suribe27/PROYECTO-HOTEL-FINAL/internal/handler"
	"github.com/suribe27/PROYECTO-HOTEL-FINAL/internal/report"
	"github.com/suribe27/PROYECTO-HOTEL-FINAL/internal/repository"
	"github.com/suribe27/PROYECTO-HOTEL-FINAL/internal/service"
)

func main() {
	cfg := config.FromEnv()

	// ── 1. Wire up layers ────────────────────────────────────────────────
	// The record stores live for the process lifetime only; they start
	// empty and are discarded on exit.
	accountRepo := repository.NewAccountRepository()
	roomRepo := repository.NewRoomRepository()
	reservationRepo := repository.NewReservationRepository()

	renderer := report.NewPDFRenderer(cfg.ReportPath)

	accountSvc := service.NewAccountService(accountRepo)
	roomSvc := service.NewRoomService(roomRepo)
	reservationSvc := service.NewReservationService(roomRepo, reservationRepo, renderer)

	h := handler.New(accountSvc, roomSvc, reservationSvc)

	// ── 2. Build the router ───────────────────────────────────────────────
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(handler.Logger)          // structured access log
	r.Use(handler.CORS)            // permissive CORS for local clients

	r.Mount("/", h.Routes())

	// ── 3. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		log.Printf("✓ Reservation server listening on %s (reports → %s)", cfg.Addr, cfg.ReportPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	log.Println("server stopped")
}
