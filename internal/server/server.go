// Package server exposes the sampling entry point over HTTP. It is one
// of the two thin host bindings (the CLI is the other) and carries no
// algorithmic state: every request runs a fresh chain.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/san-kum/hmclab/internal/chain"
	"github.com/san-kum/hmclab/internal/hmc"
	"github.com/san-kum/hmclab/internal/target"
)

// SampleRequest mirrors the sampling entry point's parameters.
type SampleRequest struct {
	NSamples int     `json:"n_samples"`
	StepSize float64 `json:"step_size"`
	NumSteps int     `json:"num_steps"`
	StartX   float64 `json:"start_x"`
	StartY   float64 `json:"start_y"`
	DistType string  `json:"dist_type"`
	Seed     *int64  `json:"seed,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sample", handleSample)
		r.Get("/targets", handleTargets)
	})
	return r
}

func handleSample(w http.ResponseWriter, r *http.Request) {
	var req SampleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		res *chain.Result
		err error
	)
	if req.Seed != nil {
		res, err = chain.SampleSeeded(req.NSamples, req.StepSize, req.NumSteps,
			req.StartX, req.StartY, req.DistType, *req.Seed)
	} else {
		res, err = chain.Sample(req.NSamples, req.StepSize, req.NumSteps,
			req.StartX, req.StartY, req.DistType)
	}
	if err != nil {
		writeErr(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func handleTargets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"targets": target.Names()})
}

// statusFor maps validation errors to 400; anything else is a server
// fault.
func statusFor(err error) int {
	switch {
	case errors.Is(err, hmc.ErrUnknownTarget),
		errors.Is(err, hmc.ErrInvalidStepSize),
		errors.Is(err, hmc.ErrInvalidStepCount),
		errors.Is(err, hmc.ErrInvalidSampleCount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ListenAndServe runs the binding on addr until the server fails.
func ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}
