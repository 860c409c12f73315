package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ngmaloney/jiai-terminal/internal/geocoding"
	"github.com/ngmaloney/jiai-terminal/internal/models"
	"github.com/ngmaloney/jiai-terminal/internal/report"
	"github.com/ngmaloney/jiai-terminal/internal/spots"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseQuery reads place, date, hour, style and simulate, applying defaults
func (s *Server) parseQuery(r *http.Request) (report.Query, error) {
	values := r.URL.Query()
	now := s.now().In(s.location)

	q := report.Query{
		Place: strings.TrimSpace(values.Get("place")),
		Date:  now,
		Hour:  now.Hour(),
		Style: strings.TrimSpace(values.Get("style")),
	}
	if q.Place == "" {
		q.Place = s.defaults.Place
	}

	if v := values.Get("date"); v != "" {
		d, err := models.ParseDate(v, s.location)
		if err != nil {
			return q, fmt.Errorf("date must be YYYY-MM-DD")
		}
		q.Date = d
	} else {
		q.Date = startOfDay(now)
	}

	if v := values.Get("hour"); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil || h < 0 || h > 23 {
			return q, fmt.Errorf("hour must be an integer between 0 and 23")
		}
		q.Hour = h
	}

	if v := values.Get("simulate"); v != "" {
		sim, err := strconv.ParseBool(v)
		if err != nil {
			return q, fmt.Errorf("simulate must be a boolean")
		}
		q.Simulate = sim
	}

	return q, nil
}

func (s *Server) reportHandler(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rep, err := s.builder.Build(r.Context(), q)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, geocoding.ErrNoResults) || errors.Is(err, spots.ErrSpotNotFound) {
			status = http.StatusNotFound
		}
		s.logger.Warn("report_failed", zap.String("place", q.Place), zap.Int("status", status), zap.Error(err))
		writeError(w, status, err.Error())
		return
	}

	w.Header().Set("X-Request-ID", rep.ID)
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) spotsHandler(w http.ResponseWriter, r *http.Request) {
	if s.spots == nil {
		writeJSON(w, http.StatusOK, []models.Spot{})
		return
	}

	list, err := s.spots.ListSpots(r.Context())
	if err != nil {
		s.logger.Error("list_spots_failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "listing spots failed")
		return
	}
	if list == nil {
		list = []models.Spot{}
	}
	writeJSON(w, http.StatusOK, list)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
