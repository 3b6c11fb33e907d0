package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/seg-tools/sso-atlas/pkg/adapters"
	"github.com/seg-tools/sso-atlas/pkg/models/api"
	"github.com/seg-tools/sso-atlas/pkg/models/domain"
	reports "github.com/seg-tools/sso-atlas/pkg/services/report"
)

// Service is the slice of the report service the handler depends on.
type Service interface {
	ListYears(ctx context.Context) ([]int, error)
	GetSummary(ctx context.Context, year int) (*domain.AnnualSummary, error)
	GetIndicatorSeries(ctx context.Context, year int, code domain.Code) ([]domain.IndicatorResult, error)
}

type Handler struct {
	reports Service
}

func NewHandler(reports Service) *Handler {
	return &Handler{reports: reports}
}

func (h *Handler) ListYears(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	years, err := h.reports.ListYears(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list years")
		http.Error(w, "failed to list years", http.StatusInternalServerError)
		return
	}
	if years == nil {
		years = []int{}
	}

	writeJSON(w, logger, api.YearList{Years: years})
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	summary, err := h.reports.GetSummary(ctx, year)
	if err != nil {
		if errors.Is(err, reports.ErrNoRecords) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int("year", year).Msg("failed to compute summary")
		http.Error(w, "failed to compute summary", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, adapters.MapAnnualSummaryDomainToApi(*summary))
}

func (h *Handler) GetIndicatorSeries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	year, ok := yearParam(w, r)
	if !ok {
		return
	}
	code := domain.Code(strings.ToUpper(chi.URLParam(r, "code")))

	series, err := h.reports.GetIndicatorSeries(ctx, year, code)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrUnknownCode):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, reports.ErrNoRecords):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			logger.Error().Err(err).Int("year", year).Str("code", string(code)).
				Msg("failed to compute indicator series")
			http.Error(w, "failed to compute indicator series", http.StatusInternalServerError)
		}
		return
	}

	response := api.IndicatorSeries{
		Year:   year,
		Code:   string(code),
		Points: []api.IndicatorResult{},
	}
	for _, p := range series {
		response.Points = append(response.Points, adapters.MapIndicatorResultDomainToApi(p))
	}

	writeJSON(w, logger, response)
}

func yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		http.Error(w, "invalid year. Expected a four digit number", http.StatusBadRequest)
		return 0, false
	}
	return year, true
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
