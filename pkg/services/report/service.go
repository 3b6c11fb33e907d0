package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/seg-tools/sso-atlas/pkg/models/domain"
	"github.com/seg-tools/sso-atlas/pkg/store/sqlite/records"
	"github.com/seg-tools/sso-atlas/pkg/store/sqlite/summary"
)

var (
	// ErrNoRecords means the requested year has nothing stored.
	ErrNoRecords = errors.New("no records stored for year")

	// ErrUnknownCode means the indicator code is not part of the scheme.
	ErrUnknownCode = errors.New("unknown indicator code")
)

// Service serves computed summaries from the record archive, caching by
// input hash so an unchanged year is only evaluated once.
type Service struct {
	manager *Manager
	records records.Store
	cache   summary.Store
}

// NewService wires the manager to its stores. The cache may be nil; every
// request is then evaluated from scratch.
func NewService(manager *Manager, recordStore records.Store, cache summary.Store) (*Service, error) {
	if manager == nil {
		return nil, fmt.Errorf("manager is nil")
	}
	if recordStore == nil {
		return nil, fmt.Errorf("record store is nil")
	}
	return &Service{manager: manager, records: recordStore, cache: cache}, nil
}

func (s *Service) ListYears(ctx context.Context) ([]int, error) {
	return s.records.ListYears(ctx)
}

func (s *Service) GetSummary(ctx context.Context, year int) (*domain.AnnualSummary, error) {
	logger := zerolog.Ctx(ctx)

	recs, err := s.records.GetYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("load records for %d: %w", year, err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w %d", ErrNoRecords, year)
	}

	hash := s.manager.InputHash(recs)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, hash)
		if err != nil {
			logger.Warn().Err(err).Msg("summary cache lookup failed")
		}
		if cached != nil {
			return cached, nil
		}
	}

	sum, vres, err := s.manager.Evaluate(recs)
	if err != nil {
		return nil, fmt.Errorf("evaluate year %d: %w", year, err)
	}
	for _, fe := range vres.Errors {
		logger.Warn().
			Str("period", fe.Period.String()).
			Str("field", fe.Field).
			Msg("stored record excluded from summary")
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, sum); err != nil {
			logger.Warn().Err(err).Msg("summary cache write failed")
		}
	}
	return &sum, nil
}

// GetIndicatorSeries returns one indicator's values across the year's
// periods, in chronological order.
func (s *Service) GetIndicatorSeries(ctx context.Context, year int, code domain.Code) ([]domain.IndicatorResult, error) {
	if !knownCode(code) {
		return nil, fmt.Errorf("%w %q", ErrUnknownCode, code)
	}

	sum, err := s.GetSummary(ctx, year)
	if err != nil {
		return nil, err
	}

	series := make([]domain.IndicatorResult, 0, len(sum.Periods))
	for _, p := range sum.Periods {
		if r, ok := p.Result(code); ok {
			series = append(series, r)
		}
	}
	return series, nil
}

func knownCode(code domain.Code) bool {
	if code == domain.CodeIGTotal {
		return true
	}
	for _, c := range domain.AllCodes() {
		if c == code {
			return true
		}
	}
	return false
}
