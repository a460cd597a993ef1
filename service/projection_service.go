package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"growth-projector/domain"
	"growth-projector/repository"
)

type ProjectionService struct {
	repo     repository.ProjectionRepository
	cache    repository.CacheRepository
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewProjectionService creates a new ProjectionService with the given repository and cache.
func NewProjectionService(
	repo repository.ProjectionRepository,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
	logger *slog.Logger,
) *ProjectionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectionService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Calculate projects the input, serving repeated inputs from the cache.
// Every successful calculation is recorded in the history.
func (s *ProjectionService) Calculate(
	ctx context.Context,
	input domain.ProjectionInput,
) (domain.ProjectionResult, error) {
	key := CacheKey(input)

	result, hit := s.cached(ctx, key)
	if !hit {
		var err error
		result, err = Project(input)
		if err != nil {
			return domain.ProjectionResult{}, err
		}
		s.store(ctx, key, result)
	}

	// History is not critical to the response
	if _, err := s.repo.Save(ctx, input, result); err != nil {
		s.logger.Warn("failed to save projection", "error", err)
	}

	s.logger.Debug("projection calculated",
		"principal", input.Principal,
		"annual_rate_percent", input.AnnualRatePercent,
		"compounds_per_year", input.CompoundsPerYear,
		"years", input.Years,
		"monthly_contribution", input.MonthlyContribution,
		"total_amount", result.TotalAmount,
		"cache_hit", hit,
	)

	return result, nil
}

// Schedule builds the year-by-year breakdown of the projection.
func (s *ProjectionService) Schedule(
	ctx context.Context,
	input domain.ProjectionInput,
) (domain.ProjectionSchedule, error) {
	if err := ctx.Err(); err != nil {
		return domain.ProjectionSchedule{}, err
	}
	return BuildSchedule(input)
}

// History returns the most recent calculations, newest first.
func (s *ProjectionService) History(ctx context.Context, limit int) ([]domain.ProjectionRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.repo.Recent(ctx, limit)
}

func (s *ProjectionService) cached(ctx context.Context, key string) (domain.ProjectionResult, bool) {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.ProjectionResult{}, false
	}

	var result domain.ProjectionResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		s.logger.Warn("discarding corrupt cache entry", "key", key, "error", err)
		return domain.ProjectionResult{}, false
	}
	return result, true
}

func (s *ProjectionService) store(ctx context.Context, key string, result domain.ProjectionResult) {
	data, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("failed to encode projection for cache", "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache projection", "key", key, "error", err)
	}
}

// CacheKey derives a stable cache key from the five inputs.
func CacheKey(input domain.ProjectionInput) string {
	canonical := strings.Join([]string{
		strconv.FormatFloat(input.Principal, 'g', -1, 64),
		strconv.FormatFloat(input.AnnualRatePercent, 'g', -1, 64),
		strconv.Itoa(input.CompoundsPerYear),
		strconv.FormatFloat(input.Years, 'g', -1, 64),
		strconv.FormatFloat(input.MonthlyContribution, 'g', -1, 64),
	}, "|")

	return cacheKeyPrefix + strconv.FormatUint(xxhash.Sum64String(canonical), 16)
}
