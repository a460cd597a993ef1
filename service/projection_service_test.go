package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"growth-projector/domain"
	"growth-projector/repository"
)

type MockProjectionRepository struct {
	SaveCalls  int
	ForceError bool
	Records    []domain.ProjectionRecord
}

func (m *MockProjectionRepository) Save(
	ctx context.Context,
	input domain.ProjectionInput,
	result domain.ProjectionResult,
) (domain.ProjectionRecord, error) {
	m.SaveCalls++
	if m.ForceError {
		return domain.ProjectionRecord{}, errors.New("save error")
	}
	record := domain.ProjectionRecord{Input: input, Result: result}
	m.Records = append(m.Records, record)
	return record, nil
}

func (m *MockProjectionRepository) Recent(ctx context.Context, limit int) ([]domain.ProjectionRecord, error) {
	if limit > len(m.Records) {
		limit = len(m.Records)
	}
	return m.Records[:limit], nil
}

type failingCache struct {
	sets int
}

func (f *failingCache) Get(ctx context.Context, key string) (string, bool) { return "", false }

func (f *failingCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.sets++
	return errors.New("cache down")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var sampleInput = domain.ProjectionInput{
	Principal:           1000,
	AnnualRatePercent:   5,
	CompoundsPerYear:    12,
	Years:               10,
	MonthlyContribution: 100,
}

func TestCalculate_SavesAndCaches(t *testing.T) {
	mockRepo := &MockProjectionRepository{}
	cache := repository.NewMemoryCache()
	service := NewProjectionService(mockRepo, cache, time.Minute, discardLogger())

	result, err := service.Calculate(context.Background(), sampleInput)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected, _ := Project(sampleInput)
	if result != expected {
		t.Errorf("expected %+v, got %+v", expected, result)
	}

	if mockRepo.SaveCalls != 1 {
		t.Errorf("expected repository Save to be called once, got %d", mockRepo.SaveCalls)
	}

	if _, ok := cache.Get(context.Background(), CacheKey(sampleInput)); !ok {
		t.Errorf("expected result to be cached")
	}
}

func TestCalculate_ServesFromCache(t *testing.T) {
	mockRepo := &MockProjectionRepository{}
	cache := repository.NewMemoryCache()
	service := NewProjectionService(mockRepo, cache, 0, discardLogger())

	cache.Set(context.Background(), CacheKey(sampleInput), `{"compounded_principal":1,"contribution_future_value":2,"total_amount":3}`, 0)

	result, err := service.Calculate(context.Background(), sampleInput)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalAmount != 3 {
		t.Errorf("expected cached total 3, got %f", result.TotalAmount)
	}
	if mockRepo.SaveCalls != 1 {
		t.Errorf("expected cached results to be recorded in history")
	}
}

func TestCalculate_IgnoresCorruptCacheEntry(t *testing.T) {
	cache := repository.NewMemoryCache()
	service := NewProjectionService(&MockProjectionRepository{}, cache, 0, discardLogger())

	cache.Set(context.Background(), CacheKey(sampleInput), "not-json", 0)

	result, err := service.Calculate(context.Background(), sampleInput)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected, _ := Project(sampleInput)
	if result != expected {
		t.Errorf("expected recomputed %+v, got %+v", expected, result)
	}
}

func TestCalculate_InvalidInput(t *testing.T) {
	mockRepo := &MockProjectionRepository{}
	cache := repository.NewMemoryCache()
	service := NewProjectionService(mockRepo, cache, 0, discardLogger())

	input := sampleInput
	input.CompoundsPerYear = 0

	_, err := service.Calculate(context.Background(), input)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	if mockRepo.SaveCalls != 0 {
		t.Errorf("repository Save should NOT be called")
	}
	if cache.Len() != 0 {
		t.Errorf("invalid input should not be cached")
	}
}

func TestCalculate_ToleratesInfrastructureFailures(t *testing.T) {
	mockRepo := &MockProjectionRepository{ForceError: true}
	cache := &failingCache{}
	service := NewProjectionService(mockRepo, cache, time.Minute, discardLogger())

	if _, err := service.Calculate(context.Background(), sampleInput); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.sets != 1 {
		t.Errorf("expected one cache write attempt, got %d", cache.sets)
	}
}

func TestHistory_Limits(t *testing.T) {
	repo := repository.NewProjectionRepositoryMemory(500)
	service := NewProjectionService(repo, repository.NewMemoryCache(), 0, discardLogger())

	for i := 0; i < MaxHistoryLimit+10; i++ {
		input := sampleInput
		input.Principal = float64(i)
		if _, err := service.Calculate(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	records, _ := service.History(context.Background(), 0)
	if len(records) != DefaultHistoryLimit {
		t.Errorf("expected %d records, got %d", DefaultHistoryLimit, len(records))
	}

	records, _ = service.History(context.Background(), 1000)
	if len(records) != MaxHistoryLimit {
		t.Errorf("expected %d records, got %d", MaxHistoryLimit, len(records))
	}
	if records[0].Input.Principal != float64(MaxHistoryLimit+9) {
		t.Errorf("expected newest record first, got principal %v", records[0].Input.Principal)
	}
}

func TestCacheKey_Stable(t *testing.T) {
	other := sampleInput
	other.Years = 11

	if CacheKey(sampleInput) != CacheKey(sampleInput) {
		t.Errorf("expected identical keys for identical input")
	}
	if CacheKey(sampleInput) == CacheKey(other) {
		t.Errorf("expected different keys for different input")
	}
}
