package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"growth-projector/domain"
)

// DefaultHistoryCapacity bounds the in-memory history when no capacity is given.
const DefaultHistoryCapacity = 100

// ProjectionRepositoryMemory is an in-memory, bounded implementation of
// ProjectionRepository. Once full, the oldest record is dropped.
type ProjectionRepositoryMemory struct {
	mu       sync.RWMutex
	capacity int
	data     []domain.ProjectionRecord
	now      func() time.Time
}

// NewProjectionRepositoryMemory creates a new in-memory projection repository.
func NewProjectionRepositoryMemory(capacity int) *ProjectionRepositoryMemory {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &ProjectionRepositoryMemory{
		capacity: capacity,
		data:     make([]domain.ProjectionRecord, 0, capacity),
		now:      time.Now,
	}
}

// Save stores the projection in memory and returns the stored record.
func (r *ProjectionRepositoryMemory) Save(
	ctx context.Context,
	input domain.ProjectionInput,
	result domain.ProjectionResult,
) (domain.ProjectionRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.ProjectionRecord{}, err
	}

	record := domain.ProjectionRecord{
		ID:        uuid.New(),
		CreatedAt: r.now().UTC(),
		Input:     input,
		Result:    result,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.data) == r.capacity {
		copy(r.data, r.data[1:])
		r.data = r.data[:len(r.data)-1]
	}
	r.data = append(r.data, record)

	return record, nil
}

// Recent returns up to limit records, newest first.
// A non-positive limit returns every stored record.
func (r *ProjectionRepositoryMemory) Recent(ctx context.Context, limit int) ([]domain.ProjectionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.data)
	if limit <= 0 || limit > n {
		limit = n
	}

	records := make([]domain.ProjectionRecord, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		records = append(records, r.data[i])
	}
	return records, nil
}
