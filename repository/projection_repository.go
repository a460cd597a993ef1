package repository

import (
	"context"

	"growth-projector/domain"
)

type ProjectionRepository interface {
	Save(ctx context.Context, input domain.ProjectionInput, result domain.ProjectionResult) (domain.ProjectionRecord, error)
	Recent(ctx context.Context, limit int) ([]domain.ProjectionRecord, error)
}
