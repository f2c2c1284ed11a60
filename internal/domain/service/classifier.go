package service

import (
	"context"

	"github.com/ressKim-io/phishguard/internal/domain/entity"
)

// Classifier defines the interface for URL classification
type Classifier interface {
	// Classify returns the verdict for a single submitted URL
	Classify(ctx context.Context, req *entity.SubmissionRequest) (*entity.ClassificationResult, error)
}
