package client

import (
	"context"
	"fmt"

	"github.com/ressKim-io/phishguard/internal/domain/entity"
	"github.com/ressKim-io/phishguard/internal/domain/service"
)

// PhishingClassifier adapts PredictClient to the Classifier interface
type PhishingClassifier struct {
	client *PredictClient
}

// NewPhishingClassifier creates a new PhishingClassifier
func NewPhishingClassifier(client *PredictClient) service.Classifier {
	return &PhishingClassifier{client: client}
}

// Classify classifies a single URL, filling in defaults for missing fields
func (c *PhishingClassifier) Classify(ctx context.Context, req *entity.SubmissionRequest) (*entity.ClassificationResult, error) {
	resp, err := c.client.Predict(ctx, req.URL, req.ID.String())
	if err != nil {
		return nil, err
	}

	var text string
	if resp.PredictionText != nil {
		text = *resp.PredictionText
	}

	result := entity.NewClassificationResult(text, resp.ExtraReasons)

	// Reasons are only read next to a phishing verdict, so a string there
	// fails only in that case.
	if resp.ReasonsNotList && result.IsPhishing() {
		return nil, fmt.Errorf("%w: extra_reasons is not a list", ErrMalformedResponse)
	}

	return result, nil
}
