package entity

import (
	"errors"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Input validation errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyURL     = &InputError{Alert: AlertEmptyURL}
	ErrMultipleURLs = &InputError{Alert: AlertMultipleURLs}
)

// InputError is returned when the submitted field cannot be sent to the classifier.
// Alert holds the message shown to the user.
type InputError struct {
	Alert string
}

func (e *InputError) Error() string {
	return "invalid input: " + e.Alert
}

// Unwrap lets errors.Is match ErrInvalidInput
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// SubmissionRequest is the body posted to the classification endpoint
type SubmissionRequest struct {
	ID  uuid.UUID `json:"-"`
	URL string    `json:"url"`
}

// NewSubmissionRequest validates raw field input and builds a request.
// The input must hold exactly one whitespace-delimited token.
func NewSubmissionRequest(raw string) (*SubmissionRequest, error) {
	value := strings.TrimFunc(raw, isFieldSpace)
	if value == "" {
		return nil, ErrEmptyURL
	}
	if strings.IndexFunc(value, isFieldSpace) >= 0 {
		return nil, ErrMultipleURLs
	}

	return &SubmissionRequest{
		ID:  uuid.New(),
		URL: value,
	}, nil
}

// isFieldSpace matches the characters a browser form field trims and splits on:
// NEL is not whitespace there, the byte order mark is.
func isFieldSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\ufeff':
		return true
	}
	return unicode.IsSpace(r)
}

// ClassificationResult is the verdict returned for one submission
type ClassificationResult struct {
	PredictionText string   `json:"prediction_text"`
	ExtraReasons   []string `json:"extra_reasons"`
}

// NewClassificationResult applies the missing-field defaults
func NewClassificationResult(predictionText string, extraReasons []string) *ClassificationResult {
	if predictionText == "" {
		predictionText = FallbackPredictionText
	}
	if extraReasons == nil {
		extraReasons = []string{}
	}

	return &ClassificationResult{
		PredictionText: predictionText,
		ExtraReasons:   extraReasons,
	}
}

// IsPhishing reports whether the verdict text carries the danger marker.
// This is a plain substring test on the text, not a structured status.
func (r *ClassificationResult) IsPhishing() bool {
	return strings.Contains(r.PredictionText, PhishingMarker)
}

// Category returns the styling category for the verdict
func (r *ClassificationResult) Category() Category {
	if r.IsPhishing() {
		return CategoryDanger
	}
	return CategorySuccess
}

// BulletedReasons returns the reasons prefixed for display
func (r *ClassificationResult) BulletedReasons() []string {
	items := make([]string, len(r.ExtraReasons))
	for i, reason := range r.ExtraReasons {
		items[i] = ReasonBullet + reason
	}
	return items
}
