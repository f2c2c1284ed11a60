package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrMalformedResponse is returned when the response body is not a JSON verdict
var ErrMalformedResponse = errors.New("malformed classifier response")

// PredictRequest represents a request to the classification endpoint
type PredictRequest struct {
	URL string `json:"url"`
}

// PredictResponse represents the response from the classification endpoint.
// Both fields are optional. PredictionText is nil when the field is missing
// or falsy. ReasonsNotList is set when extra_reasons is a non-empty string,
// which cannot be rendered as a list.
type PredictResponse struct {
	PredictionText *string  `json:"prediction_text,omitempty"`
	ExtraReasons   []string `json:"extra_reasons,omitempty"`
	ReasonsNotList bool     `json:"-"`
}

// PredictClient is an HTTP client for the classification endpoint
type PredictClient struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewPredictClient creates a new classification endpoint client.
// A zero timeout leaves the request bounded only by its context.
func NewPredictClient(endpoint string, timeout time.Duration, logger *zap.Logger) *PredictClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PredictClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Endpoint returns the configured endpoint URL
func (c *PredictClient) Endpoint() string {
	return c.endpoint
}

// Predict posts a single URL for classification.
// Non-2xx responses are decoded like any other; only transport failures and
// undecodable bodies are errors.
func (c *PredictClient) Predict(ctx context.Context, url, requestID string) (*PredictResponse, error) {
	body, err := json.Marshal(PredictRequest{URL: url})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("Classifier returned non-2xx status",
			zap.Int("status", resp.StatusCode),
			zap.String("request_id", requestID),
		)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	result, err := decodePredictResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: status %d: %v", ErrMalformedResponse, resp.StatusCode, err)
	}

	return result, nil
}

// decodePredictResponse reads the two optional fields loosely:
//   - the body must be exactly one JSON value;
//   - null has no fields to read and is rejected;
//   - any other non-object carries no fields;
//   - a truthy prediction_text that is not a string is rejected;
//   - list reasons are stringified element by element.
func decodePredictResponse(raw []byte) (*PredictResponse, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON value")
	}
	if body == nil {
		return nil, errors.New("null body")
	}

	obj, ok := body.(map[string]any)
	if !ok {
		return &PredictResponse{}, nil
	}

	result := &PredictResponse{}

	switch text := obj["prediction_text"].(type) {
	case string:
		if text != "" {
			result.PredictionText = &text
		}
	default:
		if truthy(text) {
			return nil, fmt.Errorf("prediction_text is not a string: %T", text)
		}
	}

	switch reasons := obj["extra_reasons"].(type) {
	case []any:
		result.ExtraReasons = make([]string, 0, len(reasons))
		for _, reason := range reasons {
			result.ExtraReasons = append(result.ExtraReasons, scriptString(reason))
		}
	case string:
		result.ReasonsNotList = reasons != ""
	}

	return result, nil
}

func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}

// scriptString formats one decoded reason as display text
func scriptString(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return v.String()
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			if item != nil {
				parts[i] = scriptString(item)
			}
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}
