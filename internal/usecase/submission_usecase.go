package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ressKim-io/phishguard/internal/domain/entity"
	"github.com/ressKim-io/phishguard/internal/domain/service"
	"github.com/ressKim-io/phishguard/internal/infrastructure/metrics"
)

// ErrNoClassifier is returned when the controller is built without a classifier
var ErrNoClassifier = errors.New("classifier is required")

// SubmissionUsecase drives the submission form.
// Every event is applied under one lock, so state changes are serialized the
// same way a single UI thread would serialize them.
type SubmissionUsecase interface {
	// State returns a snapshot of the form
	State() entity.FormState

	// Submit validates raw input and, when valid, starts one classifier call.
	// The returned state is the one right after the submit. The channel
	// delivers the state right after this call settles and is then closed;
	// it is nil when validation fails.
	Submit(ctx context.Context, raw string) (entity.FormState, <-chan entity.FormState, error)

	// Reset clears the input and hides every transient region
	Reset() entity.FormState

	// ToggleDetails flips the details panel when the form has a toggle control
	ToggleDetails() entity.FormState

	// DismissAlert closes the blocking notification
	DismissAlert() entity.FormState
}

// SubmissionOptions configures the submission controller
type SubmissionOptions struct {
	DetailsToggle bool
	StalePolicy   StalePolicy
}

type submissionUsecase struct {
	classifier service.Classifier
	reducer    *Reducer
	logger     *zap.Logger
	metrics    *metrics.Metrics

	mu    sync.Mutex
	state entity.FormState
}

// NewSubmissionUsecase creates a new submission controller
func NewSubmissionUsecase(classifier service.Classifier, opts SubmissionOptions, logger *zap.Logger, m *metrics.Metrics) (SubmissionUsecase, error) {
	if classifier == nil {
		return nil, ErrNoClassifier
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &submissionUsecase{
		classifier: classifier,
		reducer:    NewReducer(opts.StalePolicy),
		logger:     logger,
		metrics:    m,
		state:      entity.NewFormState(opts.DetailsToggle),
	}, nil
}

func (u *submissionUsecase) State() entity.FormState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.Clone()
}

func (u *submissionUsecase) Submit(ctx context.Context, raw string) (entity.FormState, <-chan entity.FormState, error) {
	req, err := entity.NewSubmissionRequest(raw)
	if err != nil {
		u.logger.Debug("Submission rejected", zap.Error(err))
		u.metrics.ObserveOutcome(metrics.OutcomeRejected)
		return u.dispatch(InputRejectedEvent{Input: raw, Err: err}), nil, err
	}

	u.mu.Lock()
	u.state = u.reducer.Reduce(u.state, SubmittedEvent{Input: raw, URL: req.URL})
	state := u.state.Clone()
	u.mu.Unlock()

	u.logger.Info("Submitting URL for classification",
		zap.String("submission_id", req.ID.String()),
		zap.String("url", req.URL),
		zap.Uint64("sequence", state.Sequence),
	)

	done := make(chan entity.FormState, 1)
	go u.classify(ctx, req, state.Sequence, state.Generation, done)

	return state, done, nil
}

func (u *submissionUsecase) classify(ctx context.Context, req *entity.SubmissionRequest, seq, gen uint64, done chan<- entity.FormState) {
	defer close(done)

	if u.metrics != nil {
		u.metrics.InFlight.Inc()
		defer u.metrics.InFlight.Dec()
	}

	start := time.Now()
	result, err := u.classifier.Classify(ctx, req)
	elapsed := time.Since(start)
	if u.metrics != nil {
		u.metrics.ClassifierLatency.Observe(elapsed.Seconds())
	}

	fields := []zap.Field{
		zap.String("submission_id", req.ID.String()),
		zap.Uint64("sequence", seq),
		zap.Duration("latency", elapsed),
	}

	switch {
	case err != nil:
		u.logger.Error("Classifier request failed", append(fields, zap.Error(err))...)
		u.metrics.ObserveOutcome(metrics.OutcomeFailed)
	case result == nil:
		u.logger.Error("Classifier returned no result", fields...)
		u.metrics.ObserveOutcome(metrics.OutcomeFailed)
	case result.IsPhishing():
		u.logger.Info("URL classified", append(fields, zap.String("verdict", result.PredictionText))...)
		u.metrics.ObserveOutcome(metrics.OutcomeDanger)
	default:
		u.logger.Info("URL classified", append(fields, zap.String("verdict", result.PredictionText))...)
		u.metrics.ObserveOutcome(metrics.OutcomeSuccess)
	}

	done <- u.dispatch(SettledEvent{
		Sequence:   seq,
		Generation: gen,
		Result:     result,
		Err:        err,
	})
}

func (u *submissionUsecase) Reset() entity.FormState {
	return u.dispatch(ResetEvent{})
}

func (u *submissionUsecase) ToggleDetails() entity.FormState {
	return u.dispatch(ToggleDetailsEvent{})
}

func (u *submissionUsecase) DismissAlert() entity.FormState {
	return u.dispatch(DismissAlertEvent{})
}

func (u *submissionUsecase) dispatch(ev Event) entity.FormState {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state = u.reducer.Reduce(u.state, ev)
	return u.state.Clone()
}
