package usecase

import (
	"errors"
	"fmt"

	"github.com/ressKim-io/phishguard/internal/domain/entity"
)

// StalePolicy decides what happens to a response that settles after a newer
// submission or a reset.
type StalePolicy string

const (
	// StalePolicyLastWriterWins applies every response in arrival order
	StalePolicyLastWriterWins StalePolicy = "last_writer_wins"
	// StalePolicyDropStale applies only the response to the latest submission
	StalePolicyDropStale StalePolicy = "drop_stale"
)

// ErrInvalidStalePolicy is returned for an unknown policy name
var ErrInvalidStalePolicy = errors.New("invalid stale response policy")

// ParseStalePolicy parses a policy name
func ParseStalePolicy(s string) (StalePolicy, error) {
	switch StalePolicy(s) {
	case StalePolicyLastWriterWins, StalePolicyDropStale:
		return StalePolicy(s), nil
	case "":
		return StalePolicyLastWriterWins, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStalePolicy, s)
	}
}

// Event is a user action or a classifier settlement fed to the reducer
type Event interface {
	event()
}

// InputRejectedEvent is a submit whose field failed validation
type InputRejectedEvent struct {
	Input string
	Err   error
}

// SubmittedEvent is a submit that passed validation
type SubmittedEvent struct {
	Input string
	URL   string
}

// SettledEvent carries the outcome of one classifier call.
// Exactly one of Result and Err is set.
type SettledEvent struct {
	Sequence   uint64
	Generation uint64
	Result     *entity.ClassificationResult
	Err        error
}

// ResetEvent clears the form
type ResetEvent struct{}

// ToggleDetailsEvent flips the details panel
type ToggleDetailsEvent struct{}

// DismissAlertEvent closes the blocking notification
type DismissAlertEvent struct{}

func (InputRejectedEvent) event() {}
func (SubmittedEvent) event()     {}
func (SettledEvent) event()       {}
func (ResetEvent) event()         {}
func (ToggleDetailsEvent) event() {}
func (DismissAlertEvent) event()  {}

// Reducer computes the next form state from the current one and an event.
// It performs no I/O.
type Reducer struct {
	policy StalePolicy
}

// NewReducer creates a reducer with the given stale response policy
func NewReducer(policy StalePolicy) *Reducer {
	if policy == "" {
		policy = StalePolicyLastWriterWins
	}
	return &Reducer{policy: policy}
}

// Policy returns the stale response policy
func (r *Reducer) Policy() StalePolicy {
	return r.policy
}

// Reduce returns the state that follows s after ev
func (r *Reducer) Reduce(s entity.FormState, ev Event) entity.FormState {
	next := s.Clone()

	switch ev := ev.(type) {
	case InputRejectedEvent:
		next.Input = ev.Input
		next.Alert = alertFor(ev.Err)

	case SubmittedEvent:
		next.Input = ev.Input
		next.Alert = ""
		next.EnteredURL = entity.Region{Visible: true, Text: ev.URL}
		next.Result.Visible = true
		next.Result.Status = entity.ResultStatusChecking
		next.Result.Text = entity.LoadingText
		next.ExtraReasons.Visible = false
		hideDetails(&next)
		next.Sequence++
		next.Pending++

	case SettledEvent:
		if next.Pending > 0 {
			next.Pending--
		}
		if r.isStale(s, ev) {
			return next
		}
		if ev.Err != nil || ev.Result == nil {
			next.Result.Status = entity.ResultStatusConnectionError
			next.Result.Text = entity.ConnectionFailureText
			return next
		}
		applyResult(&next, ev.Result)

	case ResetEvent:
		next.Input = ""
		next.Alert = ""
		next.EnteredURL.Visible = false
		next.Result.Visible = false
		next.Result.Status = entity.ResultStatusHidden
		next.ExtraReasons.Visible = false
		hideDetails(&next)
		// Responses submitted before this point become stale. Pinning the
		// generation to the latest sequence keeps a repeated reset a no-op.
		if next.Pending > 0 {
			next.Generation = next.Sequence
		}

	case ToggleDetailsEvent:
		if !next.Details.Enabled {
			return next
		}
		next.Alert = ""
		if next.Details.Visible {
			hideDetails(&next)
		} else {
			next.Details.Visible = true
			next.Details.Label = entity.HideDetailsLabel
		}

	case DismissAlertEvent:
		next.Alert = ""
	}

	return next
}

func (r *Reducer) isStale(s entity.FormState, ev SettledEvent) bool {
	if r.policy != StalePolicyDropStale {
		return false
	}
	return ev.Sequence != s.Sequence || ev.Generation != s.Generation
}

func applyResult(s *entity.FormState, result *entity.ClassificationResult) {
	s.Result.Visible = true
	s.Result.Text = result.PredictionText
	s.Result.Category = result.Category()
	if result.IsPhishing() {
		s.Result.Status = entity.ResultStatusDanger
	} else {
		s.Result.Status = entity.ResultStatusSuccess
	}

	// Reasons are only shown next to a phishing verdict.
	if len(result.ExtraReasons) > 0 && result.IsPhishing() {
		s.ExtraReasons.Items = result.BulletedReasons()
		s.ExtraReasons.Visible = true
	}
}

func hideDetails(s *entity.FormState) {
	s.Details.Visible = false
	s.Details.Label = entity.ShowDetailsLabel
}

func alertFor(err error) string {
	var inputErr *entity.InputError
	if errors.As(err, &inputErr) {
		return inputErr.Alert
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
