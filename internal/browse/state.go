// Package browse holds the query state of the reviews browser and the
// transitions between its phases. State is a value: every operation
// returns the next State and never mutates the receiver.
package browse

import (
	"errors"
	"strings"

	"github.com/mcao2/reviews-browser/internal/reviews"
)

// User-facing messages.
const (
	MessageInvalidID   = "Please enter a valid App ID"
	MessageFetchFailed = "Failed to fetch reviews. Please try again."
)

// ErrInvalidAppID is returned by Submit for an empty or blank identifier.
var ErrInvalidAppID = errors.New("invalid app id")

// Phase is the active display mode.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseLoading:
		return "Loading"
	case PhaseLoaded:
		return "Loaded"
	case PhaseFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Request describes one dispatched fetch.
type Request struct {
	Seq   uint64
	AppID string
}

// State is the controller state for one UI session.
type State struct {
	Phase       Phase
	CommittedID string
	DraftID     string
	Reviews     []reviews.Review
	Message     string

	// Cause is the error behind a Failed phase, kept for diagnostics.
	Cause error

	pending Request
	seq     uint64
}

// New returns the initial state.
func New() State {
	return State{Phase: PhaseIdle}
}

// Loading reports whether a fetch is in flight.
func (s State) Loading() bool {
	return s.Phase == PhaseLoading
}

// Pending returns the in-flight request, if any.
func (s State) Pending() (Request, bool) {
	if s.Phase != PhaseLoading {
		return Request{}, false
	}
	return s.pending, true
}

// SetDraft records the current input value.
func (s State) SetDraft(v string) State {
	s.DraftID = v
	return s
}

// Submit validates id and, when it is not blank, moves to Loading and
// returns the request to dispatch. A blank id moves straight to Failed
// and invalidates any request still in flight.
func (s State) Submit(id string) (State, Request, error) {
	id = strings.TrimSpace(id)
	s.seq++

	if id == "" {
		s.Phase = PhaseFailed
		s.Message = MessageInvalidID
		s.Cause = ErrInvalidAppID
		s.pending = Request{}
		return s, Request{}, ErrInvalidAppID
	}

	req := Request{Seq: s.seq, AppID: id}
	s.Phase = PhaseLoading
	s.Message = ""
	s.Cause = nil
	s.pending = req
	return s, req, nil
}

// Refresh re-submits the committed identifier.
func (s State) Refresh() (State, Request, error) {
	return s.Submit(s.CommittedID)
}

// Resolve applies the outcome of request seq. Outcomes of any request
// other than the latest one are discarded and reported as not applied.
func (s State) Resolve(seq uint64, list []reviews.Review, err error) (State, bool) {
	if s.Phase != PhaseLoading || seq != s.pending.Seq {
		return s, false
	}

	appID := s.pending.AppID
	s.pending = Request{}

	if err != nil {
		s.Phase = PhaseFailed
		s.Message = MessageFetchFailed
		s.Cause = err
		s.Reviews = nil
		return s, true
	}

	if list == nil {
		list = []reviews.Review{}
	}
	s.Phase = PhaseLoaded
	s.Reviews = list
	s.CommittedID = appID
	s.Message = ""
	s.Cause = nil
	return s, true
}

// Summary returns the statistics of the loaded list. ok is false unless
// the phase is Loaded with at least one review.
func (s State) Summary() (reviews.Summary, bool) {
	if s.Phase != PhaseLoaded {
		return reviews.Summary{}, false
	}
	return reviews.Summarize(s.Reviews)
}
