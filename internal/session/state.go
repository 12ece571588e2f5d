// Package session holds the per-browser-session, per-feature state
// containers. Everything lives in process memory and dies with the process.
package session

import (
	"sync"

	"github.com/priyansh/carmitra/internal/finance"
)

// Phase is the lifecycle of one feature's last submission.
type Phase string

const (
	PhaseEmpty   Phase = "empty"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseFailure Phase = "failure"
)

// Result is one feature's submission outcome. It is overwritten whole on
// every new submission, never merged.
type Result struct {
	Phase    Phase  `json:"phase"`
	Markdown string `json:"markdown,omitempty"` // colorized on Success
	Raw      string `json:"-"`                  // uncolorized, for download
	Error    string `json:"error,omitempty"`

	// Optional numeric payloads for features that chart or tabulate.
	Projection finance.ProjectionSeries `json:"projection,omitempty"`
	Breakdown  *finance.CostBreakdown   `json:"breakdown,omitempty"`
}

// FeatureState is the mutex-guarded container one orchestration service
// owns per session. No feature reads another feature's container.
type FeatureState struct {
	mu     sync.Mutex
	result Result
}

// NewFeatureState starts Empty.
func NewFeatureState() *FeatureState {
	return &FeatureState{result: Result{Phase: PhaseEmpty}}
}

// Begin marks the submission in flight. Prior Success/Failure is replaced.
func (s *FeatureState) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = Result{Phase: PhaseLoading}
}

// Succeed stores the finished result.
func (s *FeatureState) Succeed(r Result) {
	r.Phase = PhaseSuccess
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = r
}

// Fail stores the failure message in place of a report.
func (s *FeatureState) Fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = Result{Phase: PhaseFailure, Error: msg}
}

// Snapshot returns the current result by value. Callers never see a live
// reference into the container.
func (s *FeatureState) Snapshot() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}
