package pmergesort

import "fmt"

// Phase identifies which stage of a sort produced a SortError.
type Phase string

const (
	PhasePresort  Phase = "presort"
	PhaseMerge    Phase = "merge"
	PhaseParallel Phase = "parallel"
)

// SortError reports a failure attributable to a specific call and phase.
// Err is always non-nil and is reachable via errors.Unwrap/errors.Is.
type SortError struct {
	Op    string
	Phase Phase
	Err   error
}

func (e *SortError) Error() string {
	if e.Phase == "" {
		return fmt.Sprintf("pmergesort: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("pmergesort: %s (%s): %v", e.Op, e.Phase, e.Err)
}

func (e *SortError) Unwrap() error { return e.Err }

func wrapError(op string, phase Phase, err error) error {
	if err == nil {
		return nil
	}
	return &SortError{Op: op, Phase: phase, Err: err}
}

var (
	// ErrAllocFailed is returned when an Allocator cannot produce a scratch
	// buffer of the requested size; it is the only failure a call with
	// valid arguments can observe (§7).
	ErrAllocFailed = fmt.Errorf("pmergesort: scratch buffer allocation failed")

	// ErrInvalidInput is returned for programmer-error arguments: a zero
	// element size, or (for WrapMergeSort) a nil wsort callback.
	ErrInvalidInput = fmt.Errorf("pmergesort: invalid input")
)
