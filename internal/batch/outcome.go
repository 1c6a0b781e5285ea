package batch

import (
	"fmt"
	"time"
)

type Status int

const (
	Success Status = iota
	DecodeFailed
	TransformFailed
	StoreFailed
	RenderFailed
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case DecodeFailed:
		return "decode failed"
	case TransformFailed:
		return "transform failed"
	case StoreFailed:
		return "store failed"
	case RenderFailed:
		return "render failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

type ItemError struct {
	Item   string
	Status Status
	Err    error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Item, e.Status, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// Outcome is the result of pushing one item through the pipeline. A
// RenderFailed outcome still has its noisy image written.
type Outcome struct {
	Item           Item
	Status         Status
	NoisyPath      string
	ComparisonPath string
	Err            error
}

func (o Outcome) NoiseSucceeded() bool {
	return o.Status == Success || o.Status == RenderFailed
}

func (o Outcome) ComparisonRendered() bool {
	return o.Status == Success
}

func (o *Outcome) fail(status Status, err error) Outcome {
	o.Status = status
	o.Err = &ItemError{Item: o.Item.Name, Status: status, Err: err}
	return *o
}

type Summary struct {
	Total               int
	Processed           int
	ComparisonsRendered int
	Outcomes            []Outcome
	Elapsed             time.Duration
}

func (s *Summary) add(o Outcome) {
	s.Outcomes = append(s.Outcomes, o)
	if o.NoiseSucceeded() {
		s.Processed++
	}
	if o.ComparisonRendered() {
		s.ComparisonsRendered++
	}
}
