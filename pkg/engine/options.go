package engine

import (
	"fmt"
	"math"
)

type Options struct {
	Depth       int
	Ordering    string
	Simulations int
	C           float64
	Seed        int64
}

func NewOptions() Options {
	return Options{
		Depth:       4,
		Ordering:    OrderingSeq,
		Simulations: 1000,
		C:           1 / math.Sqrt2,
		Seed:        1,
	}
}

// ConfigurationError rejects an engine setup before any search runs.
type ConfigurationError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %v=%v: %v", e.Field, e.Value, e.Reason)
}

func checkDepth(depth int) error {
	if depth <= 0 {
		return &ConfigurationError{Field: "depth", Value: depth, Reason: "must be positive"}
	}
	if depth > maxPly {
		return &ConfigurationError{Field: "depth", Value: depth, Reason: fmt.Sprintf("must not exceed %v", maxPly)}
	}
	return nil
}

func (o *Options) Validate() error {
	if err := checkDepth(o.Depth); err != nil {
		return err
	}
	if _, err := NewMoveOrder(o.Ordering); err != nil {
		return err
	}
	if o.Simulations <= 0 {
		return &ConfigurationError{Field: "simulations", Value: o.Simulations, Reason: "must be positive"}
	}
	if o.C < 0 || math.IsNaN(o.C) || math.IsInf(o.C, 0) {
		return &ConfigurationError{Field: "C", Value: o.C, Reason: "must be a finite non-negative number"}
	}
	return nil
}
