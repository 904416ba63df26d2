// Package model provides fitted-state tracking and persistence shared by encoders.
package model

import (
	"fmt"
	"slices"
	"sync"

	"github.com/YuminosukeSato/arules/pkg/errors"
)

// FitState records the schema an encoder was fitted on. It is safe for
// concurrent use.
type FitState struct {
	mu         sync.RWMutex
	fitted     bool
	attributes []string
	rows       int
}

// NewFitState returns an unfitted state.
func NewFitState() *FitState {
	return &FitState{}
}

// MarkFitted stores the fitted attribute names and observation count.
func (s *FitState) MarkFitted(attributes []string, rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = true
	s.attributes = slices.Clone(attributes)
	s.rows = rows
}

// IsFitted returns whether MarkFitted has been called since the last Reset.
func (s *FitState) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fitted
}

// Reset forgets the fitted schema.
func (s *FitState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = false
	s.attributes = nil
	s.rows = 0
}

// Attributes returns a copy of the fitted attribute names.
func (s *FitState) Attributes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.attributes)
}

// Rows returns the number of observations seen by Fit.
func (s *FitState) Rows() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rows
}

// Require returns a NotFittedError naming name.method when unfitted.
func (s *FitState) Require(name, method string) error {
	if !s.IsFitted() {
		return errors.NewNotFittedError(name, method)
	}
	return nil
}

// CheckSchema verifies that columns match the fitted attributes in number and
// order. op names the caller in the returned error.
func (s *FitState) CheckSchema(op string, columns []string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(columns) != len(s.attributes) {
		return errors.NewDimensionError(op, len(s.attributes), len(columns), 1)
	}
	for j, c := range columns {
		if c != s.attributes[j] {
			return errors.NewValueError(op, fmt.Sprintf("column %d is %q, fitted on %q", j, c, s.attributes[j]))
		}
	}
	return nil
}
