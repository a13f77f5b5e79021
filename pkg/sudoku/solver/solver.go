// Package solver completes sudoku boards by running candidate
// propagation rules to a fixed point and falling back to depth-first
// search over board clones when propagation stalls.
package solver

import (
	"context"
	"errors"

	"github.com/puzzle-framework/sudoku/pkg/sudoku"
	"github.com/puzzle-framework/sudoku/pkg/sudoku/board"
)

var ErrIncomplete = errors.New("cancelled before a solution could be found")

type Solver interface {
	// Solve returns a solved copy of the board, leaving the input
	// untouched. It returns *sudoku.UnsolvableError when the
	// search exhausts every branch, and ErrIncomplete when the
	// context is cancelled mid-search.
	Solve(ctx context.Context, b *board.Board) (*board.Board, error)
}

type solver struct {
	rules  []Rule
	tracer Tracer
}

func (s *solver) Solve(ctx context.Context, b *board.Board) (*board.Board, error) {
	solved, err := s.search(ctx, b.Clone(), 0)
	if err != nil {
		return nil, err
	}
	if solved == nil {
		return nil, &sudoku.UnsolvableError{Variant: b.Variant()}
	}
	return solved, nil
}

func New(options ...Option) (Solver, error) {
	s := solver{}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *solver) error

// WithRules overrides the propagation rule set. Rules run in the
// given order on every propagation pass.
func WithRules(rules ...Rule) Option {
	return func(s *solver) error {
		if len(rules) == 0 {
			return errors.New("at least one propagation rule is required")
		}
		s.rules = rules
		return nil
	}
}

func WithTracer(t Tracer) Option {
	return func(s *solver) error {
		s.tracer = t
		return nil
	}
}

var defaults = []Option{
	func(s *solver) error {
		if s.rules == nil {
			s.rules = DefaultRules()
		}
		return nil
	},
	func(s *solver) error {
		if s.tracer == nil {
			s.tracer = DefaultTracer{}
		}
		return nil
	},
}

// SolveString parses an 81-character puzzle string, solves it with a
// default solver, and returns the completed grid in the same format.
func SolveString(ctx context.Context, text string, variant sudoku.Variant) (string, error) {
	b, err := board.Parse(text, variant)
	if err != nil {
		return "", err
	}
	s, err := New()
	if err != nil {
		return "", err
	}
	solved, err := s.Solve(ctx, b)
	if err != nil {
		return "", err
	}
	return solved.String(), nil
}
