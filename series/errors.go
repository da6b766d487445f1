package series

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned when an input path does not resolve.
	ErrSourceNotFound = errors.New("series: source not found")

	// ErrEmptyGroup is returned when a group operation is invoked on zero series.
	ErrEmptyGroup = errors.New("series: empty group")

	// ErrLengthMismatch is returned by Aggregate on a group which was not equalized.
	ErrLengthMismatch = errors.New("series: length mismatch")

	// ErrInsufficientLength is returned when a series is too short for an operation.
	ErrInsufficientLength = errors.New("series: insufficient length")

	// ErrInvalidWindow is returned for a window size, step or stride below 1.
	ErrInvalidWindow = errors.New("series: invalid window")
)

// ParseWarning describes a line which could not be read as a number.
// It is never fatal: the line is skipped and reading continues.
type ParseWarning struct {
	Source string
	Line   int // 1-based
	Text   string
}

func (w ParseWarning) Error() string {
	return fmt.Sprintf("%s:%d: ignored non-numeric line %q", w.Source, w.Line, w.Text)
}

// LengthError reports that Op needed at least Need samples but got Got.
type LengthError struct {
	Op        string
	Need, Got int
}

func (e LengthError) Error() string {
	return fmt.Sprintf("series: %s needs at least %d values, got %d", e.Op, e.Need, e.Got)
}

func (e LengthError) Unwrap() error { return ErrInsufficientLength }

// MismatchError reports the first member of a group whose length
// differs from the first member's.
type MismatchError struct {
	Index     int
	Len, Want int
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("series: member %d has length %d, want %d", e.Index, e.Len, e.Want)
}

func (e MismatchError) Unwrap() error { return ErrLengthMismatch }
