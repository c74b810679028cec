package solution

import (
	"errors"
	"fmt"

	"github.com/roach88/advent/internal/input"
)

// Expectation holds the known answers for both fixtures. An empty string
// means the answer is not known.
type Expectation struct {
	Example string `json:"example,omitempty"`
	Real    string `json:"real,omitempty"`
}

// For returns the expected answer for mode and whether one is known.
func (e Expectation) For(mode input.Mode) (string, bool) {
	want := e.Real
	if mode == input.Example {
		want = e.Example
	}
	return want, want != ""
}

// Verdict is the outcome of checking an answer.
type Verdict string

const (
	// Verified means the answer matched the known result.
	Verified Verdict = "verified"
	// Unverified means there was nothing to compare: no answer, or no known result.
	Unverified Verdict = "unverified"
	// Mismatch means the answer differed from the known result.
	Mismatch Verdict = "mismatch"
)

// MismatchError reports an answer that differs from the known result.
// It is fatal to a run.
type MismatchError struct {
	Mode input.Mode
	Want string
	Got  string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("assertion failed (%s): expected %s, got %s", e.Mode, e.Want, e.Got)
}

// IsMismatch reports whether err is, or wraps, a MismatchError.
func IsMismatch(err error) bool {
	var me *MismatchError
	return errors.As(err, &me)
}

// Verify checks got against the expectation for mode.
// A missing answer or an unknown expectation is Unverified, not an error.
func Verify(mode input.Mode, expect Expectation, got Answer) (Verdict, error) {
	if !got.Present {
		return Unverified, nil
	}
	if _, ok := expect.For(mode); !ok {
		return Unverified, nil
	}
	if err := Check(mode, expect.Example, expect.Real, got.Value); err != nil {
		return Mismatch, err
	}
	return Verified, nil
}

// Check compares actual against example or real, chosen by mode.
func Check[T comparable](mode input.Mode, example, real, actual T) error {
	want := real
	if mode == input.Example {
		want = example
	}
	if actual != want {
		return &MismatchError{Mode: mode, Want: fmt.Sprint(want), Got: fmt.Sprint(actual)}
	}
	return nil
}
