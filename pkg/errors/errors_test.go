package errors_test

import (
	"errors"
	"strconv"
	"testing"

	pkgerrors "hyperkb/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestNewInvariantViolation_MessageAndKind(t *testing.T) {
	err := pkgerrors.NewInvariantViolation("residual went negative")

	assert.Equal(t, pkgerrors.KindInvariantViolation, err.Kind)
	assert.Contains(t, err.Error(), "residual went negative")
	assert.Contains(t, err.Error(), string(pkgerrors.KindInvariantViolation))
	assert.Nil(t, err.Unwrap())
}

func TestWrapInvariantViolation_PreservesCause(t *testing.T) {
	_, parseErr := strconv.ParseFloat("not-a-number", 64)
	wrapped := pkgerrors.WrapInvariantViolation(parseErr, "malformed quantity")

	assert.Equal(t, parseErr, wrapped.Unwrap())
	assert.Contains(t, wrapped.Error(), "malformed quantity")
	assert.Contains(t, wrapped.Error(), parseErr.Error())
}

func TestIsInvariantViolation_TrueForWrappedChain(t *testing.T) {
	_, parseErr := strconv.ParseFloat("nope", 64)
	wrapped := pkgerrors.WrapInvariantViolation(parseErr, "malformed quantity")
	chained := fmtErrorf(wrapped)

	assert.True(t, pkgerrors.IsInvariantViolation(wrapped))
	assert.True(t, pkgerrors.IsInvariantViolation(chained), "errors.As must see through an outer wrapper to the invariant-violation error")
}

func TestIsInvariantViolation_FalseForUnrelatedError(t *testing.T) {
	assert.False(t, pkgerrors.IsInvariantViolation(errors.New("some other failure")))
	assert.False(t, pkgerrors.IsInvariantViolation(nil))
}

func fmtErrorf(cause error) error {
	return errors.Join(errors.New("run aborted"), cause)
}
