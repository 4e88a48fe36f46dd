package entities

import (
	"errors"
	"fmt"
)

// ContractError marks a violated precondition in the composer's input: the
// caller handed over data the selected scenario assumes cannot exist. These
// errors always propagate; the renderers never swallow them the way they
// swallow enrichment failures.
type ContractError struct {
	message string
}

// NewContractError creates a ContractError with a formatted message.
func NewContractError(format string, args ...any) *ContractError {
	return &ContractError{message: fmt.Sprintf(format, args...)}
}

func (e *ContractError) Error() string {
	return e.message
}

// IsContractError reports whether err is (or wraps) a ContractError.
func IsContractError(err error) bool {
	var contractErr *ContractError
	return errors.As(err, &contractErr)
}
