package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnbalanced indicates that a journal draft's debits and credits do not
// balance. The entry is rejected and nothing is written.
var ErrUnbalanced = errors.New("journal debits and credits do not balance")

// UnknownAccountError indicates that a journal line references a ledger
// account that does not exist while carrying a nonzero amount. It names the
// missing account so an operator can create it.
type UnknownAccountError struct {
	AccountName string
}

func (e *UnknownAccountError) Error() string {
	return fmt.Sprintf("ledger account not configured: %s", e.AccountName)
}

// Is makes UnknownAccountError match ErrNotFound in errors.Is chains.
func (e *UnknownAccountError) Is(target error) bool {
	return target == ErrNotFound
}
