package gateway

import (
	"errors"
	"fmt"

	"github.com/NilFoundation/ledger-gateway/internal/ledger"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrContractNotReady = errors.New("smart contract is not ready yet, check the server logs or retry later")
)

// ValidationError reports bad request input. Its message is returned to the client as is.
type ValidationError struct {
	Msg string
}

func validationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// OperationError is a failure reported by the node or the contract while serving Op.
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	var revertErr *ledger.RevertError
	if errors.As(e.Err, &revertErr) {
		return fmt.Sprintf("%s failed: %s", e.Op, revertErr.Reason)
	}
	return fmt.Sprintf("%s failed: %s", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
