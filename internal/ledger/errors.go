package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrReverted      = errors.New("execution reverted")
	ErrTxFailed      = errors.New("transaction failed")
	ErrNoCode        = errors.New("no contract code at address")
	ErrNoBytecode    = errors.New("artifact has no bytecode")
	ErrNoDeployment  = errors.New("artifact has no deployment for network")
	ErrMethodMissing = errors.New("abi lacks a ledger method")
)

// RevertError carries the reason the contract gave for rejecting a call.
type RevertError struct {
	Method string
	Reason string
	Err    error
}

func (e *RevertError) Error() string {
	return fmt.Sprintf("%s reverted: %s", e.Method, e.Reason)
}

func (e *RevertError) Unwrap() error {
	return e.Err
}

func (e *RevertError) Is(target error) bool {
	return target == ErrReverted
}
