package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	ErrInvalidAddress  = errors.New("Invalid address")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrNumericOverflow = errors.New("numeric overflow")

	// wallet errors carry the prompt shown to the user
	ErrNoWalletProvider   = errors.New("Please install a wallet provider")
	ErrNoConnectedAccount = errors.New("Please connect wallet.")

	// chain errors
	ErrRemoteCall       = errors.New("contract call failed")
	ErrTxReverted       = errors.New("transaction reverted")
	ErrUnsupportedChain = errors.New("unsupported chain")
)

// RemoteError wraps a failed contract call. errors.Is(err, ErrRemoteCall) holds for every
// RemoteError while Unwrap still exposes the node's answer.
type RemoteError struct {
	Method string
	Err    error
}

func NewRemoteError(method string, err error) error {
	return &RemoteError{Method: method, Err: err}
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Method, ErrRemoteCall, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteCall
}

// IsPrompt reports whether err should be presented to the user as an action prompt
// rather than as a failure.
func IsPrompt(err error) bool {
	return errors.Is(err, ErrNoWalletProvider) || errors.Is(err, ErrNoConnectedAccount)
}
