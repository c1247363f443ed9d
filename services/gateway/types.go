package gateway

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/holiman/uint256"
)

var (
	errAmountMissing  = errors.New("amount is missing")
	errAmountNotValid = errors.New("amount must be a non-negative integer")
	errAmountTooLarge = errors.New("amount does not fit into 256 bits")
)

// Amount is a token quantity exactly as the client sent it: a JSON integer or a decimal string.
// It is validated by Uint256, so malformed values are reported per field instead of as a decoding error.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
	default:
		*a = Amount(data)
	}
	return nil
}

func (a Amount) Uint256() (*uint256.Int, error) {
	s := strings.TrimSpace(string(a))
	if s == "" {
		return nil, errAmountMissing
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, errAmountNotValid
		}
	}
	value, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, errAmountTooLarge
	}
	return value, nil
}

type RegisterRequest struct {
	Name    string `json:"name"`
	Balance Amount `json:"balance"`
}

type TransferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount Amount `json:"amount"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type BalanceResponse struct {
	Name    string `json:"name"`
	Balance string `json:"balance"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
