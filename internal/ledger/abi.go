package ledger

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/NilFoundation/ledger-gateway/common/check"
	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	MethodRegister = "regUser"
	MethodTransfer = "transBal"
	MethodBalance  = "checkBal"
)

//go:embed abi/ledger.abi.json
var defaultABIJSON []byte

// DefaultABI returns the interface of the ledger contract in compact JSON form.
func DefaultABI() json.RawMessage {
	compact, err := compactJSON(defaultABIJSON)
	check.PanicIfErr(err)
	return compact
}

// ParseABI parses an ABI and checks that it declares every method the gateway calls.
func ParseABI(raw []byte) (*abi.ABI, error) {
	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse abi: %w", err)
	}

	required := map[string]struct {
		inputs  int
		outputs int
	}{
		MethodRegister: {inputs: 2},
		MethodTransfer: {inputs: 3},
		MethodBalance:  {inputs: 1, outputs: 1},
	}
	for name, shape := range required {
		method, ok := parsed.Methods[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMethodMissing, name)
		}
		if len(method.Inputs) != shape.inputs || len(method.Outputs) != shape.outputs {
			return nil, fmt.Errorf("%w: %s has unexpected signature %s", ErrMethodMissing, name, method.Sig)
		}
	}
	return &parsed, nil
}
