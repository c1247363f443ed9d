package chainclient

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// Matches both geth ("execution reverted: reason") and ganache ("...: revert reason") messages.
var revertPattern = regexp.MustCompile(`(?:execution reverted|revert):?\s*(.*)`)

// RevertReason extracts the revert reason carried by a node error, if there is one.
//
// Sources are tried in order: ABI-encoded Error(string) revert data, the error data object
// (ganache puts `reason` or `message` there), and finally the error message itself.
func RevertReason(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	if data, ok := ethclient.RevertErrorData(err); ok {
		if reason, err := abi.UnpackRevert(data); err == nil {
			return reason, true
		}
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if reason, ok := reasonFromData(dataErr.ErrorData()); ok {
			return reason, true
		}
	}

	return reasonFromMessage(err.Error())
}

func reasonFromData(data any) (string, bool) {
	switch d := data.(type) {
	case string:
		if raw, err := hexutil.Decode(d); err == nil {
			reason, err := abi.UnpackRevert(raw)
			return reason, err == nil
		}
		return reasonFromMessage(d)

	case map[string]any:
		for _, key := range []string{"reason", "message"} {
			s, ok := d[key].(string)
			if !ok || s == "" {
				continue
			}
			if reason, ok := reasonFromMessage(s); ok {
				return reason, true
			}
			if s != "revert" {
				return s, true
			}
		}
		if inner, ok := d["data"]; ok {
			if reason, ok := reasonFromData(inner); ok {
				return reason, true
			}
		}
		// older ganache keys the details by transaction hash
		for _, v := range d {
			if nested, ok := v.(map[string]any); ok {
				if reason, ok := reasonFromData(nested); ok {
					return reason, true
				}
			}
		}
	}
	return "", false
}

func reasonFromMessage(msg string) (string, bool) {
	m := revertPattern.FindStringSubmatch(msg)
	if m == nil {
		return "", false
	}
	reason := strings.TrimSpace(m[1])

	// ganache may embed a whole JSON-RPC error object after the keyword
	if start, end := strings.Index(reason, "{"), strings.LastIndex(reason, "}"); start >= 0 && end > start {
		var nested struct {
			Message string `json:"message"`
		}
		if json.Unmarshal([]byte(reason[start:end+1]), &nested) == nil && nested.Message != "" {
			if inner, ok := reasonFromMessage(nested.Message); ok {
				return inner, true
			}
			return nested.Message, true
		}
	}

	if reason == "" {
		return "", false
	}
	return reason, true
}
