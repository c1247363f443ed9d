package gateway

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/NilFoundation/ledger-gateway/internal/ledger"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// fakeLedger mimics the accounting rules of the deployed contract.
type fakeLedger struct {
	mu       sync.Mutex
	balances map[string]*uint256.Int
	calls    int
}

var _ ledger.Contract = (*fakeLedger)(nil)

func newFakeLedger() *fakeLedger {
	return &fakeLedger{balances: make(map[string]*uint256.Int)}
}

func (f *fakeLedger) Address() ethcommon.Address {
	return ethcommon.HexToAddress("0xfa5063c527b052357496c75bf0b364687f07b46b")
}

func (f *fakeLedger) ABIJSON() json.RawMessage {
	return ledger.DefaultABI()
}

func (f *fakeLedger) revert(method, reason string) error {
	return &ledger.RevertError{Method: method, Reason: reason, Err: ledger.ErrTxFailed}
}

func (f *fakeLedger) Register(_ context.Context, name string, balance *uint256.Int) (ethcommon.Hash, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	if _, ok := f.balances[name]; ok {
		return ethcommon.Hash{}, f.revert(ledger.MethodRegister, "User already exists")
	}
	f.balances[name] = balance.Clone()
	return ethcommon.Hash{1}, nil
}

func (f *fakeLedger) Transfer(_ context.Context, from, to string, amount *uint256.Int) (ethcommon.Hash, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	src, ok := f.balances[from]
	if !ok {
		return ethcommon.Hash{}, f.revert(ledger.MethodTransfer, "Sender not registered")
	}
	dst, ok := f.balances[to]
	if !ok {
		return ethcommon.Hash{}, f.revert(ledger.MethodTransfer, "Recipient not registered")
	}
	if src.Lt(amount) {
		return ethcommon.Hash{}, f.revert(ledger.MethodTransfer, "Insufficient balance")
	}
	src.Sub(src, amount)
	dst.Add(dst, amount)
	return ethcommon.Hash{2}, nil
}

func (f *fakeLedger) BalanceOf(_ context.Context, name string) (*uint256.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	if balance, ok := f.balances[name]; ok {
		return balance.Clone(), nil
	}
	return new(uint256.Int), nil
}

func (f *fakeLedger) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
