package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/NilFoundation/ledger-gateway/common/logging"
	"github.com/NilFoundation/ledger-gateway/internal/ledger"
)

const (
	opRegister = "register"
	opTransfer = "transfer"
	opBalance  = "balance query"
)

//go:generate go run github.com/matryer/moq -out ledger_api_generated_mock.go -rm -stub -with-resets . LedgerAPI

// LedgerAPI is the set of operations exposed over HTTP.
type LedgerAPI interface {
	// Register creates a named account holding balance and returns a confirmation message.
	Register(ctx context.Context, name string, balance Amount) (string, error)

	// Transfer moves amount from one named account to another and returns a confirmation message.
	Transfer(ctx context.Context, from, to string, amount Amount) (string, error)

	GetBalance(ctx context.Context, name string) (*BalanceResponse, error)
}

// ContractHolder publishes the contract handle once startup has resolved it.
type ContractHolder struct {
	contract atomic.Pointer[ledger.Contract]
}

func (h *ContractHolder) Set(contract ledger.Contract) {
	h.contract.Store(&contract)
}

func (h *ContractHolder) Get() (ledger.Contract, error) {
	contract := h.contract.Load()
	if contract == nil {
		return nil, ErrContractNotReady
	}
	return *contract, nil
}

func (h *ContractHolder) Ready() bool {
	return h.contract.Load() != nil
}

type LedgerAPIImpl struct {
	contracts   *ContractHolder
	tokenSymbol string
	metrics     *gatewayMetrics
	logger      logging.Logger
}

var _ LedgerAPI = (*LedgerAPIImpl)(nil)

func NewLedgerAPI(
	contracts *ContractHolder,
	tokenSymbol string,
	metrics *gatewayMetrics,
	logger logging.Logger,
) *LedgerAPIImpl {
	return &LedgerAPIImpl{
		contracts:   contracts,
		tokenSymbol: tokenSymbol,
		metrics:     metrics,
		logger:      logger,
	}
}

func (api *LedgerAPIImpl) Register(ctx context.Context, name string, balance Amount) (string, error) {
	name = strings.TrimSpace(name)
	value, err := balance.Uint256()
	if name == "" || err != nil {
		return "", validationError("a valid name and a non-negative initial balance are required")
	}

	contract, err := api.contracts.Get()
	if err != nil {
		return "", err
	}

	api.logger.Debug().
		Str(logging.FieldAccountName, name).
		Str(logging.FieldAmount, value.Dec()).
		Msg("Registering account")

	_, err = contract.Register(ctx, name, value)
	api.metrics.recordContractCall(ctx, ledger.MethodRegister, err)
	if err != nil {
		return "", api.operationError(opRegister, err)
	}

	return fmt.Sprintf("User '%s' registered with %s %s.", name, value.Dec(), api.tokenSymbol), nil
}

func (api *LedgerAPIImpl) Transfer(ctx context.Context, from, to string, amount Amount) (string, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	value, err := amount.Uint256()
	if from == "" || to == "" || err != nil || value.IsZero() {
		return "", validationError("valid sender and recipient names and a positive amount are required")
	}
	if from == to {
		return "", validationError("sender and recipient must be different accounts")
	}

	contract, err := api.contracts.Get()
	if err != nil {
		return "", err
	}

	api.logger.Debug().
		Str("accountFrom", from).
		Str("accountTo", to).
		Str(logging.FieldAmount, value.Dec()).
		Msg("Transferring balance")

	_, err = contract.Transfer(ctx, from, to, value)
	api.metrics.recordContractCall(ctx, ledger.MethodTransfer, err)
	if err != nil {
		return "", api.operationError(opTransfer, err)
	}

	return fmt.Sprintf("'%s' sent %s %s to '%s'.", from, value.Dec(), api.tokenSymbol, to), nil
}

func (api *LedgerAPIImpl) GetBalance(ctx context.Context, name string) (*BalanceResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationError("the name of the account to query is required")
	}

	contract, err := api.contracts.Get()
	if err != nil {
		return nil, err
	}

	balance, err := contract.BalanceOf(ctx, name)
	api.metrics.recordContractCall(ctx, ledger.MethodBalance, err)
	if err != nil {
		return nil, api.operationError(opBalance, err)
	}

	return &BalanceResponse{Name: name, Balance: balance.Dec()}, nil
}

func (api *LedgerAPIImpl) operationError(op string, err error) error {
	var revertErr *ledger.RevertError
	if errors.As(err, &revertErr) {
		api.logger.Warn().
			Str("operation", op).
			Str(logging.FieldRevertReason, revertErr.Reason).
			Msg("Ledger operation rejected by contract")
	} else {
		api.logger.Error().Err(err).Str("operation", op).Msg("Ledger operation failed")
	}
	return &OperationError{Op: op, Err: err}
}
