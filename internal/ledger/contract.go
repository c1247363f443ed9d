package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/NilFoundation/ledger-gateway/common/logging"
	"github.com/NilFoundation/ledger-gateway/internal/chainclient"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
)

//go:generate go run github.com/matryer/moq -out contract_generated_mock.go -rm -stub -with-resets . Contract

// Contract is a handle to a deployed ledger contract.
type Contract interface {
	Address() ethcommon.Address

	// ABIJSON returns the contract interface in compact JSON form.
	ABIJSON() json.RawMessage

	// Register creates an account with an initial balance and waits until the transaction is mined.
	Register(ctx context.Context, name string, balance *uint256.Int) (ethcommon.Hash, error)

	// Transfer moves amount between two accounts and waits until the transaction is mined.
	Transfer(ctx context.Context, from, to string, amount *uint256.Int) (ethcommon.Hash, error)

	BalanceOf(ctx context.Context, name string) (*uint256.Int, error)
}

const (
	DefaultGasLimit       = uint64(1_000_000)
	DefaultDeployGasLimit = uint64(1_500_000)
)

type Options struct {
	GasLimit       uint64
	DeployGasLimit uint64
	ReceiptTimeout time.Duration
}

func DefaultOptions() Options {
	return Options{
		GasLimit:       DefaultGasLimit,
		DeployGasLimit: DefaultDeployGasLimit,
		ReceiptTimeout: chainclient.DefaultReceiptTimeout,
	}
}

type contractImpl struct {
	address ethcommon.Address
	abi     *abi.ABI
	abiJSON json.RawMessage
	client  chainclient.EthClient
	sender  chainclient.Sender
	opts    Options
	logger  logging.Logger
}

var _ Contract = (*contractImpl)(nil)

// Bind attaches to a contract that is already deployed at address.
func Bind(
	ctx context.Context,
	client chainclient.EthClient,
	sender chainclient.Sender,
	address ethcommon.Address,
	abiJSON json.RawMessage,
	opts Options,
	logger logging.Logger,
) (Contract, error) {
	parsed, err := ParseABI(abiJSON)
	if err != nil {
		return nil, err
	}

	code, err := client.CodeAt(ctx, address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch code at %s: %w", address, err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%w %s", ErrNoCode, address)
	}

	compact, err := compactJSON(abiJSON)
	if err != nil {
		return nil, err
	}

	return &contractImpl{
		address: address,
		abi:     parsed,
		abiJSON: compact,
		client:  client,
		sender:  sender,
		opts:    opts,
		logger:  logger.With().Str(logging.FieldContractAddress, address.Hex()).Logger(),
	}, nil
}

func (c *contractImpl) Address() ethcommon.Address {
	return c.address
}

func (c *contractImpl) ABIJSON() json.RawMessage {
	return c.abiJSON
}

func (c *contractImpl) Register(ctx context.Context, name string, balance *uint256.Int) (ethcommon.Hash, error) {
	return c.transact(ctx, MethodRegister, name, balance.ToBig())
}

func (c *contractImpl) Transfer(ctx context.Context, from, to string, amount *uint256.Int) (ethcommon.Hash, error) {
	return c.transact(ctx, MethodTransfer, from, to, amount.ToBig())
}

func (c *contractImpl) BalanceOf(ctx context.Context, name string) (*uint256.Int, error) {
	data, err := c.abi.Pack(MethodBalance, name)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", MethodBalance, err)
	}

	out, err := c.client.CallContract(ctx, c.callMsg(data), nil)
	if err != nil {
		return nil, decodeContractError(MethodBalance, err)
	}

	values, err := c.abi.Unpack(MethodBalance, out)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", MethodBalance, err)
	}
	balance, overflow := uint256.FromBig(abi.ConvertType(values[0], new(big.Int)).(*big.Int))
	if overflow {
		return nil, fmt.Errorf("%s returned a value wider than 256 bits", MethodBalance)
	}
	return balance, nil
}

func (c *contractImpl) callMsg(data []byte) ethereum.CallMsg {
	return ethereum.CallMsg{
		From: c.sender.From(),
		To:   &c.address,
		Gas:  c.opts.GasLimit,
		Data: data,
	}
}

func (c *contractImpl) transact(ctx context.Context, method string, args ...any) (ethcommon.Hash, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return ethcommon.Hash{}, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	// reverts usually surface here, from the node's own gas estimation
	txHash, err := c.sender.Send(ctx, chainclient.TxRequest{
		To:   &c.address,
		Data: data,
		Gas:  c.opts.GasLimit,
	})
	if err != nil {
		return ethcommon.Hash{}, decodeContractError(method, err)
	}
	c.logger.Info().
		Str(logging.FieldContractMethod, method).
		Hex(logging.FieldTxHash, txHash.Bytes()).
		Stringer(logging.FieldTxFrom, c.sender.From()).
		Msg("transaction sent")

	receipt, err := chainclient.WaitForReceipt(ctx, c.client, txHash, c.opts.ReceiptTimeout)
	if err != nil {
		return txHash, fmt.Errorf("error during waiting for %s receipt: %w", method, err)
	}
	chainclient.LogReceiptDetails(c.logger, receipt)

	if receipt.Status != ethtypes.ReceiptStatusSuccessful {
		return txHash, c.explainFailure(ctx, method, data, receipt)
	}
	return txHash, nil
}

// explainFailure replays a mined but failed transaction to recover its revert reason.
func (c *contractImpl) explainFailure(
	ctx context.Context,
	method string,
	data []byte,
	receipt *ethtypes.Receipt,
) error {
	failed := fmt.Errorf("%w: %s %s", ErrTxFailed, method, receipt.TxHash.Hex())

	var block *big.Int
	if receipt.BlockNumber != nil && receipt.BlockNumber.Sign() > 0 {
		block = new(big.Int).Sub(receipt.BlockNumber, big.NewInt(1))
	}

	_, err := c.client.CallContract(ctx, c.callMsg(data), block)
	if err == nil {
		return failed
	}
	if reason, ok := chainclient.RevertReason(err); ok {
		c.logger.Warn().
			Str(logging.FieldContractMethod, method).
			Str(logging.FieldRevertReason, reason).
			Msg("transaction reverted")
		return &RevertError{Method: method, Reason: reason, Err: failed}
	}
	c.logger.Debug().Err(err).Str(logging.FieldContractMethod, method).Msg("failed to replay transaction")
	return failed
}

func decodeContractError(method string, err error) error {
	if reason, ok := chainclient.RevertReason(err); ok {
		return &RevertError{Method: method, Reason: reason, Err: err}
	}
	return fmt.Errorf("%s: %w", method, err)
}

func compactJSON(raw []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, fmt.Errorf("invalid abi json: %w", err)
	}
	return buf.Bytes(), nil
}
