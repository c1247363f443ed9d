package chainclient

import (
	"context"
	"errors"
	"time"

	"github.com/NilFoundation/ledger-gateway/common/concurrent"
	"github.com/NilFoundation/ledger-gateway/common/logging"
	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

const (
	DefaultReceiptTimeout = 2 * time.Minute
	receiptPollInterval   = 500 * time.Millisecond
)

var ErrReceiptTimeout = errors.New("timed out waiting for transaction receipt")

// WaitForReceipt repeatedly tries to get tx receipt, retrying on `NotFound` error (tx not mined yet).
// In case the timeout is reached, ErrReceiptTimeout is returned.
func WaitForReceipt(
	ctx context.Context,
	client EthClient,
	txHash ethcommon.Hash,
	timeout time.Duration,
) (*ethtypes.Receipt, error) {
	if timeout <= 0 {
		timeout = DefaultReceiptTimeout
	}

	receipt, err := concurrent.WaitForValue(
		ctx,
		timeout,
		receiptPollInterval,
		func(ctx context.Context) (*ethtypes.Receipt, error) {
			receipt, err := client.TransactionReceipt(ctx, txHash)
			if errors.Is(err, ethereum.NotFound) {
				// retry
				return nil, nil
			}
			return receipt, err
		})
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, ErrReceiptTimeout
	}
	return receipt, nil
}

// LogReceiptDetails logs the essential details of a transaction receipt.
func LogReceiptDetails(logger logging.Logger, receipt *ethtypes.Receipt) {
	event := logger.Info().
		Uint8("type", receipt.Type).
		Uint64("status", receipt.Status).
		Uint64("cumulativeGasUsed", receipt.CumulativeGasUsed).
		Hex(logging.FieldTxHash, receipt.TxHash.Bytes()).
		Uint64("gasUsed", receipt.GasUsed).
		Hex(logging.FieldBlockHash, receipt.BlockHash.Bytes()).
		Uint("transactionIndex", receipt.TransactionIndex)
	if receipt.ContractAddress != (ethcommon.Address{}) {
		event = event.Str(logging.FieldContractAddress, receipt.ContractAddress.Hex())
	}
	if receipt.EffectiveGasPrice != nil {
		event = event.Str("effectiveGasPrice", receipt.EffectiveGasPrice.String())
	}
	if receipt.BlockNumber != nil {
		event = event.Str(logging.FieldBlockNumber, receipt.BlockNumber.String())
	}
	event.Msg("transaction receipt received")
}
