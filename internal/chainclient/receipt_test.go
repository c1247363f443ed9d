package chainclient

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

func TestWaitForReceipt(t *testing.T) {
	t.Parallel()

	txHash := ethcommon.HexToHash("0xabcd")

	t.Run("MinedAfterRetry", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		client := &EthClientMock{
			TransactionReceiptFunc: func(_ context.Context, hash ethcommon.Hash) (*ethtypes.Receipt, error) {
				require.Equal(t, txHash, hash)
				if calls.Add(1) == 1 {
					return nil, ethereum.NotFound
				}
				return &ethtypes.Receipt{Status: ethtypes.ReceiptStatusSuccessful, TxHash: hash}, nil
			},
		}

		receipt, err := WaitForReceipt(context.Background(), client, txHash, time.Minute)
		require.NoError(t, err)
		require.Equal(t, txHash, receipt.TxHash)
		require.Len(t, client.TransactionReceiptCalls(), 2)
	})

	t.Run("Timeout", func(t *testing.T) {
		t.Parallel()

		client := &EthClientMock{
			TransactionReceiptFunc: func(context.Context, ethcommon.Hash) (*ethtypes.Receipt, error) {
				return nil, ethereum.NotFound
			},
		}

		_, err := WaitForReceipt(context.Background(), client, txHash, 10*time.Millisecond)
		require.ErrorIs(t, err, ErrReceiptTimeout)
	})

	t.Run("NodeError", func(t *testing.T) {
		t.Parallel()

		nodeErr := errors.New("connection reset")
		client := &EthClientMock{
			TransactionReceiptFunc: func(context.Context, ethcommon.Hash) (*ethtypes.Receipt, error) {
				return nil, nodeErr
			},
		}

		_, err := WaitForReceipt(context.Background(), client, txHash, time.Minute)
		require.ErrorIs(t, err, nodeErr)
	})
}
