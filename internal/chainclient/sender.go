package chainclient

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

//go:generate go run github.com/matryer/moq -out sender_generated_mock.go -rm -stub -with-resets . Sender

var ErrNoAccounts = errors.New("node has no unlocked accounts")

// TxRequest describes a state-changing transaction. A nil To creates a contract.
type TxRequest struct {
	To   *ethcommon.Address
	Data []byte
	// Gas is the gas limit; zero lets the node (or EstimateGas) decide.
	Gas uint64
}

// Sender submits transactions on behalf of one account and returns their hashes.
type Sender interface {
	From() ethcommon.Address
	Send(ctx context.Context, req TxRequest) (ethcommon.Hash, error)
}

// NodeAccountSender sends through eth_sendTransaction, so the node signs with one of its unlocked accounts.
type NodeAccountSender struct {
	client   EthClient
	from     ethcommon.Address
	gasPrice *big.Int
}

var _ Sender = (*NodeAccountSender)(nil)

// NewNodeAccountSender uses from if it is set, otherwise the first account reported by eth_accounts.
// A nil or zero gasPrice leaves the price to the node.
func NewNodeAccountSender(
	ctx context.Context,
	client EthClient,
	from *ethcommon.Address,
	gasPrice *big.Int,
) (*NodeAccountSender, error) {
	s := &NodeAccountSender{client: client, gasPrice: gasPrice}
	if from != nil {
		s.from = *from
		return s, nil
	}

	var accounts []ethcommon.Address
	if err := client.RawCall(ctx, &accounts, "eth_accounts"); err != nil {
		return nil, fmt.Errorf("failed to fetch node accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}
	s.from = accounts[0]
	return s, nil
}

func (s *NodeAccountSender) From() ethcommon.Address {
	return s.from
}

func (s *NodeAccountSender) Send(ctx context.Context, req TxRequest) (ethcommon.Hash, error) {
	args := map[string]any{
		"from": s.from,
		"data": hexutil.Bytes(req.Data),
	}
	if req.To != nil {
		args["to"] = *req.To
	}
	if req.Gas != 0 {
		args["gas"] = hexutil.Uint64(req.Gas)
	}
	if s.gasPrice != nil && s.gasPrice.Sign() > 0 {
		args["gasPrice"] = (*hexutil.Big)(s.gasPrice)
	}

	var hash ethcommon.Hash
	if err := s.client.RawCall(ctx, &hash, "eth_sendTransaction", args); err != nil {
		return ethcommon.Hash{}, err
	}
	return hash, nil
}

// KeySender signs legacy transactions locally.
type KeySender struct {
	client     EthClient
	privateKey *ecdsa.PrivateKey
	from       ethcommon.Address
	chainID    *big.Int
	gasPrice   *big.Int

	// nonce allocation and submission must not interleave
	mu sync.Mutex
}

var _ Sender = (*KeySender)(nil)

func NewKeySender(
	ctx context.Context,
	client EthClient,
	privateKeyHex string,
	gasPrice *big.Int,
) (*KeySender, error) {
	privateKeyECDSA, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("converting private key hex to ECDSA: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve chain ID: %w", err)
	}

	return &KeySender{
		client:     client,
		privateKey: privateKeyECDSA,
		from:       crypto.PubkeyToAddress(privateKeyECDSA.PublicKey),
		chainID:    chainID,
		gasPrice:   gasPrice,
	}, nil
}

func (s *KeySender) From() ethcommon.Address {
	return s.from
}

func (s *KeySender) Send(ctx context.Context, req TxRequest) (ethcommon.Hash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nonce, err := s.client.PendingNonceAt(ctx, s.from)
	if err != nil {
		return ethcommon.Hash{}, fmt.Errorf("failed to fetch nonce: %w", err)
	}

	gasPrice := s.gasPrice
	if gasPrice == nil || gasPrice.Sign() == 0 {
		if gasPrice, err = s.client.SuggestGasPrice(ctx); err != nil {
			return ethcommon.Hash{}, fmt.Errorf("failed to suggest gas price: %w", err)
		}
	}

	gas := req.Gas
	if gas == 0 {
		// reverts surface here, before anything is broadcast
		gas, err = s.client.EstimateGas(ctx, ethereum.CallMsg{
			From:     s.from,
			To:       req.To,
			GasPrice: gasPrice,
			Data:     req.Data,
		})
		if err != nil {
			return ethcommon.Hash{}, err
		}
	}

	tx := ethtypes.NewTx(&ethtypes.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       req.To,
		Data:     req.Data,
	})
	signed, err := ethtypes.SignTx(tx, ethtypes.LatestSignerForChainID(s.chainID), s.privateKey)
	if err != nil {
		return ethcommon.Hash{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := s.client.SendTransaction(ctx, signed); err != nil {
		return ethcommon.Hash{}, err
	}
	return signed.Hash(), nil
}
