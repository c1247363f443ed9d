package chainclient

import (
	"context"
	"fmt"
	"math/big"

	"github.com/NilFoundation/ledger-gateway/common/logging"
	"github.com/NilFoundation/ledger-gateway/common/version"
	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

//go:generate go run github.com/matryer/moq -out eth_client_generated_mock.go -rm -stub -with-resets . EthClient

// EthClient is the part of the node API used by the gateway.
type EthClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	NetworkID(ctx context.Context) (*big.Int, error)
	CodeAt(ctx context.Context, contract ethcommon.Address, blockNumber *big.Int) ([]byte, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account ethcommon.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error
	TransactionReceipt(ctx context.Context, txHash ethcommon.Hash) (*ethtypes.Receipt, error)

	// RawCall performs a JSON-RPC call that has no typed wrapper in ethclient.
	RawCall(ctx context.Context, result any, method string, args ...any) error
}

type Client struct {
	*ethclient.Client
	rpcClient *rpc.Client
	logger    logging.Logger
}

var _ EthClient = (*Client)(nil)

// Dial connects to the node. The connection is shared by all requests and closed with Close.
func Dial(ctx context.Context, endpoint string, logger logging.Logger) (*Client, error) {
	rpcClient, err := rpc.DialOptions(
		ctx,
		endpoint,
		rpc.WithHeader("User-Agent", "ledgergw/"+version.GetGitRevision()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", endpoint, err)
	}

	logger.Info().Str(logging.FieldEndpoint, endpoint).Msg("Connected to node")

	return &Client{
		Client:    ethclient.NewClient(rpcClient),
		rpcClient: rpcClient,
		logger:    logger,
	}, nil
}

func (c *Client) RawCall(ctx context.Context, result any, method string, args ...any) error {
	c.logger.Trace().Str(logging.FieldRpcMethod, method).Msg("Raw RPC call")
	return c.rpcClient.CallContext(ctx, result, method, args...)
}
