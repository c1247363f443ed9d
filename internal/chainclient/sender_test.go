package chainclient

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/suite"
)

const testPrivateKey = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"

type SenderTestSuite struct {
	suite.Suite

	ctx       context.Context
	ethClient *EthClientMock
	contract  ethcommon.Address
}

func TestSenderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SenderTestSuite))
}

func (s *SenderTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.contract = ethcommon.HexToAddress("0xfa5063c527b052357496c75bf0b364687f07b46b")
	s.ethClient = &EthClientMock{
		ChainIDFunc:         func(context.Context) (*big.Int, error) { return big.NewInt(1337), nil },
		PendingNonceAtFunc:  func(context.Context, ethcommon.Address) (uint64, error) { return 7, nil },
		SuggestGasPriceFunc: func(context.Context) (*big.Int, error) { return big.NewInt(2_000_000_000), nil },
		EstimateGasFunc:     func(context.Context, ethereum.CallMsg) (uint64, error) { return 54_321, nil },
	}
}

func (s *SenderTestSuite) TestNodeAccountSender_FirstAccount() {
	accounts := []ethcommon.Address{
		ethcommon.HexToAddress("0x627306090abab3a6e1400e9345bc60c78a8bef57"),
		ethcommon.HexToAddress("0xf17f52151ebef6c7334fad080c5704d77216b732"),
	}
	txHash := ethcommon.HexToHash("0x1234")
	var sentArgs map[string]any

	s.ethClient.RawCallFunc = func(_ context.Context, result any, method string, args ...any) error {
		switch method {
		case "eth_accounts":
			*(result.(*[]ethcommon.Address)) = accounts
		case "eth_sendTransaction":
			s.Require().Len(args, 1)
			sentArgs = args[0].(map[string]any)
			*(result.(*ethcommon.Hash)) = txHash
		default:
			s.Failf("unexpected method", "%s", method)
		}
		return nil
	}

	gasPrice := big.NewInt(30_000_000_000)
	sender, err := NewNodeAccountSender(s.ctx, s.ethClient, nil, gasPrice)
	s.Require().NoError(err)
	s.Equal(accounts[0], sender.From())

	hash, err := sender.Send(s.ctx, TxRequest{To: &s.contract, Data: []byte{1, 2, 3}, Gas: 1_000_000})
	s.Require().NoError(err)
	s.Equal(txHash, hash)

	s.Equal(accounts[0], sentArgs["from"])
	s.Equal(s.contract, sentArgs["to"])
	s.Equal(hexutil.Bytes{1, 2, 3}, sentArgs["data"])
	s.Equal(hexutil.Uint64(1_000_000), sentArgs["gas"])
	s.Equal((*hexutil.Big)(gasPrice), sentArgs["gasPrice"])
}

func (s *SenderTestSuite) TestNodeAccountSender_Deploy() {
	from := ethcommon.HexToAddress("0x627306090abab3a6e1400e9345bc60c78a8bef57")
	var sentArgs map[string]any
	s.ethClient.RawCallFunc = func(_ context.Context, result any, method string, args ...any) error {
		s.Equal("eth_sendTransaction", method)
		sentArgs = args[0].(map[string]any)
		return nil
	}

	sender, err := NewNodeAccountSender(s.ctx, s.ethClient, &from, nil)
	s.Require().NoError(err)

	_, err = sender.Send(s.ctx, TxRequest{Data: []byte{0x60, 0x80}})
	s.Require().NoError(err)

	s.NotContains(sentArgs, "to")
	s.NotContains(sentArgs, "gas")
	s.NotContains(sentArgs, "gasPrice")
	s.Len(s.ethClient.RawCallCalls(), 1)
}

func (s *SenderTestSuite) TestNodeAccountSender_NoAccounts() {
	s.ethClient.RawCallFunc = func(context.Context, any, string, ...any) error {
		return nil
	}

	_, err := NewNodeAccountSender(s.ctx, s.ethClient, nil, nil)
	s.Require().ErrorIs(err, ErrNoAccounts)
}

func (s *SenderTestSuite) TestNodeAccountSender_SendError() {
	from := ethcommon.HexToAddress("0x627306090abab3a6e1400e9345bc60c78a8bef57")
	reverted := errors.New("VM Exception while processing transaction: revert Not registered")
	s.ethClient.RawCallFunc = func(context.Context, any, string, ...any) error {
		return reverted
	}

	sender, err := NewNodeAccountSender(s.ctx, s.ethClient, &from, nil)
	s.Require().NoError(err)

	_, err = sender.Send(s.ctx, TxRequest{To: &s.contract})
	s.Require().ErrorIs(err, reverted)
}

func (s *SenderTestSuite) TestKeySender_SignsLegacyTx() {
	var sent *ethtypes.Transaction
	s.ethClient.SendTransactionFunc = func(_ context.Context, tx *ethtypes.Transaction) error {
		sent = tx
		return nil
	}

	gasPrice := big.NewInt(30_000_000_000)
	sender, err := NewKeySender(s.ctx, s.ethClient, testPrivateKey, gasPrice)
	s.Require().NoError(err)

	hash, err := sender.Send(s.ctx, TxRequest{To: &s.contract, Data: []byte{4, 5, 6}, Gas: 1_000_000})
	s.Require().NoError(err)
	s.Require().NotNil(sent)

	s.Equal(sent.Hash(), hash)
	s.Equal(uint64(7), sent.Nonce())
	s.Equal(uint64(1_000_000), sent.Gas())
	s.Equal(gasPrice, sent.GasPrice())
	s.Equal(&s.contract, sent.To())
	s.Equal([]byte{4, 5, 6}, sent.Data())

	signer, err := ethtypes.Sender(ethtypes.LatestSignerForChainID(big.NewInt(1337)), sent)
	s.Require().NoError(err)
	s.Equal(sender.From(), signer)

	s.Empty(s.ethClient.EstimateGasCalls())
	s.Empty(s.ethClient.SuggestGasPriceCalls())
}

func (s *SenderTestSuite) TestKeySender_EstimatesMissingValues() {
	var sent *ethtypes.Transaction
	s.ethClient.SendTransactionFunc = func(_ context.Context, tx *ethtypes.Transaction) error {
		sent = tx
		return nil
	}

	sender, err := NewKeySender(s.ctx, s.ethClient, testPrivateKey, nil)
	s.Require().NoError(err)

	_, err = sender.Send(s.ctx, TxRequest{To: &s.contract, Data: []byte{1}})
	s.Require().NoError(err)

	s.Equal(uint64(54_321), sent.Gas())
	s.Equal(big.NewInt(2_000_000_000), sent.GasPrice())
	s.Require().Len(s.ethClient.EstimateGasCalls(), 1)
	s.Equal(sender.From(), s.ethClient.EstimateGasCalls()[0].Call.From)
}

func (s *SenderTestSuite) TestKeySender_EstimateRevert() {
	reverted := errors.New("execution reverted: Insufficient balance")
	s.ethClient.EstimateGasFunc = func(context.Context, ethereum.CallMsg) (uint64, error) {
		return 0, reverted
	}

	sender, err := NewKeySender(s.ctx, s.ethClient, testPrivateKey, big.NewInt(1))
	s.Require().NoError(err)

	_, err = sender.Send(s.ctx, TxRequest{To: &s.contract})
	s.Require().ErrorIs(err, reverted)
	s.Empty(s.ethClient.SendTransactionCalls())
}

func (s *SenderTestSuite) TestKeySender_InvalidKey() {
	_, err := NewKeySender(s.ctx, s.ethClient, "not a key", nil)
	s.Require().Error(err)
	s.Empty(s.ethClient.ChainIDCalls())
}
