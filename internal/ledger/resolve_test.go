package ledger

import (
	"context"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/NilFoundation/ledger-gateway/common/logging"
	"github.com/NilFoundation/ledger-gateway/internal/chainclient"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/suite"
)

type ResolveTestSuite struct {
	suite.Suite

	ctx          context.Context
	logger       logging.Logger
	ethClient    *chainclient.EthClientMock
	sender       *chainclient.SenderMock
	artifactPath string
	recorded     ethcommon.Address
	deployed     ethcommon.Address
	codeAt       map[ethcommon.Address]bool
}

func TestResolveSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ResolveTestSuite))
}

func (s *ResolveTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.logger = logging.NewLogger("resolve_test")
	s.recorded = ethcommon.HexToAddress("0xfa5063c527b052357496c75bf0b364687f07b46b")
	s.deployed = ethcommon.HexToAddress("0x345ca3e014aaf5dca488057592ee47305d9b3e10")
	s.codeAt = map[ethcommon.Address]bool{s.deployed: true}

	s.artifactPath = filepath.Join(s.T().TempDir(), "gachonCoin.json")
	s.Require().NoError(os.WriteFile(s.artifactPath, testArtifactJSON(string(DefaultABI())), 0o600))

	s.ethClient = &chainclient.EthClientMock{
		NetworkIDFunc: func(context.Context) (*big.Int, error) { return big.NewInt(5777), nil },
		CodeAtFunc: func(_ context.Context, address ethcommon.Address, _ *big.Int) ([]byte, error) {
			if s.codeAt[address] {
				return []byte{0x60, 0x80}, nil
			}
			return nil, nil
		},
		TransactionReceiptFunc: func(_ context.Context, hash ethcommon.Hash) (*ethtypes.Receipt, error) {
			return &ethtypes.Receipt{
				Status:          ethtypes.ReceiptStatusSuccessful,
				TxHash:          hash,
				ContractAddress: s.deployed,
				BlockNumber:     big.NewInt(1),
			}, nil
		},
	}
	s.sender = &chainclient.SenderMock{
		SendFunc: func(context.Context, chainclient.TxRequest) (ethcommon.Hash, error) {
			return ethcommon.HexToHash("0xd3"), nil
		},
	}
}

func (s *ResolveTestSuite) resolve(params ResolveParams) (Contract, error) {
	s.T().Helper()
	params.Options = DefaultOptions()
	return Resolve(s.ctx, s.ethClient, s.sender, params, s.logger)
}

func (s *ResolveTestSuite) Test_ConfiguredAddress() {
	s.codeAt[s.recorded] = true

	contract, err := s.resolve(ResolveParams{Address: &s.recorded})
	s.Require().NoError(err)
	s.Equal(s.recorded, contract.Address())
	s.Empty(s.sender.SendCalls())
	s.Empty(s.ethClient.NetworkIDCalls())
}

func (s *ResolveTestSuite) Test_ConfiguredAddressWithoutCode() {
	_, err := s.resolve(ResolveParams{Address: &s.recorded, ArtifactPath: s.artifactPath})
	s.Require().ErrorIs(err, ErrNoCode)
	s.Empty(s.sender.SendCalls())
}

func (s *ResolveTestSuite) Test_RecordedDeployment() {
	s.codeAt[s.recorded] = true

	contract, err := s.resolve(ResolveParams{ArtifactPath: s.artifactPath})
	s.Require().NoError(err)
	s.Equal(s.recorded, contract.Address())
	s.Empty(s.sender.SendCalls())
}

func (s *ResolveTestSuite) Test_StaleRecordedDeployment() {
	contract, err := s.resolve(ResolveParams{ArtifactPath: s.artifactPath})
	s.Require().NoError(err)
	s.Equal(s.deployed, contract.Address())

	s.Require().Len(s.sender.SendCalls(), 1)
	req := s.sender.SendCalls()[0].Req
	s.Nil(req.To)
	s.Equal(DefaultDeployGasLimit, req.Gas)
	s.NotEmpty(req.Data)
}

func (s *ResolveTestSuite) Test_OtherNetwork() {
	s.ethClient.NetworkIDFunc = func(context.Context) (*big.Int, error) { return big.NewInt(1337), nil }
	s.codeAt[s.recorded] = true

	contract, err := s.resolve(ResolveParams{ArtifactPath: s.artifactPath})
	s.Require().NoError(err)
	s.Equal(s.deployed, contract.Address())
}

func (s *ResolveTestSuite) Test_Redeploy() {
	s.codeAt[s.recorded] = true

	contract, err := s.resolve(ResolveParams{ArtifactPath: s.artifactPath, Redeploy: true})
	s.Require().NoError(err)
	s.Equal(s.deployed, contract.Address())
	s.Empty(s.ethClient.NetworkIDCalls())
}

func (s *ResolveTestSuite) Test_DeploymentFails() {
	s.ethClient.TransactionReceiptFunc = func(_ context.Context, hash ethcommon.Hash) (*ethtypes.Receipt, error) {
		return &ethtypes.Receipt{Status: ethtypes.ReceiptStatusFailed, TxHash: hash}, nil
	}

	_, err := s.resolve(ResolveParams{ArtifactPath: s.artifactPath, Redeploy: true})
	s.Require().ErrorIs(err, ErrTxFailed)
}

func (s *ResolveTestSuite) Test_NetworkIdError() {
	nodeErr := errors.New("connection refused")
	s.ethClient.NetworkIDFunc = func(context.Context) (*big.Int, error) { return nil, nodeErr }

	_, err := s.resolve(ResolveParams{ArtifactPath: s.artifactPath})
	s.Require().ErrorIs(err, nodeErr)
	s.Empty(s.sender.SendCalls())
}

func (s *ResolveTestSuite) Test_NothingConfigured() {
	_, err := s.resolve(ResolveParams{})
	s.Require().ErrorIs(err, ErrNothingToResolve)
}
