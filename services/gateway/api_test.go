package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/NilFoundation/ledger-gateway/common/logging"
	"github.com/NilFoundation/ledger-gateway/internal/ledger"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/suite"
)

type LedgerAPITestSuite struct {
	suite.Suite

	ctx       context.Context
	contracts *ContractHolder
	ledger    *fakeLedger
	api       *LedgerAPIImpl
}

func TestLedgerAPISuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(LedgerAPITestSuite))
}

func (s *LedgerAPITestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ledger = newFakeLedger()
	s.contracts = &ContractHolder{}
	s.contracts.Set(s.ledger)
	s.api = NewLedgerAPI(s.contracts, DefaultTokenSymbol, nil, logging.NewLogger("api_test"))
}

func (s *LedgerAPITestSuite) balanceOf(name string) string {
	s.T().Helper()
	balance, err := s.api.GetBalance(s.ctx, name)
	s.Require().NoError(err)
	return balance.Balance
}

func (s *LedgerAPITestSuite) Test_Register() {
	message, err := s.api.Register(s.ctx, "  alice ", "100")
	s.Require().NoError(err)
	s.Equal("User 'alice' registered with 100 GACHON.", message)

	s.Equal("100", s.balanceOf("alice"))
}

func (s *LedgerAPITestSuite) Test_Register_Validation() {
	testCases := []struct {
		name    string
		balance Amount
	}{
		{"", "100"},
		{"   ", "100"},
		{"alice", ""},
		{"alice", "-1"},
		{"alice", "ten"},
	}
	for _, testCase := range testCases {
		_, err := s.api.Register(s.ctx, testCase.name, testCase.balance)
		s.Require().ErrorIs(err, ErrValidation, "name %q balance %q", testCase.name, testCase.balance)
	}
	s.Zero(s.ledger.callCount())
}

func (s *LedgerAPITestSuite) Test_Register_ZeroBalance() {
	_, err := s.api.Register(s.ctx, "alice", "0")
	s.Require().NoError(err)
	s.Equal("0", s.balanceOf("alice"))
}

func (s *LedgerAPITestSuite) Test_Register_RevertReason() {
	_, err := s.api.Register(s.ctx, "alice", "1")
	s.Require().NoError(err)

	_, err = s.api.Register(s.ctx, "alice", "1")
	s.Require().ErrorIs(err, ledger.ErrReverted)
	s.Equal("register failed: User already exists", err.Error())
}

func (s *LedgerAPITestSuite) Test_Transfer() {
	_, err := s.api.Register(s.ctx, "alice", "100")
	s.Require().NoError(err)
	_, err = s.api.Register(s.ctx, "bob", "5")
	s.Require().NoError(err)

	message, err := s.api.Transfer(s.ctx, "alice", " bob", "30")
	s.Require().NoError(err)
	s.Equal("'alice' sent 30 GACHON to 'bob'.", message)

	s.Equal("70", s.balanceOf("alice"))
	s.Equal("35", s.balanceOf("bob"))
}

func (s *LedgerAPITestSuite) Test_Transfer_InsufficientBalance() {
	_, err := s.api.Register(s.ctx, "alice", "10")
	s.Require().NoError(err)
	_, err = s.api.Register(s.ctx, "bob", "0")
	s.Require().NoError(err)

	_, err = s.api.Transfer(s.ctx, "alice", "bob", "11")
	s.Require().ErrorIs(err, ledger.ErrReverted)
	s.Equal("transfer failed: Insufficient balance", err.Error())

	s.Equal("10", s.balanceOf("alice"))
	s.Equal("0", s.balanceOf("bob"))
}

func (s *LedgerAPITestSuite) Test_Transfer_SameAccount() {
	_, err := s.api.Transfer(s.ctx, "alice", " alice ", "1")
	s.Require().ErrorIs(err, ErrValidation)
	s.Zero(s.ledger.callCount())
}

func (s *LedgerAPITestSuite) Test_Transfer_Validation() {
	testCases := []struct {
		from, to string
		amount   Amount
	}{
		{"", "bob", "1"},
		{"alice", " ", "1"},
		{"alice", "bob", "0"},
		{"alice", "bob", "-3"},
		{"alice", "bob", "1.5"},
		{"alice", "bob", ""},
	}
	for _, testCase := range testCases {
		_, err := s.api.Transfer(s.ctx, testCase.from, testCase.to, testCase.amount)
		s.Require().ErrorIs(err, ErrValidation, "%+v", testCase)
	}
	s.Zero(s.ledger.callCount())
}

func (s *LedgerAPITestSuite) Test_GetBalance_Unregistered() {
	balance, err := s.api.GetBalance(s.ctx, " nobody ")
	s.Require().NoError(err)
	s.Equal(&BalanceResponse{Name: "nobody", Balance: "0"}, balance)
}

func (s *LedgerAPITestSuite) Test_GetBalance_LargeValue() {
	const large = "115792089237316195423570985008687907853269984665640564039457584007913129639935"
	_, err := s.api.Register(s.ctx, "whale", large)
	s.Require().NoError(err)
	s.Equal(large, s.balanceOf("whale"))
}

func (s *LedgerAPITestSuite) Test_GetBalance_Blank() {
	_, err := s.api.GetBalance(s.ctx, "  ")
	s.Require().ErrorIs(err, ErrValidation)
}

func (s *LedgerAPITestSuite) Test_NodeError() {
	nodeErr := errors.New("dial tcp 127.0.0.1:8545: connect: connection refused")
	contract := &ledger.ContractMock{
		BalanceOfFunc: func(context.Context, string) (*uint256.Int, error) {
			return nil, nodeErr
		},
	}
	s.contracts.Set(contract)

	_, err := s.api.GetBalance(s.ctx, "alice")
	s.Require().ErrorIs(err, nodeErr)
	s.Equal("balance query failed: "+nodeErr.Error(), err.Error())
	s.Require().Len(contract.BalanceOfCalls(), 1)
	s.Equal("alice", contract.BalanceOfCalls()[0].Name)
}

func (s *LedgerAPITestSuite) Test_NotReady() {
	api := NewLedgerAPI(&ContractHolder{}, DefaultTokenSymbol, nil, logging.NewLogger("api_test"))

	_, err := api.Register(s.ctx, "alice", "1")
	s.Require().ErrorIs(err, ErrContractNotReady)
	_, err = api.Transfer(s.ctx, "alice", "bob", "1")
	s.Require().ErrorIs(err, ErrContractNotReady)
	_, err = api.GetBalance(s.ctx, "alice")
	s.Require().ErrorIs(err, ErrContractNotReady)
}

func (s *LedgerAPITestSuite) Test_ValidationBeforeReadiness() {
	api := NewLedgerAPI(&ContractHolder{}, DefaultTokenSymbol, nil, logging.NewLogger("api_test"))

	_, err := api.Transfer(s.ctx, "alice", "alice", "1")
	s.Require().ErrorIs(err, ErrValidation)
}

func (s *LedgerAPITestSuite) Test_TokenSymbol() {
	api := NewLedgerAPI(s.contracts, "TKN", nil, logging.NewLogger("api_test"))
	message, err := api.Register(s.ctx, "carol", "7")
	s.Require().NoError(err)
	s.Contains(message, "7 TKN")

	s.Equal(ethcommon.HexToAddress("0xfa5063c527b052357496c75bf0b364687f07b46b"), s.ledger.Address())
}
