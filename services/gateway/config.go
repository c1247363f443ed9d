package gateway

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/NilFoundation/ledger-gateway/internal/chainclient"
	"github.com/NilFoundation/ledger-gateway/internal/ledger"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/params"
)

const (
	DefaultEndpoint     = "0.0.0.0:3000"
	DefaultRpcEndpoint  = "http://127.0.0.1:8545"
	DefaultGasPriceGwei = uint64(30)
	DefaultTokenSymbol  = "GACHON"
)

type Config struct {
	Endpoint    string `mapstructure:"endpoint"`
	RpcEndpoint string `mapstructure:"rpc_endpoint"`

	ContractAddress string `mapstructure:"contract_address"`
	Artifact        string `mapstructure:"artifact"`
	Redeploy        bool   `mapstructure:"redeploy"`

	From       string `mapstructure:"from"`
	PrivateKey string `mapstructure:"private_key"`

	GasLimit       uint64        `mapstructure:"gas_limit"`
	DeployGasLimit uint64        `mapstructure:"deploy_gas_limit"`
	GasPriceGwei   uint64        `mapstructure:"gas_price_gwei"`
	ReceiptTimeout time.Duration `mapstructure:"receipt_timeout"`

	TokenSymbol string `mapstructure:"token_symbol"`
	Page        string `mapstructure:"page"`
	Metrics     bool   `mapstructure:"metrics"`
}

func DefaultConfig() *Config {
	return &Config{
		Endpoint:       DefaultEndpoint,
		RpcEndpoint:    DefaultRpcEndpoint,
		GasLimit:       ledger.DefaultGasLimit,
		DeployGasLimit: ledger.DefaultDeployGasLimit,
		GasPriceGwei:   DefaultGasPriceGwei,
		ReceiptTimeout: chainclient.DefaultReceiptTimeout,
		TokenSymbol:    DefaultTokenSymbol,
	}
}

func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Endpoint) == "" {
		errs = append(errs, errors.New("endpoint must not be empty"))
	}
	if strings.TrimSpace(c.RpcEndpoint) == "" {
		errs = append(errs, errors.New("rpc_endpoint must not be empty"))
	}
	if c.ContractAddress == "" && c.Artifact == "" {
		errs = append(errs, fmt.Errorf("%w: set contract_address or artifact", ledger.ErrNothingToResolve))
	}
	if c.ContractAddress != "" && !ethcommon.IsHexAddress(c.ContractAddress) {
		errs = append(errs, fmt.Errorf("contract_address %q is not a hex address", c.ContractAddress))
	}
	if c.From != "" && !ethcommon.IsHexAddress(c.From) {
		errs = append(errs, fmt.Errorf("from %q is not a hex address", c.From))
	}
	if c.PrivateKey != "" {
		if c.From != "" {
			errs = append(errs, errors.New("from and private_key are mutually exclusive"))
		}
		if _, err := crypto.HexToECDSA(c.privateKeyHex()); err != nil {
			errs = append(errs, fmt.Errorf("private_key is invalid: %w", err))
		}
	}
	if c.ReceiptTimeout < 0 {
		errs = append(errs, fmt.Errorf("receipt_timeout must not be negative, got %s", c.ReceiptTimeout))
	}
	if strings.TrimSpace(c.TokenSymbol) == "" {
		errs = append(errs, errors.New("token_symbol must not be empty"))
	}
	return errors.Join(errs...)
}

// GasPrice converts the configured price to wei. Nil means the node decides.
func (c *Config) GasPrice() *big.Int {
	if c.GasPriceGwei == 0 {
		return nil
	}
	return new(big.Int).Mul(new(big.Int).SetUint64(c.GasPriceGwei), big.NewInt(params.GWei))
}

func (c *Config) ResolveParams() ledger.ResolveParams {
	return ledger.ResolveParams{
		Address:      optionalAddress(c.ContractAddress),
		ArtifactPath: c.Artifact,
		Redeploy:     c.Redeploy,
		Options: ledger.Options{
			GasLimit:       c.GasLimit,
			DeployGasLimit: c.DeployGasLimit,
			ReceiptTimeout: c.ReceiptTimeout,
		},
	}
}

func (c *Config) privateKeyHex() string {
	return strings.TrimPrefix(strings.TrimSpace(c.PrivateKey), "0x")
}

func optionalAddress(hex string) *ethcommon.Address {
	if hex == "" {
		return nil
	}
	address := ethcommon.HexToAddress(hex)
	return &address
}
