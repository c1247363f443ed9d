package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NilFoundation/ledger-gateway/services/gateway"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configSection  = "gateway"
	envPrefix      = "LEDGERGW"
	configName     = "ledgergw"
	defaultCfgFile = configName + ".ini"
)

const initConfigTemplate = `; Configuration of the ledger gateway.
; Every key can also be set with a flag (--rpc-endpoint) or an environment
; variable (LEDGERGW_GATEWAY_RPC_ENDPOINT).

[gateway]
; HTTP listen address
endpoint = 0.0.0.0:3000

; JSON-RPC endpoint of the node (ganache, geth --dev)
rpc_endpoint = http://127.0.0.1:8545

; Attach to an already deployed contract...
; contract_address = 0x...

; ...or take the ABI, bytecode and recorded deployments from a truffle artifact.
artifact = build/contracts/gachonCoin.json
; redeploy = false

; Sign locally with this key instead of using the node's first unlocked account.
; private_key = ...
; from = 0x...

gas_limit = 1000000
deploy_gas_limit = 1500000
gas_price_gwei = 30
receipt_timeout = 2m

token_symbol = GACHON
; page = views/index.html
metrics = false
`

// flag name -> config key
var configFlags = map[string]string{
	"endpoint":         "endpoint",
	"rpc-endpoint":     "rpc_endpoint",
	"contract-address": "contract_address",
	"artifact":         "artifact",
	"redeploy":         "redeploy",
	"from":             "from",
	"private-key":      "private_key",
	"gas-limit":        "gas_limit",
	"deploy-gas-limit": "deploy_gas_limit",
	"gas-price-gwei":   "gas_price_gwei",
	"receipt-timeout":  "receipt_timeout",
	"token-symbol":     "token_symbol",
	"page":             "page",
	"metrics":          "metrics",
}

func addConfigFlags(flags *pflag.FlagSet) {
	def := gateway.DefaultConfig()

	flags.String("endpoint", def.Endpoint, "HTTP listen address")
	flags.String("rpc-endpoint", def.RpcEndpoint, "JSON-RPC endpoint of the node")
	flags.String("contract-address", "", "address of a deployed ledger contract")
	flags.String("artifact", "", "path to the truffle artifact of the ledger contract")
	flags.Bool("redeploy", false, "deploy a new contract even if the artifact records one for this network")
	flags.String("from", "", "node account to send transactions from (default: first account)")
	flags.String("private-key", "", "hex private key to sign transactions locally")
	flags.Uint64("gas-limit", def.GasLimit, "gas limit of ledger transactions")
	flags.Uint64("deploy-gas-limit", def.DeployGasLimit, "gas limit of the deployment transaction")
	flags.Uint64("gas-price-gwei", def.GasPriceGwei, "gas price in gwei, 0 lets the node decide")
	flags.Duration("receipt-timeout", def.ReceiptTimeout, "how long to wait for a transaction to be mined")
	flags.String("token-symbol", def.TokenSymbol, "token symbol used in responses")
	flags.String("page", "", "HTML page template to serve instead of the built-in one")
	flags.Bool("metrics", def.Metrics, "export metrics over OTLP gRPC")
}

func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for flagName, key := range configFlags {
		flag := flags.Lookup(flagName)
		if flag == nil {
			return nil, fmt.Errorf("flag %q is not defined", flagName)
		}
		if err := v.BindPFlag(configSection+"."+key, flag); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// setConfigFile points viper at cfgFile, or at ledgergw.{ini,yaml,toml} in the usual places.
func setConfigFile(v *viper.Viper, cfgFile string) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		return
	}
	v.SetConfigName(configName)
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", configName))
	}
}

// readConfigFile reads the config file. Only an explicitly requested file must exist.
func readConfigFile(v *viper.Viper, cfgFile string) error {
	setConfigFile(v, cfgFile)
	err := v.ReadInConfig()
	if err == nil {
		logger.Debug().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
		return nil
	}
	if cfgFile == "" && errors.As(err, new(viper.ConfigFileNotFoundError)) {
		return nil
	}
	return fmt.Errorf("failed to read config file: %w", err)
}

func decodeConfig(v *viper.Viper) (*gateway.Config, error) {
	cfg := gateway.DefaultConfig()

	section, _ := v.AllSettings()[configSection].(map[string]any)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(section); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return cfg, nil
}

func loadConfig(v *viper.Viper, cfgFile string) (*gateway.Config, error) {
	if err := readConfigFile(v, cfgFile); err != nil {
		return nil, err
	}
	return decodeConfig(v)
}

func initConfigFile(path string) (string, error) {
	if path == "" {
		path = defaultCfgFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(initConfigTemplate); err != nil {
		return "", fmt.Errorf("failed to write template to config file: %w", err)
	}
	return path, nil
}

// renderConfig prints the effective [gateway] section as YAML with the private key masked.
func renderConfig(v *viper.Viper) ([]byte, error) {
	section, _ := v.AllSettings()[configSection].(map[string]any)
	if key, _ := section["private_key"].(string); key != "" {
		section["private_key"] = "<hidden>"
	}
	out, err := yaml.Marshal(map[string]any{configSection: section})
	if err != nil {
		return nil, fmt.Errorf("failed to render config: %w", err)
	}
	return out, nil
}
