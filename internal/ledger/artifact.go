package ledger

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Artifact is the build output of `truffle compile` (build/contracts/<Name>.json).
type Artifact struct {
	ContractName string                       `json:"contractName"`
	ABI          json.RawMessage              `json:"abi"`
	Bytecode     string                       `json:"bytecode"`
	Networks     map[string]NetworkDeployment `json:"networks"`
}

type NetworkDeployment struct {
	Address         string `json:"address"`
	TransactionHash string `json:"transactionHash,omitempty"`
}

func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}
	artifact, err := ParseArtifact(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return artifact, nil
}

func ParseArtifact(data []byte) (*Artifact, error) {
	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to decode artifact: %w", err)
	}
	if len(artifact.ABI) == 0 || string(artifact.ABI) == "null" {
		return nil, fmt.Errorf("artifact %q has no abi", artifact.ContractName)
	}
	if _, err := ParseABI(artifact.ABI); err != nil {
		return nil, err
	}
	return &artifact, nil
}

// Code returns the creation bytecode.
func (a *Artifact) Code() ([]byte, error) {
	bytecode := strings.TrimSpace(a.Bytecode)
	if bytecode == "" || bytecode == "0x" {
		return nil, ErrNoBytecode
	}
	if !strings.HasPrefix(bytecode, "0x") {
		bytecode = "0x" + bytecode
	}
	code, err := hexutil.Decode(bytecode)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode: %w", err)
	}
	return code, nil
}

// DeployedAddress returns the address truffle migrated the contract to on the given network.
func (a *Artifact) DeployedAddress(networkID *big.Int) (ethcommon.Address, error) {
	deployment, ok := a.Networks[networkID.String()]
	if !ok || !ethcommon.IsHexAddress(deployment.Address) {
		return ethcommon.Address{}, fmt.Errorf("%w %s", ErrNoDeployment, networkID)
	}
	return ethcommon.HexToAddress(deployment.Address), nil
}
