package gateway

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/NilFoundation/ledger-gateway/internal/ledger"
)

const (
	abiPlaceholder     = "const contractABI = [];"
	addressPlaceholder = "const contractAddress = '';"
)

//go:embed views/index.html
var defaultPage string

type page struct {
	template string
}

// loadPage reads the page template from path, or uses the built-in one when path is empty.
func loadPage(path string) (*page, error) {
	if path == "" {
		return &page{template: defaultPage}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page template: %w", err)
	}
	template := string(data)
	if !strings.Contains(template, abiPlaceholder) || !strings.Contains(template, addressPlaceholder) {
		return nil, fmt.Errorf("page template %s lacks %q or %q", path, abiPlaceholder, addressPlaceholder)
	}
	return &page{template: template}, nil
}

// Render inlines the contract interface and address into the page scripts.
func (p *page) Render(contract ledger.Contract) string {
	var abiJSON bytes.Buffer
	json.HTMLEscape(&abiJSON, contract.ABIJSON())

	r := strings.NewReplacer(
		abiPlaceholder, "const contractABI = "+abiJSON.String()+";",
		addressPlaceholder, "const contractAddress = '"+contract.Address().Hex()+"';",
	)
	return r.Replace(p.template)
}
