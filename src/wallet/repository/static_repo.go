package repository

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/MMN3003/lightcone/src/logger"
	"github.com/MMN3003/lightcone/src/wallet/domain"
	"github.com/ethereum/go-ethereum/common"
	"sigs.k8s.io/yaml"
)

var _ domain.TableSource = (*StaticRepo)(nil)

//go:embed data/mainnet.yaml
var mainnetTable []byte

// maxDigits bounds the base-unit exponent to what fits in a uint256 amount.
const maxDigits = 77

// StaticRepo serves a deployment table compiled into the binary.
type StaticRepo struct {
	data []byte
	log  *logger.Logger
}

// NewStaticRepo returns the repo for the embedded mainnet deployment.
func NewStaticRepo(log *logger.Logger) *StaticRepo {
	return &StaticRepo{data: mainnetTable, log: log}
}

// NewRepoFromBytes serves an arbitrary YAML table, mostly for tests.
func NewRepoFromBytes(data []byte, log *logger.Logger) *StaticRepo {
	return &StaticRepo{data: data, log: log}
}

func (r *StaticRepo) Load() (*domain.Table, error) {
	t, err := Parse(r.data)
	if err != nil {
		r.log.Errorf("failed to load deployment table: %v", err)
		return nil, err
	}
	r.log.Infof("deployment table loaded: chain=%d tokens=%d markets=%d gasLimits=%d fees=%d",
		t.ChainID, len(t.Tokens), len(t.Markets), len(t.GasLimits), len(t.Fees))
	return t, nil
}

// Parse decodes and validates a YAML deployment table. Unknown fields are rejected.
func Parse(data []byte) (*domain.Table, error) {
	var t domain.Table
	if err := yaml.UnmarshalStrict(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTable, err)
	}
	if err := Validate(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks the cross-references and uniqueness constraints of a table.
func Validate(t *domain.Table) error {
	if t.ChainID <= 0 {
		return fmt.Errorf("%w: chain id must be positive, got %d", domain.ErrInvalidTable, t.ChainID)
	}
	if t.MaxFeeBips < 0 || t.MaxFeeBips > 10000 {
		return fmt.Errorf("%w: max fee bips out of range: %d", domain.ErrInvalidTable, t.MaxFeeBips)
	}
	if !common.IsHexAddress(t.ExchangeAddress) {
		return fmt.Errorf("%w: exchange address %q", domain.ErrInvalidTable, t.ExchangeAddress)
	}

	symbols := make(map[string]struct{}, len(t.Tokens))
	addresses := make(map[common.Address]string, len(t.Tokens))
	ids := make(map[int]string, len(t.Tokens))
	for _, tok := range t.Tokens {
		if tok.Symbol == "" || strings.TrimSpace(tok.Symbol) != tok.Symbol {
			return fmt.Errorf("%w: token %d has an empty or padded symbol", domain.ErrInvalidTable, tok.ID)
		}
		if _, dup := symbols[tok.Symbol]; dup {
			return fmt.Errorf("%w: duplicate token symbol %s", domain.ErrInvalidTable, tok.Symbol)
		}
		symbols[tok.Symbol] = struct{}{}

		if !common.IsHexAddress(tok.Address) {
			return fmt.Errorf("%w: token %s has malformed address %q", domain.ErrInvalidTable, tok.Symbol, tok.Address)
		}
		addr := common.HexToAddress(tok.Address)
		if other, dup := addresses[addr]; dup {
			return fmt.Errorf("%w: tokens %s and %s share address %s", domain.ErrInvalidTable, other, tok.Symbol, addr.Hex())
		}
		addresses[addr] = tok.Symbol

		if other, dup := ids[tok.ID]; dup {
			return fmt.Errorf("%w: tokens %s and %s share id %d", domain.ErrInvalidTable, other, tok.Symbol, tok.ID)
		}
		ids[tok.ID] = tok.Symbol

		if tok.Digits < 0 || tok.Digits > maxDigits {
			return fmt.Errorf("%w: token %s digits out of range: %d", domain.ErrInvalidTable, tok.Symbol, tok.Digits)
		}
		if tok.Precision < 0 {
			return fmt.Errorf("%w: token %s has negative precision", domain.ErrInvalidTable, tok.Symbol)
		}
	}

	markets := make(map[string]struct{}, len(t.Markets))
	for _, m := range t.Markets {
		if _, ok := symbols[m.BaseSymbol]; !ok {
			return fmt.Errorf("%w: market %s references unknown token %s", domain.ErrInvalidTable, m.Name(), m.BaseSymbol)
		}
		if _, ok := symbols[m.QuoteSymbol]; !ok {
			return fmt.Errorf("%w: market %s references unknown token %s", domain.ErrInvalidTable, m.Name(), m.QuoteSymbol)
		}
		if m.BaseSymbol == m.QuoteSymbol {
			return fmt.Errorf("%w: market %s trades a token against itself", domain.ErrInvalidTable, m.Name())
		}
		if m.PricePrecision < 0 {
			return fmt.Errorf("%w: market %s has negative price precision", domain.ErrInvalidTable, m.Name())
		}
		// A pair may only be listed in one orientation, otherwise the
		// two-way symbol lookup is ambiguous.
		reverse := m.QuoteSymbol + "-" + m.BaseSymbol
		if _, dup := markets[m.Name()]; dup {
			return fmt.Errorf("%w: duplicate market %s", domain.ErrInvalidTable, m.Name())
		}
		if _, dup := markets[reverse]; dup {
			return fmt.Errorf("%w: market %s is also listed as %s", domain.ErrInvalidTable, m.Name(), reverse)
		}
		markets[m.Name()] = struct{}{}
	}

	gasTypes := make(map[string]struct{}, len(t.GasLimits))
	for _, g := range t.GasLimits {
		if g.Type == "" {
			return fmt.Errorf("%w: gas limit with empty type", domain.ErrInvalidTable)
		}
		if _, dup := gasTypes[g.Type]; dup {
			return fmt.Errorf("%w: duplicate gas limit %s", domain.ErrInvalidTable, g.Type)
		}
		if g.GasInWEI <= 0 {
			return fmt.Errorf("%w: gas limit %s must be positive", domain.ErrInvalidTable, g.Type)
		}
		gasTypes[g.Type] = struct{}{}
	}

	feeTypes := make(map[string]struct{}, len(t.Fees))
	for _, f := range t.Fees {
		if f.Type == "" {
			return fmt.Errorf("%w: fee with empty type", domain.ErrInvalidTable)
		}
		if _, dup := feeTypes[f.Type]; dup {
			return fmt.Errorf("%w: duplicate fee %s", domain.ErrInvalidTable, f.Type)
		}
		if f.FeeInWEI.IsNegative() || !f.FeeInWEI.Equal(f.FeeInWEI.Truncate(0)) {
			return fmt.Errorf("%w: fee %s must be a non-negative integer, got %s", domain.ErrInvalidTable, f.Type, f.FeeInWEI)
		}
		feeTypes[f.Type] = struct{}{}
	}

	return nil
}
