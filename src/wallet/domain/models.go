package domain

import (
	"github.com/shopspring/decimal"
)

// Token is one entry of the deployment token table.
// Digits is the base-unit exponent: 1 token == 10^Digits base units.
type Token struct {
	ID        int    `json:"id"`
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Digits    int32  `json:"digits"`
	Precision int32  `json:"precision"`
}

type Market struct {
	BaseSymbol     string `json:"baseSymbol"`
	QuoteSymbol    string `json:"quoteSymbol"`
	PricePrecision int32  `json:"pricePrecision"`
}

// Name returns the BASE-QUOTE market name.
func (m Market) Name() string {
	return m.BaseSymbol + "-" + m.QuoteSymbol
}

type GasLimit struct {
	Type     string `json:"type"`
	GasInWEI int64  `json:"gasInWEI"`
}

type Fee struct {
	Type     string          `json:"type"`
	FeeInWEI decimal.Decimal `json:"feeInWEI"`
}

// Table is the full static configuration of one exchange deployment.
type Table struct {
	ChainID         int64      `json:"chainId"`
	MaxFeeBips      int        `json:"maxFeeBips"`
	ExchangeAddress string     `json:"exchangeAddress"`
	Tokens          []Token    `json:"tokens"`
	Markets         []Market   `json:"markets"`
	GasLimits       []GasLimit `json:"gasLimits"`
	Fees            []Fee      `json:"fees"`
}

// TokenCheck is the result of comparing a token's configured digits with
// the decimals reported by its contract.
type TokenCheck struct {
	Symbol     string
	Address    string
	Configured int32
	OnChain    uint8
	Err        error
}

// OK reports whether the chain read succeeded and the digits agree.
func (c TokenCheck) OK() bool {
	return c.Err == nil && int32(c.OnChain) == c.Configured
}
