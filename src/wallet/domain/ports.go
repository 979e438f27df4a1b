package domain

import (
	"context"
	"math/big"

	"github.com/shopspring/decimal"
)

// TableSource loads the deployment table.
type TableSource interface {
	Load() (*Table, error)
}

// ChainReader reads token state from the chain.
type ChainReader interface {
	// TokenDecimals returns the ERC20 decimals() of the contract at address.
	TokenDecimals(ctx context.Context, address string) (uint8, error)

	// BalanceOf returns holder's balance in base units. The zero token address
	// means the native coin.
	BalanceOf(ctx context.Context, token, holder string) (*big.Int, error)
}

type WalletUseCase interface {
	ChainID() int64
	MaxFeeBips() int
	ExchangeAddress() string

	Tokens() []Token
	TokenBySymbol(symbol string) (Token, error)
	TokenByAddress(address string) (Token, error)
	TokenByID(id int) (Token, error)

	Markets() []Market
	MarketBySymbol(base, quote string) (Market, error)
	MarketByName(name string) (Market, error)
	MarketsByQuote(quote string) []Market

	GasLimitByType(typ string) (GasLimit, error)
	FeeByType(typ string) (Fee, error)

	FromWEI(symbol string, amount decimal.Decimal) (string, error)
	FromWEIWithPrecision(symbol string, amount decimal.Decimal, precision int32) (string, error)
	ToWEI(symbol string, amount decimal.Decimal) (string, error)
	ToWEIBigInt(symbol string, amount decimal.Decimal) (*big.Int, error)
}
