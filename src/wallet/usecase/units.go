package usecase

import (
	"fmt"
	"math/big"

	"github.com/MMN3003/lightcone/src/wallet/domain"
	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of fractional digits FromWEI renders.
const DefaultPrecision int32 = 4

const (
	// MaxPrecision bounds the fractional digits FromWEIWithPrecision renders;
	// 78 covers every digit of a uint256 amount at the largest token digits.
	MaxPrecision int32 = 78

	// maxExponent bounds |exponent + digits| of a scaled amount. Larger
	// magnitudes cannot describe an on-chain quantity and would make the
	// shift allocate 10^exponent.
	maxExponent = 2 * int64(MaxPrecision)
)

// FromWEI formats a base-unit amount of symbol in token units with DefaultPrecision digits.
func (s *Service) FromWEI(symbol string, amount decimal.Decimal) (string, error) {
	return s.FromWEIWithPrecision(symbol, amount, DefaultPrecision)
}

// FromWEIWithPrecision formats amount / 10^digits with exactly precision
// fractional digits, rounding half to even. Precision must lie in
// [0, MaxPrecision].
//
// Precision 0 renders a bare integer ("10") with no decimal point, matching
// Number.prototype.toFixed(0). Every other precision yields a decimal point
// followed by exactly precision digits.
func (s *Service) FromWEIWithPrecision(symbol string, amount decimal.Decimal, precision int32) (string, error) {
	tok, err := s.TokenBySymbol(symbol)
	if err != nil {
		return "", err
	}
	if err := checkScale(amount, -tok.Digits); err != nil {
		return "", err
	}
	if amount.IsNegative() {
		return "", fmt.Errorf("%w: %s is negative", domain.ErrInvalidAmount, amount)
	}
	if precision < 0 || precision > MaxPrecision {
		return "", fmt.Errorf("%w: %d not in [0, %d]", domain.ErrInvalidPrecision, precision, MaxPrecision)
	}
	return amount.Shift(-tok.Digits).StringFixedBank(precision), nil
}

// ToWEI converts a token-unit amount of symbol to base units and returns the
// exact integer as a base-10 string. Digits below one base unit are truncated.
func (s *Service) ToWEI(symbol string, amount decimal.Decimal) (string, error) {
	wei, err := s.ToWEIBigInt(symbol, amount)
	if err != nil {
		return "", err
	}
	return wei.String(), nil
}

// ToWEIBigInt is ToWEI returning a *big.Int for chain calls.
func (s *Service) ToWEIBigInt(symbol string, amount decimal.Decimal) (*big.Int, error) {
	tok, err := s.TokenBySymbol(symbol)
	if err != nil {
		return nil, err
	}
	if err := checkScale(amount, tok.Digits); err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: %s is negative", domain.ErrInvalidAmount, amount)
	}
	return amount.Shift(tok.Digits).BigInt(), nil
}

// checkScale rejects amounts whose exponent, once shifted, leaves
// [-maxExponent, maxExponent]. decimal.Shift adds to an int32 without an
// overflow check, so the sum is taken in int64. It runs before anything
// formats amount.
func checkScale(amount decimal.Decimal, shift int32) error {
	if amount.IsZero() {
		return nil
	}
	exp := int64(amount.Exponent()) + int64(shift)
	if exp > maxExponent || exp < -maxExponent {
		return fmt.Errorf("%w: exponent %d out of range", domain.ErrInvalidAmount, amount.Exponent())
	}
	return nil
}

// Digits returns the base-unit exponent of symbol.
func (s *Service) Digits(symbol string) (int32, error) {
	tok, err := s.TokenBySymbol(symbol)
	if err != nil {
		return 0, err
	}
	return tok.Digits, nil
}
