package usecase

import (
	"math/big"
	"testing"

	"github.com/MMN3003/lightcone/src/wallet/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFromWEIAndToWEI(t *testing.T) {
	s := newMainnetService(t)

	fromWEI, err := s.FromWEI("LRC", decimal.New(1, 19))
	require.NoError(t, err)
	require.Equal(t, "10.0000", fromWEI)

	fromWEI, err = s.FromWEIWithPrecision("LRC", decimal.New(1, 19), 2)
	require.NoError(t, err)
	require.Equal(t, "10.00", fromWEI)

	toWEI, err := s.ToWEI("LRC", decimal.NewFromInt(10))
	require.NoError(t, err)
	require.Equal(t, "10000000000000000000", toWEI)
}

func TestFromWEI(t *testing.T) {
	s := newMainnetService(t)

	testCases := []struct {
		name      string
		symbol    string
		amount    string
		precision int32
		want      string
	}{
		{"zero", "LRC", "0", 4, "0.0000"},
		{"one wei", "LRC", "1", 4, "0.0000"},
		{"sub-unit", "LRC", "1234500000000000000", 4, "1.2345"},
		{"usdt six digits", "USDT", "2500000", 2, "2.50"},
		{"gusd two digits", "GUSD", "12345", 4, "123.4500"},
		{"zero digits token", "SNGLS", "42", 2, "42.00"},
		{"precision zero", "LRC", "10000000000000000000", 0, "10"},
		{"wide precision", "USDT", "1", 8, "0.00000100"},
		{"beyond uint64", "LRC", "123456789012345678901234567890", 4, "123456789012.3457"},
		{"half rounds to even down", "USDT", "1250000", 1, "1.2"},
		{"half rounds to even up", "USDT", "1350000", 1, "1.4"},
		{"above half rounds up", "USDT", "1250001", 1, "1.3"},
		{"below half rounds down", "USDT", "1349999", 1, "1.3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.FromWEIWithPrecision(tc.symbol, decimal.RequireFromString(tc.amount), tc.precision)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.NotContains(t, got, "e")
		})
	}
}

func TestToWEI(t *testing.T) {
	s := newMainnetService(t)

	testCases := []struct {
		name   string
		symbol string
		amount string
		want   string
	}{
		{"zero", "LRC", "0", "0"},
		{"fraction", "LRC", "1.5", "1500000000000000000"},
		{"usdt", "USDT", "12.34", "12340000"},
		{"zero digits token", "SNGLS", "7", "7"},
		{"truncates below one base unit", "USDT", "0.1234567", "123456"},
		{"zero digits truncates fraction", "SNGLS", "7.9", "7"},
		{"huge", "LRC", "987654321987654321987654321", "987654321987654321987654321000000000000000000"},
		{"scientific input", "LRC", "1e3", "1000000000000000000000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.ToWEI(tc.symbol, decimal.RequireFromString(tc.amount))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestToWEIBigInt(t *testing.T) {
	s := newMainnetService(t)

	wei, err := s.ToWEIBigInt("WBTC", decimal.RequireFromString("0.5"))
	require.NoError(t, err)
	require.Equal(t, 0, wei.Cmp(big.NewInt(50_000_000)))
}

func TestConversionErrors(t *testing.T) {
	s := newMainnetService(t)

	_, err := s.FromWEI("NOPE", decimal.NewFromInt(1))
	require.ErrorIs(t, err, domain.ErrUnknownToken)

	_, err = s.ToWEI("NOPE", decimal.NewFromInt(1))
	require.ErrorIs(t, err, domain.ErrUnknownToken)

	_, err = s.FromWEI("LRC", decimal.NewFromInt(-1))
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = s.ToWEI("LRC", decimal.NewFromInt(-1))
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = s.FromWEIWithPrecision("LRC", decimal.NewFromInt(1), -1)
	require.ErrorIs(t, err, domain.ErrInvalidPrecision)

	_, err = s.Digits("NOPE")
	require.ErrorIs(t, err, domain.ErrUnknownToken)
}

func TestConversionBounds(t *testing.T) {
	s := newMainnetService(t)

	got, err := s.FromWEIWithPrecision("LRC", decimal.NewFromInt(1), MaxPrecision)
	require.NoError(t, err)
	require.Len(t, got, int(MaxPrecision)+2)

	_, err = s.FromWEIWithPrecision("LRC", decimal.NewFromInt(1), MaxPrecision+1)
	require.ErrorIs(t, err, domain.ErrInvalidPrecision)

	_, err = s.FromWEIWithPrecision("LRC", decimal.NewFromInt(1), 200_000_000)
	require.ErrorIs(t, err, domain.ErrInvalidPrecision)

	got, err = s.ToWEI("LRC", decimal.RequireFromString("1e138"))
	require.NoError(t, err)
	require.Len(t, got, 157)

	_, err = s.ToWEI("LRC", decimal.RequireFromString("1e139"))
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	got, err = s.ToWEI("LRC", decimal.RequireFromString("0e2147483640"))
	require.NoError(t, err)
	require.Equal(t, "0", got)

	testCases := []struct {
		name   string
		amount string
	}{
		{"large exponent", "1e3000000"},
		{"exponent that wraps int32", "1e2147483640"},
		{"tiny exponent", "1e-2147483640"},
		{"past bound both ways", "1e175"},
		{"negative with huge exponent", "-1e2147483640"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tc.amount)

			_, err := s.ToWEI("LRC", amount)
			require.ErrorIs(t, err, domain.ErrInvalidAmount)

			_, err = s.FromWEI("LRC", amount)
			require.ErrorIs(t, err, domain.ErrInvalidAmount)
		})
	}
}

func TestRoundTripAtFullPrecision(t *testing.T) {
	s := newMainnetService(t)

	amounts := []string{
		"0",
		"1",
		"999",
		"1000000",
		"9007199254740993", // 2^53 + 1
		"18446744073709551617",
		"115792089237316195423570985008687907853269984665640564039457584007913129639935",
	}

	for _, tok := range s.Tokens() {
		digits, err := s.Digits(tok.Symbol)
		require.NoError(t, err)

		for _, raw := range amounts {
			a := decimal.RequireFromString(raw)

			display, err := s.FromWEIWithPrecision(tok.Symbol, a, digits)
			require.NoError(t, err)

			back, err := s.ToWEI(tok.Symbol, decimal.RequireFromString(display))
			require.NoError(t, err)
			require.Equal(t, raw, back, "%s: %s -> %s", tok.Symbol, raw, display)
		}
	}
}
