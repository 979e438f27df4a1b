package usecase

import (
	"strings"
	"sync"
	"testing"

	"github.com/MMN3003/lightcone/src/logger"
	"github.com/MMN3003/lightcone/src/wallet/domain"
	"github.com/MMN3003/lightcone/src/wallet/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMainnetService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	s, err := NewService(repository.NewStaticRepo(logger.Nop()), logger.Nop(), opts...)
	require.NoError(t, err)
	return s
}

func TestConfigValues(t *testing.T) {
	s := newMainnetService(t)

	require.EqualValues(t, 1, s.ChainID())
	require.Equal(t, 20, s.MaxFeeBips())
	require.Equal(t, "0x0a12284E50e0D8df909D84f41bcAdaf57722b947", s.ExchangeAddress())

	require.Len(t, s.Tokens(), 124)
	lrc, err := s.TokenBySymbol("LRC")
	require.NoError(t, err)
	require.EqualValues(t, 18, lrc.Digits)

	require.Len(t, s.Markets(), 43)
	market, err := s.MarketBySymbol("LRC", "ETH")
	require.NoError(t, err)
	require.EqualValues(t, 8, market.PricePrecision)

	gas, err := s.GasLimitByType("depositTo")
	require.NoError(t, err)
	require.EqualValues(t, 1000000, gas.GasInWEI)

	fee, err := s.FeeByType("deposit")
	require.NoError(t, err)
	require.Equal(t, "10000000000000000", fee.FeeInWEI.String())
}

func TestLookupMisses(t *testing.T) {
	s := newMainnetService(t)

	_, err := s.TokenBySymbol("NOPE")
	require.ErrorIs(t, err, domain.ErrUnknownToken)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.TokenBySymbol("lrc")
	require.ErrorIs(t, err, domain.ErrUnknownToken, "symbols are case-sensitive")

	_, err = s.MarketBySymbol("LRC", "WBTC")
	require.ErrorIs(t, err, domain.ErrUnknownMarket)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.GasLimitByType("teleport")
	require.ErrorIs(t, err, domain.ErrUnknownKey)

	_, err = s.FeeByType("teleport")
	require.ErrorIs(t, err, domain.ErrUnknownKey)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.TokenByID(10_000)
	require.ErrorIs(t, err, domain.ErrUnknownToken)
}

func TestTokenByAddressIgnoresCase(t *testing.T) {
	s := newMainnetService(t)

	for _, addr := range []string{
		"0xBBbbCA6A901c926F240b89EacB641d8Aec7AEafD",
		"0xbbbbca6a901c926f240b89eacb641d8aec7aeafd",
		"0xBBBBCA6A901C926F240B89EACB641D8AEC7AEAFD",
	} {
		tok, err := s.TokenByAddress(addr)
		require.NoError(t, err, addr)
		require.Equal(t, "LRC", tok.Symbol)
	}

	_, err := s.TokenByAddress("0x1111111111111111111111111111111111111111")
	require.ErrorIs(t, err, domain.ErrUnknownToken)

	_, err = s.TokenByAddress("loopring")
	require.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestTokenByID(t *testing.T) {
	s := newMainnetService(t)

	eth, err := s.TokenByID(0)
	require.NoError(t, err)
	require.Equal(t, "ETH", eth.Symbol)

	lrc, err := s.TokenBySymbol("LRC")
	require.NoError(t, err)
	byID, err := s.TokenByID(lrc.ID)
	require.NoError(t, err)
	require.Equal(t, lrc, byID)
}

func TestMarketLookupEitherOrientation(t *testing.T) {
	s := newMainnetService(t)

	forward, err := s.MarketBySymbol("LRC", "ETH")
	require.NoError(t, err)
	reverse, err := s.MarketBySymbol("ETH", "LRC")
	require.NoError(t, err)
	require.Equal(t, forward, reverse)
	require.Equal(t, "LRC-ETH", reverse.Name())

	byName, err := s.MarketByName("LRC-ETH")
	require.NoError(t, err)
	require.Equal(t, forward, byName)

	_, err = s.MarketByName("LRCETH")
	require.ErrorIs(t, err, domain.ErrUnknownMarket)
}

func TestMarketsByQuote(t *testing.T) {
	s := newMainnetService(t)

	usdt := s.MarketsByQuote("USDT")
	require.NotEmpty(t, usdt)
	require.Equal(t, "ETH-USDT", usdt[0].Name())
	for _, m := range usdt {
		require.Equal(t, "USDT", m.QuoteSymbol)
	}

	total := 0
	for _, q := range []string{"ETH", "USDT", "DAI", "USDC"} {
		total += len(s.MarketsByQuote(q))
	}
	require.Equal(t, len(s.Markets()), total)

	require.Empty(t, s.MarketsByQuote("LRC"))
}

func TestListingsAreCopies(t *testing.T) {
	s := newMainnetService(t)

	tokens := s.Tokens()
	tokens[0].Symbol = "MUTATED"
	markets := s.Markets()
	markets[0].PricePrecision = 99

	require.Equal(t, "ETH", s.Tokens()[0].Symbol)
	require.NotEqualValues(t, 99, s.Markets()[0].PricePrecision)
	_, err := s.TokenBySymbol("MUTATED")
	require.ErrorIs(t, err, domain.ErrUnknownToken)
}

func TestEveryMarketResolves(t *testing.T) {
	s := newMainnetService(t)

	for _, m := range s.Markets() {
		got, err := s.MarketBySymbol(m.BaseSymbol, m.QuoteSymbol)
		require.NoError(t, err)
		assert.Equal(t, m, got)

		for _, sym := range []string{m.BaseSymbol, m.QuoteSymbol} {
			_, err := s.TokenBySymbol(sym)
			assert.NoError(t, err, "%s references %s", m.Name(), sym)
		}
	}
}

func TestConcurrentReads(t *testing.T) {
	s := newMainnetService(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, tok := range s.Tokens() {
				got, err := s.TokenBySymbol(tok.Symbol)
				assert.NoError(t, err)
				assert.Equal(t, tok, got)
				_, err = s.TokenByAddress(strings.ToLower(tok.Address))
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}

type failingSource struct{}

func (failingSource) Load() (*domain.Table, error) { return nil, domain.ErrInvalidTable }

func TestNewServiceSurfacesLoadError(t *testing.T) {
	_, err := NewService(failingSource{}, logger.Nop())
	require.ErrorIs(t, err, domain.ErrInvalidTable)
}
