package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/MMN3003/lightcone/src/logger"
	"github.com/MMN3003/lightcone/src/wallet/domain"
	"github.com/ethereum/go-ethereum/common"
)

var _ domain.WalletUseCase = (*Service)(nil)

// Service answers lookups over one deployment table. Indices are built once in
// NewService and never written afterwards, so a Service is safe for concurrent use.
type Service struct {
	table  domain.Table
	logger *logger.Logger
	chain  domain.ChainReader

	verifyConcurrency int
	callTimeout       time.Duration

	tokensBySymbol  map[string]domain.Token
	tokensByAddress map[common.Address]domain.Token
	tokensByID      map[int]domain.Token
	marketsByName   map[string]domain.Market
	gasLimits       map[string]domain.GasLimit
	fees            map[string]domain.Fee
}

// Option functional options
type Option func(*Service)

// WithChainReader enables the on-chain operations (VerifyTokens, Balance).
func WithChainReader(c domain.ChainReader) Option { return func(s *Service) { s.chain = c } }

// WithVerifyConcurrency bounds the number of concurrent reads in VerifyTokens.
func WithVerifyConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.verifyConcurrency = n
		}
	}
}

// WithCallTimeout bounds each chain read separately. Zero leaves reads bound
// only by the caller's context.
func WithCallTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.callTimeout = d
		}
	}
}

func NewService(src domain.TableSource, logg *logger.Logger, opts ...Option) (*Service, error) {
	t, err := src.Load()
	if err != nil {
		return nil, err
	}

	s := &Service{
		table:             *t,
		logger:            logg,
		verifyConcurrency: 8,
		tokensBySymbol:    make(map[string]domain.Token, len(t.Tokens)),
		tokensByAddress:   make(map[common.Address]domain.Token, len(t.Tokens)),
		tokensByID:        make(map[int]domain.Token, len(t.Tokens)),
		marketsByName:     make(map[string]domain.Market, len(t.Markets)),
		gasLimits:         make(map[string]domain.GasLimit, len(t.GasLimits)),
		fees:              make(map[string]domain.Fee, len(t.Fees)),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, tok := range t.Tokens {
		s.tokensBySymbol[tok.Symbol] = tok
		s.tokensByAddress[common.HexToAddress(tok.Address)] = tok
		s.tokensByID[tok.ID] = tok
	}
	for _, m := range t.Markets {
		s.marketsByName[m.Name()] = m
	}
	for _, g := range t.GasLimits {
		s.gasLimits[g.Type] = g
	}
	for _, f := range t.Fees {
		s.fees[f.Type] = f
	}

	logg.Debugf("wallet service ready: chain=%d exchange=%s chainReader=%t",
		t.ChainID, t.ExchangeAddress, s.chain != nil)
	return s, nil
}

func (s *Service) ChainID() int64 { return s.table.ChainID }

func (s *Service) MaxFeeBips() int { return s.table.MaxFeeBips }

func (s *Service) ExchangeAddress() string { return s.table.ExchangeAddress }

// Tokens returns every token in table order.
func (s *Service) Tokens() []domain.Token {
	out := make([]domain.Token, len(s.table.Tokens))
	copy(out, s.table.Tokens)
	return out
}

func (s *Service) TokenBySymbol(symbol string) (domain.Token, error) {
	tok, ok := s.tokensBySymbol[symbol]
	if !ok {
		return domain.Token{}, fmt.Errorf("%w: %s", domain.ErrUnknownToken, symbol)
	}
	return tok, nil
}

// TokenByAddress matches the contract address regardless of hex case.
func (s *Service) TokenByAddress(address string) (domain.Token, error) {
	if !common.IsHexAddress(address) {
		return domain.Token{}, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, address)
	}
	tok, ok := s.tokensByAddress[common.HexToAddress(address)]
	if !ok {
		return domain.Token{}, fmt.Errorf("%w: address %s", domain.ErrUnknownToken, address)
	}
	return tok, nil
}

func (s *Service) TokenByID(id int) (domain.Token, error) {
	tok, ok := s.tokensByID[id]
	if !ok {
		return domain.Token{}, fmt.Errorf("%w: id %d", domain.ErrUnknownToken, id)
	}
	return tok, nil
}

// Markets returns every market in table order.
func (s *Service) Markets() []domain.Market {
	out := make([]domain.Market, len(s.table.Markets))
	copy(out, s.table.Markets)
	return out
}

// MarketBySymbol finds the market trading base against quote in either
// orientation: ("ETH", "LRC") resolves to LRC-ETH.
func (s *Service) MarketBySymbol(base, quote string) (domain.Market, error) {
	if m, ok := s.marketsByName[base+"-"+quote]; ok {
		return m, nil
	}
	if m, ok := s.marketsByName[quote+"-"+base]; ok {
		return m, nil
	}
	return domain.Market{}, fmt.Errorf("%w: %s-%s", domain.ErrUnknownMarket, base, quote)
}

// MarketByName looks up a BASE-QUOTE market name.
func (s *Service) MarketByName(name string) (domain.Market, error) {
	base, quote, ok := strings.Cut(name, "-")
	if !ok {
		return domain.Market{}, fmt.Errorf("%w: %s", domain.ErrUnknownMarket, name)
	}
	return s.MarketBySymbol(base, quote)
}

func (s *Service) MarketsByQuote(quote string) []domain.Market {
	var out []domain.Market
	for _, m := range s.table.Markets {
		if m.QuoteSymbol == quote {
			out = append(out, m)
		}
	}
	return out
}

func (s *Service) GasLimitByType(typ string) (domain.GasLimit, error) {
	g, ok := s.gasLimits[typ]
	if !ok {
		return domain.GasLimit{}, fmt.Errorf("%w: gas limit %s", domain.ErrUnknownKey, typ)
	}
	return g, nil
}

func (s *Service) FeeByType(typ string) (domain.Fee, error) {
	f, ok := s.fees[typ]
	if !ok {
		return domain.Fee{}, fmt.Errorf("%w: fee %s", domain.ErrUnknownKey, typ)
	}
	return f, nil
}
