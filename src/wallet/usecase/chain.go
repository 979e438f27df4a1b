package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/MMN3003/lightcone/src/wallet/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// ErrNoChainReader is returned by on-chain operations when the service was
// built without WithChainReader.
var ErrNoChainReader = errors.New("no chain reader configured")

// VerifyTokens reads decimals() for every ERC20 token in the table and compares
// it with the configured digits. The native coin is skipped. A failed read is
// recorded on its row and does not stop the other reads; results keep table order.
// When ctx ends early the rows read so far are returned along with ctx.Err().
func (s *Service) VerifyTokens(ctx context.Context) ([]domain.TokenCheck, error) {
	if s.chain == nil {
		return nil, ErrNoChainReader
	}

	var tokens []domain.Token
	for _, tok := range s.table.Tokens {
		if isNative(tok.Address) {
			continue
		}
		tokens = append(tokens, tok)
	}

	checks := make([]domain.TokenCheck, len(tokens))

	var g errgroup.Group
	g.SetLimit(s.verifyConcurrency)
	for i, tok := range tokens {
		i, tok := i, tok // per-iteration copies (module targets go 1.21)
		g.Go(func() error {
			check := domain.TokenCheck{
				Symbol:     tok.Symbol,
				Address:    tok.Address,
				Configured: tok.Digits,
			}
			callCtx, cancel := s.callContext(ctx)
			defer cancel()

			decimals, err := s.chain.TokenDecimals(callCtx, tok.Address)
			if err != nil {
				s.logger.Errorf("[%s] decimals read failed: %v", tok.Symbol, err)
				check.Err = err
			} else {
				check.OnChain = decimals
				if !check.OK() {
					s.logger.Warnf("[%s] digits mismatch: configured=%d onChain=%d", tok.Symbol, tok.Digits, decimals)
				}
			}
			// each goroutine owns index i
			checks[i] = check
			return nil
		})
	}

	_ = g.Wait() // per-token errors live on the rows

	if err := ctx.Err(); err != nil {
		return checks, err
	}
	return checks, nil
}

// Balance reads holder's balance of symbol and formats it with FromWEIWithPrecision.
func (s *Service) Balance(ctx context.Context, symbol, holder string, precision int32) (string, error) {
	if s.chain == nil {
		return "", ErrNoChainReader
	}
	tok, err := s.TokenBySymbol(symbol)
	if err != nil {
		return "", err
	}
	if !common.IsHexAddress(holder) {
		return "", fmt.Errorf("%w: holder %q", domain.ErrInvalidAddress, holder)
	}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	wei, err := s.chain.BalanceOf(callCtx, tok.Address, holder)
	if err != nil {
		s.logger.Errorf("[%s] balance read for %s failed: %v", symbol, holder, err)
		return "", err
	}
	return s.FromWEIWithPrecision(symbol, decimal.NewFromBigInt(wei, 0), precision)
}

func (s *Service) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.callTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.callTimeout)
}

func isNative(address string) bool {
	return common.HexToAddress(address) == (common.Address{})
}
