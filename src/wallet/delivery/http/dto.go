package http

import (
	"github.com/MMN3003/lightcone/src/wallet/domain"
)

type ConfigResponse struct {
	ChainID         int64  `json:"chain_id" example:"1"`
	MaxFeeBips      int    `json:"max_fee_bips" example:"20"`
	ExchangeAddress string `json:"exchange_address" example:"0x0a12284E50e0D8df909D84f41bcAdaf57722b947"`
}

type TokenDto struct {
	ID        int    `json:"id" example:"2"`
	Symbol    string `json:"symbol" example:"LRC"`
	Name      string `json:"name" example:"Loopring"`
	Address   string `json:"address" example:"0xBBbbCA6A901c926F240b89EacB641d8Aec7AEafD"`
	Digits    int32  `json:"digits" example:"18"`
	Precision int32  `json:"precision" example:"3"`
}

func TokenDtoFromDomain(t domain.Token) TokenDto {
	return TokenDto{
		ID:        t.ID,
		Symbol:    t.Symbol,
		Name:      t.Name,
		Address:   t.Address,
		Digits:    t.Digits,
		Precision: t.Precision,
	}
}

type ListTokensResponse struct {
	Tokens []TokenDto `json:"tokens"`
}

type MarketDto struct {
	Market         string `json:"market" example:"LRC-ETH"`
	BaseSymbol     string `json:"base_symbol" example:"LRC"`
	QuoteSymbol    string `json:"quote_symbol" example:"ETH"`
	PricePrecision int32  `json:"price_precision" example:"8"`
}

func MarketDtoFromDomain(m domain.Market) MarketDto {
	return MarketDto{
		Market:         m.Name(),
		BaseSymbol:     m.BaseSymbol,
		QuoteSymbol:    m.QuoteSymbol,
		PricePrecision: m.PricePrecision,
	}
}

type ListMarketsResponse struct {
	Markets []MarketDto `json:"markets"`
}

type GasLimitResponse struct {
	Type     string `json:"type" example:"depositTo"`
	GasInWEI int64  `json:"gas_in_wei" example:"1000000"`
}

// FeeResponse carries the fee as a decimal string so it survives JSON
// number parsing in clients.
type FeeResponse struct {
	Type     string `json:"type" example:"deposit"`
	FeeInWEI string `json:"fee_in_wei" example:"10000000000000000"`
}

type ConvertResponse struct {
	Symbol string `json:"symbol" example:"LRC"`
	Amount string `json:"amount" example:"10000000000000000000"`
	Value  string `json:"value" example:"10.0000"`
}
