package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MMN3003/lightcone/src/logger"
	"github.com/MMN3003/lightcone/src/wallet/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Handler binds usecase + logger
type Handler struct {
	service domain.WalletUseCase
	logger  *logger.Logger
}

func NewHandler(s domain.WalletUseCase, l *logger.Logger) *Handler {
	return &Handler{service: s, logger: l}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/config", h.GetConfig)
	r.GET("/tokens", h.ListTokens)
	r.GET("/tokens/:symbol", h.GetToken)
	r.GET("/markets", h.ListMarkets)
	r.GET("/markets/:base/:quote", h.GetMarket)
	r.GET("/gas-limits/:type", h.GetGasLimit)
	r.GET("/fees/:type", h.GetFee)
	r.GET("/convert/from-wei", h.FromWEI)
	r.GET("/convert/to-wei", h.ToWEI)
}

// GetConfig godoc
//
//	@Summary		Deployment constants
//	@Description	Chain id, maximum fee in basis points and exchange contract address
//	@Tags			config
//	@Produce		json
//	@Success		200	{object}	http.ConfigResponse
//	@Router			/config [get]
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ConfigResponse{
		ChainID:         h.service.ChainID(),
		MaxFeeBips:      h.service.MaxFeeBips(),
		ExchangeAddress: h.service.ExchangeAddress(),
	})
}

// ListTokens godoc
//
//	@Summary		List tokens
//	@Description	Every token of the deployment table in table order
//	@Tags			tokens
//	@Produce		json
//	@Success		200	{object}	http.ListTokensResponse
//	@Router			/tokens [get]
func (h *Handler) ListTokens(c *gin.Context) {
	tokens := h.service.Tokens()
	dtos := make([]TokenDto, len(tokens))
	for i, t := range tokens {
		dtos[i] = TokenDtoFromDomain(t)
	}
	c.JSON(http.StatusOK, ListTokensResponse{Tokens: dtos})
}

// GetToken godoc
//
//	@Summary		Get token
//	@Description	Resolve a token by symbol, or by contract address when the path segment is hex
//	@Tags			tokens
//	@Produce		json
//	@Param			symbol	path		string	true	"Token symbol or contract address"
//	@Success		200		{object}	http.TokenDto
//	@Failure		404		{object}	object{error=string}
//	@Router			/tokens/{symbol} [get]
func (h *Handler) GetToken(c *gin.Context) {
	key := c.Param("symbol")

	tok, err := h.service.TokenBySymbol(key)
	if errors.Is(err, domain.ErrNotFound) && common.IsHexAddress(key) {
		tok, err = h.service.TokenByAddress(key)
	}
	if err != nil {
		h.fail(c, "GetToken", err)
		return
	}
	c.JSON(http.StatusOK, TokenDtoFromDomain(tok))
}

// ListMarkets godoc
//
//	@Summary		List markets
//	@Description	Every market of the deployment table, optionally only those quoted in one token
//	@Tags			markets
//	@Produce		json
//	@Param			quote	query		string	false	"Quote token symbol"
//	@Success		200		{object}	http.ListMarketsResponse
//	@Router			/markets [get]
func (h *Handler) ListMarkets(c *gin.Context) {
	markets := h.service.Markets()
	if quote := c.Query("quote"); quote != "" {
		markets = h.service.MarketsByQuote(quote)
	}
	dtos := make([]MarketDto, len(markets))
	for i, m := range markets {
		dtos[i] = MarketDtoFromDomain(m)
	}
	c.JSON(http.StatusOK, ListMarketsResponse{Markets: dtos})
}

// GetMarket godoc
//
//	@Summary		Get market
//	@Description	Resolve a market by its two token symbols in either order
//	@Tags			markets
//	@Produce		json
//	@Param			base	path		string	true	"Base token symbol"
//	@Param			quote	path		string	true	"Quote token symbol"
//	@Success		200		{object}	http.MarketDto
//	@Failure		404		{object}	object{error=string}
//	@Router			/markets/{base}/{quote} [get]
func (h *Handler) GetMarket(c *gin.Context) {
	m, err := h.service.MarketBySymbol(c.Param("base"), c.Param("quote"))
	if err != nil {
		h.fail(c, "GetMarket", err)
		return
	}
	c.JSON(http.StatusOK, MarketDtoFromDomain(m))
}

// GetGasLimit godoc
//
//	@Summary		Get gas limit
//	@Description	Gas limit for one exchange operation
//	@Tags			config
//	@Produce		json
//	@Param			type	path		string	true	"Operation type"	example(depositTo)
//	@Success		200		{object}	http.GasLimitResponse
//	@Failure		404		{object}	object{error=string}
//	@Router			/gas-limits/{type} [get]
func (h *Handler) GetGasLimit(c *gin.Context) {
	g, err := h.service.GasLimitByType(c.Param("type"))
	if err != nil {
		h.fail(c, "GetGasLimit", err)
		return
	}
	c.JSON(http.StatusOK, GasLimitResponse{Type: g.Type, GasInWEI: g.GasInWEI})
}

// GetFee godoc
//
//	@Summary		Get fee
//	@Description	Fee in WEI for one exchange operation
//	@Tags			config
//	@Produce		json
//	@Param			type	path		string	true	"Operation type"	example(deposit)
//	@Success		200		{object}	http.FeeResponse
//	@Failure		404		{object}	object{error=string}
//	@Router			/fees/{type} [get]
func (h *Handler) GetFee(c *gin.Context) {
	f, err := h.service.FeeByType(c.Param("type"))
	if err != nil {
		h.fail(c, "GetFee", err)
		return
	}
	c.JSON(http.StatusOK, FeeResponse{Type: f.Type, FeeInWEI: f.FeeInWEI.String()})
}

// FromWEI godoc
//
//	@Summary		Convert base units to token units
//	@Description	Divide amount by 10^digits and render it with precision fractional digits, rounding half to even
//	@Tags			convert
//	@Produce		json
//	@Param			symbol		query		string	true	"Token symbol"
//	@Param			amount		query		string	true	"Amount in base units"
//	@Param			precision	query		int		false	"Fractional digits, 0 to 78"	default(4)
//	@Success		200			{object}	http.ConvertResponse
//	@Failure		400			{object}	object{error=string}
//	@Failure		404			{object}	object{error=string}
//	@Router			/convert/from-wei [get]
func (h *Handler) FromWEI(c *gin.Context) {
	symbol := c.Query("symbol")
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		h.logger.Errorf("FromWEI err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	var value string
	if p := c.Query("precision"); p != "" {
		precision, perr := strconv.ParseInt(p, 10, 32)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid precision"})
			return
		}
		value, err = h.service.FromWEIWithPrecision(symbol, amount, int32(precision))
	} else {
		value, err = h.service.FromWEI(symbol, amount)
	}
	if err != nil {
		h.fail(c, "FromWEI", err)
		return
	}
	c.JSON(http.StatusOK, ConvertResponse{Symbol: symbol, Amount: c.Query("amount"), Value: value})
}

// ToWEI godoc
//
//	@Summary		Convert token units to base units
//	@Description	Multiply amount by 10^digits; digits below one base unit are truncated
//	@Tags			convert
//	@Produce		json
//	@Param			symbol	query		string	true	"Token symbol"
//	@Param			amount	query		string	true	"Amount in token units"
//	@Success		200		{object}	http.ConvertResponse
//	@Failure		400		{object}	object{error=string}
//	@Failure		404		{object}	object{error=string}
//	@Router			/convert/to-wei [get]
func (h *Handler) ToWEI(c *gin.Context) {
	symbol := c.Query("symbol")
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		h.logger.Errorf("ToWEI err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}
	value, err := h.service.ToWEI(symbol, amount)
	if err != nil {
		h.fail(c, "ToWEI", err)
		return
	}
	c.JSON(http.StatusOK, ConvertResponse{Symbol: symbol, Amount: c.Query("amount"), Value: value})
}

func (h *Handler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidPrecision),
		errors.Is(err, domain.ErrInvalidAddress):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Errorf("%s err: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
