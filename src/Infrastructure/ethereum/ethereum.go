package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/MMN3003/lightcone/src/wallet/domain"
)

const erc20ABI = `[
	{
		"constant": true,
		"inputs": [],
		"name": "decimals",
		"outputs": [{"name": "", "type": "uint8"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [{"name": "owner", "type": "address"}],
		"name": "balanceOf",
		"outputs": [{"name": "", "type": "uint256"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [],
		"name": "symbol",
		"outputs": [{"name": "", "type": "string"}],
		"type": "function"
	}
]`

// Errors
var (
	ErrMissingRPCURL  = errors.New("missing RPC URL")
	ErrConnectNetwork = errors.New("failed to connect to network")
	ErrParseABI       = errors.New("failed to parse ABI")
	ErrContractCall   = errors.New("failed to call contract function")
	ErrChainMismatch  = errors.New("connected to unexpected chain")
)

var _ domain.ChainReader = (*Client)(nil)

// Backend is the subset of ethclient.Client the reader needs.
type Backend interface {
	bind.ContractCaller
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Client reads ERC20 state over JSON-RPC. Safe for concurrent use.
type Client struct {
	backend Backend
	closer  func()
	erc20   abi.ABI

	mu        sync.Mutex
	contracts map[common.Address]*bind.BoundContract
}

// Dial connects to an Ethereum JSON-RPC endpoint.
func Dial(ctx context.Context, rpcURL string) (*Client, error) {
	if rpcURL == "" {
		return nil, ErrMissingRPCURL
	}
	ec, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectNetwork, err)
	}
	c, err := NewClient(ec)
	if err != nil {
		ec.Close()
		return nil, err
	}
	c.closer = ec.Close
	return c, nil
}

// NewClient wraps an existing backend (an ethclient or a simulated chain).
func NewClient(backend Backend) (*Client, error) {
	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, fmt.Errorf("%w: ERC20 ABI: %v", ErrParseABI, err)
	}
	return &Client{
		backend:   backend,
		erc20:     parsed,
		contracts: make(map[common.Address]*bind.BoundContract),
	}, nil
}

func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// EnsureChainID fails when the endpoint serves a different chain than want.
func (c *Client) EnsureChainID(ctx context.Context, want int64) error {
	got, err := c.backend.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("%w: chain id: %v", ErrConnectNetwork, err)
	}
	if got.Cmp(big.NewInt(want)) != 0 {
		return fmt.Errorf("%w: want %d, got %s", ErrChainMismatch, want, got)
	}
	return nil
}

func (c *Client) TokenDecimals(ctx context.Context, address string) (uint8, error) {
	var out []interface{}
	if err := c.contract(address).Call(&bind.CallOpts{Context: ctx}, &out, "decimals"); err != nil {
		return 0, fmt.Errorf("%w: decimals() on %s: %v", ErrContractCall, address, err)
	}
	return *abi.ConvertType(out[0], new(uint8)).(*uint8), nil
}

func (c *Client) BalanceOf(ctx context.Context, token, holder string) (*big.Int, error) {
	owner := common.HexToAddress(holder)
	if common.HexToAddress(token) == (common.Address{}) {
		bal, err := c.backend.BalanceAt(ctx, owner, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: balance of %s: %v", ErrContractCall, holder, err)
		}
		return bal, nil
	}

	var out []interface{}
	if err := c.contract(token).Call(&bind.CallOpts{Context: ctx}, &out, "balanceOf", owner); err != nil {
		return nil, fmt.Errorf("%w: balanceOf(%s) on %s: %v", ErrContractCall, holder, token, err)
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (c *Client) contract(address string) *bind.BoundContract {
	addr := common.HexToAddress(address)

	c.mu.Lock()
	defer c.mu.Unlock()
	bc, ok := c.contracts[addr]
	if !ok {
		bc = bind.NewBoundContract(addr, c.erc20, c.backend, nil, nil)
		c.contracts[addr] = bc
	}
	return bc
}
