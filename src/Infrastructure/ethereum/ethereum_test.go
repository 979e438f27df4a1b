package ethereum

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var (
	lrcAddr = common.HexToAddress("0xBBbbCA6A901c926F240b89EacB641d8Aec7AEafD")
	holder  = common.HexToAddress("0x1111111111111111111111111111111111111111")
)

// fakeBackend answers eth_call for a single ERC20 contract.
type fakeBackend struct {
	t        *testing.T
	erc20    abi.ABI
	decimals uint8
	balance  *big.Int
	native   *big.Int
	chainID  int64
	callErr  error
}

func newFakeBackend(t *testing.T) *fakeBackend {
	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	require.NoError(t, err)
	return &fakeBackend{
		t:        t,
		erc20:    parsed,
		decimals: 18,
		balance:  big.NewInt(0),
		native:   big.NewInt(0),
		chainID:  1,
	}
}

func (f *fakeBackend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return []byte{0x60, 0x80}, nil
}

func (f *fakeBackend) CallContract(_ context.Context, msg goethereum.CallMsg, _ *big.Int) ([]byte, error) {
	if f.callErr != nil {
		return nil, f.callErr
	}
	require.NotNil(f.t, msg.To)
	require.Equal(f.t, lrcAddr, *msg.To)

	method, err := f.erc20.MethodById(msg.Data[:4])
	require.NoError(f.t, err)

	switch method.Name {
	case "decimals":
		return method.Outputs.Pack(f.decimals)
	case "balanceOf":
		args, err := method.Inputs.Unpack(msg.Data[4:])
		require.NoError(f.t, err)
		require.Equal(f.t, holder, args[0].(common.Address))
		return method.Outputs.Pack(f.balance)
	}
	f.t.Fatalf("unexpected method %s", method.Name)
	return nil, nil
}

func (f *fakeBackend) BalanceAt(_ context.Context, account common.Address, _ *big.Int) (*big.Int, error) {
	require.Equal(f.t, holder, account)
	return f.native, nil
}

func (f *fakeBackend) ChainID(context.Context) (*big.Int, error) {
	return big.NewInt(f.chainID), nil
}

func TestTokenDecimals(t *testing.T) {
	backend := newFakeBackend(t)
	backend.decimals = 6
	c, err := NewClient(backend)
	require.NoError(t, err)

	got, err := c.TokenDecimals(context.Background(), lrcAddr.Hex())
	require.NoError(t, err)
	require.EqualValues(t, 6, got)
}

func TestBalanceOfToken(t *testing.T) {
	backend := newFakeBackend(t)
	backend.balance, _ = new(big.Int).SetString("123456789012345678901234567890", 10)
	c, err := NewClient(backend)
	require.NoError(t, err)

	got, err := c.BalanceOf(context.Background(), strings.ToLower(lrcAddr.Hex()), holder.Hex())
	require.NoError(t, err)
	require.Equal(t, "123456789012345678901234567890", got.String())
}

func TestBalanceOfNative(t *testing.T) {
	backend := newFakeBackend(t)
	backend.native = big.NewInt(5e17)
	c, err := NewClient(backend)
	require.NoError(t, err)

	got, err := c.BalanceOf(context.Background(), "0x0000000000000000000000000000000000000000", holder.Hex())
	require.NoError(t, err)
	require.Equal(t, 0, got.Cmp(big.NewInt(5e17)))
}

func TestCallErrorsAreWrapped(t *testing.T) {
	backend := newFakeBackend(t)
	backend.callErr = errors.New("execution reverted")
	c, err := NewClient(backend)
	require.NoError(t, err)

	_, err = c.TokenDecimals(context.Background(), lrcAddr.Hex())
	require.ErrorIs(t, err, ErrContractCall)
	require.Contains(t, err.Error(), "execution reverted")

	_, err = c.BalanceOf(context.Background(), lrcAddr.Hex(), holder.Hex())
	require.ErrorIs(t, err, ErrContractCall)
}

func TestEnsureChainID(t *testing.T) {
	backend := newFakeBackend(t)
	c, err := NewClient(backend)
	require.NoError(t, err)

	require.NoError(t, c.EnsureChainID(context.Background(), 1))

	backend.chainID = 5
	err = c.EnsureChainID(context.Background(), 1)
	require.ErrorIs(t, err, ErrChainMismatch)
}

func TestBoundContractsAreCached(t *testing.T) {
	c, err := NewClient(newFakeBackend(t))
	require.NoError(t, err)

	a := c.contract(lrcAddr.Hex())
	b := c.contract(strings.ToLower(lrcAddr.Hex()))
	require.Same(t, a, b)
	require.Len(t, c.contracts, 1)
}

func TestDialRequiresURL(t *testing.T) {
	_, err := Dial(context.Background(), "")
	require.ErrorIs(t, err, ErrMissingRPCURL)
}

func TestABIHasReadMethods(t *testing.T) {
	parsed, err := abi.JSON(bytes.NewReader([]byte(erc20ABI)))
	require.NoError(t, err)
	for _, name := range []string{"decimals", "balanceOf", "symbol"} {
		_, ok := parsed.Methods[name]
		require.True(t, ok, name)
	}
}
