package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string
	Env        string
	Ethereum   EthereumConfig
}

type EthereumConfig struct {
	RPCURL            string
	RPCTimeout        time.Duration
	VerifyConcurrency int
}

// LoadFromEnv reads configuration from environment variables with fallback defaults.
// It also loads `.env` if present (for local development).
func LoadFromEnv() (*Config, error) {
	// Load .env if exists, ignore error if no file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, relying on environment variables")
	}

	timeoutStr := getEnv("RPC_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RPC_TIMEOUT duration: %w", err)
	}

	concurrencyStr := getEnv("VERIFY_CONCURRENCY", "8")
	concurrency, err := strconv.Atoi(concurrencyStr)
	if err != nil || concurrency < 1 {
		return nil, fmt.Errorf("invalid VERIFY_CONCURRENCY %q: must be a positive integer", concurrencyStr)
	}

	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		Env:        getEnv("ENV", "dev"),
		Ethereum: EthereumConfig{
			RPCURL:            os.Getenv("ETH_RPC_URL"),
			RPCTimeout:        timeout,
			VerifyConcurrency: concurrency,
		},
	}, nil
}

// helper to get env with default fallback
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
