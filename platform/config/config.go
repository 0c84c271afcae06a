// Package config provides engine configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// SolverConfig provides settings needed by the module optimizer.
type SolverConfig interface {
	GetSolverMaxSeconds() time.Duration
	GetOptimizerMaxUnitsPerModule() int
}

// CatalogConfig provides settings needed by the catalog repository.
type CatalogConfig interface {
	GetFallbackCostCents() int64
}

// EnclosureConfig provides settings needed by the enclosure planner.
type EnclosureConfig interface {
	GetBlocksPerBay() int
	GetSlotsPerBay() int
}

// Config holds all engine configuration, loaded once at construction and
// treated as immutable thereafter.
type Config struct {
	Env string

	SolverMaxSeconds           time.Duration
	OptimizerMaxUnitsPerModule int
	CatalogFallbackCostCents   int64
	EnclosureBlocksPerBay      int
	EnclosureSlotsPerBay       int
}

// GetSolverMaxSeconds implements SolverConfig.
func (c *Config) GetSolverMaxSeconds() time.Duration { return c.SolverMaxSeconds }

// GetOptimizerMaxUnitsPerModule implements SolverConfig.
func (c *Config) GetOptimizerMaxUnitsPerModule() int { return c.OptimizerMaxUnitsPerModule }

// GetFallbackCostCents implements CatalogConfig.
func (c *Config) GetFallbackCostCents() int64 { return c.CatalogFallbackCostCents }

// GetBlocksPerBay implements EnclosureConfig.
func (c *Config) GetBlocksPerBay() int { return c.EnclosureBlocksPerBay }

// GetSlotsPerBay implements EnclosureConfig.
func (c *Config) GetSlotsPerBay() int { return c.EnclosureSlotsPerBay }

// Load reads configuration from environment variables, falling back to the
// spec's documented defaults when a variable is absent.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:                        getEnv("APP_ENV", "development"),
		SolverMaxSeconds:           mustDuration(getEnv("SOLVER_MAX_SECONDS", "10s")),
		OptimizerMaxUnitsPerModule: int(mustInt64(getEnv("OPTIMIZER_MAX_UNITS", "20"))),
		CatalogFallbackCostCents:   mustInt64(getEnv("CATALOG_FALLBACK_COST_CENTS", "100000")),
		EnclosureBlocksPerBay:      int(mustInt64(getEnv("ENCLOSURE_BLOCKS_PER_BAY", "8"))),
		EnclosureSlotsPerBay:       int(mustInt64(getEnv("ENCLOSURE_SLOTS_PER_BAY", "8"))),
	}
}

// Default returns the configuration that applies when no environment
// variables are set — identical to Load() in an empty environment, kept
// separate so tests and library callers don't need to shell out to
// godotenv.Load() or touch the process environment at all.
func Default() *Config {
	return &Config{
		Env:                        "development",
		SolverMaxSeconds:           10 * time.Second,
		OptimizerMaxUnitsPerModule: 20,
		CatalogFallbackCostCents:   100000,
		EnclosureBlocksPerBay:      8,
		EnclosureSlotsPerBay:       8,
	}
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt64(value string) int64 {
	result, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0
	}
	return result
}
