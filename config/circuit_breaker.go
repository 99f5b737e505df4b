package config

import (
	"log"
	"time"

	"github.com/sony/gobreaker"
)

// NewCircuitBreaker cria o circuit breaker da API remota a partir da configuração.
// Devolve nil quando BREAKER_ENABLED=false.
func NewCircuitBreaker(cfg *Config) *gobreaker.CircuitBreaker {
	if !cfg.BreakerEnabled {
		return nil
	}

	failures := uint32(cfg.BreakerFailures)
	if failures == 0 {
		failures = 3
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "API-Carnes",
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("⚠️ Circuit Breaker %s: %s -> %s", name, from, to)
		},
	})
}
