package lanplus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "lanplus"
	subsystem = "crypt"
)

var (
	entropySeeds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "entropy_seeds_total",
			Help:      "Attempts to prime the randomness source, by outcome.",
		},
		[]string{"outcome"},
	)
	randomFills = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "random_fills_total",
			Help:      "Buffers filled with random bytes, by outcome.",
		},
		[]string{"outcome"},
	)
	authCodes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "auth_codes_total",
			Help:      "Keyed hash computations, by algorithm and outcome.",
		},
		[]string{"algorithm", "outcome"},
	)
	cipherOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cipher_operations_total",
			Help:      "Payload cipher invocations, by direction and outcome.",
		},
		[]string{"operation", "outcome"},
	)
)

func outcome(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
