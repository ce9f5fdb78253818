package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Middleware counters. Defined in a standalone package so the gate and the
// callback handler can share them without import cycles.
var (
	AuthRedirects = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "accounted4_auth_redirects_total",
		Help: "Visitors redirected to a provider's authorization URL",
	}, []string{"provider"})

	CodeExchanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "accounted4_code_exchanges_total",
		Help: "Authorization-code token exchanges by outcome",
	}, []string{"provider", "outcome"})

	Refreshes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "accounted4_token_refreshes_total",
		Help: "Refresh-token exchanges by outcome",
	}, []string{"provider", "outcome"})
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Register registers the middleware metrics on the given registry (or the
// default if nil). Double registration is not an error.
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{AuthRedirects, CodeExchanges, Refreshes} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}
