package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "watchnow_bot"

var (
	UsersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Number of /start commands from users not seen before.",
	})

	ActiveUsers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_users",
		Help:      "Number of users in the broadcast list.",
	})

	Broadcasts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcasts_total",
		Help:      "Number of completed broadcast runs.",
	})

	Deliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcast_deliveries_total",
		Help:      "Broadcast message deliveries by result.",
	}, []string{"result"})

	PrunedUsers = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pruned_users_total",
		Help:      "Users removed after a permanent delivery failure.",
	})

	HandlerErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "handler_errors_total",
		Help:      "Errors raised while processing updates.",
	})
)

const (
	ResultSuccess = "success"
	ResultFailed  = "failed"
)

// Handler serves the default registry.
func Handler(logger promhttp.Logger) http.Handler {
	return promhttp.InstrumentMetricHandler(
		prometheus.DefaultRegisterer,
		promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
			ErrorLog: logger,
		}),
	)
}
