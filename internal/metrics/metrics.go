package metrics

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Toggles counts interaction toggles by kind and resulting state
	Toggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blognity_interaction_toggles_total",
		Help: "Interaction toggles by kind and resulting state.",
	}, []string{"kind", "state"})

	// NotificationsCreated counts fan-out inserts by notification type
	NotificationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blognity_notifications_created_total",
		Help: "Notifications created by fan-out, by type.",
	}, []string{"type"})

	// RequestsTotal counts API requests by method and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blognity_http_requests_total",
		Help: "API requests by method and status code.",
	}, []string{"method", "status"})
)

// ToggleState records a toggle outcome
func ToggleState(kind string, on bool) {
	state := "off"
	if on {
		state = "on"
	}
	Toggles.WithLabelValues(kind, state).Inc()
}

// StartServer exposes /metrics and /health on the given port in the
// background
func StartServer(port string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{Addr: ":" + port, Handler: mux}
	log.Println("Starting metrics server at", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Metrics server stopped: %v", err)
		}
	}()
}
