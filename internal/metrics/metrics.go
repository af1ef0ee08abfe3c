// Package metrics exposes group operations as Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"splitpane/internal/layout"
)

// Observer counts operations, records applied deltas and tracks how many panels
// sit collapsed.
type Observer struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	deltas     *prometheus.HistogramVec
	collapsed  *prometheus.GaugeVec
}

var _ layout.Observer = (*Observer)(nil)

// NewObserver registers the splitpane metrics on a fresh registry.
func NewObserver() *Observer {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Observer{
		registry: reg,
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "splitpane",
			Name:      "layout_operations_total",
			Help:      "Layout operations attempted, by name, event kind and whether sizes changed.",
		}, []string{"group", "op", "kind", "changed"}),
		deltas: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "splitpane",
			Name:      "layout_delta_percent",
			Help:      "Size moved across a divider by committed operations, in percent.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100},
		}, []string{"group", "op"}),
		collapsed: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "splitpane",
			Name:      "panels_collapsed",
			Help:      "Panels currently at size 0.",
		}, []string{"group"}),
	}
}

// Observe implements layout.Observer.
func (o *Observer) Observe(_ context.Context, op layout.Operation) {
	o.operations.WithLabelValues(op.Group, op.Name, op.Kind.String(), strconv.FormatBool(op.Changed)).Inc()
	if !op.Changed {
		return
	}
	o.deltas.WithLabelValues(op.Group, op.Name).Observe(moved(op.Prev, op.Next))

	n := 0
	for _, s := range op.Next {
		if s == 0 {
			n++
		}
	}
	o.collapsed.WithLabelValues(op.Group).Set(float64(n))
}

// moved is the size that changed hands: half the total absolute change.
func moved(prev, next layout.Sizes) float64 {
	var total float64
	for i := range next {
		var p float64
		if i < len(prev) {
			p = prev[i]
		}
		total += math.Abs(next[i] - p)
	}
	return total / 2
}

// Handler serves the registry in the Prometheus exposition format.
func (o *Observer) Handler() http.Handler {
	return promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{})
}

// Server serves /metrics until Close.
type Server struct {
	srv    *http.Server
	ln     net.Listener
	logger *slog.Logger
}

// Serve starts serving o on addr in the background.
func Serve(addr string, o *Observer, logger *slog.Logger) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", o.Handler())
	s := &Server{
		srv:    &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		ln:     ln,
		logger: logger,
	}
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server stopped", "error", err)
		}
	}()
	return s, nil
}

// Addr returns the address the server listens on.
func (s *Server) Addr() string { return s.ln.Addr().String() }

// Close stops the server, waiting briefly for in-flight scrapes.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
