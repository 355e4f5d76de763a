package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsOutcomes(t *testing.T) {
	m := metrics.New()
	var _ commands.Metrics = m

	m.ObserveCheckout(commands.OutcomeCommitted)
	m.ObserveCheckout(commands.OutcomeCommitted)
	m.ObserveCheckout(commands.OutcomeRejected)
	m.ObserveReceipt(commands.OutcomeFailed)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `checkout_orders_total{outcome="committed"} 2`)
	assert.Contains(t, string(body), `checkout_orders_total{outcome="rejected"} 1`)
	assert.Contains(t, string(body), `checkout_receipts_total{outcome="failed"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestMetrics_InstancesAreIndependent(t *testing.T) {
	a := metrics.New()
	b := metrics.New()

	a.ObserveCheckout(commands.OutcomeFailed)

	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.NotContains(t, rec.Body.String(), `checkout_orders_total{outcome="failed"}`)
}
