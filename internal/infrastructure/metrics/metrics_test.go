package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_PipelineCounters(t *testing.T) {
	m := New()

	m.CardEnriched()
	m.CardEnriched()
	m.BenefitDropped("disclaimer")
	m.BenefitDropped("disclaimer")
	m.BenefitDropped("no_target")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CardsEnriched))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BenefitsDropped.WithLabelValues("disclaimer")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BenefitsDropped.WithLabelValues("no_target")))
}

func TestMetrics_RunCompleted(t *testing.T) {
	m := New()

	m.RunCompleted("crawl", time.Second, nil)
	m.RunCompleted("enrich", time.Second, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("crawl", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("enrich", "failure")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Runs.WithLabelValues("crawl", "failure")))
}

func TestMetrics_UpstreamAndHTTP(t *testing.T) {
	m := New()

	m.UpstreamRequest("detail", "ok")
	m.ObserveHTTP(http.MethodGet, "/api/v1/cards", http.StatusOK, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("detail", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/v1/cards", "200")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.CardEnriched()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "cardlens_cards_enriched_total 1"))
	assert.Contains(t, body, "go_goroutines")
}
