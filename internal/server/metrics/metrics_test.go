package metrics

import (
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/docledger/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, OutcomeOK},
		{fmt.Errorf("asset x: %w", common.ErrorNotFound), OutcomeNotFound},
		{common.ErrorForbidden, OutcomeForbidden},
		{common.ErrorUnauthorized, OutcomeUnauthorized},
		{common.ErrInvalidToken, OutcomeUnauthorized},
		{common.ErrorConflict, OutcomeConflict},
		{errors.New("boom"), OutcomeError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Outcome(tt.err), "err=%v", tt.err)
	}
}

func TestCounters(t *testing.T) {
	m := New()

	m.ObserveOperation("getData", nil)
	m.ObserveOperation("getData", nil)
	m.ObserveOperation("getData", common.ErrorForbidden)
	m.ObserveFanoutCopy(nil)
	m.ObserveFanoutCopy(errors.New("boom"))
	m.ObserveBackup(true, nil)

	body := scrape(t, m)
	assert.Contains(t, body, `docledger_operations_total{op="getData",outcome="ok"} 2`)
	assert.Contains(t, body, `docledger_operations_total{op="getData",outcome="forbidden"} 1`)
	assert.Contains(t, body, `docledger_fanout_copies_total{outcome="ok"} 1`)
	assert.Contains(t, body, `docledger_fanout_copies_total{outcome="error"} 1`)
	assert.Contains(t, body, `docledger_backups_total{outcome="skipped"} 1`)
}

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return string(body)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveOperation("x", nil)
		m.ObserveFanoutCopy(nil)
		m.ObserveBackup(false, nil)
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveOperation("postData", nil)

	body := scrape(t, m)
	assert.Contains(t, body, `docledger_operations_total{op="postData",outcome="ok"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
