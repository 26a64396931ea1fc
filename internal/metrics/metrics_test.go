package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveComputation(2*time.Millisecond, 3)
	m.ObserveComputation(time.Millisecond, 0)
	m.ObserveMutation("expense_added")
	m.ObserveMutation("expense_added")
	m.ObserveMutation("member_added")
	m.ObserveRPC("/groupsplit.v1.LedgerService/GetBalances", "ok", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Computations))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Mutations.WithLabelValues("expense_added")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mutations.WithLabelValues("member_added")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCRequests.WithLabelValues("/groupsplit.v1.LedgerService/GetBalances", "ok")))

	count, err := testutil.GatherAndCount(reg, "groupsplit_simplified_transfers")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveComputation(time.Millisecond, 1)
		m.ObserveMutation("group_created")
		m.ObserveRPC("/x", "ok", time.Millisecond)
	})
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}
