// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package metrics

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dalzilio/lbdd"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct {
	id    uuid.UUID
	stats lbdd.Stats
}

func (f fixedSource) ID() uuid.UUID     { return f.id }
func (f fixedSource) Stats() lbdd.Stats { return f.stats }

func TestCollectorValues(t *testing.T) {
	src := fixedSource{
		id: uuid.New(),
		stats: lbdd.Stats{
			Nodes:      42,
			IndexSize:  61,
			Produced:   40,
			Applies:    7,
			OpHit:      3,
			Collisions: 1,
		},
	}
	c := NewCollector("lbdd", src)
	assert.Equal(t, 11, testutil.CollectAndCount(c))

	expected := fmt.Sprintf(`
# HELP lbdd_table_nodes Number of nodes in the table, constants included.
# TYPE lbdd_table_nodes gauge
lbdd_table_nodes{table=%[1]q} 42
# HELP lbdd_table_applies_total Number of successful apply operations.
# TYPE lbdd_table_applies_total counter
lbdd_table_applies_total{table=%[1]q} 7
# HELP lbdd_table_task_cache_collisions_total Task cache writes that evicted another task.
# TYPE lbdd_table_task_cache_collisions_total counter
lbdd_table_task_cache_collisions_total{table=%[1]q} 1
`, src.id.String())
	err := testutil.CollectAndCompare(c, strings.NewReader(expected),
		"lbdd_table_nodes", "lbdd_table_applies_total", "lbdd_table_task_cache_collisions_total")
	assert.NoError(t, err)
}

func TestCollectorTable(t *testing.T) {
	tb, err := lbdd.New(lbdd.Nodesize(16))
	require.NoError(t, err)
	reg := prometheus.NewPedanticRegistry()
	c := NewCollector("lbdd", tb)
	require.NoError(t, reg.Register(c))

	x := make([]lbdd.Addr, 6)
	for i := range x {
		x[i], err = tb.Ithvar(lbdd.Var(i))
		require.NoError(t, err)
	}
	_, err = tb.And(x...)
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	values := make(map[string]float64)
	for _, mf := range families {
		require.Len(t, mf.GetMetric(), 1)
		m := mf.GetMetric()[0]
		require.Len(t, m.GetLabel(), 1)
		assert.Equal(t, tb.ID().String(), m.GetLabel()[0].GetValue())
		switch {
		case m.GetGauge() != nil:
			values[mf.GetName()] = m.GetGauge().GetValue()
		case m.GetCounter() != nil:
			values[mf.GetName()] = m.GetCounter().GetValue()
		}
	}
	stats := tb.Stats()
	assert.Equal(t, float64(tb.Len()), values["lbdd_table_nodes"])
	assert.Equal(t, float64(stats.Applies), values["lbdd_table_applies_total"])
	assert.Equal(t, float64(stats.Produced), values["lbdd_table_produced_nodes_total"])
	assert.Positive(t, values["lbdd_table_applies_total"])

	// a second collector for the same table is rejected
	assert.Error(t, reg.Register(NewCollector("lbdd", tb)))
}
