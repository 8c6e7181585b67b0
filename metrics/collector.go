// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package metrics exports the statistics of a BDD table as Prometheus metrics.
//
// A Collector reads the statistics of its source each time it is collected.
// Tables are not safe for concurrent use, hence collection should happen when
// the goroutine owning the table is not running an operation, or the source
// should serialize its accesses.
package metrics

import (
	"github.com/dalzilio/lbdd"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// StatsSource is the interface of values whose statistics can be collected.
// It is implemented by *lbdd.Table.
type StatsSource interface {
	ID() uuid.UUID
	Stats() lbdd.Stats
}

// Collector is a prometheus.Collector for the statistics of a single table.
// Metrics carry a constant "table" label with the identifier of the source.
type Collector struct {
	source  StatsSource
	metrics []metric
}

type metric struct {
	desc  *prometheus.Desc
	vtype prometheus.ValueType
	value func(s lbdd.Stats) int
}

// NewCollector returns a collector for source. Metric names are prefixed with
// namespace and the "table" subsystem.
func NewCollector(namespace string, source StatsSource) *Collector {
	labels := prometheus.Labels{"table": source.ID().String()}
	gauge := func(name, help string, value func(s lbdd.Stats) int) metric {
		return metric{
			desc:  prometheus.NewDesc(prometheus.BuildFQName(namespace, "table", name), help, nil, labels),
			vtype: prometheus.GaugeValue,
			value: value,
		}
	}
	counter := func(name, help string, value func(s lbdd.Stats) int) metric {
		m := gauge(name+"_total", help, value)
		m.vtype = prometheus.CounterValue
		return m
	}
	return &Collector{
		source: source,
		metrics: []metric{
			gauge("nodes", "Number of nodes in the table, constants included.",
				func(s lbdd.Stats) int { return s.Nodes }),
			gauge("index_slots", "Number of slots in the unique index.",
				func(s lbdd.Stats) int { return s.IndexSize }),
			counter("produced_nodes", "Number of nodes created.",
				func(s lbdd.Stats) int { return s.Produced }),
			counter("unique_hits", "Lookups that found a node in the unique index.",
				func(s lbdd.Stats) int { return s.UniqueHit }),
			counter("unique_misses", "Lookups that did not find a node in the unique index.",
				func(s lbdd.Stats) int { return s.UniqueMiss }),
			counter("unique_probes", "Slots visited while probing the unique index.",
				func(s lbdd.Stats) int { return s.UniqueChain }),
			counter("rehashes", "Number of times the unique index was resized.",
				func(s lbdd.Stats) int { return s.Rehashes }),
			counter("applies", "Number of successful apply operations.",
				func(s lbdd.Stats) int { return s.Applies }),
			counter("task_cache_hits", "Tasks resolved by the task cache.",
				func(s lbdd.Stats) int { return s.OpHit }),
			counter("task_cache_misses", "Tasks missing from the task cache.",
				func(s lbdd.Stats) int { return s.OpMiss }),
			counter("task_cache_collisions", "Task cache writes that evicted another task.",
				func(s lbdd.Stats) int { return s.Collisions }),
		},
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range c.metrics {
		ch <- m.desc
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.source.Stats()
	for _, m := range c.metrics {
		ch <- prometheus.MustNewConstMetric(m.desc, m.vtype, float64(m.value(s)))
	}
}
