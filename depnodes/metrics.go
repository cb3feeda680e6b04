package depnodes

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	adds     prometheus.Counter
	removes  prometheus.Counter
	updates  prometheus.Counter
	events   prometheus.Counter
	failures *prometheus.CounterVec
	occupied prometheus.Gauge
	slots    prometheus.Gauge
	gaps     prometheus.Gauge
}

// newMetrics builds the set's collectors. Every set registered with the same
// registerer needs distinct constant labels, otherwise registration panics.
func newMetrics(reg prometheus.Registerer, labels prometheus.Labels) *metrics {
	m := &metrics{
		adds: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "depnodes_adds_total",
			Help:        "Batches added to the node set",
			ConstLabels: labels,
		}),
		removes: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "depnodes_removes_total",
			Help:        "Batches removed from the node set",
			ConstLabels: labels,
		}),
		updates: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "depnodes_updates_total",
			Help:        "Update propagations started",
			ConstLabels: labels,
		}),
		events: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "depnodes_events_total",
			Help:        "Value changes published",
			ConstLabels: labels,
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "depnodes_failures_total",
			Help:        "Failed operations by kind",
			ConstLabels: labels,
		}, []string{"kind"}),
		occupied: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "depnodes_occupied_nodes",
			Help:        "Occupied slots in the flat store",
			ConstLabels: labels,
		}),
		slots: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "depnodes_store_slots",
			Help:        "Allocated slots in the flat store",
			ConstLabels: labels,
		}),
		gaps: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "depnodes_free_ranges",
			Help:        "Free ranges below the top of the store",
			ConstLabels: labels,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.adds, m.removes, m.updates, m.events, m.failures, m.occupied, m.slots, m.gaps)
	}
	return m
}

func (m *metrics) fail(kind string) {
	m.failures.WithLabelValues(kind).Inc()
}
