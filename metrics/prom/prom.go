package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/IvanBrykalov/indexlist/list"
)

// Adapter implements list.Metrics and exports Prometheus counters/gauges.
// Safe for concurrent use; all Prometheus metric types are goroutine-safe,
// so one Adapter may be shared by many lists.
type Adapter struct {
	inserts   prometheus.Counter
	removes   prometheus.Counter
	misuse    *prometheus.CounterVec
	grows     prometheus.Counter
	reindexed prometheus.Counter
	sorted    prometheus.Histogram
	length    prometheus.Gauge
	capacity  prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "inserts_total",
			Help:        "Elements inserted",
			ConstLabels: constLabels,
		}),
		removes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "removes_total",
			Help:        "Elements removed",
			ConstLabels: constLabels,
		}),
		misuse: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "misuse_total",
				Help:        "Rejected calls by operation",
				ConstLabels: constLabels,
			},
			[]string{"op"},
		),
		grows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "index_grows_total",
			Help:        "Position index reallocations",
			ConstLabels: constLabels,
		}),
		reindexed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "index_slots_rebuilt_total",
			Help:        "Position index slots rederived from the chain",
			ConstLabels: constLabels,
		}),
		sorted: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "sort_elements",
			Help:        "Elements ordered per Sort call",
			Buckets:     prometheus.ExponentialBuckets(2, 4, 10),
			ConstLabels: constLabels,
		}),
		length: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "length",
			Help:        "Number of elements after the last mutation",
			ConstLabels: constLabels,
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "index_capacity",
			Help:        "Position index capacity after the last mutation",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.inserts, a.removes, a.misuse, a.grows, a.reindexed, a.sorted, a.length, a.capacity)
	return a
}

// Insert increments the insert counter.
func (a *Adapter) Insert() { a.inserts.Inc() }

// Remove increments the remove counter.
func (a *Adapter) Remove() { a.removes.Inc() }

// Misuse increments the misuse counter with an op label.
func (a *Adapter) Misuse(op list.Op) { a.misuse.WithLabelValues(op.String()).Inc() }

// Grow counts an index reallocation.
func (a *Adapter) Grow(int) { a.grows.Inc() }

// Reindex adds the number of rebuilt slots.
func (a *Adapter) Reindex(slots int) { a.reindexed.Add(float64(slots)) }

// Sort observes the number of elements ordered.
func (a *Adapter) Sort(n int) { a.sorted.Observe(float64(n)) }

// Size updates gauges for the length and index capacity.
func (a *Adapter) Size(length, capacity int) {
	a.length.Set(float64(length))
	a.capacity.Set(float64(capacity))
}

// Compile-time check: ensure Adapter implements list.Metrics.
var _ list.Metrics = (*Adapter)(nil)
