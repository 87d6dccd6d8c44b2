package vec

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	size     prometheus.Gauge
	capacity prometheus.Gauge
	pushes   prometheus.Counter
	grows    prometheus.Counter
	moved    prometheus.Counter
}

func newMetrics(registerer prometheus.Registerer, namespace, subsystem string) *metrics {
	if registerer != nil {
		registerer = prometheus.WrapRegistererWith(
			prometheus.Labels{"component": "vec"},
			registerer,
		)
	}

	m := metrics{
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "size",
			Help:      "Number of live elements in array",
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "capacity",
			Help:      "Number of allocated element slots",
		}),
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "pushes",
			Help:      "Number of elements appended to array",
		}),
		grows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "grows",
			Help:      "Number of capacity growths",
		}),
		moved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "moved_elements",
			Help:      "Number of elements relocated into a new block",
		}),
	}

	if registerer != nil {
		registerer.MustRegister(
			m.size,
			m.capacity,
			m.pushes,
			m.grows,
			m.moved,
		)
	}

	return &m
}

// WithPrometheus attaches Prometheus metrics to the Array and returns it. If
// registerer is nil, metrics are created but not registered.
//
// Metrics belong to the instance, not to its contents: [Array.Swap],
// [Array.CopyFrom] and [Array.MoveFrom] leave them attached to their
// receiver.
func (a *Array[T]) WithPrometheus(
	registerer prometheus.Registerer,
	namespace, subsystem string,
) *Array[T] {
	a.metrics = newMetrics(registerer, namespace, subsystem)
	a.observe()
	return a
}

func (a *Array[T]) observe() {
	if a.metrics == nil {
		return
	}
	a.metrics.size.Set(float64(a.size))
	a.metrics.capacity.Set(float64(a.items.Len()))
}
