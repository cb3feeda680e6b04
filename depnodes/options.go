package depnodes

import (
	"math"
	"reflect"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const DefaultInitialCapacity = 4096

type options struct {
	limit           int
	initialCapacity int
	logger          *zap.Logger
	registerer      prometheus.Registerer
	metricLabels    prometheus.Labels
	vocabulary      *Vocabulary
	equal           func(a, b any) bool
}

type Option func(*options)

func defaultOptions() options {
	return options{
		limit:           math.MaxInt,
		initialCapacity: DefaultInitialCapacity,
		logger:          zap.NewNop(),
		equal:           valuesEqual,
	}
}

// WithLimit caps the store at n slots. Adds that need to grow past it fail
// with ErrOutOfSpace.
func WithLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.limit = n
		}
	}
}

func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.initialCapacity = n
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRegisterer registers the set's metrics with reg. Sets sharing a
// registerer must be told apart with WithMetricLabels.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// WithMetricLabels adds constant labels to every metric of the set, so several
// sets can share one registerer.
func WithMetricLabels(labels prometheus.Labels) Option {
	return func(o *options) {
		o.metricLabels = labels
	}
}

// WithVocabulary validates every function call against v before an expression
// is accepted.
func WithVocabulary(v *Vocabulary) Option {
	return func(o *options) {
		o.vocabulary = v
	}
}

// WithEqual replaces the comparison that decides whether a recomputed value
// changed. It must be consistent for the unchanged-value short circuit to be
// sound.
func WithEqual(equal func(a, b any) bool) Option {
	return func(o *options) {
		if equal != nil {
			o.equal = equal
		}
	}
}

func valuesEqual(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta == nil {
		return true
	}
	if ta.Comparable() && ta.Kind() != reflect.Interface && ta.Kind() != reflect.Struct && ta.Kind() != reflect.Array {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
