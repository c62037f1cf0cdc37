package domain

import "errors"

// MetricStatus is the outcome of fetching one raw metric.
type MetricStatus string

const (
	// MetricStatusOK means the provider returned a usable value.
	MetricStatusOK MetricStatus = "OK"
	// MetricStatusAbsent means the provider answered but had no value, or the
	// provider is disabled.
	MetricStatusAbsent MetricStatus = "ABSENT"
	// MetricStatusFailed means the fetch or the decoding of the response failed.
	MetricStatusFailed MetricStatus = "FAILED"
)

// ErrAbsent is returned by providers when the upstream service answered but
// the requested value does not exist (e.g. no creation date on a WHOIS page).
var ErrAbsent = errors.New("metric absent")

// Metric carries a raw metric value together with its fetch status. Only OK
// metrics contribute to the score; absent and failed ones score 0.
type Metric[T any] struct {
	Status MetricStatus `json:"status"`
	Value  T            `json:"value"`
	// Err holds the failure message when Status is FAILED.
	Err string `json:"error,omitempty"`
}

// OK wraps a successfully fetched value.
func OK[T any](v T) Metric[T] {
	return Metric[T]{Status: MetricStatusOK, Value: v}
}

// Absent returns a metric with no value.
func Absent[T any]() Metric[T] {
	return Metric[T]{Status: MetricStatusAbsent}
}

// Failed returns a metric recording err.
func Failed[T any](err error) Metric[T] {
	m := Metric[T]{Status: MetricStatusFailed}
	if err != nil {
		m.Err = err.Error()
	}

	return m
}

// FromResult converts a provider's (value, error) pair into a Metric.
// ErrAbsent anywhere in the chain yields an absent metric.
func FromResult[T any](v T, err error) Metric[T] {
	switch {
	case err == nil:
		return OK(v)
	case errors.Is(err, ErrAbsent):
		return Absent[T]()
	default:
		return Failed[T](err)
	}
}

// Get returns the value and whether it is usable.
func (m Metric[T]) Get() (T, bool) {
	return m.Value, m.Status == MetricStatusOK
}
