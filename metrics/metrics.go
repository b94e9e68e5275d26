/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package metrics exposes errcode diagnostics as Prometheus metrics.
//
// A *Metrics value implements apis.Observer; register it with
// errcode.SetObserver to start counting.
package metrics

import (
	"errors"

	"dirpx.dev/errcode/apis"
	"dirpx.dev/errcode/code"
	"github.com/prometheus/client_golang/prometheus"
)

// Fallback reasons used as the "reason" label.
const (
	ReasonTooShort   = "too_short"
	ReasonNotNumeric = "not_numeric"
	ReasonOutOfRange = "out_of_range"
	ReasonOther      = "other"
)

var _ apis.Observer = (*Metrics)(nil)

// Metrics holds the errcode collectors.
type Metrics struct {
	StatusFallbacks *prometheus.CounterVec
	DecodeFailures  prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		StatusFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "errcode_status_fallbacks_total",
			Help: "total number of status derivations that fell back to 500",
		}, []string{"reason"}),
		DecodeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "errcode_decode_failures_total",
			Help: "total number of error responses that could not be decoded",
		}),
	}

	metrics.Enable(reg)
	return metrics
}

// Enable registers the collectors on reg. It panics if they already are.
func (m *Metrics) Enable(reg prometheus.Registerer) {
	reg.MustRegister(m.StatusFallbacks)
	reg.MustRegister(m.DecodeFailures)
}

// Disable unregisters the collectors from reg.
func (m *Metrics) Disable(reg prometheus.Registerer) {
	reg.Unregister(m.StatusFallbacks)
	reg.Unregister(m.DecodeFailures)
}

// StatusFallback implements apis.Observer.
func (m *Metrics) StatusFallback(_ string, err error) {
	m.StatusFallbacks.WithLabelValues(Reason(err)).Inc()
}

// DecodeFailure implements apis.Observer.
func (m *Metrics) DecodeFailure(error) {
	m.DecodeFailures.Inc()
}

// Reason classifies a status derivation error into a label value.
func Reason(err error) string {
	switch {
	case errors.Is(err, code.ErrTooShort):
		return ReasonTooShort
	case errors.Is(err, code.ErrStatusNotNumeric):
		return ReasonNotNumeric
	case errors.Is(err, code.ErrStatusOutOfRange):
		return ReasonOutOfRange
	default:
		return ReasonOther
	}
}
