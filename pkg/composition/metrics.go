// Copyright (c) 2026, Pastrylab.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package composition

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Composition engine metrics
	computeTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eq_composition_computed_total",
			Help: "Total number of successfully computed compositions",
		},
	)
	computeFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eq_composition_failures_total",
			Help: "Total number of composition computations aborted on unresolved ingredients",
		},
	)
	computeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "eq_composition_duration_seconds",
			Help:    "Duration of composition computations in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
