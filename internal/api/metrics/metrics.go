// Package metrics defines and registers all custom Prometheus metrics for the
// club membership API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto, so the /metrics endpoint picks them up automatically.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "club"

// ── Roster metrics ────────────────────────────────────────────────────────────

// MembersCreatedTotal counts newly registered members.
// Label:
//   - category: the age category derived at registration (e.g. "INFANTIL")
var MembersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "members_created_total",
		Help:      "Total number of members registered, by derived category.",
	},
	[]string{"category"},
)

// PhotoUploadsTotal counts profile photo uploads.
// Label:
//   - result: "ok" or "error"
var PhotoUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "photo_uploads_total",
		Help:      "Total number of profile photo uploads, by result.",
	},
	[]string{"result"},
)

// PermissionDenialsTotal counts requests rejected by the capability check.
// Label:
//   - role: the caller role that was denied (empty string for missing role)
var PermissionDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "permission_denials_total",
		Help:      "Total number of requests denied by capability resolution.",
	},
	[]string{"role"},
)

// ── Carnet export metrics ─────────────────────────────────────────────────────

// ExportsTotal counts carnet export attempts.
// Label:
//   - result: "ok", "busy", or "error"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "carnet_exports_total",
		Help:      "Total number of carnet export attempts, by result.",
	},
	[]string{"result"},
)

// ExportDuration measures how long a full export takes, both face captures
// plus document assembly.
var ExportDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "carnet_export_duration_seconds",
		Help:      "Duration of a carnet export from request to finished document.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
