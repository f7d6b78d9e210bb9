// Package metrics defines and registers all custom Prometheus metrics for
// the contacts API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init;
// the /metrics endpoint is served by the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "contactbook"

// AuthFailuresTotal counts rejected requests at the auth middleware.
// Missing and unrecognized tokens are counted together; the split is
// deliberately not observable, matching the API's 401 behaviour.
var AuthFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected with 401 by the auth middleware.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ContactsCreatedTotal counts newly created contacts.
var ContactsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contacts_created_total",
		Help:      "Total number of contacts created.",
	},
)

// ContactSearchesTotal counts contact listing queries.
// Label:
//   - filtered: "true" when at least one of name/email/phone was supplied
var ContactSearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_searches_total",
		Help:      "Total number of contact search queries, labelled by filter presence.",
	},
	[]string{"filtered"},
)

// ActivityEventsTotal counts audit events accepted by the dispatcher.
// Label:
//   - action: the activity action (e.g. "contact_created")
var ActivityEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_events_total",
		Help:      "Total number of activity events enqueued for the audit log.",
	},
	[]string{"action"},
)

// ActivityQueueDepth tracks the number of events waiting in each dispatcher
// worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
