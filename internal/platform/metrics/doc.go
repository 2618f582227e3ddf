// Package metrics exports task lifecycle metrics to Prometheus.
package metrics
