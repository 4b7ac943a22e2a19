/*
Package observability exposes simulation counters as Prometheus metrics.

Metrics are fed through domain.LifecycleHooks and can be written to a file in the
text exposition format (e.g. for the node_exporter textfile collector).
*/
package observability
