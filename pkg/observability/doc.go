/*
Package observability provides tools for monitoring lattice graphs.

It bridges the graph's mutation hooks to Prometheus counters and exposes
gauges for the current size of a graph. Metric collection is opt-in: a graph
built without these hooks carries no instrumentation cost.
*/
package observability
