/*
Package observability provides tools for monitoring the inference engine.

It turns lifecycle events into Prometheus metrics and structured log records.
Both are exposed as domain.LifecycleHooks so they can be merged and passed to the engine.
*/
package observability
