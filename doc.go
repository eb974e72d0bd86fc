// Package fetchkit is a thin HTTP client wrapper adding base-URL
// composition, query-parameter serialization, timeout-based cancellation
// and ordered request/response/error interceptor chains on top of a
// pluggable transport. It intentionally does not retry, pool, cache or
// stream; every call is a single cancellable network attempt.
package fetchkit
