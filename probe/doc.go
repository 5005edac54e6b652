// Package probe verifies reachability of database connections and reports
// each outcome as a keyed status record. A Probe dispatches a
// backend-appropriate liveness query, races it against a timeout budget, and
// classifies every failure into a "down" record; it never returns an error
// to its caller. See ExampleProbe_PingCheck and ExampleNewSQLConn for
// quick-start patterns.
package probe
