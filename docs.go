// Package pulsecheck bundles composable health-check helpers for Go
// services. The module stays intentionally small and encourages teams to
// pull in only the packages they need, keeping binaries lean and
// dependencies predictable.
//
// The result package builds the keyed status records that probes report:
// exactly one check key mapped to a detail object whose "up"/"down" tag can
// never be overwritten by caller data. The probe package verifies
// reachability of relational and document databases, racing a
// backend-appropriate liveness query against a timeout budget and
// classifying every failure into an actionable down record. The capability
// package tracks which optional driver integrations a deployment ships, so
// a missing driver fails fast at startup instead of inside a health check.
// jsonutil provides thin sonic wrappers for high-throughput encoding and
// decoding.
//
// # Packages
//
//   - result: keyed status records with a tamper-proof up/down tag and
//     normalized diagnostic payloads.
//   - probe: connectivity probes for SQL dialects and document stores, with
//     timeout racing and a safe error taxonomy.
//   - capability: explicit registry of optional driver packages, verified at
//     probe construction and defensively on every call.
//   - jsonutil: tiny helpers around sonic for performance-sensitive encoding
//     tasks.
//
// # Quick Start
//
//	p, err := probe.New(probe.WithLogger(logger))
//	if err != nil {
//	    // a missing optional driver package is a setup error
//	    log.Fatal(err)
//	}
//
//	status := p.PingCheck(ctx, "orders-db", probe.Settings{
//	    Conn:    probe.NewSQLConn(db, probe.KindOracle),
//	    Timeout: 500 * time.Millisecond,
//	})
//
//	data, _ := status.JSON() // {"orders-db":{"status":"up"}}
//
// Probes never return an error to their caller: a missing connection handle,
// a timeout, or a failed side connection all come back as down records whose
// messages distinguish configuration mistakes from real outages.
package pulsecheck
