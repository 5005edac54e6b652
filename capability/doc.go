// Package capability tracks which optional driver integrations are available
// to a process. Probes verify their required capabilities once at
// construction and again defensively on every call, so a missing driver
// surfaces as a descriptive setup error instead of a confusing runtime
// failure deep inside a health check.
package capability
