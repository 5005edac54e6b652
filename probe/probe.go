package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/drblury/pulsecheck/capability"
	"github.com/drblury/pulsecheck/result"
)

// DefaultTimeout bounds a liveness check when Settings.Timeout is unset.
const DefaultTimeout = time.Second

// noConnectionMessage distinguishes a configuration error (nothing to check)
// from a real connectivity failure. Tests assert on this text.
const noConnectionMessage = "Connection provider not found in application context"

var requiredPackages = []string{CapabilitySQL, CapabilityDocument}

// Option configures optional collaborators of a Probe.
type Option func(*Probe)

// Probe checks reachability of database connections. The zero value is not
// usable; construct with New so the capability check runs.
type Probe struct {
	provider     Provider
	caps         capability.Verifier
	log          *slog.Logger
	dialDocument DocumentDialer
}

// New constructs a Probe. It verifies the required optional packages once up
// front; a failure here is a setup error and is expected to abort startup.
func New(opts ...Option) (*Probe, error) {
	p := &Probe{
		caps:         capability.Default(),
		log:          slog.Default(),
		dialDocument: dialMongo,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}

	if err := p.caps.Verify("probe.New", requiredPackages...); err != nil {
		return nil, err
	}
	return p, nil
}

// WithProvider installs the collaborator that resolves the ambient default
// connection handle when Settings.Conn is not supplied.
func WithProvider(provider Provider) Option {
	return func(p *Probe) {
		p.provider = provider
	}
}

// WithCapabilities replaces the default capability registry.
func WithCapabilities(caps capability.Verifier) Option {
	return func(p *Probe) {
		if caps != nil {
			p.caps = caps
		}
	}
}

// WithLogger injects a custom slog logger for failure diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Probe) {
		if logger != nil {
			p.log = logger
		}
	}
}

// WithDocumentDialer overrides how the document-store side connection is
// opened. Mainly useful for document stores with a non-Mongo native client,
// and for tests.
func WithDocumentDialer(dial DocumentDialer) Option {
	return func(p *Probe) {
		if dial != nil {
			p.dialDocument = dial
		}
	}
}

// PingCheck verifies that the connection behind key is alive and reports the
// outcome as a status record keyed by key. It never returns an error: every
// failure mode, including a missing handle, becomes a "down" record.
func (p *Probe) PingCheck(ctx context.Context, key string, settings Settings) result.Status {
	ctx = contextOrBackground(ctx)
	check := result.New(key)
	log := p.log.With("check", key, "runId", newRunID())

	// Re-verified on every call in addition to construction, guarding
	// against registries mutated after the probe was built.
	if err := p.caps.Verify("probe.PingCheck", requiredPackages...); err != nil {
		log.Error("capability verification failed", "error", err)
		return check.Down(result.Message(err.Error()))
	}

	conn := p.resolveConn(ctx, settings, log)
	if conn == nil {
		log.Warn("no connection handle available")
		return check.Down(result.Message(noConnectionMessage))
	}

	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	err := p.race(ctx, timeout, conn)

	var timeoutErr *TimeoutError
	var connectErr *ConnectError

	switch {
	case err == nil:
		return check.Up()
	case errors.As(err, &timeoutErr):
		log.Warn("liveness check timed out", "timeout", timeout)
		return check.Down(result.Message(timeoutErr.Error()))
	case errors.As(err, &connectErr):
		log.Warn("side connection attempt failed", "error", err)
		return check.Down(result.Message(connectErr.Error()))
	default:
		// Raw driver errors can carry credentials or topology details;
		// they go to the log, not the record.
		log.Error("liveness check failed", "error", err)
		return check.Down(result.Message(key + " is not available"))
	}
}

// resolveConn prefers the handle supplied in settings over a freshly
// resolved one.
func (p *Probe) resolveConn(ctx context.Context, settings Settings, log *slog.Logger) Conn {
	if settings.Conn != nil {
		return settings.Conn
	}
	if p.provider == nil {
		return nil
	}

	conn, err := p.provider.Resolve(ctx)
	if err != nil {
		log.Warn("connection provider lookup failed", "error", err)
		return nil
	}
	return conn
}

// race runs the dispatched check against a timer. The in-flight check is
// fire-and-forget: when the timer wins, the goroutine is abandoned and its
// eventual outcome discarded via the buffered channel.
func (p *Probe) race(ctx context.Context, timeout time.Duration, conn Conn) error {
	done := make(chan error, 1)
	go func() {
		done <- p.dispatch(ctx, conn)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		return err
	case <-timer.C:
		return &TimeoutError{Budget: timeout}
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Probe) dispatch(ctx context.Context, conn Conn) error {
	if conn.Kind() == KindDocument {
		doc, ok := conn.(DocumentConn)
		if !ok {
			return fmt.Errorf("document handle %T does not expose connection options", conn)
		}
		return p.checkDocument(ctx, doc)
	}

	q, ok := conn.(QueryConn)
	if !ok {
		return fmt.Errorf("%s handle %T does not support liveness queries", conn.Kind(), conn)
	}
	return q.Query(ctx, livenessStatement(conn.Kind()))
}

// livenessStatement maps a backend kind to its "SELECT 1" equivalent. Only
// Oracle and SAP HANA deviate from the standard form, so a new backend with
// standard syntax needs no change here.
func livenessStatement(kind Kind) string {
	switch kind {
	case KindOracle:
		return "SELECT 1 FROM DUAL"
	case KindSAPHana:
		return "SELECT now() FROM dummy"
	default:
		return "SELECT 1"
	}
}
