package probe

import (
	"context"
	"database/sql"
	"time"

	"github.com/drblury/pulsecheck/capability"
)

// Kind discriminates which liveness query or procedure a probe uses for a
// connection handle.
type Kind string

const (
	// KindSQL is the generic relational backend; it takes the standard
	// SELECT 1 liveness query, as does any kind not listed here.
	KindSQL Kind = "sql"
	// KindOracle needs SELECT 1 FROM DUAL.
	KindOracle Kind = "oracle"
	// KindSAPHana needs SELECT now() FROM dummy.
	KindSAPHana Kind = "sap"
	// KindDocument is a document store; it is checked with a short-lived
	// native side connection instead of a query.
	KindDocument Kind = "document"
)

// Capability names required by the probe. Adapter files register them in the
// default registry at startup; deployments with custom registries must
// register them explicitly.
const (
	CapabilitySQL      = "database/sql"
	CapabilityDocument = "go.mongodb.org/mongo-driver"
)

func init() {
	capability.Default().Register(CapabilitySQL)
}

// Conn is an opaque connection handle owned by the caller or by a Provider.
// The probe never opens, closes, or pools it; it only reads its kind and
// issues a single liveness check per invocation.
type Conn interface {
	Kind() Kind
}

// QueryConn is a handle that can execute a liveness statement. All relational
// kinds must implement it.
type QueryConn interface {
	Conn
	Query(ctx context.Context, stmt string) error
}

// DocumentConn is a handle to a document store. The probe does not query it
// directly; it derives a connection URL and opens an independent side
// connection to the same target.
type DocumentConn interface {
	Conn
	ConnectionURL() (string, error)
}

// Provider locates the ambient default connection handle for the current
// context. Returning a nil handle or an error signals that none is
// configured.
type Provider interface {
	Resolve(ctx context.Context) (Conn, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(ctx context.Context) (Conn, error)

// Resolve calls f.
func (f ProviderFunc) Resolve(ctx context.Context) (Conn, error) {
	return f(ctx)
}

// Settings configures a single PingCheck invocation.
type Settings struct {
	// Conn is the handle to check. When set it takes precedence over the
	// probe's Provider.
	Conn Conn
	// Timeout bounds the liveness check. Zero or negative means
	// DefaultTimeout.
	Timeout time.Duration
}

// RowQuerier captures the subset of *sql.DB used to issue liveness
// statements. *sql.Conn and *sql.Tx satisfy it as well.
type RowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sqlConn struct {
	db   RowQuerier
	kind Kind
}

// NewSQLConn wraps a database/sql handle as a probe connection of the given
// kind. An empty kind defaults to KindSQL. The caller keeps ownership of the
// handle.
func NewSQLConn(db RowQuerier, kind Kind) QueryConn {
	if kind == "" {
		kind = KindSQL
	}
	return &sqlConn{db: db, kind: kind}
}

func (c *sqlConn) Kind() Kind {
	return c.kind
}

func (c *sqlConn) Query(ctx context.Context, stmt string) error {
	if c.db == nil {
		return nilComponentError(string(c.kind), "db handle")
	}

	var v any
	return c.db.QueryRowContext(ctx, stmt).Scan(&v)
}
