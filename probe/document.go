package probe

import (
	"context"
	"errors"
	"net"
	"net/url"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/drblury/pulsecheck/capability"
)

func init() {
	capability.Default().Register(CapabilityDocument)
}

// DocumentConfig mirrors the connection options of a document-store handle.
// URL takes precedence; otherwise the URL is reconstructed from the
// structured fields.
type DocumentConfig struct {
	URL      string
	HostName string
	Port     string
	Username string
	Password string
	Database string
}

type documentConn struct {
	cfg DocumentConfig
}

// NewDocumentConn wraps document-store connection options as a probe
// connection. The probe never touches the caller's own client; it opens an
// independent short-lived side connection to the same target.
func NewDocumentConn(cfg DocumentConfig) DocumentConn {
	return &documentConn{cfg: cfg}
}

func (c *documentConn) Kind() Kind {
	return KindDocument
}

func (c *documentConn) ConnectionURL() (string, error) {
	if c.cfg.URL != "" {
		return c.cfg.URL, nil
	}
	if c.cfg.HostName == "" {
		return "", errors.New("document connection has neither a URL nor host options configured")
	}

	u := &url.URL{Scheme: "mongodb", Host: c.cfg.HostName}
	if c.cfg.Port != "" {
		u.Host = net.JoinHostPort(c.cfg.HostName, c.cfg.Port)
	}
	if c.cfg.Username != "" {
		u.User = url.UserPassword(c.cfg.Username, c.cfg.Password)
	}
	if c.cfg.Database != "" {
		u.Path = "/" + c.cfg.Database
	}
	return u.String(), nil
}

// DocumentCloser is the short-lived side connection opened by the document
// path. Close may fail when the connection is already closed; callers treat
// that as harmless.
type DocumentCloser interface {
	Close(ctx context.Context) error
}

// DocumentDialer opens a native client connection to the given URI. A nil
// error means the target is reachable.
type DocumentDialer func(ctx context.Context, uri string) (DocumentCloser, error)

type mongoCloser struct {
	client *mongo.Client
}

func (m mongoCloser) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// dialMongo connects and pings the primary. Connect alone does not block for
// server discovery, so the ping is what proves reachability.
func dialMongo(ctx context.Context, uri string) (DocumentCloser, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return mongoCloser{client: client}, nil
}

// checkDocument requires only that the side connection can be established.
// The close error is swallowed: an already-closed connection must not flip a
// successful probe to a failure.
func (p *Probe) checkDocument(ctx context.Context, conn DocumentConn) error {
	uri, err := conn.ConnectionURL()
	if err != nil {
		return &ConnectError{Err: err}
	}

	client, err := p.dialDocument(ctx, uri)
	if err != nil {
		return &ConnectError{Err: err}
	}
	_ = client.Close(ctx)

	return nil
}
