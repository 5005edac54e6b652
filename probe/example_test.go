package probe_test

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/drblury/pulsecheck/probe"
)

func ExampleProbe_PingCheck() {
	db, _ := sql.Open("sqlite", ":memory:")
	defer db.Close()

	p, _ := probe.New()
	status := p.PingCheck(context.Background(), "database", probe.Settings{
		Conn:    probe.NewSQLConn(db, probe.KindSQL),
		Timeout: 500 * time.Millisecond,
	})

	data, _ := status.JSON()
	fmt.Println(string(data))
	// Output: {"database":{"status":"up"}}
}

func ExampleWithProvider() {
	db, _ := sql.Open("sqlite", ":memory:")
	defer db.Close()

	p, _ := probe.New(probe.WithProvider(probe.ProviderFunc(func(ctx context.Context) (probe.Conn, error) {
		return probe.NewSQLConn(db, probe.KindSQL), nil
	})))

	status := p.PingCheck(context.Background(), "database", probe.Settings{})
	fmt.Println(status.Details()["status"])
	// Output: up
}
