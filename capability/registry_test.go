package capability_test

import (
	"errors"
	"testing"

	"github.com/drblury/pulsecheck/capability"
)

func TestRegistryVerify(t *testing.T) {
	t.Run("all registered", func(t *testing.T) {
		registry := capability.NewRegistry("database/sql", "go.mongodb.org/mongo-driver")

		if err := registry.Verify("probe.New", "database/sql", "go.mongodb.org/mongo-driver"); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("nothing required", func(t *testing.T) {
		if err := capability.NewRegistry().Verify("probe.New"); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("missing entries are named and sorted", func(t *testing.T) {
		registry := capability.NewRegistry("database/sql")

		err := registry.Verify("probe.New", "go.mongodb.org/mongo-driver", "database/sql", "github.com/gocql/gocql")

		var missing *capability.MissingError
		if !errors.As(err, &missing) {
			t.Fatalf("expected *MissingError, got %v", err)
		}
		if missing.Caller != "probe.New" {
			t.Fatalf("expected caller to be recorded, got %q", missing.Caller)
		}
		if len(missing.Missing) != 2 || missing.Missing[0] != "github.com/gocql/gocql" || missing.Missing[1] != "go.mongodb.org/mongo-driver" {
			t.Fatalf("expected sorted missing entries, got %v", missing.Missing)
		}

		want := "probe.New requires optional packages that are not registered: github.com/gocql/gocql, go.mongodb.org/mongo-driver"
		if missing.Error() != want {
			t.Fatalf("expected %q, got %q", want, missing.Error())
		}
	})
}

func TestRegistryRegister(t *testing.T) {
	registry := capability.NewRegistry()

	registry.Register("database/sql", "", "database/sql")

	if err := registry.Verify("caller", "database/sql"); err != nil {
		t.Fatalf("expected registration to stick, got %v", err)
	}
	if err := registry.Verify("caller", ""); err == nil {
		t.Fatal("expected the empty name to stay unregistered")
	}
}

func TestDefaultRegistry(t *testing.T) {
	if capability.Default() == nil {
		t.Fatal("expected a process-wide default registry")
	}
	if capability.Default() != capability.Default() {
		t.Fatal("expected Default to return the same registry")
	}
}
