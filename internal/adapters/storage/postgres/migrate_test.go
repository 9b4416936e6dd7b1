package postgres

import (
	"io/fs"
	"strings"
	"testing"
)

// Las migraciones van embebidas en el binario; se verifica que estén pares up/down.
func TestMigrationsFS_HasUpAndDownPairs(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		t.Fatalf("read embedded migrations: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected embedded migrations")
	}

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected file in migrations: %s", name)
		}
	}

	for v := range ups {
		if !downs[v] {
			t.Errorf("migration %s has no down file", v)
		}
	}
	for v := range downs {
		if !ups[v] {
			t.Errorf("migration %s has no up file", v)
		}
	}
}

func TestMigrationsFS_CreatesPassportTables(t *testing.T) {
	b, err := fs.ReadFile(migrationsFS, "migrations/000001_create_passports.up.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	sql := string(b)
	for _, table := range []string{"passports", "passport_events"} {
		if !strings.Contains(sql, "CREATE TABLE IF NOT EXISTS "+table+" ") {
			t.Errorf("expected table %s in migration", table)
		}
	}
}
