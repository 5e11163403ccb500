package persistence

import (
	"strings"
	"testing"
)

func TestLoadMigrations(t *testing.T) {
	m := NewMigrationManager(nil)

	migrations, err := m.loadMigrations()
	if err != nil {
		t.Fatalf("loadMigrations returned error: %v", err)
	}
	if len(migrations) == 0 {
		t.Fatal("Expected at least one embedded migration")
	}

	first := migrations[0]
	if first.Version != 1 {
		t.Errorf("Expected first migration version 1, got %d", first.Version)
	}
	if first.Description != "initial schema" {
		t.Errorf("Expected description %q, got %q", "initial schema", first.Description)
	}

	// The initial schema must create every table the repositories query.
	for _, table := range []string{"campaigns", "generated_content", "strategies", "virality_scores"} {
		if !strings.Contains(first.SQL, "CREATE TABLE IF NOT EXISTS "+table) {
			t.Errorf("Initial schema does not create table %q", table)
		}
	}

	// Versions must come back sorted.
	for i := 1; i < len(migrations); i++ {
		if migrations[i].Version <= migrations[i-1].Version {
			t.Errorf("Migrations not sorted: %d before %d", migrations[i-1].Version, migrations[i].Version)
		}
	}
}

func TestFindPendingMigrations(t *testing.T) {
	available := []Migration{
		{Version: 1, Description: "initial schema"},
		{Version: 2, Description: "add indexes"},
		{Version: 3, Description: "add columns"},
	}

	pending := findPendingMigrations(available, []int{1, 2})
	if len(pending) != 1 {
		t.Fatalf("Expected 1 pending migration, got %d", len(pending))
	}
	if pending[0].Version != 3 {
		t.Errorf("Expected pending version 3, got %d", pending[0].Version)
	}

	if got := findPendingMigrations(available, []int{1, 2, 3}); len(got) != 0 {
		t.Errorf("Expected no pending migrations, got %d", len(got))
	}

	if got := findPendingMigrations(available, nil); len(got) != 3 {
		t.Errorf("Expected all migrations pending, got %d", len(got))
	}
}
