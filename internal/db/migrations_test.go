package db

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"gorm.io/gorm"
)

func migrationFile(sql string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(sql)}
}

func recordedMigrations(t *testing.T, database *gorm.DB) []int {
	t.Helper()

	var versions []int
	if err := database.Raw(`SELECT version FROM schema_migrations ORDER BY version`).Scan(&versions).Error; err != nil {
		t.Fatalf("load schema_migrations: %v", err)
	}
	return versions
}

func tableExists(t *testing.T, database *gorm.DB, name string) bool {
	t.Helper()

	var count int64
	if err := database.Raw(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&count).Error; err != nil {
		t.Fatalf("inspect sqlite_master: %v", err)
	}
	return count > 0
}

func TestApplyMigrationsRunsPendingInVersionOrder(t *testing.T) {
	database := openTestDatabase(t)

	source := fstest.MapFS{
		"0101_reminder_log.sql": migrationFile(`
-- reminders sent; one row per kind and day
CREATE TABLE reminder_log (kind TEXT NOT NULL, sent_on TEXT NOT NULL);
CREATE UNIQUE INDEX idx_reminder_log ON reminder_log(kind, sent_on);`),
		"0100_tags.sql": migrationFile(`CREATE TABLE tags (name TEXT PRIMARY KEY);`),
	}

	if err := applyMigrations(database, source); err != nil {
		t.Fatalf("applyMigrations() unexpected error: %v", err)
	}
	if err := applyMigrations(database, source); err != nil {
		t.Fatalf("second applyMigrations() unexpected error: %v", err)
	}

	if diff := cmp.Diff([]int{1, 100, 101}, recordedMigrations(t, database)); diff != "" {
		t.Fatalf("unexpected recorded versions (-want +got):\n%s", diff)
	}
	if !tableExists(t, database, "tags") || !tableExists(t, database, "reminder_log") {
		t.Fatalf("expected migrated tables to exist")
	}
}

func TestApplyMigrationsRollsBackFailingFile(t *testing.T) {
	database := openTestDatabase(t)

	source := fstest.MapFS{
		"0100_broken.sql": migrationFile(`
CREATE TABLE half_done (id INTEGER);
INSERT INTO missing_table VALUES (1);`),
	}

	err := applyMigrations(database, source)
	if err == nil || !strings.Contains(err.Error(), "0100_broken.sql") {
		t.Fatalf("expected error naming the failing file, got %v", err)
	}
	if tableExists(t, database, "half_done") {
		t.Fatalf("expected failed migration to be rolled back")
	}
	if diff := cmp.Diff([]int{1}, recordedMigrations(t, database)); diff != "" {
		t.Fatalf("failed migration must not be recorded (-want +got):\n%s", diff)
	}
}

func TestReadMigrationsRejectsBadSources(t *testing.T) {
	tests := []struct {
		name   string
		source fstest.MapFS
		want   string
	}{
		{
			name: "duplicate version",
			source: fstest.MapFS{
				"0002_a.sql": migrationFile("SELECT 1;"),
				"0002_b.sql": migrationFile("SELECT 1;"),
			},
			want: "version 2 used by",
		},
		{
			name:   "bad name",
			source: fstest.MapFS{"add-tags.sql": migrationFile("SELECT 1;")},
			want:   "expected NNNN_name.sql",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readMigrations(tt.source)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestApplyMigrationsRejectsRenamedAppliedFile(t *testing.T) {
	database := openTestDatabase(t)

	err := applyMigrations(database, fstest.MapFS{"0001_renamed.sql": migrationFile("SELECT 1;")})
	if err == nil || !strings.Contains(err.Error(), "applied as 0001_init.sql") {
		t.Fatalf("expected renamed migration error, got %v", err)
	}
}

func TestSplitSQLStatementsDropsComments(t *testing.T) {
	t.Parallel()

	got := splitSQLStatements("-- header; not a statement\nCREATE TABLE a (id INTEGER);\n\n  ;\nCREATE TABLE b (id INTEGER)\n")
	want := []string{"CREATE TABLE a (id INTEGER)", "CREATE TABLE b (id INTEGER)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected statements (-want +got):\n%s", diff)
	}
}
