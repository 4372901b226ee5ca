package db

import (
	"cmp"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strconv"
	"strings"

	embeddedmigrations "github.com/terraincognita07/blushy/migrations"
	"gorm.io/gorm"
)

var migrationNamePattern = regexp.MustCompile(`^(\d+)_[a-z0-9_]+\.sql$`)

type schemaMigration struct {
	Version int
	Name    string
	SQL     string
}

type appliedSchemaMigration struct {
	Version int    `gorm:"column:version"`
	Name    string `gorm:"column:name"`
}

func applyEmbeddedMigrations(database *gorm.DB) error {
	return applyMigrations(database, embeddedmigrations.Files)
}

// applyMigrations runs every pending migration from source in version order.
// Each file runs in its own transaction together with its schema_migrations
// row, so a failing file leaves no partial schema behind.
func applyMigrations(database *gorm.DB, source fs.FS) error {
	if err := database.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	pending, err := readMigrations(source)
	if err != nil {
		return err
	}

	var applied []appliedSchemaMigration
	if err := database.Raw(`SELECT version, name FROM schema_migrations`).Scan(&applied).Error; err != nil {
		return fmt.Errorf("load applied migrations: %w", err)
	}
	appliedNames := make(map[int]string, len(applied))
	for _, row := range applied {
		appliedNames[row.Version] = row.Name
	}

	for _, migration := range pending {
		if name, ok := appliedNames[migration.Version]; ok {
			if name != migration.Name {
				return fmt.Errorf("migration %d applied as %s but embedded as %s", migration.Version, name, migration.Name)
			}
			continue
		}
		if err := runMigration(database, migration); err != nil {
			return err
		}
	}
	return nil
}

func readMigrations(source fs.FS) ([]schemaMigration, error) {
	names, err := fs.Glob(source, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	migrations := make([]schemaMigration, 0, len(names))
	byVersion := make(map[int]string, len(names))
	for _, name := range names {
		matches := migrationNamePattern.FindStringSubmatch(name)
		if matches == nil {
			return nil, fmt.Errorf("migration %s: expected NNNN_name.sql", name)
		}
		version, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, fmt.Errorf("migration %s: %w", name, err)
		}
		if other, ok := byVersion[version]; ok {
			return nil, fmt.Errorf("migration version %d used by %s and %s", version, other, name)
		}
		byVersion[version] = name

		body, err := fs.ReadFile(source, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		migrations = append(migrations, schemaMigration{Version: version, Name: name, SQL: string(body)})
	}

	slices.SortFunc(migrations, func(a, b schemaMigration) int {
		return cmp.Compare(a.Version, b.Version)
	})
	return migrations, nil
}

func runMigration(database *gorm.DB, migration schemaMigration) error {
	statements := splitSQLStatements(migration.SQL)
	if len(statements) == 0 {
		return fmt.Errorf("migration %s has no statements", migration.Name)
	}

	return database.Transaction(func(tx *gorm.DB) error {
		for _, statement := range statements {
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("migration %s: %w", migration.Name, err)
			}
		}
		return tx.Exec(
			`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`,
			migration.Version,
			migration.Name,
		).Error
	})
}

// splitSQLStatements splits on ';' and drops "--" comment lines. Migrations
// must not put semicolons inside string literals.
func splitSQLStatements(sqlText string) []string {
	var kept strings.Builder
	for _, line := range strings.Split(sqlText, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept.WriteString(line)
		kept.WriteByte('\n')
	}

	statements := make([]string, 0)
	for _, part := range strings.Split(kept.String(), ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
