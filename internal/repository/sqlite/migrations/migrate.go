package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"todo-list/internal/logging"
)

//go:embed *.sql
var migrationsFS embed.FS

// Migration is one numbered schema change. Files are named
// NNNNNN_description.up.sql with a matching .down.sql.
type Migration struct {
	Version int
	Name    string
	Up      string
	Down    string
}

const schemaTable = `
CREATE TABLE IF NOT EXISTS migrations (
	version INTEGER PRIMARY KEY,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	dirty BOOLEAN DEFAULT FALSE
)`

// RunMigrations brings db up to the newest embedded schema. It refuses to
// run while a previous migration is marked dirty. File-backed databases are
// copied aside first; the copy is removed on success and kept on failure.
func RunMigrations(db *sql.DB) error {
	if _, err := db.Exec(schemaTable); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	applied, dirty, err := readState(db)
	if err != nil {
		return fmt.Errorf("read migration state: %w", err)
	}
	if len(dirty) > 0 {
		return fmt.Errorf("database is in a dirty state, failed migration(s): %v", dirty)
	}

	if err := adoptTaskColumn(db); err != nil {
		return fmt.Errorf("rename task column: %w", err)
	}

	all, err := load(migrationsFS)
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	var pending []Migration
	for _, m := range all {
		if !applied[m.Version] {
			pending = append(pending, m)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	backup, err := backupDatabase(db)
	if err != nil {
		return fmt.Errorf("back up database: %w", err)
	}

	for _, m := range pending {
		logging.Debugf("applying migration %d (%s)", m.Version, m.Name)
		if err := apply(db, m); err != nil {
			if backup != "" {
				return fmt.Errorf("apply migration %d (backup kept at %s): %w", m.Version, backup, err)
			}
			return fmt.Errorf("apply migration %d: %w", m.Version, err)
		}
	}

	if backup != "" {
		if err := os.Remove(backup); err != nil {
			logging.Debugf("could not remove backup %s: %v", backup, err)
		}
	}
	return nil
}

// adoptTaskColumn renames the task column of a tasks table written before
// the column was called text. Tables that already have text are left alone.
func adoptTaskColumn(db *sql.DB) error {
	rows, err := db.Query(`SELECT name FROM pragma_table_info('tasks')`)
	if err != nil {
		return err
	}
	columns := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return err
		}
		columns[name] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	if !columns["task"] || columns["text"] {
		return nil
	}
	logging.Debugf("renaming tasks.task to tasks.text")
	_, err = db.Exec(`ALTER TABLE tasks RENAME COLUMN task TO text`)
	return err
}

// load reads every *.up.sql file in fsys with its .down.sql pair, sorted by
// version. Files without a numeric prefix are ignored.
func load(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "*.up.sql")
	if err != nil {
		return nil, err
	}

	var out []Migration
	for _, name := range names {
		version, desc, ok := parseName(name)
		if !ok {
			continue
		}
		up, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		down, err := fs.ReadFile(fsys, strings.TrimSuffix(name, ".up.sql")+".down.sql")
		if err != nil {
			return nil, err
		}
		out = append(out, Migration{Version: version, Name: desc, Up: string(up), Down: string(down)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

// parseName splits "000001_create_tasks.up.sql" into 1 and "create_tasks".
func parseName(filename string) (int, string, bool) {
	prefix, rest, found := strings.Cut(filename, "_")
	if !found {
		return 0, "", false
	}
	version, err := strconv.Atoi(prefix)
	if err != nil || version <= 0 {
		return 0, "", false
	}
	return version, strings.TrimSuffix(rest, ".up.sql"), true
}

// readState returns the cleanly applied versions and, in order, the versions
// left dirty by a failed run.
func readState(db *sql.DB) (map[int]bool, []int, error) {
	rows, err := db.Query(`SELECT version, COALESCE(dirty, FALSE) FROM migrations ORDER BY version`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	applied := map[int]bool{}
	var dirty []int
	for rows.Next() {
		var version int
		var isDirty bool
		if err := rows.Scan(&version, &isDirty); err != nil {
			return nil, nil, err
		}
		if isDirty {
			dirty = append(dirty, version)
		} else {
			applied[version] = true
		}
	}
	return applied, dirty, rows.Err()
}

// apply records m as dirty, then runs it and clears the mark in one
// transaction. A failure leaves the dirty mark behind.
func apply(db *sql.DB, m Migration) error {
	if _, err := db.Exec(`INSERT OR REPLACE INTO migrations (version, dirty) VALUES (?, TRUE)`, m.Version); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(m.Up); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE migrations SET dirty = FALSE, applied_at = CURRENT_TIMESTAMP WHERE version = ?`, m.Version); err != nil {
		return err
	}
	return tx.Commit()
}

// backupDatabase writes a consistent copy of a file-backed database next to
// it and returns the copy's path. In-memory databases are not backed up.
func backupDatabase(db *sql.DB) (string, error) {
	path, err := databaseFile(db)
	if err != nil || path == "" {
		return "", err
	}

	backup := path + ".backup." + time.Now().Format("20060102150405")
	if _, err := db.Exec(`VACUUM INTO ?`, backup); err != nil {
		return "", err
	}
	return backup, nil
}

// databaseFile returns the file behind the main schema, or "" when the
// database lives in memory.
func databaseFile(db *sql.DB) (string, error) {
	var file string
	err := db.QueryRow(`SELECT file FROM pragma_database_list WHERE name = 'main'`).Scan(&file)
	return file, err
}
