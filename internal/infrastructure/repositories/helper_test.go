package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createTeamTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE teams (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		foundation_year INTEGER NOT NULL,
		team_type TEXT NOT NULL,
		is_graduated BOOLEAN NOT NULL DEFAULT false,
		education_level TEXT NOT NULL,
		school_type TEXT NOT NULL,
		school_name TEXT NOT NULL,
		country TEXT NOT NULL,
		city TEXT NOT NULL,
		district TEXT NOT NULL,
		description TEXT NOT NULL,
		intro_file_url TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createMembershipTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE memberships (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		team_id TEXT NOT NULL,
		role TEXT NOT NULL,
		joined_at DATETIME NOT NULL,
		UNIQUE (user_id, team_id)
	);`)
}

func createInvitationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE invitations (
		id TEXT PRIMARY KEY,
		sender_id TEXT NOT NULL,
		email TEXT NOT NULL,
		team_id TEXT NOT NULL,
		role TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME
	);`)
}

func createAllTables(t *testing.T, db *gorm.DB) {
	createUserTable(t, db)
	createTeamTable(t, db)
	createMembershipTable(t, db)
	createInvitationTable(t, db)
}
