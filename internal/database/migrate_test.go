package database

import (
	"context"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testMigrations = fstest.MapFS{
	"m/1_create_a.up.sql":   {Data: []byte("CREATE TABLE a (id NUMBER);\n")},
	"m/1_create_a.down.sql": {Data: []byte("DROP TABLE a;\n")},
	"m/2_create_b.up.sql":   {Data: []byte("CREATE TABLE b (id NUMBER);\n\nCREATE INDEX idx_b ON b (id);\n")},
	"m/2_create_b.down.sql": {Data: []byte("DROP TABLE b")},
}

func newTestMigrator(t *testing.T) (*Migrator, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	m, err := NewMigrator(sqlx.NewDb(mockDB, "sqlmock"), testMigrations, "m", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m, mock
}

func expectVersionTable(mock sqlmock.Sqlmock, exists bool) {
	count := 0
	if exists {
		count = 1
	}
	mock.ExpectQuery(regexp.QuoteMeta(`FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
	if !exists {
		mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE schema_migrations`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
}

func expectVersionRead(mock sqlmock.Sqlmock, version int64, dirty int, present bool) {
	rows := sqlmock.NewRows([]string{"version", "dirty"})
	if present {
		rows.AddRow(version, dirty)
	}
	mock.ExpectQuery(regexp.QuoteMeta(`FROM schema_migrations`)).WillReturnRows(rows)
}

func expectSetVersion(mock sqlmock.Sqlmock, version int64, dirty int64) {
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM schema_migrations`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO schema_migrations`)).
		WithArgs(version, dirty).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
}

func TestMigrator_UpFromEmpty(t *testing.T) {
	m, mock := newTestMigrator(t)

	expectVersionTable(mock, false)
	expectVersionRead(mock, 0, 0, false)

	expectSetVersion(mock, 1, 1)
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE a (id NUMBER)`)).WillReturnResult(sqlmock.NewResult(0, 0))
	expectSetVersion(mock, 1, 0)

	expectSetVersion(mock, 2, 1)
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE b (id NUMBER)`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`CREATE INDEX idx_b ON b (id)`)).WillReturnResult(sqlmock.NewResult(0, 0))
	expectSetVersion(mock, 2, 0)

	applied, err := m.Up(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrator_UpToDate(t *testing.T) {
	m, mock := newTestMigrator(t)

	expectVersionTable(mock, true)
	expectVersionRead(mock, 2, 0, true)

	applied, err := m.Up(context.Background())
	require.NoError(t, err)
	assert.Zero(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrator_UpRefusesDirty(t *testing.T) {
	m, mock := newTestMigrator(t)

	expectVersionTable(mock, true)
	expectVersionRead(mock, 1, 1, true)

	_, err := m.Up(context.Background())
	assert.ErrorIs(t, err, ErrDirty)
}

func TestMigrator_UpStopsOnFailure(t *testing.T) {
	m, mock := newTestMigrator(t)

	expectVersionTable(mock, true)
	expectVersionRead(mock, 1, 0, true)
	expectSetVersion(mock, 2, 1)
	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE b`)).WillReturnError(assert.AnError)

	applied, err := m.Up(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrator_DownOneStep(t *testing.T) {
	m, mock := newTestMigrator(t)

	expectVersionTable(mock, true)
	expectVersionRead(mock, 2, 0, true)
	expectSetVersion(mock, 2, 1)
	mock.ExpectExec(regexp.QuoteMeta(`DROP TABLE b`)).WillReturnResult(sqlmock.NewResult(0, 0))
	expectSetVersion(mock, 1, 0)

	reverted, err := m.Down(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, reverted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrator_DownAll(t *testing.T) {
	m, mock := newTestMigrator(t)

	expectVersionTable(mock, true)
	expectVersionRead(mock, 2, 0, true)
	expectSetVersion(mock, 2, 1)
	mock.ExpectExec(regexp.QuoteMeta(`DROP TABLE b`)).WillReturnResult(sqlmock.NewResult(0, 0))
	expectSetVersion(mock, 1, 0)
	expectSetVersion(mock, 1, 1)
	mock.ExpectExec(regexp.QuoteMeta(`DROP TABLE a`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM schema_migrations`)).WillReturnResult(sqlmock.NewResult(0, 1))

	reverted, err := m.Down(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, reverted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrator_DownWithNothingApplied(t *testing.T) {
	m, mock := newTestMigrator(t)

	expectVersionTable(mock, true)
	expectVersionRead(mock, 0, 0, false)

	reverted, err := m.Down(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, reverted)
}
