package storage_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carelink/carelink-portal/internal/storage"
)

var testColumns = []string{"id", "name", "notes"}

func newTestTable(t *testing.T) *storage.Table {
	t.Helper()
	return storage.NewTable(t.TempDir(), "items", testColumns)
}

func TestEnsure_CreatesHeaderOnlyFile(t *testing.T) {
	tbl := newTestTable(t)

	require.NoError(t, tbl.Ensure())

	data, err := os.ReadFile(tbl.Path())
	require.NoError(t, err)
	assert.Equal(t, "id,name,notes\n", string(data))
}

func TestEnsure_Idempotent(t *testing.T) {
	tbl := newTestTable(t)

	require.NoError(t, tbl.Ensure())
	require.NoError(t, tbl.Append(storage.Row{"id": "1", "name": "alpha"}))

	before, err := os.ReadFile(tbl.Path())
	require.NoError(t, err)

	require.NoError(t, tbl.Ensure())

	after, err := os.ReadFile(tbl.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after, "second Ensure must not touch the file")
}

func TestAppendAndReadAll(t *testing.T) {
	tbl := newTestTable(t)
	require.NoError(t, tbl.Ensure())

	require.NoError(t, tbl.Append(storage.Row{"id": "1", "name": "alpha", "notes": "first"}))
	require.NoError(t, tbl.Append(storage.Row{"id": "2", "name": "beta"}))

	rows, err := tbl.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, storage.Row{"id": "1", "name": "alpha", "notes": "first"}, rows[0])
	assert.Equal(t, storage.Row{"id": "2", "name": "beta", "notes": ""}, rows[1], "missing fields normalize to empty")
}

func TestAppend_QuotedFields(t *testing.T) {
	tbl := newTestTable(t)
	require.NoError(t, tbl.Ensure())

	notes := "comma, quote \" and\nnewline"
	require.NoError(t, tbl.Append(storage.Row{"id": "1", "name": "alpha", "notes": notes}))

	rows, err := tbl.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, notes, rows[0]["notes"])
}

func TestAppend_UnknownColumn(t *testing.T) {
	tbl := newTestTable(t)
	require.NoError(t, tbl.Ensure())

	err := tbl.Append(storage.Row{"id": "1", "color": "red"})
	assert.ErrorIs(t, err, storage.ErrUnknownColumn)
}

func TestUpdate(t *testing.T) {
	tbl := newTestTable(t)
	require.NoError(t, tbl.Ensure())
	require.NoError(t, tbl.Append(storage.Row{"id": "1", "name": "alpha"}))
	require.NoError(t, tbl.Append(storage.Row{"id": "2", "name": "beta"}))

	ok, err := tbl.Update("id", "2", storage.Row{"name": "gamma", "notes": "renamed"})
	require.NoError(t, err)
	assert.True(t, ok)

	rows, err := tbl.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "alpha", rows[0]["name"])
	assert.Equal(t, "gamma", rows[1]["name"])
	assert.Equal(t, "renamed", rows[1]["notes"])
}

func TestUpdate_LastWriteWins(t *testing.T) {
	tbl := newTestTable(t)
	require.NoError(t, tbl.Ensure())
	require.NoError(t, tbl.Append(storage.Row{"id": "1", "name": "alpha"}))

	ok, err := tbl.Update("id", "1", storage.Row{"name": "first"})
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = tbl.Update("id", "1", storage.Row{"name": "second"})
	require.NoError(t, err)
	require.True(t, ok)

	rows, err := tbl.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1, "update must not duplicate the row")
	assert.Equal(t, "second", rows[0]["name"])
}

func TestUpdate_NotFound(t *testing.T) {
	tbl := newTestTable(t)
	require.NoError(t, tbl.Ensure())
	require.NoError(t, tbl.Append(storage.Row{"id": "1", "name": "alpha"}))

	before, err := os.ReadFile(tbl.Path())
	require.NoError(t, err)

	ok, err := tbl.Update("id", "404", storage.Row{"name": "ghost"})
	require.NoError(t, err)
	assert.False(t, ok)

	after, err := os.ReadFile(tbl.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after, "missed update must not rewrite the file")
}

func TestReadAll_SchemaMismatch(t *testing.T) {
	dir := t.TempDir()
	tbl := storage.NewTable(dir, "items", testColumns)
	require.NoError(t, os.WriteFile(tbl.Path(), []byte("id,wrong,notes\n"), 0o644))

	_, err := tbl.ReadAll()
	assert.ErrorIs(t, err, storage.ErrSchemaMismatch)
}

func TestReadAll_MissingFile(t *testing.T) {
	tbl := newTestTable(t)

	_, err := tbl.ReadAll()
	assert.Error(t, err)
}
