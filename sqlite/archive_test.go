package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/hatenadl"
	"github.com/fwojciec/hatenadl/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustOpenDB returns an open in-memory database, closed on cleanup.
func mustOpenDB(tb testing.TB) *sqlite.DB {
	tb.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(tb, db.Open())
	tb.Cleanup(func() { _ = db.Close() })
	return db
}

func testEntry(key string) *hatenadl.ArchiveEntry {
	return &hatenadl.ArchiveEntry{
		Key:         key,
		Domain:      "example.hatenablog.com",
		Entry:       "2024/01/02/111",
		Num:         1,
		URL:         "https://cdn.example/a.jpg",
		ContentHash: "00000000075bcd15",
		Size:        9,
	}
}

func TestArchiveService_Record_then_Seen(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewArchiveService(mustOpenDB(t))

	const key = "hatenablog_example.hatenablog.com_2024_01_02_111_01.jpg"

	seen, err := svc.Seen(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, seen, "unrecorded key should not be seen")

	entry := testEntry(key)
	require.NoError(t, svc.Record(context.Background(), entry))
	assert.NotEmpty(t, entry.ID, "record assigns an ID")
	assert.False(t, entry.CreatedAt.IsZero(), "record stamps creation time")

	seen, err = svc.Seen(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestArchiveService_Record_rejects_duplicate_keys(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewArchiveService(mustOpenDB(t))

	const key = "hatenablog_example.hatenablog.com_2024_01_02_111_01.jpg"
	require.NoError(t, svc.Record(context.Background(), testEntry(key)))

	err := svc.Record(context.Background(), testEntry(key))
	require.Error(t, err, "the key is the dedup identity; duplicates must fail")
}

func TestArchiveService_Record_validates_entries(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewArchiveService(mustOpenDB(t))

	err := svc.Record(context.Background(), &hatenadl.ArchiveEntry{})
	require.Error(t, err)
	assert.Equal(t, hatenadl.EINVALID, hatenadl.ErrorCode(err))
}

func TestDB_Open_creates_file_database(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "archive.db")
	db := sqlite.NewDB(path)
	require.NoError(t, db.Open())
	defer db.Close()

	svc := sqlite.NewArchiveService(db)
	require.NoError(t, svc.Record(context.Background(), testEntry("k.jpg")))

	seen, err := svc.Seen(context.Background(), "k.jpg")
	require.NoError(t, err)
	assert.True(t, seen)
}
