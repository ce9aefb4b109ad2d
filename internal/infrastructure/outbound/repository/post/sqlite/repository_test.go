package post_repository_sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/infrastructure/logger"
	"blog-service/internal/infrastructure/outbound/metrics/prometheus"
	"blog-service/internal/infrastructure/outbound/repository/migrations"
	post_repository_sqlite "blog-service/internal/infrastructure/outbound/repository/post/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	log := logger.New("test")
	path := filepath.Join(t.TempDir(), "blog.db")
	require.NoError(t, migrations.UpSQLite(path, log))

	db, err := post_repository_sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// Rows written by other tools may carry any offset, or none at all when the
// column default CURRENT_TIMESTAMP (UTC) filled them in.
func TestPostRepository_List_ExternallyWrittenTimestamps(t *testing.T) {
	db := openTestDB(t)

	_, err := db.ExecContext(context.Background(), `INSERT INTO posts (id, title, content, created_at) VALUES
		(1, 'a', 'a', '2024-03-01 10:00:00+09:00'),
		(2, 'b', 'b', '2024-03-01 05:00:00'),
		(3, 'c', 'c', '2024-03-01 02:30:00.5+00:00')`)
	require.NoError(t, err)

	repo := post_repository_sqlite.NewPostRepository(db, logger.New("test"), prometheus.NewPrometheusMetricsProvider())

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	ids := []int64{got[0].ID, got[1].ID, got[2].ID}
	assert.Equal(t, []int64{2, 3, 1}, ids)
	assert.True(t, got[2].CreatedAt.Equal(time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)))
}

func TestPostRepository_StoresTimestampsWithOffset(t *testing.T) {
	db := openTestDB(t)

	kst := time.FixedZone("KST", 9*60*60)
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO posts (id, title, content, created_at) VALUES (?, ?, ?, ?)`,
		1, "a", "a", time.Date(2024, 3, 1, 10, 0, 0, 0, kst))
	require.NoError(t, err)

	var instant string
	require.NoError(t, db.QueryRowContext(context.Background(),
		`SELECT datetime(created_at) FROM posts WHERE id = 1`).Scan(&instant))
	assert.Equal(t, "2024-03-01 01:00:00", instant)
}
