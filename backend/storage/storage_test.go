package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vedaverse/backend/config"
)

// runStorageContract exercises the behavior every driver must share.
func runStorageContract(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	t.Run("MissingKey", func(t *testing.T) {
		v, ok, err := s.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("SetThenGet", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "vedaverse-progress", `{"totalScore":10}`))
		v, ok, err := s.Get(ctx, "vedaverse-progress")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"totalScore":10}`, v)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "vedaverse-progress", `{"totalScore":20}`))
		v, ok, err := s.Get(ctx, "vedaverse-progress")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"totalScore":20}`, v)
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "other", "x"))
		v, _, err := s.Get(ctx, "vedaverse-progress")
		require.NoError(t, err)
		assert.Equal(t, `{"totalScore":20}`, v)
	})

	t.Run("EmptyValue", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "empty", ""))
		v, ok, err := s.Get(ctx, "empty")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, v)
	})
}

func TestMemoryStorage(t *testing.T) {
	s := NewMemoryStorage()
	defer s.Close()
	runStorageContract(t, s)
}

func TestFileStorage(t *testing.T) {
	s := NewFileStorage(filepath.Join(t.TempDir(), "nested", "progress.json"))
	defer s.Close()
	runStorageContract(t, s)
}

func TestFileStorageSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "progress.json")

	require.NoError(t, NewFileStorage(path).Set(ctx, "k", "v"))

	v, ok, err := NewFileStorage(path).Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestFileStorageCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, _, err := NewFileStorage(path).Get(context.Background(), "k")
	assert.ErrorContains(t, err, "error parsing storage file")
}

func TestSQLiteStorage(t *testing.T) {
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "progress.db"))
	require.NoError(t, err)
	defer s.Close()
	runStorageContract(t, s)
}

func TestSQLiteStorageSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "progress.db")

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "k", "v"))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestPostgresStorage(t *testing.T) {
	dsn := os.Getenv("VEDAVERSE_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("VEDAVERSE_TEST_POSTGRES_DSN not set")
	}
	s, err := OpenPostgres(dsn)
	require.NoError(t, err)
	defer func() {
		s.DB.Migrator().DropTable(&ProgressEntry{})
		s.Close()
	}()
	runStorageContract(t, s)
}

func TestRedisStorage(t *testing.T) {
	addr := os.Getenv("VEDAVERSE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("VEDAVERSE_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	s, err := OpenRedis(ctx, RedisOptions{Addr: addr, DB: 15})
	require.NoError(t, err)
	defer func() {
		s.client.FlushDB(ctx)
		s.Close()
	}()
	runStorageContract(t, s)
}

func TestOpenSelectsDriver(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		driver string
		want   Storage
	}{
		{config.DriverMemory, &MemoryStorage{}},
		{config.DriverFile, &FileStorage{}},
		{config.DriverSQLite, &SQLiteStorage{}},
	}
	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			cfg := &config.Config{
				StorageDriver: tt.driver,
				DataFile:      filepath.Join(dir, "progress.json"),
				SQLitePath:    filepath.Join(dir, "progress.db"),
			}
			s, err := Open(ctx, cfg)
			require.NoError(t, err)
			defer s.Close()
			assert.IsType(t, tt.want, s)
		})
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{StorageDriver: "etcd"})
	assert.ErrorContains(t, err, `unknown storage driver "etcd"`)
}
