package fsutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "test.asm", "mov eax, 1\n")

	content, info, err := ReadFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []byte("mov eax, 1\n"), content)
	require.NotNil(t, info)
	assert.Equal(t, path, info.Path)
	assert.Equal(t, int64(11), info.Size)
	assert.NotZero(t, info.Hash)
}

func TestReadFileNotFound(t *testing.T) {
	_, _, err := ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.asm"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadFileDirectory(t *testing.T) {
	_, _, err := ReadFile(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrIsDirectory)
}

func TestReadFileCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := ReadFile(ctx, "whatever.asm")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckModified(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "test.asm", "mov eax, 1\n")

	_, info, err := ReadFile(context.Background(), path)
	require.NoError(t, err)

	t.Run("unchanged", func(t *testing.T) {
		modified, err := CheckModified(context.Background(), info)
		require.NoError(t, err)
		assert.False(t, modified)
	})

	t.Run("touched but identical", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		require.NoError(t, os.Chtimes(path, future, future))

		modified, err := CheckModified(context.Background(), info)
		require.NoError(t, err)
		assert.False(t, modified, "same content must not count as modified")
	})

	t.Run("content changed", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("mov ebx, 2\n"), 0o644))

		modified, err := CheckModified(context.Background(), info)
		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("deleted counts as modified", func(t *testing.T) {
		require.NoError(t, os.Remove(path))

		modified, err := CheckModified(context.Background(), info)
		require.NoError(t, err)
		assert.True(t, modified)
	})

	t.Run("nil info", func(t *testing.T) {
		_, err := CheckModified(context.Background(), nil)
		assert.ErrorIs(t, err, ErrNilFileInfo)
	})
}

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.asm")

	require.NoError(t, WriteAtomic(context.Background(), path, []byte("ret\n"), 0o600))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("ret\n"), content)

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())

	// No temp file debris.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteAtomicOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "out.asm", "old\n")

	require.NoError(t, WriteAtomic(context.Background(), path, []byte("new\n"), 0))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("new\n"), content)
}

func TestWriteAtomicDefaultMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.asm")

	require.NoError(t, WriteAtomic(context.Background(), path, []byte("ret\n"), 0))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultFileMode, stat.Mode().Perm())
}

func TestBackupPath(t *testing.T) {
	assert.Equal(t, "src/main.asm.goasmfmt.bak", BackupPath("src/main.asm"))
}

func TestCreateBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "test.asm", "original\n")
	cfg := BackupConfig{Enabled: true}

	created, err := CreateBackup(context.Background(), path, cfg)
	require.NoError(t, err)
	assert.True(t, created)

	content, err := os.ReadFile(BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, []byte("original\n"), content)
}

func TestCreateBackupIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "test.asm", "original\n")
	cfg := BackupConfig{Enabled: true}

	created, err := CreateBackup(context.Background(), path, cfg)
	require.NoError(t, err)
	require.True(t, created)

	// Change the original; the backup must keep the first content.
	require.NoError(t, os.WriteFile(path, []byte("changed\n"), 0o644))

	created, err = CreateBackup(context.Background(), path, cfg)
	require.NoError(t, err)
	assert.False(t, created)

	content, err := os.ReadFile(BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, []byte("original\n"), content)
}

func TestCreateBackupDisabled(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "test.asm", "original\n")

	created, err := CreateBackup(context.Background(), path, BackupConfig{})
	require.NoError(t, err)
	assert.False(t, created)

	_, err = os.Stat(BackupPath(path))
	assert.True(t, os.IsNotExist(err))
}

func TestCreateBackupMissingOriginal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.asm")

	created, err := CreateBackup(context.Background(), path, BackupConfig{Enabled: true})
	require.NoError(t, err)
	assert.False(t, created)
}
