package runner

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goasmfmt/pkg/config"
)

func TestRunnerRun(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.asm", "mov eax, 1\n")
	writeTestFile(t, dir, "b.asm", "mov ebx, 2\n")
	writeTestFile(t, dir, "c.asm", "\n\tret\n")

	r := New(NewPipeline(config.New()))
	result, err := r.Run(context.Background(), Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Stats.FilesDiscovered)
	assert.Equal(t, 3, result.Stats.FilesProcessed)
	assert.Equal(t, 2, result.Stats.FilesChanged)
	assert.Equal(t, 2, result.Stats.FilesWritten)
	assert.Equal(t, 1, result.Stats.FilesUnchanged)
	assert.Equal(t, 0, result.Stats.FilesErrored)
	assert.Equal(t, 2, result.Stats.BackupsCreated)
	assert.True(t, result.HasChanges())
	assert.False(t, result.HasErrors())

	// Outcomes are ordered by path regardless of worker scheduling.
	require.Len(t, result.Files, 3)
	for i := 1; i < len(result.Files); i++ {
		assert.Less(t, result.Files[i-1].Path, result.Files[i].Path)
	}
}

func TestRunnerRunEmptyDirectory(t *testing.T) {
	r := New(NewPipeline(config.New()))
	result, err := r.Run(context.Background(), Options{
		Paths:      []string{"."},
		WorkingDir: t.TempDir(),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasChanges())
}

func TestRunnerRunContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "good.asm", "mov eax, 1\n")
	bad := writeTestFile(t, dir, "bad.asm", "mov\xff\xfe\n")

	r := New(NewPipeline(config.New()))
	result, err := r.Run(context.Background(), Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	require.NoError(t, err, "per-file failures must not abort the run")

	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.Equal(t, 1, result.Stats.FilesChanged)
	assert.True(t, result.HasErrors())

	content, readErr := os.ReadFile(bad)
	require.NoError(t, readErr)
	assert.Equal(t, []byte("mov\xff\xfe\n"), content)
}

func TestRunnerRunManyWorkers(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.asm", "mov eax, 1\n")

	r := New(NewPipeline(config.New()))
	result, err := r.Run(context.Background(), Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Jobs:       16,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.FilesWritten)
}

func TestResultAccumulate(t *testing.T) {
	var r Result

	r.accumulate(FileOutcome{Path: "a.asm", Result: &FileResult{Changed: true, Written: true, BackupCreated: true}})
	r.accumulate(FileOutcome{Path: "b.asm", Result: &FileResult{}})
	r.accumulate(FileOutcome{Path: "c.asm", Result: &FileResult{Skipped: true, SkipReason: "race"}})
	r.accumulate(FileOutcome{Path: "d.asm", Error: errors.New("boom")})
	r.accumulate(FileOutcome{Path: "e.asm", Result: &FileResult{Changed: true}})

	assert.Equal(t, 4, r.Stats.FilesProcessed)
	assert.Equal(t, 2, r.Stats.FilesChanged)
	assert.Equal(t, 1, r.Stats.FilesWritten)
	assert.Equal(t, 1, r.Stats.FilesUnchanged)
	assert.Equal(t, 1, r.Stats.FilesSkipped)
	assert.Equal(t, 1, r.Stats.FilesErrored)
	assert.Equal(t, 1, r.Stats.BackupsCreated)
	assert.Len(t, r.Files, 5)
}
