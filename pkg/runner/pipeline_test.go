package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goasmfmt/pkg/config"
	"github.com/yaklabco/goasmfmt/pkg/fsutil"
	"github.com/yaklabco/goasmfmt/pkg/textenc"
)

func TestProcessFileFormats(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "main.asm", "mov eax, 1\n")

	p := NewPipeline(config.New())
	res, err := p.ProcessFile(context.Background(), path)
	require.NoError(t, err)

	assert.True(t, res.Changed)
	assert.True(t, res.Written)
	assert.True(t, res.BackupCreated)
	assert.False(t, res.Skipped)
	assert.Equal(t, textenc.UTF8, res.Encoding)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\n\tmov eax, 1\n", string(content))

	backup, err := os.ReadFile(fsutil.BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, "mov eax, 1\n", string(backup))
}

func TestProcessFileAlreadyFormatted(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "main.asm", "\n\tmov eax, 1\n")

	p := NewPipeline(config.New())
	res, err := p.ProcessFile(context.Background(), path)
	require.NoError(t, err)

	assert.False(t, res.Changed)
	assert.False(t, res.Written)
	assert.False(t, res.BackupCreated)

	_, err = os.Stat(fsutil.BackupPath(path))
	assert.True(t, os.IsNotExist(err), "no-op runs must not create backups")
}

func TestProcessFileDryRun(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "main.asm", "mov eax, 1\n")

	cfg := config.New()
	cfg.DryRun = true

	res, err := NewPipeline(cfg).ProcessFile(context.Background(), path)
	require.NoError(t, err)

	assert.True(t, res.Changed)
	assert.False(t, res.Written)
	require.NotNil(t, res.Diff)
	assert.Positive(t, res.Diff.Additions)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mov eax, 1\n", string(content), "dry run must not write")
}

func TestProcessFileNoBackups(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "main.asm", "mov eax, 1\n")

	cfg := config.New()
	cfg.NoBackups = true

	res, err := NewPipeline(cfg).ProcessFile(context.Background(), path)
	require.NoError(t, err)

	assert.True(t, res.Written)
	assert.False(t, res.BackupCreated)

	_, err = os.Stat(fsutil.BackupPath(path))
	assert.True(t, os.IsNotExist(err))
}

func TestProcessFileBOMOverridesEncoding(t *testing.T) {
	dir := t.TempDir()
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("mov eax, 1\n")...)
	path := filepath.Join(dir, "main.asm")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	cfg := config.New()
	cfg.Encoding = "ansi"

	res, err := NewPipeline(cfg).ProcessFile(context.Background(), path)
	require.NoError(t, err)

	assert.True(t, res.HadBOM)
	assert.Equal(t, textenc.UTF8, res.Encoding, "BOM wins over the requested encoding")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0xEF, 0xBB, 0xBF}, []byte("\n\tmov eax, 1\n")...), content,
		"the BOM is re-attached on write")
}

func TestProcessFileUTF16LE(t *testing.T) {
	dir := t.TempDir()
	body, err := textenc.Encode("mov eax, 1\r\nret\r\n", textenc.UTF16LE)
	require.NoError(t, err)
	raw := append(textenc.BOM(textenc.UTF16LE), body...)
	path := filepath.Join(dir, "main.asm")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	res, err := NewPipeline(config.New()).ProcessFile(context.Background(), path)
	require.NoError(t, err)

	assert.True(t, res.HadBOM)
	assert.Equal(t, textenc.UTF16LE, res.Encoding)
	assert.True(t, res.Written)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, len(content) > 2)
	assert.Equal(t, textenc.BOM(textenc.UTF16LE), content[:2])

	text, err := textenc.Decode(content[2:], textenc.UTF16LE)
	require.NoError(t, err)
	assert.Equal(t, "\r\n\tmov eax, 1\r\n\tret\r\n", text)
}

func TestProcessFileInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	raw := []byte{'m', 'o', 'v', 0xFF, 0xFE, 0xFD, '\n'}
	path := filepath.Join(dir, "main.asm")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	_, err := NewPipeline(config.New()).ProcessFile(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, textenc.ErrInvalidText)

	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, raw, content, "a failed run must leave the file untouched")
}

func TestProcessFileMissing(t *testing.T) {
	_, err := NewPipeline(config.New()).ProcessFile(
		context.Background(), filepath.Join(t.TempDir(), "missing.asm"))
	assert.ErrorIs(t, err, fsutil.ErrNotFound)
}

func TestProcessFileIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "main.asm", "foo proc\nmov eax, 1 ;x\nfoo endp\nend\n")

	p := NewPipeline(config.New())

	first, err := p.ProcessFile(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, first.Changed)

	second, err := p.ProcessFile(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, second.Changed, "formatting twice must be a no-op")
}
