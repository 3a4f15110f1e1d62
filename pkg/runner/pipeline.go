package runner

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yaklabco/goasmfmt/internal/logging"
	"github.com/yaklabco/goasmfmt/pkg/config"
	"github.com/yaklabco/goasmfmt/pkg/diff"
	"github.com/yaklabco/goasmfmt/pkg/format"
	"github.com/yaklabco/goasmfmt/pkg/fsutil"
	"github.com/yaklabco/goasmfmt/pkg/langdetect"
	"github.com/yaklabco/goasmfmt/pkg/textenc"
)

// Pipeline processes one file at a time with safety guarantees: a detected
// BOM overrides the requested encoding, a failed format leaves the file
// untouched, and writes are atomic with optional sidecar backups and a
// concurrent-modification check. Each ProcessFile call owns all of its
// state, so one Pipeline may be shared by concurrent workers.
type Pipeline struct {
	cfg *config.Config
}

// NewPipeline creates a Pipeline for the given resolved configuration.
func NewPipeline(cfg *config.Config) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// FileResult describes the outcome of processing one file.
type FileResult struct {
	// Path is the file that was processed.
	Path string

	// Encoding is the encoding the file was read and written with.
	Encoding textenc.Encoding

	// HadBOM is true if the file carried a byte order mark.
	HadBOM bool

	// Changed is true if formatting altered the content.
	Changed bool

	// Written is true if the file was rewritten on disk.
	Written bool

	// BackupCreated is true if a sidecar backup was created.
	BackupCreated bool

	// Skipped is true if the file was left alone; SkipReason says why.
	Skipped    bool
	SkipReason string

	// Diff holds the pending changes in dry-run mode.
	Diff *diff.Diff
}

// ProcessFile formats a single file end to end.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (*FileResult, error) {
	logger := logging.FromContext(ctx)

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	res := &FileResult{Path: path, Encoding: p.cfg.SourceEncoding()}

	body := content
	if bomEnc, bomLen, found := textenc.DetectBOM(content); found {
		res.HadBOM = true
		if bomEnc != res.Encoding {
			logger.Warn("byte order mark overrides requested encoding",
				logging.FieldPath, path,
				logging.FieldEncoding, string(bomEnc),
				logging.FieldRequested, string(res.Encoding),
			)
		}
		res.Encoding = bomEnc
		body = content[bomLen:]
	}

	if lang := langdetect.DetectedLanguage(path, body); lang != "" && !langdetect.LooksLikeAssembly(path, body) {
		logger.Warn("file does not look like assembly source",
			logging.FieldPath, path,
			logging.FieldLanguage, lang,
		)
	}

	text, err := textenc.Decode(body, res.Encoding)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	formatted, err := format.Format(text, p.cfg.FormatOptions())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", path, err)
	}

	encoded, err := textenc.Encode(formatted, res.Encoding)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", path, err)
	}
	if res.HadBOM {
		encoded = append(textenc.BOM(res.Encoding), encoded...)
	}

	if bytes.Equal(content, encoded) {
		return res, nil
	}
	res.Changed = true

	if p.cfg.DryRun {
		res.Diff = diff.Generate(path, text, formatted)
		return res, nil
	}

	if p.cfg.Backups.Enabled && p.cfg.Backups.Mode != "none" && !p.cfg.NoBackups {
		created, err := fsutil.CreateBackup(ctx, path, fsutil.BackupConfig{Enabled: true})
		if err != nil {
			return nil, fmt.Errorf("backup %s: %w", path, err)
		}
		res.BackupCreated = created
	}

	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return nil, err
	}
	if modified {
		res.Changed = false
		res.Skipped = true
		res.SkipReason = "file changed on disk during formatting"
		return res, nil
	}

	if err := fsutil.WriteAtomic(ctx, path, encoded, info.Mode); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	res.Written = true

	logger.Debug("formatted",
		logging.FieldPath, path,
		logging.FieldEncoding, string(res.Encoding),
	)

	return res, nil
}
