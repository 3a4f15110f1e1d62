package runner

// FileOutcome wraps a FileResult with any processing error.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the pipeline result for this file.
	// Nil if the file encountered an error.
	Result *FileResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files processed without error.
	FilesProcessed int

	// FilesChanged is the number of files whose content differed after
	// formatting (written, or pending in dry-run mode).
	FilesChanged int

	// FilesWritten is the number of files rewritten on disk.
	FilesWritten int

	// FilesUnchanged is the number of files already formatted.
	FilesUnchanged int

	// FilesSkipped is the number of files skipped (e.g., concurrent
	// modification).
	FilesSkipped int

	// FilesErrored is the number of files that failed.
	FilesErrored int

	// BackupsCreated is the number of sidecar backups written.
	BackupsCreated int
}

// Result is the overall outcome of a run.
type Result struct {
	// Files contains the outcome for each file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// HasChanges reports whether any file was (or would be) modified.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

// accumulate folds one file outcome into the result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++

	res := outcome.Result
	switch {
	case res.Skipped:
		r.Stats.FilesSkipped++
	case res.Changed:
		r.Stats.FilesChanged++
		if res.Written {
			r.Stats.FilesWritten++
		}
	default:
		r.Stats.FilesUnchanged++
	}
	if res.BackupCreated {
		r.Stats.BackupsCreated++
	}
}
