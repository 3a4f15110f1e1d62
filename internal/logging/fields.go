package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldEncoding  = "encoding"
	FieldRequested = "requested"
	FieldTabWidth  = "tab_width"
	FieldLineBreak = "line_break"
	FieldDryRun    = "dry_run"
	FieldJobs      = "jobs"

	// Detection fields.
	FieldLanguage = "language"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesChanged    = "files_changed"
	FieldFilesUnchanged  = "files_unchanged"
	FieldFilesErrored    = "files_errored"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
