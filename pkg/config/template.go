package config

// Template is the starter configuration written by "goasmfmt init".
const Template = `# goasmfmt configuration
# See "goasmfmt fmt --help" for what each option does.

# Assumed encoding of source files: ansi, utf8, utf16le.
# A byte order mark in a file overrides this per file.
encoding: utf8

# Width of one tab stop.
tab_width: 4

# Indent with spaces instead of tabs.
spaces: false

# Output line breaks: lf, crlf, preserve.
line_breaks: preserve

# Collapse interior runs of blank lines to a single blank line.
compact: false

# Descend into subdirectories when a directory is given.
recurse: false

# File extensions treated as assembly sources.
extensions:
  - .asm

# Glob patterns to skip.
ignore: []

# Sidecar backups (*.goasmfmt.bak) before rewriting files.
backups:
  enabled: true
  mode: sidecar
`
