package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantLines    []string
		wantMaxWidth int
		wantDetected LineBreakStyle
	}{
		{
			name:         "empty input",
			input:        "",
			wantLines:    []string{},
			wantMaxWidth: 0,
			wantDetected: LineBreakLF,
		},
		{
			name:         "trims leading and trailing whitespace",
			input:        "  mov eax, 1  \n\tret\t\n",
			wantLines:    []string{"mov eax, 1", "ret"},
			wantMaxWidth: 0,
			wantDetected: LineBreakLF,
		},
		{
			name:         "inline comment sets max width",
			input:        "mov eax, 1 ; one\nret\n",
			wantLines:    []string{"mov eax, 1 ; one", "ret"},
			wantMaxWidth: 10,
			wantDetected: LineBreakLF,
		},
		{
			name:         "widest code line wins",
			input:        "mov eax, 1 ; a\nadd ebx, 22 ; b\n",
			wantLines:    []string{"mov eax, 1 ; a", "add ebx, 22 ; b"},
			wantMaxWidth: 11,
			wantDetected: LineBreakLF,
		},
		{
			name:         "comment only lines do not contribute",
			input:        "; a very long comment line indeed\nmov eax, 1 ; x\n",
			wantLines:    []string{"; a very long comment line indeed", "mov eax, 1 ; x"},
			wantMaxWidth: 10,
			wantDetected: LineBreakLF,
		},
		{
			name:         "crlf input",
			input:        "mov eax, 1\r\nret\r\n",
			wantLines:    []string{"mov eax, 1", "ret"},
			wantMaxWidth: 0,
			wantDetected: LineBreakCRLF,
		},
		{
			name:         "missing final terminator keeps last line",
			input:        "mov eax, 1\nret",
			wantLines:    []string{"mov eax, 1", "ret"},
			wantMaxWidth: 0,
			wantDetected: LineBreakLF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, maxWidth, detected, err := measure(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLines, lines)
			assert.Equal(t, tt.wantMaxWidth, maxWidth)
			assert.Equal(t, tt.wantDetected, detected)
		})
	}
}

func TestMeasureRejectsLoneCR(t *testing.T) {
	_, _, _, err := measure("mov eax, 1\rret\r")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestCodeWidth(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   int
		wantOK bool
	}{
		{name: "no comment", line: "mov eax, 1", want: 0, wantOK: false},
		{name: "comment at start", line: "; note", want: 0, wantOK: false},
		{name: "inline comment", line: "mov eax, 1 ; one", want: 10, wantOK: true},
		{name: "no space before delimiter", line: "mov eax, 1;one", want: 10, wantOK: true},
		{name: "tab padding before delimiter", line: "ret\t\t; done", want: 3, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := codeWidth(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectLineBreak(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  LineBreakStyle
	}{
		{name: "lf", input: "a\nb\n", want: LineBreakLF},
		{name: "crlf", input: "a\r\nb\r\n", want: LineBreakCRLF},
		{name: "no terminator defaults to lf", input: "abc", want: LineBreakLF},
		{name: "empty defaults to lf", input: "", want: LineBreakLF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detectLineBreak(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("lone cr is unsupported", func(t *testing.T) {
		got, err := detectLineBreak("a\rb")
		assert.ErrorIs(t, err, ErrUnsupported)
		assert.Equal(t, LineBreakCR, got)
	})
}
