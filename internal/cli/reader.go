// FILE: internal/cli/reader.go
package cli

import (
	"bufio"
	"io"
)

// ScannerReader reads lines from a plain stream, for input that is not a
// terminal. Prompts are written to out as they are set.
type ScannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

func NewScannerReader(in io.Reader, out io.Writer) *ScannerReader {
	return &ScannerReader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (r *ScannerReader) SetPrompt(prompt string) {
	r.prompt = prompt
}

func (r *ScannerReader) Readline() (string, error) {
	if r.out != nil && r.prompt != "" {
		io.WriteString(r.out, r.prompt)
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}
