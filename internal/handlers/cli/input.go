package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// openInput opens the input source for a command. An empty path or "-" means
// stdin; anything else is treated as a file path.
//
// Parameters:
//   - path: File path, "-", or empty.
//
// Returns:
//   - io.ReadCloser: The input stream. Closing the stdin wrapper is a no-op.
//   - error: Non-nil if the file could not be opened.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %q: %w", path, err)
	}

	return f, nil
}

// forEachLine reads r line by line and invokes fn for each one. Trailing
// newlines are stripped by the scanner; empty lines are passed through.
func forEachLine(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}

	return scanner.Err()
}
