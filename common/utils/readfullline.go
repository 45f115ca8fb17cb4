package utils

import (
	"bufio"
	"strings"
)

// ReadFullLine reads one line of any length, without its "\n" or "\r\n" terminator.
func ReadFullLine(r *bufio.Reader) (string, error) {
	line, isPrefix, readErr := r.ReadLine()
	if readErr != nil {
		return "", readErr
	}

	var buf strings.Builder
	buf.Write(line)

	for isPrefix && readErr == nil {
		line, isPrefix, readErr = r.ReadLine()
		buf.Write(line)
	}

	return strings.TrimSuffix(buf.String(), "\r"), nil
}
