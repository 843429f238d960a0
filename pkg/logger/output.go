package logger

import (
	"io"
	"os"
)

// nopCloser lets the standard streams be returned alongside opened files.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// OpenOutput resolves a --logs-file value. "/dev/stderr" (the default when
// empty), "/dev/stdout" and "/dev/null" map to the process streams or
// io.Discard; anything else is opened for appending.
func OpenOutput(file string) (io.WriteCloser, error) {
	switch file {
	case "", "/dev/stderr":
		return nopCloser{os.Stderr}, nil
	case "/dev/stdout":
		return nopCloser{os.Stdout}, nil
	case "/dev/null":
		return nopCloser{io.Discard}, nil
	}

	f, err := os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	return f, nil
}
