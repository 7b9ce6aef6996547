package script

import "bytes"

// LineFinder reassembles lines from a stream of bytes. Each time a newline
// arrives the buffered line, without the newline, is handed to the callback.
//
// A trailing partial line is held until Flush is called.
type LineFinder struct {
	onLine func(line string) error
	buf    bytes.Buffer
}

func NewLineFinder(onLine func(line string) error) *LineFinder {
	return &LineFinder{onLine: onLine}
}

// Accept consumes a single byte.
func (f *LineFinder) Accept(c byte) error {
	if c != '\n' {
		f.buf.WriteByte(c)
		return nil
	}
	line := f.buf.String()
	f.buf.Reset()
	return f.onLine(line)
}

// Write feeds p through Accept and stops at the first callback error. The
// returned count includes the newline that triggered the failing callback.
func (f *LineFinder) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := f.Accept(c); err != nil {
			return i + 1, err
		}
	}
	return len(p), nil
}

// Flush emits the pending partial line, if any.
func (f *LineFinder) Flush() error {
	if f.buf.Len() == 0 {
		return nil
	}
	return f.Accept('\n')
}

// Pending returns the bytes received since the last newline.
func (f *LineFinder) Pending() string {
	return f.buf.String()
}

func (f *LineFinder) Reset() {
	f.buf.Reset()
}
