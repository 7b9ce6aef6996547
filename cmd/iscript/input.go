package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/iscript/script"
)

// parseInput streams the named file, or stdin when args is empty, through p
// and finishes it. When copyTo is not nil the input is also written to it.
func parseInput(args []string, stdin io.Reader, h script.Handler, copyTo io.Writer) (*script.Parser, error) {
	source := inputName(args)
	r := stdin
	if len(args) > 0 {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		r = f
	}

	if copyTo != nil {
		r = io.TeeReader(r, copyTo)
	}

	p := script.New(h, script.WithSource(source))
	if _, err := p.ReadFrom(r); err != nil {
		return p, err
	}
	return p, p.Finish()
}

func inputName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "<stdin>"
}
