package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/iscript/script"
)

// LineEncoder writes one tab separated line per event: kind, interface name
// and the quoted values.
type LineEncoder struct {
	w      io.Writer
	events []script.Event
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(events []script.Event) error {
	e.events = events
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, ev := range e.events {
		fmt.Fprintf(&sb, "%s\t%s\t%s\n", ev.Kind, ev.Name, quoteAll(ev.Values))
	}
	return []byte(sb.String()), nil
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return strings.Join(quoted, " ")
}
