package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/iscript/script"
)

type JSONEncoder struct {
	w      io.Writer
	events []script.Event
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(events []script.Event) error {
	e.events = events
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(buildDocument(e.events), "", "  ")
}
