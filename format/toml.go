package format

import (
	"io"

	"github.com/dhamidi/iscript/script"
	"github.com/pelletier/go-toml/v2"
)

type TOMLEncoder struct {
	w      io.Writer
	events []script.Event
}

func NewTOMLEncoder(w io.Writer) *TOMLEncoder {
	return &TOMLEncoder{w: w}
}

func (e *TOMLEncoder) Encode(events []script.Event) error {
	e.events = events
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TOMLEncoder) MarshalText() ([]byte, error) {
	return toml.Marshal(buildDocument(e.events))
}
