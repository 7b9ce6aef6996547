package format

import (
	"io"

	"github.com/dhamidi/iscript/script"
	"gopkg.in/yaml.v3"
)

type YAMLEncoder struct {
	w      io.Writer
	events []script.Event
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(events []script.Event) error {
	e.events = events
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	return yaml.Marshal(buildDocument(e.events))
}
