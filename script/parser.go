package script

import (
	"fmt"
	"io"

	"github.com/tliron/commonlog"
)

type Option func(*Parser)

// WithSource names the input in error messages.
func WithSource(name string) Option {
	return func(p *Parser) {
		p.source = name
	}
}

// WithStartLine sets the number of the first line, for input that is a
// fragment of a larger document.
func WithStartLine(line int) Option {
	return func(p *Parser) {
		p.startLine = line
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// Parser reads interface scripts incrementally. Input may arrive in chunks of
// any size through Parse, Write or ReadFrom; every complete line is tokenized,
// validated against the registry and reported to the Handler.
//
// The first failure stops the parser: it is returned from the call that
// caused it and from every later call until Reset. A Parser is not safe for
// concurrent use.
type Parser struct {
	handler   Handler
	source    string
	startLine int
	log       commonlog.Logger
	registry  *Registry
	finder    *LineFinder
	line      int
	err       error
}

func New(h Handler, opts ...Option) *Parser {
	if h == nil {
		h = HandlerFuncs{}
	}
	p := &Parser{
		handler:   h,
		startLine: 1,
		registry:  newRegistry(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = commonlog.GetLogger("iscript.parser")
	}
	p.finder = NewLineFinder(p.onLine)
	p.line = p.startLine - 1
	return p
}

// Parse feeds text to the parser. A final line without a newline stays
// buffered until more input or Finish.
func (p *Parser) Parse(text string) error {
	_, err := p.WriteString(text)
	return err
}

func (p *Parser) Write(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	return p.finder.Write(b)
}

func (p *Parser) WriteString(s string) (int, error) {
	return p.Write([]byte(s))
}

// ReadFrom parses everything r yields, stopping at the first error. It does
// not call Finish.
func (p *Parser) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, 4096)
	var total int64
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			w, err := p.Write(buf[:n])
			total += int64(w)
			if err != nil {
				return total, err
			}
		}
		if rerr == io.EOF {
			return total, nil
		}
		if rerr != nil {
			return total, fmt.Errorf("read script: %w", rerr)
		}
	}
}

// Finish marks the end of input, processing a final line that was not
// terminated by a newline.
func (p *Parser) Finish() error {
	if p.err != nil {
		return p.err
	}
	return p.finder.Flush()
}

// Registry exposes the interfaces declared so far. It remains valid after a
// parse error.
func (p *Parser) Registry() *Registry {
	return p.registry
}

// Line returns the number of the last complete line processed.
func (p *Parser) Line() int {
	return p.line
}

// Err returns the error that stopped the parser, if any.
func (p *Parser) Err() error {
	return p.err
}

// Reset discards the registry, buffered input and any error.
func (p *Parser) Reset() {
	p.registry.reset()
	p.finder.Reset()
	p.line = p.startLine - 1
	p.err = nil
}

func (p *Parser) onLine(text string) error {
	p.line++
	if err := p.handleLine(text); err != nil {
		p.err = &Error{Source: p.source, Line: p.line, Text: text, Err: err}
		return p.err
	}
	return nil
}

func (p *Parser) handleLine(text string) error {
	tokens, err := Tokenize(text)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}
	if tokens[0] == "i" {
		return p.handleInterface(tokens)
	}
	if tokens[0] == "." {
		tokens = tokens[1:]
	}
	return p.handleSignal(tokens)
}

func (p *Parser) handleInterface(tokens []string) error {
	if len(tokens) < 2 {
		return fmt.Errorf("%w: %q", ErrMalformedDeclaration, tokens)
	}
	name := tokens[1]
	fields := tokens[2:]
	added, err := p.registry.declare(name, fields)
	if err != nil {
		return err
	}
	if !added {
		p.log.Debugf("line %d: redeclared %s", p.line, name)
		return nil
	}
	p.log.Debugf("line %d: declared %s %v", p.line, name, fields)
	return p.handler.OnInterface(name, fields)
}

func (p *Parser) handleSignal(tokens []string) error {
	// A line holding only "." has no interface name.
	if len(tokens) == 0 {
		return fmt.Errorf("%w: signal marker without a name", ErrUndeclaredInterface)
	}
	name := tokens[0]
	values := tokens[1:]
	fields, ok := p.registry.fields[name]
	if !ok {
		return fmt.Errorf("%w: no interface defined for %s", ErrUndeclaredInterface, name)
	}
	if len(values) != len(fields) {
		return fmt.Errorf("%w: i %s %q, got %q", ErrArityMismatch, name, fields, values)
	}
	p.log.Debugf("line %d: signal %s", p.line, name)
	return p.handler.OnSignal(name, values)
}
