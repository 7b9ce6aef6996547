package script

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"testing/iotest"
)

const sample = `
i person name age
i org name

person jane 35
person maria 45

org "Southwark and Vauxhall Waterworks Company"
org "New River Company" # comment
`

func TestParserSample(t *testing.T) {
	rec := &Recorder{}
	p := New(rec)

	if err := p.Parse(sample); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []Event{
		{Kind: EventInterface, Name: "person", Values: []string{"name", "age"}},
		{Kind: EventInterface, Name: "org", Values: []string{"name"}},
		{Kind: EventSignal, Name: "person", Values: []string{"jane", "35"}},
		{Kind: EventSignal, Name: "person", Values: []string{"maria", "45"}},
		{Kind: EventSignal, Name: "org", Values: []string{"Southwark and Vauxhall Waterworks Company"}},
		{Kind: EventSignal, Name: "org", Values: []string{"New River Company"}},
	}
	assertEvents(t, rec.Events, want)

	if got := p.Registry().Names(); !slices.Equal(got, []string{"person", "org"}) {
		t.Errorf("Registry().Names() = %q", got)
	}
	if p.Line() != 9 {
		t.Errorf("Line() = %d, want 9", p.Line())
	}
}

func TestParserCharacterAtATime(t *testing.T) {
	whole := &Recorder{}
	if err := New(whole).Parse(sample); err != nil {
		t.Fatal(err)
	}

	split := &Recorder{}
	p := New(split)
	for _, c := range sample {
		if err := p.Parse(string(c)); err != nil {
			t.Fatalf("Parse(%q) error = %v", c, err)
		}
	}
	assertEvents(t, split.Events, whole.Events)
}

func TestParserReadFrom(t *testing.T) {
	rec := &Recorder{}
	p := New(rec)
	n, err := p.ReadFrom(iotest.OneByteReader(strings.NewReader(sample)))
	if err != nil {
		t.Fatalf("ReadFrom() error = %v", err)
	}
	if n != int64(len(sample)) {
		t.Errorf("n = %d, want %d", n, len(sample))
	}
	if got := rec.Count(EventSignal); got != 4 {
		t.Errorf("signals = %d, want 4", got)
	}
}

func TestParserIdempotentRedeclaration(t *testing.T) {
	rec := &Recorder{}
	p := New(rec)
	input := "i person name age\ni person name age\ni person   name age # again\n"
	if err := p.Parse(input); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := rec.Count(EventInterface); got != 1 {
		t.Errorf("interface events = %d, want 1", got)
	}
}

func TestParserInconsistentRedeclaration(t *testing.T) {
	rec := &Recorder{}
	p := New(rec)
	err := p.Parse("i person name age\ni person name\n")
	if !errors.Is(err, ErrInconsistentRedeclaration) {
		t.Fatalf("error = %v, want ErrInconsistentRedeclaration", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, `["name" "age"]`) || !strings.Contains(msg, `["name"]`) {
		t.Errorf("error %q does not name both field lists", msg)
	}
	if fields, _ := p.Registry().Lookup("person"); !slices.Equal(fields, []string{"name", "age"}) {
		t.Errorf("registry fields = %q, want first declaration", fields)
	}
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    error
		line    int
		mention string
	}{
		{"malformed declaration", "i\n", ErrMalformedDeclaration, 1, `["i"]`},
		{"undeclared", "\nperson jane 35\n", ErrUndeclaredInterface, 2, "person"},
		{"too few values", "i person name age\nperson jane\n", ErrArityMismatch, 2, `["jane"]`},
		{"too many values", "i person name age\nperson jane 35 x\n", ErrArityMismatch, 2, `["name" "age"]`},
		{"empty interface given a value", "i tick\ntick 1\n", ErrArityMismatch, 2, "tick"},
		{"lone dot", "i person name\n.\n", ErrUndeclaredInterface, 2, "marker"},
		{"unterminated quote", "i org name\norg \"open\n", ErrUnterminatedQuote, 2, "quote"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &Recorder{}
			err := New(rec).Parse(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not *Error", err)
			}
			if perr.Line != tt.line {
				t.Errorf("Line = %d, want %d", perr.Line, tt.line)
			}
			if !strings.Contains(err.Error(), tt.mention) {
				t.Errorf("error %q does not mention %q", err, tt.mention)
			}
			if rec.Count(EventSignal) != 0 {
				t.Errorf("signals = %d, want 0", rec.Count(EventSignal))
			}
		})
	}
}

func TestParserDotMarker(t *testing.T) {
	rec := &Recorder{}
	if err := New(rec).Parse("i person name age\n. person jane 35\n"); err != nil {
		t.Fatal(err)
	}
	assertEvents(t, rec.Signals(), []Event{
		{Kind: EventSignal, Name: "person", Values: []string{"jane", "35"}},
	})
}

func TestParserCommentInsideWord(t *testing.T) {
	rec := &Recorder{}
	if err := New(rec).Parse("i person name age\nperson jane 35#note\n"); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	assertEvents(t, rec.Signals(), []Event{
		{Kind: EventSignal, Name: "person", Values: []string{"jane", "35"}},
	})

	err := New(&Recorder{}).Parse("i person name age\nperson jane#35\n")
	if !errors.Is(err, ErrArityMismatch) {
		t.Errorf("error = %v, want ErrArityMismatch", err)
	}
}

func TestParserEmptyInterface(t *testing.T) {
	rec := &Recorder{}
	if err := New(rec).Parse("i tick\ntick\n. tick\n"); err != nil {
		t.Fatal(err)
	}
	if got := rec.Count(EventSignal); got != 2 {
		t.Errorf("signals = %d, want 2", got)
	}
}

func TestParserSignalAfterDeclarationInSameChunk(t *testing.T) {
	var seen []string
	var p *Parser
	p = New(HandlerFuncs{
		Interface: func(name string, fields []string) error {
			if !p.Registry().Has(name) {
				t.Errorf("%s not registered when OnInterface runs", name)
			}
			seen = append(seen, "i "+name)
			return nil
		},
		Signal: func(name string, values []string) error {
			seen = append(seen, name+" "+strings.Join(values, ","))
			return nil
		},
	})
	if err := p.Parse("i a x\na 1\ni b y z\nb 2 3\na 4\n"); err != nil {
		t.Fatal(err)
	}
	want := []string{"i a", "a 1", "i b", "b 2,3", "a 4"}
	if !slices.Equal(seen, want) {
		t.Errorf("order = %q, want %q", seen, want)
	}
}

func TestParserUnterminatedLine(t *testing.T) {
	rec := &Recorder{}
	p := New(rec)
	if err := p.Parse("i person name age\nperson jane 35"); err != nil {
		t.Fatal(err)
	}
	if rec.Count(EventSignal) != 0 {
		t.Fatalf("unterminated line was dispatched before Finish")
	}
	if err := p.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if rec.Count(EventSignal) != 1 {
		t.Errorf("signals after Finish = %d, want 1", rec.Count(EventSignal))
	}
	if err := p.Finish(); err != nil {
		t.Errorf("second Finish() error = %v", err)
	}
}

func TestParserMultipleChunksShareRegistry(t *testing.T) {
	rec := &Recorder{}
	p := New(rec)
	if err := p.Parse("i person name"); err != nil {
		t.Fatal(err)
	}
	if err := p.Parse(" age\nperson ja"); err != nil {
		t.Fatal(err)
	}
	if err := p.Parse("ne 35\n"); err != nil {
		t.Fatal(err)
	}
	assertEvents(t, rec.Events, []Event{
		{Kind: EventInterface, Name: "person", Values: []string{"name", "age"}},
		{Kind: EventSignal, Name: "person", Values: []string{"jane", "35"}},
	})
}

func TestParserStickyError(t *testing.T) {
	rec := &Recorder{}
	p := New(rec, WithSource("people.is"))
	first := p.Parse("i person name age\nperson jane\n")
	if first == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(first.Error(), "people.is:2: ") {
		t.Errorf("error = %q, want people.is:2 prefix", first)
	}

	if err := p.Parse("person maria 45\n"); err != first {
		t.Errorf("Parse after failure = %v, want %v", err, first)
	}
	if err := p.Finish(); err != first {
		t.Errorf("Finish after failure = %v, want %v", err, first)
	}
	if rec.Count(EventSignal) != 0 {
		t.Errorf("signals = %d, want 0", rec.Count(EventSignal))
	}
	if !p.Registry().Has("person") {
		t.Error("registry lost person after failure")
	}

	p.Reset()
	if p.Err() != nil || p.Registry().Len() != 0 {
		t.Fatalf("Reset left err=%v len=%d", p.Err(), p.Registry().Len())
	}
	if err := p.Parse("i org name\norg x\n"); err != nil {
		t.Errorf("Parse after Reset error = %v", err)
	}
}

func TestParserHandlerError(t *testing.T) {
	boom := errors.New("boom")
	p := New(HandlerFuncs{
		Signal: func(string, []string) error { return boom },
	})
	err := p.Parse("i a x\na 1\na 2\n")
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
	if p.Line() != 2 {
		t.Errorf("Line() = %d, want 2", p.Line())
	}
}

func TestParserStartLine(t *testing.T) {
	err := New(nil, WithStartLine(10)).Parse("\nnope\n")
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v", err)
	}
	if perr.Line != 11 || perr.Text != "nope" {
		t.Errorf("Line, Text = %d, %q, want 11, %q", perr.Line, perr.Text, "nope")
	}
}

func TestParserArityInvariant(t *testing.T) {
	decl := "i rec a b c\n"
	for n := 0; n <= 5; n++ {
		values := strings.Repeat(" v", n)
		rec := &Recorder{}
		err := New(rec).Parse(decl + "rec" + values + "\n")
		if n == 3 {
			if err != nil {
				t.Errorf("%d values: error = %v", n, err)
			}
			continue
		}
		if !errors.Is(err, ErrArityMismatch) {
			t.Errorf("%d values: error = %v, want ErrArityMismatch", n, err)
		}
	}
}

func assertEvents(t *testing.T, got, want []Event) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d events %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i].Kind != want[i].Kind || got[i].Name != want[i].Name || !slices.Equal(got[i].Values, want[i].Values) {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}
