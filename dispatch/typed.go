package dispatch

import "slices"

// Handle0 registers a handler for an interface without fields.
func Handle0(d *Dispatcher, name string, fn func() error) error {
	return d.Handle(Schema{Name: name}, func([]string) error {
		return fn()
	})
}

func Handle1(d *Dispatcher, name, f1 string, fn func(string) error) error {
	return d.Handle(Schema{Name: name, Fields: []string{f1}}, func(v []string) error {
		return fn(v[0])
	})
}

func Handle2(d *Dispatcher, name, f1, f2 string, fn func(string, string) error) error {
	return d.Handle(Schema{Name: name, Fields: []string{f1, f2}}, func(v []string) error {
		return fn(v[0], v[1])
	})
}

func Handle3(d *Dispatcher, name, f1, f2, f3 string, fn func(string, string, string) error) error {
	return d.Handle(Schema{Name: name, Fields: []string{f1, f2, f3}}, func(v []string) error {
		return fn(v[0], v[1], v[2])
	})
}

// HandleN registers a handler receiving the values keyed by field name.
func HandleN(d *Dispatcher, name string, fields []string, fn func(map[string]string) error) error {
	fields = slices.Clone(fields)
	return d.Handle(Schema{Name: name, Fields: fields}, func(v []string) error {
		record := make(map[string]string, len(fields))
		for i, f := range fields {
			record[f] = v[i]
		}
		return fn(record)
	})
}
