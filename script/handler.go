package script

// Handler receives the records a Parser accepts. Returning an error aborts
// the parse in progress.
type Handler interface {
	// OnInterface is called once per interface, the first time it is
	// declared. The interface is already in the registry when it runs.
	OnInterface(name string, fields []string) error
	// OnSignal is called for every signal, with one value per declared field.
	OnSignal(name string, values []string) error
}

// HandlerFuncs adapts a pair of functions to Handler. Nil members are
// treated as no-ops.
type HandlerFuncs struct {
	Interface func(name string, fields []string) error
	Signal    func(name string, values []string) error
}

func (h HandlerFuncs) OnInterface(name string, fields []string) error {
	if h.Interface == nil {
		return nil
	}
	return h.Interface(name, fields)
}

func (h HandlerFuncs) OnSignal(name string, values []string) error {
	if h.Signal == nil {
		return nil
	}
	return h.Signal(name, values)
}
