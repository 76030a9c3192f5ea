package wns

// Raw carries caller-supplied markup for templates and features the typed
// contents do not cover. The markup is sent verbatim: no escaping and no
// well-formedness check.
type Raw struct {
	Markup string
}

// Kind reports KindRaw.
func (r *Raw) Kind() Kind { return KindRaw }

func (*Raw) isContent() {}
