package wns

// Toast is a transient on-screen notification.
type Toast struct {
	Template ToastTemplate
	Images   []Image
	Texts    []string

	// Duration defaults to DurationShort, which is never written.
	Duration ToastDuration

	// Launch is handed to the app when the user activates the toast.
	Launch string
}

// NewToast returns an empty toast using the ToastImageAndText01 template.
func NewToast() *Toast {
	return &Toast{Template: ToastImageAndText01}
}

// Kind reports KindToast.
func (t *Toast) Kind() Kind { return KindToast }

func (*Toast) isContent() {}

func (t *Toast) payload() string {
	var attrs []Attr
	if t.Launch != "" {
		attrs = append(attrs, Attr{Name: "launch", Value: t.Launch})
	}
	if t.Duration == DurationLong {
		attrs = append(attrs, Attr{Name: "duration", Value: "long"})
	}
	return AssembleVisual("toast", attrs, t.Template.String(), t.Images, t.Texts)
}
