package coordinator

// PresentationStyle selects how a presented layer covers the layer beneath it.
// The zero value lets the coordinator pick the default (PresentationStyleFormSheet).
type PresentationStyle int

const (
	PresentationStyleUnassigned PresentationStyle = iota
	PresentationStyleAutomatic
	PresentationStyleFullScreen
	PresentationStylePageSheet
	PresentationStyleFormSheet
	PresentationStyleOverFullScreen
	PresentationStyleOverCurrentContext
	PresentationStylePopover
)

// DefaultPresentationStyle is used when TransitionOptions.Style is unassigned.
const DefaultPresentationStyle = PresentationStyleFormSheet

func (ps PresentationStyle) GetName() string {
	switch ps {
	case PresentationStyleUnassigned:
		return "Unassigned"
	case PresentationStyleAutomatic:
		return "Automatic"
	case PresentationStyleFullScreen:
		return "FullScreen"
	case PresentationStylePageSheet:
		return "PageSheet"
	case PresentationStyleFormSheet:
		return "FormSheet"
	case PresentationStyleOverFullScreen:
		return "OverFullScreen"
	case PresentationStyleOverCurrentContext:
		return "OverCurrentContext"
	case PresentationStylePopover:
		return "Popover"
	default:
		return "Unknown"
	}
}

// CoversContext reports whether the layer beneath stays visible behind the presented one.
func (ps PresentationStyle) CoversContext() bool {
	return ps == PresentationStyleOverFullScreen || ps == PresentationStyleOverCurrentContext
}

// TransitionOptions configures push, present, pop and dismiss operations.
type TransitionOptions struct {
	// Animated runs the container transition with animation.
	Animated bool
	// Style is the presentation style for present operations (default: PresentationStyleFormSheet).
	Style PresentationStyle
	// Embed wraps a directly presented screen in its own navigation stack so it can push.
	// Ignored for coordinator presentations, which always present the child's stack.
	Embed bool
	// OnComplete fires once the container finishes the transition.
	// ok is false when a dismiss or pop was rejected; no container was touched in that case.
	OnComplete func(ok bool)
}

// DefaultTransitionOptions returns animated, form-sheet, embedded transition options.
func DefaultTransitionOptions() TransitionOptions {
	return TransitionOptions{
		Animated: true,
		Style:    DefaultPresentationStyle,
		Embed:    true,
	}
}

// Then returns a copy of the options with OnComplete set.
func (o TransitionOptions) Then(fn func(ok bool)) TransitionOptions {
	o.OnComplete = fn
	return o
}

// Instant returns a copy of the options with animation disabled.
func (o TransitionOptions) Instant() TransitionOptions {
	o.Animated = false
	return o
}

func (o TransitionOptions) style() PresentationStyle {
	if o.Style == PresentationStyleUnassigned {
		return DefaultPresentationStyle
	}
	return o.Style
}

func (o TransitionOptions) complete(ok bool) {
	if o.OnComplete != nil {
		o.OnComplete(ok)
	}
}
