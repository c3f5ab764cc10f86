package window

// BuilderOption configures a Window during construction.
type BuilderOption func(*effectWindow)

// WithTitle sets the window title.
//
// Parameters:
//   - title: the title to display in the title bar
//
// Returns:
//   - BuilderOption: the option to apply
func WithTitle(title string) BuilderOption {
	return func(w *effectWindow) {
		w.title = title
	}
}

// WithWidth sets the initial window width in screen units.
// Values at or below zero keep the default.
//
// Parameters:
//   - width: the initial width
//
// Returns:
//   - BuilderOption: the option to apply
func WithWidth(width int) BuilderOption {
	return func(w *effectWindow) {
		if width > 0 {
			w.width = width
		}
	}
}

// WithHeight sets the initial window height in screen units.
// Values at or below zero keep the default.
//
// Parameters:
//   - height: the initial height
//
// Returns:
//   - BuilderOption: the option to apply
func WithHeight(height int) BuilderOption {
	return func(w *effectWindow) {
		if height > 0 {
			w.height = height
		}
	}
}
