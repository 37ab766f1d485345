package engine

// Default configuration values.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithScreenSize sets the initial render dimensions passed to the
// Printer each iteration (spec §4.8 step 1).
func WithScreenSize(width, height int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.width = width
		}
		if height > 0 {
			e.height = height
		}
	}
}

// WithNotation sets the notation-set name requested from the Printer.
// Defaults to the active language's default display notation.
func WithNotation(name string) Option {
	return func(e *Engine) {
		e.notation = name
	}
}

// WithLogger installs a Logger; the zero value is a no-op logger.
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}
