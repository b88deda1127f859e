package lineclip

import "log/slog"

// ClipperOption configures a Clipper during creation.
//
// Example:
//
//	c, err := lineclip.NewClipper(lineclip.Pt(8, 7), lineclip.Pt(19, 13),
//	    lineclip.WithLogger(logger),
//	    lineclip.WithStrictInvariants())
type ClipperOption func(*clipperOptions)

// clipperOptions holds optional configuration for Clipper creation.
type clipperOptions struct {
	logger *slog.Logger
	strict bool
}

// defaultOptions returns the default clipper options.
func defaultOptions() clipperOptions {
	return clipperOptions{
		logger: nil, // falls back to Logger() on every call
		strict: false,
	}
}

// WithLogger sets a logger for this Clipper only, overriding the package
// logger configured with SetLogger. A nil logger keeps the package logger.
func WithLogger(l *slog.Logger) ClipperOption {
	return func(o *clipperOptions) {
		o.logger = l
	}
}

// WithStrictInvariants makes Clip panic with an error wrapping
// ErrInvariantViolation instead of returning it. Intended for development
// and test builds, where such a violation should stop the program.
func WithStrictInvariants() ClipperOption {
	return func(o *clipperOptions) {
		o.strict = true
	}
}
