package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithBoundaryCheck makes Insert and Delete reject offsets that fall inside
// a multi-byte UTF-8 sequence with ErrInvalidBoundary. Off by default:
// offsets are opaque byte positions and callers normally guarantee
// boundaries themselves.
func WithBoundaryCheck() Option {
	return func(b *Buffer) {
		b.checkBoundary = true
	}
}
