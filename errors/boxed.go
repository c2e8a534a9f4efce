package errors

// BoxedError carries a single error of any concrete type behind one uniform
// container type. The container is transparent: it reports the inner error's
// message, exposes the inner error's own cause and matches Is and As exactly
// like the inner error, so boxing never adds a node to the causal chain.
type BoxedError struct {
	err error
}

// Box wraps err into a BoxedError. Boxing never fails, a nil err yields a
// nil container.
func Box(err error) *BoxedError {
	if err == nil {
		return nil
	}
	return &BoxedError{err: err}
}

func (b *BoxedError) Error() string {
	return b.err.Error()
}

// Unwrap returns the cause of the boxed error, not the boxed error itself,
// which keeps container nodes out of the chain.
func (b *BoxedError) Unwrap() error {
	return Unwrap(b.err)
}

// Is reports whether the boxed error or any of its causes matches target.
func (b *BoxedError) Is(target error) bool {
	return Is(b.err, target)
}

// As finds the first error in the boxed chain that matches target.
func (b *BoxedError) As(target any) bool {
	return As(b.err, target)
}

var _ error = (*BoxedError)(nil)
