// Package lib carries small generic helpers shared by the other packages
// and their tests.
package lib

// Replace points a package-level seam at a stand-in and returns the function
// that puts the original back. The intended shape is a one-liner:
//
//	defer lib.Replace(&osExit, func(code int) {})()
func Replace[T any](target *T, value T) func() {
	origin := *target
	*target = value
	return func() {
		*target = origin
	}
}
