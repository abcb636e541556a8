// Package scope provides python-style with-statement helpers:
// a body runs between a resource's Enter and Exit calls, and Exit is
// guaranteed to run once Enter succeeded, including when the body panics.
package scope
