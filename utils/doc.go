// Package utils provides a small collection of helper functions for common
// tasks, such as safe numeric conversions and filename sanitizing.
// It is designed to simplify repetitive operations and ensure consistency
// across programs using this library.
package utils
