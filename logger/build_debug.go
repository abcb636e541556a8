//go:build !release

package logger

// releaseBuild marks a release build profile (the "release" tag).
const releaseBuild = false
