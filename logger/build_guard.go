//go:build lognone && release

package logger

// A release build with the logging backend compiled out would ship a binary
// that appears to log but drops every message. Refuse to build instead:
// remove the "lognone" tag or drop the "release" profile.
var _ = loggingBackendRequiredInReleaseBuilds
