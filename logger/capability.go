package logger

// Logging capabilities resolved at build time.
const (
	// CapabilityMinimal is the zero-initialization Cat tag logger.
	// It is available whenever this package compiles, so the full
	// backend always implies it.
	CapabilityMinimal = "log"
	// CapabilityFull is the Zap-backed process-wide facade.
	// Absent when the "lognone" build tag is set.
	CapabilityFull = "log-full"
)

// Capabilities lists the logging capabilities compiled into this binary.
func Capabilities() []string {
	capabilities := []string{CapabilityMinimal}

	if backendEnabled {
		capabilities = append(capabilities, CapabilityFull)
	}

	return capabilities
}

// Enabled reports whether the full logging backend was compiled in.
func Enabled() bool {
	return backendEnabled
}

// ReleaseBuild reports whether the binary was built with the "release" tag.
func ReleaseBuild() bool {
	return releaseBuild
}
