package registry

// defaultRevisions pins the QEMU commits each plugin API epoch was
// published in.
var defaultRevisions = []Revision{
	// Plugin API v1, up until QEMU 8.2.4
	{Ordinal: 1, Commit: "1332b8dd434674480f0feb2cdf3bbaebb85b4240"},
	// Plugin API v2, from QEMU 9.0.0
	{Ordinal: 2, Commit: "c25df57ae8f9fe1c72eee2dab37d76d904ac382e"},
	// Plugin API v3, from QEMU 9.1.0
	{Ordinal: 3, Commit: "7de77d37880d7267a491cb32a1b2232017d1e545"},
	// Plugin API v4, from QEMU 9.2.0
	{Ordinal: 4, Commit: "595cd9ce2ec9330882c991a647d5bc2a5640f380"},
}

// Default returns the registry of all supported plugin API epochs.
func Default() *Registry {
	return New(defaultRevisions)
}
