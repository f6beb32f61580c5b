package cli

// Flags holds the global command-line flags shared by all subcommands
type Flags struct {
	ConfigFile string
	LogLevel   string
	JSONOutput bool
	DebugAPI   bool
	ProjectID  int
}

//nolint:gochecknoglobals // Cobra flag targets are package-level by design
var globalFlags = &Flags{}
