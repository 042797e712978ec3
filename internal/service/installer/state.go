package installer

// InstallState collects what the wizard steps produce.
type InstallState struct {
	EnvVars map[string]string

	// Target .env file and whether an existing one may be replaced
	EnvPath   string
	Overwrite bool

	Saved bool
	Err   error
}

func NewInstallState(envPath string, overwrite bool) *InstallState {
	return &InstallState{
		EnvVars:   make(map[string]string),
		EnvPath:   envPath,
		Overwrite: overwrite,
	}
}
