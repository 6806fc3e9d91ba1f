package daemon

import "os"

// DetachedEnv marks a process that was started by Detach
const DetachedEnv = "FANCONTROL_DETACHED"

// Daemonizer moves the current process into the background
type Daemonizer interface {
	// Detach returns in the background process only. The foreground process exits.
	Detach() error
}

// IsDetached reports whether this process is the background copy started by Detach
func IsDetached() bool {
	return os.Getenv(DetachedEnv) == "1"
}
