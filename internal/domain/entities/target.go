package entities

// Target pins the package manager backend and the interpreter it operates on
// for one session.
type Target struct {
	Manager      string   // backend name, e.g. "pip"
	Interpreter  string   // absolute interpreter path, symlinks kept as given
	InstallFlags []string // extra flags placed before the package name
	Env          []string // extra KEY=VALUE pairs for child processes
}
