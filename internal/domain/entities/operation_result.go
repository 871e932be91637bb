package entities

// OperationResult is what every gateway operation reports to its caller.
// Packages carries the refreshed inventory when the operation produced one.
type OperationResult struct {
	OK       bool
	Message  string
	Packages []PackageRecord
	Err      error
}

// Succeeded builds a successful result.
func Succeeded(message string, packages []PackageRecord) OperationResult {
	return OperationResult{OK: true, Message: message, Packages: packages}
}

// Failed builds a failed result carrying the cause.
func Failed(message string, err error) OperationResult {
	return OperationResult{OK: false, Message: message, Err: err}
}
