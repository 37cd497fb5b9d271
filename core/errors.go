package core

// DomainError is the single error type used across the core.
//
// Design principles:
//   - every package reports failures through this type
//   - Code carries the machine-checkable condition, Message the human one
//   - Module names the subsystem so logs can be grouped
//
// The recommendation core itself has no fatal paths: callers inside this
// repository catch storage errors and degrade (see behavior.Store). The
// error type exists so the degradation sites can still tell "not found"
// apart from "backend down".
type DomainError struct {
	Module  string // "store", "behavior", "catalog", ...
	Code    string // "NOT_FOUND", "NOT_SUPPORTED", ...
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a DomainError for the given module and code.
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{Module: module, Code: code, Message: message}
}

// GetDomainError returns err as a *DomainError, or nil if it is not one.
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if de, ok := err.(*DomainError); ok {
		return de
	}
	return nil
}

const (
	ErrorCodeNotFound     = "NOT_FOUND"
	ErrorCodeNotSupported = "NOT_SUPPORTED"
	ErrorCodeUnavailable  = "UNAVAILABLE"
)

const (
	ModuleStore    = "store"
	ModuleBehavior = "behavior"
	ModuleCatalog  = "catalog"
)

// IsNotFound reports whether err is a NOT_FOUND domain error.
func IsNotFound(err error) bool {
	if de := GetDomainError(err); de != nil {
		return de.Code == ErrorCodeNotFound
	}
	return false
}

// IsNotSupported reports whether err is a NOT_SUPPORTED domain error.
func IsNotSupported(err error) bool {
	if de := GetDomainError(err); de != nil {
		return de.Code == ErrorCodeNotSupported
	}
	return false
}
