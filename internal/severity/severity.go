// Package severity provides the severity levels attached to conversion and
// validation issues.
//
// Levels are ordered from least to most severe: Info < Warning < Error < Critical.
package severity

// Severity indicates how serious a reported issue is.
type Severity int

const (
	// SeverityInfo marks a choice the converter made that the caller may want to know about,
	// such as a response that degraded to a plain description.
	SeverityInfo Severity = iota

	// SeverityWarning marks best-effort handling of suspicious input: unknown type
	// tokens, dropped duplicate operations, overwritten schemas.
	SeverityWarning

	// SeverityError marks a violation that makes a produced document invalid.
	SeverityError

	// SeverityCritical marks input that could not be processed at all.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// MarshalText lets severities appear as strings in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// AtLeast reports whether s is at least as severe as other.
func (s Severity) AtLeast(other Severity) bool {
	return s >= other
}
