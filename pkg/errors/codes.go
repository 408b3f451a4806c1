package errors

// Code is a machine-readable error code. Codes follow the pattern
// CATEGORY_NNN and never change once assigned.
type Code string

const (
	// CodeValidation indicates a general validation failure.
	CodeValidation Code = "VAL_001"

	// CodeValidationRequired indicates a required value is missing.
	CodeValidationRequired Code = "VAL_002"

	// CodeValidationFormat indicates a value has an invalid format.
	CodeValidationFormat Code = "VAL_003"

	// CodeConflict indicates the operation conflicts with the current state,
	// for example releasing a library client that was never acquired.
	CodeConflict Code = "CONF_001"

	// CodeInternalConfiguration indicates configuration could not be loaded.
	CodeInternalConfiguration Code = "INT_003"

	// CodeUnavailableLibrary indicates the native windowing library is not
	// linked into the binary or refused to initialise.
	CodeUnavailableLibrary Code = "UNAVAIL_004"
)

// String returns the string representation of the error code.
func (c Code) String() string {
	return string(c)
}

// Category returns the category prefix of the code (e.g., "VAL").
func (c Code) Category() string {
	s := string(c)
	for i, r := range s {
		if r == '_' {
			return s[:i]
		}
	}
	return s
}
