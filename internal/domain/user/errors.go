package user

// Reason classifies a ValidationError.
type Reason string

const (
	ReasonInvalidEmail        Reason = "invalid-email"
	ReasonInvalidName         Reason = "invalid-name"
	ReasonMalformedIdentifier Reason = "malformed-identifier"
	ReasonNoOpChange          Reason = "no-op-change"
)

// ValidationError is returned when raw input cannot become a value object,
// or when an attribute update would not change anything. It is always
// correctable by the caller.
type ValidationError struct {
	Reason  Reason
	Message string
	Err     error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(reason Reason, msg string) *ValidationError {
	return &ValidationError{Reason: reason, Message: msg}
}
