package contact

// RejectError means the submission itself is bad. The HTTP layer maps it to
// a 400 without touching storage or mail.
type RejectError struct {
	Code    string
	Message string
}

func (e *RejectError) Error() string { return e.Message }

var (
	ErrFieldsRequired = &RejectError{Code: "missing_field", Message: "All fields are required"}
	ErrInvalidEmail   = &RejectError{Code: "invalid_email", Message: "Please enter a valid email address"}
)

// Failure stages, surfaced verbatim in the 500 envelope.
const (
	StageConfig  = "SMTP credentials are not configured"
	StageStorage = "failed to save contact"
	StageNotify  = "failed to send notification email"
)

// FailError means the environment failed the request: missing transport
// config, a storage error, or a notification error. Maps to a 500.
type FailError struct {
	Stage string
	Err   error
}

func (e *FailError) Error() string {
	if e.Err != nil {
		return e.Stage + ": " + e.Err.Error()
	}
	return e.Stage
}

func (e *FailError) Unwrap() error { return e.Err }
