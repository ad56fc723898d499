package serverutils

// Request-level error taxonomy. Anything affecting a single attachment stays
// inside its extraction record (see pkg/extract); these types cover failures
// that abort the whole request and must map to an HTTP status.

// ValidationError rejects malformed or empty input before any pipeline work.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// AuthenticationError covers missing tokens and unknown accounts.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

func NewAuthenticationError(message string) *AuthenticationError {
	return &AuthenticationError{Message: message}
}

// ConfigurationError signals a missing credential at request time. Never retried.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

func NewConfigurationError(message string) *ConfigurationError {
	return &ConfigurationError{Message: message}
}

// UpstreamGenerationError wraps an empty or failed completion from the
// generation capability. The upstream message is surfaced to the caller.
type UpstreamGenerationError struct {
	Message string
}

func (e *UpstreamGenerationError) Error() string {
	return e.Message
}

func NewUpstreamGenerationError(message string) *UpstreamGenerationError {
	return &UpstreamGenerationError{Message: message}
}
