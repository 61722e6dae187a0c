package metadomain

import "fmt"

// ErrorResponse is the error envelope returned by the platform API
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails carries the platform's error fields
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	TraceID      string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsAuthError reports an expired or invalid credential. Code 190 is the
// platform's "token expired"; subcodes 460/463/467 are token revocations.
func (e *ErrorResponse) IsAuthError() bool {
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsRateLimited reports the platform's throttling codes (4: app-level,
// 17: account-level, 32: page-level, 613: custom rate limit).
func (e *ErrorResponse) IsRateLimited() bool {
	switch e.Error.Code {
	case 4, 17, 32, 613:
		return true
	}
	return false
}

// AuthError means the credential is expired or invalid. Never retried; it
// aborts only the owning account's sync.
type AuthError struct {
	Message string
	Code    int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("platform auth error (code %d): %s", e.Code, e.Message)
}

// RateLimitError is a transient throttling failure, retried with backoff
// before being surfaced.
type RateLimitError struct {
	Message string
	Code    int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("platform rate limit (code %d): %s", e.Code, e.Message)
}

// IsTransient reports whether the error is worth a backoff retry.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if _, ok := err.(*AuthError); ok {
		return false
	}
	if _, ok := err.(*RateLimitError); ok {
		return true
	}
	// Network-level failures arrive untyped and are also retried.
	return true
}
