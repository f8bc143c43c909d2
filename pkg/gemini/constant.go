package gemini

import "time"

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	// Gemini names the assistant side "model".
	roleUser  = "user"
	roleModel = "model"

	generateContentURL = "%s/models/%s:generateContent?key=%s"

	// maxErrorBody caps how much of a failed response ends up in the error.
	maxErrorBody = 4 << 10
)
