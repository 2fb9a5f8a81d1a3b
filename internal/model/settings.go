package model

import "time"

// Setting is one persisted provider setting. Keys are dotted, e.g.
// "provider.translator" or "openai.api_key".
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
