package model

// LanguageEntry pairs a service language code with its display name.
type LanguageEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
