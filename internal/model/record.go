package model

import (
	"strings"
	"time"
)

// Mode identifies which orchestrator flow produced a record.
type Mode string

const (
	ModeText         Mode = "text"
	ModeVoice        Mode = "voice"
	ModeConversation Mode = "conversation"
)

// TranslationRecord is one successful translation kept in session history.
// SourceLanguage and TargetLanguage hold display names.
type TranslationRecord struct {
	ID             int64     `json:"id,string"`
	Mode           Mode      `json:"mode"`
	SourceLanguage string    `json:"from"`
	TargetLanguage string    `json:"to"`
	OriginalText   string    `json:"original"`
	TranslatedText string    `json:"translated"`
	Speaker        string    `json:"speaker,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Theme is the UI colour scheme preference held per session.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	default:
		return "", false
	}
}

