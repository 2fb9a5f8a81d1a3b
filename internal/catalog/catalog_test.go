package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/catalog"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/model"
)

func TestDefault_RoundTrip(t *testing.T) {
	c := catalog.Default()
	require.Equal(t, len(catalog.IndianLanguages), c.Len())

	for _, code := range c.Codes() {
		name, ok := c.LookupName(code)
		require.True(t, ok, code)
		back, ok := c.LookupCode(name)
		require.True(t, ok, name)
		require.Equal(t, code, back)
	}
}

func TestLookupCode_NotFound(t *testing.T) {
	c := catalog.Default()
	code, ok := c.LookupCode("Klingon")
	require.False(t, ok)
	require.Empty(t, code)

	_, ok = c.LookupCode("")
	require.False(t, ok)
}

func TestNew_DuplicateNameFirstWins(t *testing.T) {
	c, err := catalog.New([]model.LanguageEntry{
		{Code: "pa", Name: "Punjabi"},
		{Code: "pnb", Name: "Punjabi"},
	})
	require.NoError(t, err)

	code, ok := c.LookupCode("Punjabi")
	require.True(t, ok)
	require.Equal(t, "pa", code)

	name, ok := c.LookupName("pnb")
	require.True(t, ok)
	require.Equal(t, "Punjabi", name)
}

func TestNew_RejectsDuplicateCode(t *testing.T) {
	_, err := catalog.New([]model.LanguageEntry{
		{Code: "hi", Name: "Hindi"},
		{Code: "hi", Name: "Hindustani"},
	})
	require.Error(t, err)
}

func TestEntries_DeclarationOrder(t *testing.T) {
	c := catalog.Default()
	entries := c.Entries()
	require.Equal(t, "hi", entries[0].Code)
	require.Equal(t, "en", entries[len(entries)-1].Code)

	entries[0].Name = "mutated"
	name, _ := c.LookupName("hi")
	require.Equal(t, "Hindi", name)
}
