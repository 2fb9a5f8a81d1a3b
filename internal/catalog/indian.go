package catalog

import "github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/model"

// IndianLanguages is the default catalog.
var IndianLanguages = []model.LanguageEntry{
	{Code: "hi", Name: "Hindi"},
	{Code: "bn", Name: "Bengali"},
	{Code: "te", Name: "Telugu"},
	{Code: "ta", Name: "Tamil"},
	{Code: "mr", Name: "Marathi"},
	{Code: "gu", Name: "Gujarati"},
	{Code: "kn", Name: "Kannada"},
	{Code: "ml", Name: "Malayalam"},
	{Code: "pa", Name: "Punjabi"},
	{Code: "or", Name: "Odia"},
	{Code: "as", Name: "Assamese"},
	{Code: "en", Name: "English"},
}

// Default returns a catalog over IndianLanguages.
func Default() *Catalog {
	c, err := New(IndianLanguages)
	if err != nil {
		panic(err)
	}
	return c
}
