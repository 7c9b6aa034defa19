package domain

import "slices"

// Language is the spoken-language code stored on a doctor.
type Language string

const (
	LanguageEnglish   Language = "en"
	LanguageMandarin  Language = "mandarin"
	LanguageCantonese Language = "cantonese"
)

// Languages returns the recognized codes in display order.
func Languages() []Language {
	return []Language{LanguageEnglish, LanguageMandarin, LanguageCantonese}
}

func (l Language) IsValid() bool {
	return slices.Contains(Languages(), l)
}
