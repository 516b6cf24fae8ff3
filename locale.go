package ecommerce

// Country is an enumerated country code such as "COUNTRY_USA".
// The set is open; the constants below name the codes in common use.
type Country string

// Language is an enumerated language code such as "LANGUAGE_HINDI".
type Language string

const (
	CountryUSA   Country = "COUNTRY_USA"
	CountryIndia Country = "COUNTRY_INDIA"
)

const (
	LanguageEnglish Language = "LANGUAGE_ENGLISH"
	LanguageSpanish Language = "LANGUAGE_SPANISH"
	LanguageHindi   Language = "LANGUAGE_HINDI"
)

func (c Country) String() string  { return string(c) }
func (l Language) String() string { return string(l) }
