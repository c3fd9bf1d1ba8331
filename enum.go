package newsapi

import (
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Category of news returned by the headlines and sources endpoints
type Category string

// Country is a two-letter ISO 3166-1 country code
type Country string

// Language is a two-letter ISO 639-1 language code
type Language string

// SortBy is the article sort order for the everything endpoint
type SortBy string

// SearchIn restricts the fields a search query applies to
type SearchIn string

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	CategoryBusiness      Category = "business"
	CategoryEntertainment Category = "entertainment"
	CategoryGeneral       Category = "general"
	CategoryHealth        Category = "health"
	CategoryScience       Category = "science"
	CategorySports        Category = "sports"
	CategoryTechnology    Category = "technology"
)

const (
	CountryAE Country = "ae"
	CountryAR Country = "ar"
	CountryAT Country = "at"
	CountryAU Country = "au"
	CountryBE Country = "be"
	CountryBG Country = "bg"
	CountryBR Country = "br"
	CountryCA Country = "ca"
	CountryCH Country = "ch"
	CountryCN Country = "cn"
	CountryCO Country = "co"
	CountryCU Country = "cu"
	CountryCZ Country = "cz"
	CountryDE Country = "de"
	CountryEG Country = "eg"
	CountryFR Country = "fr"
	CountryGB Country = "gb"
	CountryGR Country = "gr"
	CountryHK Country = "hk"
	CountryHU Country = "hu"
	CountryID Country = "id"
	CountryIE Country = "ie"
	CountryIL Country = "il"
	CountryIN Country = "in"
	CountryIT Country = "it"
	CountryJP Country = "jp"
	CountryKR Country = "kr"
	CountryLT Country = "lt"
	CountryLV Country = "lv"
	CountryMA Country = "ma"
	CountryMX Country = "mx"
	CountryMY Country = "my"
	CountryNG Country = "ng"
	CountryNL Country = "nl"
	CountryNO Country = "no"
	CountryNZ Country = "nz"
	CountryPH Country = "ph"
	CountryPL Country = "pl"
	CountryPT Country = "pt"
	CountryRO Country = "ro"
	CountryRS Country = "rs"
	CountryRU Country = "ru"
	CountrySA Country = "sa"
	CountrySE Country = "se"
	CountrySG Country = "sg"
	CountrySI Country = "si"
	CountrySK Country = "sk"
	CountryTH Country = "th"
	CountryTR Country = "tr"
	CountryTW Country = "tw"
	CountryUA Country = "ua"
	CountryUS Country = "us"
	CountryVE Country = "ve"
	CountryZA Country = "za"
)

const (
	LanguageAR Language = "ar"
	LanguageDE Language = "de"
	LanguageEN Language = "en"
	LanguageES Language = "es"
	LanguageFR Language = "fr"
	LanguageHE Language = "he"
	LanguageIT Language = "it"
	LanguageNL Language = "nl"
	LanguageNO Language = "no"
	LanguagePT Language = "pt"
	LanguageRU Language = "ru"
	LanguageSV Language = "sv"
	LanguageUD Language = "ud"
	LanguageZH Language = "zh"
)

const (
	SortByRelevancy   SortBy = "relevancy"
	SortByPopularity  SortBy = "popularity"
	SortByPublishedAt SortBy = "publishedAt"
)

const (
	SearchInTitle       SearchIn = "title"
	SearchInDescription SearchIn = "description"
	SearchInContent     SearchIn = "content"
)

// Static lookup tables. Parse functions below consult these rather than
// deriving names through reflection, so the wire form of every value is
// pinned in one place.
var (
	categories = map[Category]bool{
		CategoryBusiness: true, CategoryEntertainment: true, CategoryGeneral: true,
		CategoryHealth: true, CategoryScience: true, CategorySports: true,
		CategoryTechnology: true,
	}
	countries = map[Country]bool{
		CountryAE: true, CountryAR: true, CountryAT: true, CountryAU: true,
		CountryBE: true, CountryBG: true, CountryBR: true, CountryCA: true,
		CountryCH: true, CountryCN: true, CountryCO: true, CountryCU: true,
		CountryCZ: true, CountryDE: true, CountryEG: true, CountryFR: true,
		CountryGB: true, CountryGR: true, CountryHK: true, CountryHU: true,
		CountryID: true, CountryIE: true, CountryIL: true, CountryIN: true,
		CountryIT: true, CountryJP: true, CountryKR: true, CountryLT: true,
		CountryLV: true, CountryMA: true, CountryMX: true, CountryMY: true,
		CountryNG: true, CountryNL: true, CountryNO: true, CountryNZ: true,
		CountryPH: true, CountryPL: true, CountryPT: true, CountryRO: true,
		CountryRS: true, CountryRU: true, CountrySA: true, CountrySE: true,
		CountrySG: true, CountrySI: true, CountrySK: true, CountryTH: true,
		CountryTR: true, CountryTW: true, CountryUA: true, CountryUS: true,
		CountryVE: true, CountryZA: true,
	}
	languages = map[Language]bool{
		LanguageAR: true, LanguageDE: true, LanguageEN: true, LanguageES: true,
		LanguageFR: true, LanguageHE: true, LanguageIT: true, LanguageNL: true,
		LanguageNO: true, LanguagePT: true, LanguageRU: true, LanguageSV: true,
		LanguageUD: true, LanguageZH: true,
	}
	sortOrders = map[string]SortBy{
		"relevancy":   SortByRelevancy,
		"popularity":  SortByPopularity,
		"publishedat": SortByPublishedAt,
	}
	searchFields = map[SearchIn]bool{
		SearchInTitle: true, SearchInDescription: true, SearchInContent: true,
	}
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (c Category) String() string {
	return string(c)
}

func (c Country) String() string {
	return string(c)
}

func (l Language) String() string {
	return string(l)
}

func (s SortBy) String() string {
	return string(s)
}

func (s SearchIn) String() string {
	return string(s)
}

// ParseCategory returns the category for a string, case-insensitively
func ParseCategory(v string) (Category, bool) {
	category := Category(strings.ToLower(strings.TrimSpace(v)))
	return category, categories[category]
}

// ParseCountry returns the country for a two-letter code, case-insensitively
func ParseCountry(v string) (Country, bool) {
	country := Country(strings.ToLower(strings.TrimSpace(v)))
	return country, countries[country]
}

// ParseLanguage returns the language for a two-letter code, case-insensitively
func ParseLanguage(v string) (Language, bool) {
	language := Language(strings.ToLower(strings.TrimSpace(v)))
	return language, languages[language]
}

// ParseSortBy returns the sort order for a string, case-insensitively
func ParseSortBy(v string) (SortBy, bool) {
	order, ok := sortOrders[strings.ToLower(strings.TrimSpace(v))]
	return order, ok
}

// ParseSearchIn returns the search field for a string, case-insensitively
func ParseSearchIn(v string) (SearchIn, bool) {
	field := SearchIn(strings.ToLower(strings.TrimSpace(v)))
	return field, searchFields[field]
}
