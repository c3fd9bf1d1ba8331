package newsapi_test

import (
	"testing"

	// Packages
	newsapi "github.com/mutablelogic/go-newsapi"
	assert "github.com/stretchr/testify/assert"
)

var (
	allCategories = []newsapi.Category{
		newsapi.CategoryBusiness, newsapi.CategoryEntertainment, newsapi.CategoryGeneral,
		newsapi.CategoryHealth, newsapi.CategoryScience, newsapi.CategorySports,
		newsapi.CategoryTechnology,
	}
	allCountries = []newsapi.Country{
		newsapi.CountryAE, newsapi.CountryAR, newsapi.CountryAT, newsapi.CountryAU,
		newsapi.CountryBE, newsapi.CountryBG, newsapi.CountryBR, newsapi.CountryCA,
		newsapi.CountryCH, newsapi.CountryCN, newsapi.CountryCO, newsapi.CountryCU,
		newsapi.CountryCZ, newsapi.CountryDE, newsapi.CountryEG, newsapi.CountryFR,
		newsapi.CountryGB, newsapi.CountryGR, newsapi.CountryHK, newsapi.CountryHU,
		newsapi.CountryID, newsapi.CountryIE, newsapi.CountryIL, newsapi.CountryIN,
		newsapi.CountryIT, newsapi.CountryJP, newsapi.CountryKR, newsapi.CountryLT,
		newsapi.CountryLV, newsapi.CountryMA, newsapi.CountryMX, newsapi.CountryMY,
		newsapi.CountryNG, newsapi.CountryNL, newsapi.CountryNO, newsapi.CountryNZ,
		newsapi.CountryPH, newsapi.CountryPL, newsapi.CountryPT, newsapi.CountryRO,
		newsapi.CountryRS, newsapi.CountryRU, newsapi.CountrySA, newsapi.CountrySE,
		newsapi.CountrySG, newsapi.CountrySI, newsapi.CountrySK, newsapi.CountryTH,
		newsapi.CountryTR, newsapi.CountryTW, newsapi.CountryUA, newsapi.CountryUS,
		newsapi.CountryVE, newsapi.CountryZA,
	}
	allLanguages = []newsapi.Language{
		newsapi.LanguageAR, newsapi.LanguageDE, newsapi.LanguageEN, newsapi.LanguageES,
		newsapi.LanguageFR, newsapi.LanguageHE, newsapi.LanguageIT, newsapi.LanguageNL,
		newsapi.LanguageNO, newsapi.LanguagePT, newsapi.LanguageRU, newsapi.LanguageSV,
		newsapi.LanguageUD, newsapi.LanguageZH,
	}
)

func Test_enum_001(t *testing.T) {
	assert := assert.New(t)

	// Every category round-trips through the lookup table
	assert.Len(allCategories, 7)
	for _, category := range allCategories {
		parsed, ok := newsapi.ParseCategory(category.String())
		assert.True(ok)
		assert.Equal(category, parsed)
	}
	_, ok := newsapi.ParseCategory("politics")
	assert.False(ok)
}

func Test_enum_002(t *testing.T) {
	assert := assert.New(t)

	// Every country round-trips, case-insensitively
	assert.Len(allCountries, 54)
	for _, country := range allCountries {
		parsed, ok := newsapi.ParseCountry(country.String())
		assert.True(ok)
		assert.Equal(country, parsed)
	}
	parsed, ok := newsapi.ParseCountry("US")
	assert.True(ok)
	assert.Equal(newsapi.CountryUS, parsed)
	_, ok = newsapi.ParseCountry("xx")
	assert.False(ok)
}

func Test_enum_003(t *testing.T) {
	assert := assert.New(t)

	// Every language round-trips
	assert.Len(allLanguages, 14)
	for _, language := range allLanguages {
		parsed, ok := newsapi.ParseLanguage(language.String())
		assert.True(ok)
		assert.Equal(language, parsed)
	}
	_, ok := newsapi.ParseLanguage("xx")
	assert.False(ok)
}

func Test_enum_004(t *testing.T) {
	assert := assert.New(t)

	// Sort orders keep their mixed-case wire form
	parsed, ok := newsapi.ParseSortBy("publishedAt")
	assert.True(ok)
	assert.Equal(newsapi.SortByPublishedAt, parsed)
	assert.Equal("publishedAt", parsed.String())

	parsed, ok = newsapi.ParseSortBy("RELEVANCY")
	assert.True(ok)
	assert.Equal(newsapi.SortByRelevancy, parsed)

	_, ok = newsapi.ParseSortBy("newest")
	assert.False(ok)
}

func Test_enum_005(t *testing.T) {
	assert := assert.New(t)

	for _, field := range []newsapi.SearchIn{newsapi.SearchInTitle, newsapi.SearchInDescription, newsapi.SearchInContent} {
		parsed, ok := newsapi.ParseSearchIn(field.String())
		assert.True(ok)
		assert.Equal(field, parsed)
	}
	_, ok := newsapi.ParseSearchIn("body")
	assert.False(ok)
}
