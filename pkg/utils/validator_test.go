package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIMDbTitleURL(t *testing.T) {
	valid := []string{
		"https://www.imdb.com/title/tt0111161/",
		"https://imdb.com/title/tt0111161",
		"http://www.imdb.com/title/tt1375666/",
	}
	for _, url := range valid {
		assert.True(t, IsIMDbTitleURL(url), url)
	}

	invalid := []string{
		"",
		"https://www.imdb.com/name/nm0000138/",
		"https://www.imdb.com/title/0111161/",
		"https://example.com/title/tt0111161/",
		"https://www.imdb.com/title/tt0111161/reviews",
	}
	for _, url := range invalid {
		assert.False(t, IsIMDbTitleURL(url), url)
	}
}

func TestExtractIMDbID(t *testing.T) {
	assert.Equal(t, "tt0111161", ExtractIMDbID("https://www.imdb.com/title/tt0111161/"))
	assert.Equal(t, "", ExtractIMDbID("https://www.imdb.com/name/nm0000138/"))
}

func TestValidateStruct_IMDbTag(t *testing.T) {
	type form struct {
		URL  string `validate:"required,imdb_url"`
		Name string `validate:"required,max=5"`
	}

	errs := ValidateStruct(form{URL: "https://example.com", Name: "toolong"})
	assert.Len(t, errs, 2)
	assert.Contains(t, errs["URL"], "IMDb")
	assert.Equal(t, "Maximum is 5", errs["Name"])

	assert.Nil(t, ValidateStruct(form{URL: "https://www.imdb.com/title/tt0111161/", Name: "Ann"}))
}

func TestFormatValidationErrors_Sorted(t *testing.T) {
	out := FormatValidationErrors(map[string]string{"b": "two", "a": "one"})
	assert.Equal(t, "a: one; b: two", out)
}
