package entity

import "strings"

// Base is the envelope every CMS object carries.
type Base struct {
	ID         string `json:"id"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Content    string `json:"content,omitempty"`
	Type       string `json:"type"`
	CreatedAt  string `json:"created_at,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
}

// Decodable is implemented by every entity pointer so the repository can
// fill the envelope and hand the metadata target to the JSON decoder.
type Decodable interface {
	SetBase(Base)
	MetadataTarget() any
}

// KeyValue is a CMS select-dropdown value.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Label prefers the display value and falls back to the key.
func (kv KeyValue) Label() string {
	if kv.Value != "" {
		return kv.Value
	}
	return kv.Key
}

// Image is a CMS media reference.
type Image struct {
	URL      string `json:"url"`
	ImgixURL string `json:"imgix_url"`
}

// Src returns the imgix URL with resize params when available.
func (i *Image) Src(params string) string {
	if i == nil {
		return ""
	}
	if i.ImgixURL == "" {
		return i.URL
	}
	if params == "" {
		return i.ImgixURL
	}
	sep := "?"
	if strings.Contains(i.ImgixURL, "?") {
		sep = "&"
	}
	return i.ImgixURL + sep + params
}
