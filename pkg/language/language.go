package language

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
)

// Language is the closed set of supported display languages.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"

	// Default is used when a request carries no language at all.
	Default = English
)

var ErrUnsupported = errors.New("unsupported language: must be 'en' or 'ar'")

// Parse validates a raw language code against the supported set.
func Parse(raw string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(raw))) {
	case English:
		return English, nil
	case Arabic:
		return Arabic, nil
	default:
		return "", ErrUnsupported
	}
}

// NameColumn returns the localized name column for this language.
// Reference tables carry an explicit en_name/ar_name pair, so column
// selection stays a closed two-way switch instead of string building.
func (l Language) NameColumn() string {
	if l == Arabic {
		return "ar_name"
	}
	return "en_name"
}

// Resolve extracts the request language, checking the "lang" header first,
// then the query string, then a top-level "lang" field in a JSON body.
// A missing value falls back to Default; an invalid value is an error.
func Resolve(c *gin.Context) (Language, error) {
	raw := c.GetHeader("lang")
	if raw == "" {
		raw = c.Query("lang")
	}
	if raw == "" {
		raw = peekBodyLang(c)
	}
	if raw == "" {
		return Default, nil
	}
	return Parse(raw)
}

// peekBodyLang reads a "lang" field out of a JSON body without consuming it:
// the body is buffered and restored so handlers can still bind it.
func peekBodyLang(c *gin.Context) string {
	if c.Request.Body == nil || !strings.Contains(c.ContentType(), "application/json") {
		return ""
	}
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(data))

	var probe struct {
		Lang string `json:"lang"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return ""
	}
	return probe.Lang
}
