// Package directory resolves store names to the short codes used in complaint identifiers.
package directory

import (
	"strings"
	"unicode"

	"servicedesk/config"
	"servicedesk/internal/domain/service"
)

const (
	codeLength   = 3
	codePadding  = "X"
	fallbackCode = "OTH"
)

// knownStores maps normalized store names to their assigned codes.
//
//nolint:gochecknoglobals
var knownStores = map[string]string{
	"kharadi":         "KHA",
	"viman nagar":     "VMN",
	"koregaon park":   "KPK",
	"kalyani nagar":   "KLN",
	"hinjewadi":       "HJW",
	"baner":           "BAN",
	"aundh":           "AUN",
	"wakad":           "WKD",
	"hadapsar":        "HDP",
	"magarpatta":      "MGP",
	"kothrud":         "KTD",
	"pimple saudagar": "PSG",
	"camp":            "CMP",
	"shivaji nagar":   "SVN",
	"wagholi":         "WGH",
}

type storeDirectory struct {
	codes map[string]string
}

// NewStoreDirectory returns the built-in store table extended by the
// configured stores.
func NewStoreDirectory(cfg *config.Config) service.StoreDirectory {
	if cfg == nil || len(cfg.Stores) == 0 {
		return &storeDirectory{codes: knownStores}
	}

	return NewStoreDirectoryWith(cfg.Stores)
}

// NewStoreDirectoryWith returns a directory with extra or overriding entries.
func NewStoreDirectoryWith(extra map[string]string) service.StoreDirectory {
	codes := make(map[string]string, len(knownStores)+len(extra))
	for name, code := range knownStores {
		codes[name] = code
	}
	for name, code := range extra {
		codes[normalizeStoreName(name)] = strings.ToUpper(code)
	}

	return &storeDirectory{codes: codes}
}

// CodeFor returns the table code for a known store, or a code derived from
// the first alphabetic token of the name.
func (d *storeDirectory) CodeFor(storeName string) string {
	name := normalizeStoreName(storeName)
	if code, ok := d.codes[name]; ok {
		return code
	}

	return fallbackCodeFor(name)
}

func normalizeStoreName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func fallbackCodeFor(name string) string {
	token := firstAlphabeticToken(name)
	if token == "" {
		return fallbackCode
	}

	letters := []rune(strings.ToUpper(token))
	if len(letters) > codeLength {
		letters = letters[:codeLength]
	}

	return string(letters) + strings.Repeat(codePadding, codeLength-len(letters))
}

// firstAlphabeticToken returns the first run of letters in s.
func firstAlphabeticToken(s string) string {
	start := -1
	for i, r := range s {
		isLetter := r < unicode.MaxASCII && unicode.IsLetter(r)
		switch {
		case isLetter && start < 0:
			start = i
		case !isLetter && start >= 0:
			return s[start:i]
		}
	}
	if start >= 0 {
		return s[start:]
	}

	return ""
}
