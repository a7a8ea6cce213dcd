package directory

import (
	"testing"

	"servicedesk/config"

	"github.com/stretchr/testify/assert"
)

func TestStoreDirectory_CodeFor(t *testing.T) {
	dir := NewStoreDirectory(&config.Config{})

	tests := []struct {
		name  string
		store string
		want  string
	}{
		{name: "known store", store: "Kharadi", want: "KHA"},
		{name: "known store odd spacing and case", store: "  VIMAN   nagar ", want: "VMN"},
		{name: "unknown store uses first token", store: "Baramati Road", want: "BAR"},
		{name: "short token is padded", store: "Ox", want: "OXX"},
		{name: "leading digits skipped", store: "42 Sinhagad", want: "SIN"},
		{name: "token ends at punctuation", store: "Lo-Cal Mart", want: "LOX"},
		{name: "empty name", store: "", want: "OTH"},
		{name: "no letters", store: "123 456", want: "OTH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dir.CodeFor(tt.store))
		})
	}
}

func TestNewStoreDirectoryWith_Overrides(t *testing.T) {
	dir := NewStoreDirectoryWith(map[string]string{"Baramati Road": "brm", "Kharadi": "KHR"})

	assert.Equal(t, "BRM", dir.CodeFor("baramati road"))
	assert.Equal(t, "KHR", dir.CodeFor("Kharadi"))
	assert.Equal(t, "VMN", dir.CodeFor("Viman Nagar"))
}

func TestNewStoreDirectory_ConfiguredStores(t *testing.T) {
	dir := NewStoreDirectory(&config.Config{Stores: map[string]string{"Baner": "bnr"}})

	assert.Equal(t, "BNR", dir.CodeFor("  baner "))
	assert.Equal(t, "KHA", dir.CodeFor("Kharadi"))
}
