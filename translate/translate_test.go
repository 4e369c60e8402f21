package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestUse(t *testing.T) {
	assert := assert.New(t)

	assert.Error(Use("not a language tag"))

	assert.NoError(Use(Fallback))
	assert.Equal("bad opcode 0x00ee", From("bad opcode 0x%04x", 0xee))
	assert.Equal("3,584 bytes", From("%d bytes", 3584))
	assert.Equal("stack empty", From("stack empty"))
}

func TestUse_Catalog(t *testing.T) {
	assert := assert.New(t)
	defer Use(Fallback)

	assert.NoError(Use("de-DE"))
	assert.Equal("Stapel leer", From("stack empty"))
	assert.Equal("PC 0x200 Stapel voll", From("pc 0x%03x %v", 0x200, From("stack full")))
	assert.Equal("4.096 Bytes überschreiten die Grenze von 3.584 Bytes",
		From("%d bytes exceeds %d byte limit", 4096, 3584))

	// No catalog, so keys print as written.
	assert.NoError(Use("fr-FR"))
	assert.Equal("stack empty", From("stack empty"))
}

func TestMatch(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		locales []string
		tag     language.Tag
	}){
		{nil, language.AmericanEnglish},
		{[]string{"en-GB"}, language.AmericanEnglish},
		{[]string{"fr-FR"}, language.AmericanEnglish},
		{[]string{"de-AT"}, language.German},
		{[]string{"???", "de-DE"}, language.German},
	}

	for _, entry := range table {
		assert.Equal(entry.tag, match(entry.locales...), "%v", entry.locales)
	}
}
