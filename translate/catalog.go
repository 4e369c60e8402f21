package translate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:generate go tool gotext -srclang=en-US extract -lang=de-DE github.com/ezrec/chip8/...

// _messages holds the translations of the en-US keys. Keys without an
// entry print as written.
var _messages = map[language.Tag]map[string]string{
	language.German: {
		"wrong type":                     "falscher Typ",
		"must be positive":               "muss positiv sein",
		"must not be negative":           "darf nicht negativ sein",
		"not a 0xRRGGBB color":           "keine 0xRRGGBB Farbe",
		"unknown quirk":                  "unbekannte Eigenheit",
		"no program loaded":              "kein Programm geladen",
		"pc 0x%03x %v":                   "PC 0x%03x %v",
		"program too large":              "Programm zu groß",
		"key invalid":                    "ungültige Taste",
		"stack empty":                    "Stapel leer",
		"stack full":                     "Stapel voll",
		"bad opcode 0x%04x %v":           "ungültiger Opcode 0x%04x %v",
		"%d bytes exceeds %d byte limit": "%d Bytes überschreiten die Grenze von %d Bytes",
		"rom empty":                      "ROM leer",
		"rom too large":                  "ROM zu groß",
		"key unknown":                    "unbekannte Taste",
		"key out of range":               "Taste außerhalb des Bereichs",
	},
}

// Supported lists the catalog languages, Fallback first.
var Supported = func() (tags []language.Tag) {
	tags = []language.Tag{language.MustParse(Fallback)}
	for tag, msgs := range _messages {
		for key, msg := range msgs {
			err := message.SetString(tag, key, msg)
			if err != nil {
				panic(err)
			}
		}
		tags = append(tags, tag)
	}
	return
}()

var _matcher = language.NewMatcher(Supported)

// match picks the supported language closest to the locales, or
// Fallback.
func match(locales ...string) language.Tag {
	tags := make([]language.Tag, 0, len(locales))
	for _, name := range locales {
		tag, err := language.Parse(name)
		if err == nil {
			tags = append(tags, tag)
		}
	}

	_, index, _ := _matcher.Match(tags...)
	return Supported[index]
}
