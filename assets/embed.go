// assets/embed.go
//
// Embedded default dictionary. Used when neither WORDS_DB nor WORDS_FILE is
// configured so the game always has something to sample from.

package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.txt
var FS embed.FS

// DictionaryName is the embedded dictionary's file name inside FS.
const DictionaryName = "words.txt"

// OpenDictionary opens the embedded dictionary for reading.
func OpenDictionary() (fs.File, error) {
	return FS.Open(DictionaryName)
}
