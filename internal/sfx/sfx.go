// Package sfx maps sound-effect names to audio assets.
package sfx

import (
	"path/filepath"
	"strings"
)

// table is the fixed effect-name -> asset-file mapping. Lookups are
// case-insensitive; unknown names are rejected without listing the table.
var table = map[string]string{
	"ouch":      "ouch",
	"flashbang": "flashbang",
	"who":       "who-goes-there",
	"real":      "its-real",
	"like":      "i-like-ya",
	"eww":       "eww",
	"moment":    "awkward-moment",
}

// Lookup resolves an effect name to its asset path under dir.
func Lookup(dir, name string) (string, bool) {
	file, ok := table[strings.ToLower(name)]
	if !ok {
		return "", false
	}
	return filepath.Join(dir, file+".mp3"), true
}
