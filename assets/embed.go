// Package assets embeds the default dictionary so the server can start
// without any word list configured.
package assets

import _ "embed"

//go:embed words.txt
var words []byte

// Words returns the embedded newline-delimited word list.
func Words() []byte {
	return words
}
