// Package assets carries the wordlist compiled into the binary.
package assets

import _ "embed"

// English is the builtin dictionary, one lowercase word per line.
//
//go:embed english.txt
var English []byte
