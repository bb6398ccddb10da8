// Package web holds the browser page served at "/".
package web

import _ "embed"

//go:embed static/index.html
var indexHTML []byte

// IndexHTML returns the converter page. The slice must not be modified.
func IndexHTML() []byte {
	return indexHTML
}
