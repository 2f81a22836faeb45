// Package web embeds the static front-end page.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var content embed.FS

// Handler serves the embedded files, index.html at "/".
func Handler() http.Handler {
	static, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServerFS(static)
}
