// Package web bundles the server-rendered templates into the binary.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var templates embed.FS

// NewEngine builds the view engine over the embedded templates.
func NewEngine() (*html.Engine, error) {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		return nil, err
	}
	return html.NewFileSystem(http.FS(sub), ".html"), nil
}
