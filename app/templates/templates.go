// Package templates embeds the HTML views rendered by the fiber html engine.
package templates

import (
	"embed"
	"encoding/json"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html layouts/*.html auth/*.html dashboard/*.html
var FS embed.FS

// NewEngine builds the view engine. reload re-parses templates on every
// render and is meant for development only.
func NewEngine(reload bool) *html.Engine {
	engine := html.NewFileSystem(http.FS(FS), ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})
	engine.Reload(reload)
	engine.Debug(false)
	return engine
}
