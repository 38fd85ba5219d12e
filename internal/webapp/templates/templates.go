package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var templateFS embed.FS

// Load parses every embedded page into one template set. Pages are
// addressed by filename (index.html, login.html, ...) and share the
// partials defined in layout.html.
func Load() (*template.Template, error) {
	funcs := template.FuncMap{
		"deref": func(p *int) int {
			if p == nil {
				return 0
			}
			return *p
		},
	}
	return template.New("").Funcs(funcs).ParseFS(templateFS, "*.html")
}
