package views

import (
	"embed"
	"html/template"
	"slices"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// IndexTemplate is the name of the form page.
const IndexTemplate = "index.tmpl"

// Load parses the embedded templates for gin's HTML renderer.
func Load() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"selected": slices.Contains[[]string, string],
		"seq":      seq,
	}).ParseFS(templatesFS, "templates/*.tmpl"))
}

// seq returns min..max inclusive for numeric selectors.
func seq(min, max int) []int {
	values := make([]int, 0, max-min+1)
	for i := min; i <= max; i++ {
		values = append(values, i)
	}
	return values
}
