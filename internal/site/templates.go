package site

import (
	"embed"
	"html/template"

	"bellavista/internal/menu"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the embedded page templates for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"tagColor": menu.TagColor,
	}).ParseFS(templateFS, "templates/*.tmpl"))
}
