// Package web embeds the HTML templates and static assets served by the site.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/* static/*
var ContentFS embed.FS

// Templates parses every template under templates/ with funcs available.
func Templates(funcs template.FuncMap) (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(ContentFS, "templates/*.html")
}

// Static returns the static/ subtree.
func Static() fs.FS {
	sub, err := fs.Sub(ContentFS, "static")
	if err != nil {
		// static/ is embedded at build time.
		panic(err)
	}
	return sub
}
