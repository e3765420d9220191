package server

import (
	_ "embed"
	"html/template"
)

//go:embed index.html.tmpl
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))
