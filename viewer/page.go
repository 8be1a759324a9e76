package viewer

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kirides/dxcaps/fields"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>{{.Node.Label}}</title>
	<style>
		body { font-family: sans-serif; margin: 1em 2em; }
		nav a { margin-right: .3em; }
		table { border-collapse: collapse; }
		td, th { border: 1px solid #ccc; padding: .2em .6em; text-align: left; }
		tr.optional-absent td, tr.not-applicable td { color: #888; }
		tr.optional-present td { color: #1a7f37; }
	</style>
</head>
<body>
	<nav>{{range $i, $c := .Node.Trail}}{{if $i}} / {{end}}<a href="/node/{{$c.Path}}?view={{$.View}}">{{$c.Label}}</a>{{end}}</nav>
	<p>
		<a href="?view=interesting">interesting</a> |
		<a href="?view=all">all</a>
	</p>
	{{with .Node.Table}}
	<table>
		<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
		{{range .Rows}}<tr class="{{.Class}}"><td>{{.Name}}</td>{{range .Values}}<td>{{.}}</td>{{end}}</tr>
		{{end}}
	</table>
	{{if .SeeAlso}}<p>See also: {{.SeeAlso}}</p>{{end}}
	{{end}}
	<ul>
	{{range .Node.Children}}<li><a href="/node/{{.Path}}?view={{$.View}}">{{.Label}}</a></li>
	{{end}}
	</ul>
</body>
</html>
`))

type pageData struct {
	Node nodeJSON
	View fields.View
}

func (s *Server) page(w http.ResponseWriter, r *http.Request) {
	indices, err := parsePath(chi.URLParam(r, "*"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view := s.viewOf(r)
	n, found, err := s.lookup(r.Context(), indices, view)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	if !found {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, pageData{Node: n, View: view}); err != nil {
		s.log.Warn().Err(err).Msg("render page")
	}
}
