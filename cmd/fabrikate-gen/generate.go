package main

import (
	"bytes"
	"go/format"
	"text/template"

	"github.com/pkg/errors"
)

const fabricatorTemplate = `// Code generated by fabrikate-gen; DO NOT EDIT.

package {{.PackageName}}

import (
{{- range .Imports}}
	{{if .Name}}{{.Name}} {{end}}"{{.Path}}"
{{- end}}
)
{{range .Types}}
// Fabricate{{.Name}} returns a {{.Name}} with every field drawn from f.
func Fabricate{{.Name}}(f *fabrikate.Fabrikate) ({{.Name}}, error) {
	var out {{.Name}}
	{{- if .Fields}}
	var err error
	{{- end}}
	{{- range .Fields}}
	if out.{{.Name}}, err = fabrikate.Fabricate[{{.Type}}](f); err != nil {
		return out, err
	}
	{{- end}}
	return out, nil
}
{{end}}`

var fabricatorTmpl = template.Must(template.New("fabricators").Parse(fabricatorTemplate))

// render returns the gofmt-ed source of the generated file.
func render(info *genInfo) ([]byte, error) {
	var buf bytes.Buffer
	if err := fabricatorTmpl.Execute(&buf, info); err != nil {
		return nil, errors.Wrap(err, "executing template")
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "formatting generated code for package %s", info.PackageName)
	}
	return src, nil
}
