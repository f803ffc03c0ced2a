package render

import (
	"bytes"
	"fmt"
	"go/format"
	"math"
	"strconv"
	"text/template"

	"github.com/custodia-labs/mag/internal/core/domain"
	"github.com/custodia-labs/mag/internal/core/ports/driven"
)

// Ensure GoSource implements the interface.
var _ driven.SourceRenderer = (*GoSource)(nil)

const defaultSource = "units.toml"

var sourceTemplate = template.Must(template.New("units").Funcs(template.FuncMap{
	"quote": strconv.Quote,
	"float": formatFloat,
}).Parse(`// Code generated by unitgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import {{quote .Import}}
{{range .Units}}
// {{.Name}} is a unit of {{$.Measure.Lower}}{{if .Doc}}: {{.Doc}}{{end}}.
type {{.Name}} struct{ mag.{{$.Measure}} }

// Label returns {{quote .Label}}.
func ({{.Name}}) Label() string { return {{quote .Label}} }

// Factor returns the number of {{$.Base}}s in one {{.Label}}.
func ({{.Name}}) Factor() float64 { return {{float .Factor}} }
{{if .Zero}}
// Zero returns absolute zero in {{.Label}}.
func ({{.Name}}) Zero() float64 { return {{float .Zero}} }
{{end}}{{if .Inverse}}
// Inverse returns {{quote .Inverse}}.
func ({{.Name}}) Inverse() string { return {{quote .Inverse}} }
{{end}}{{end}}
var (
{{range .Units}}	_ mag.{{$.Measure}}Unit = {{.Name}}{}
{{end}})

// Units lists every {{.Measure.Lower}} unit declared in {{.Source}}.
var Units = []mag.Descriptor{
{{range .Units}}	mag.Describe({{quote .Name}}, {{.Name}}{}),
{{end}}}
`))

// GoSource renders unit tables with text/template and gofmt.
type GoSource struct{}

// NewGoSource creates a new Go source renderer.
func NewGoSource() *GoSource {
	return &GoSource{}
}

type sourceData struct {
	*domain.UnitTable
	Import string
}

// Render implements driven.SourceRenderer.
func (r *GoSource) Render(table *domain.UnitTable) ([]byte, error) {
	data := sourceData{UnitTable: table, Import: domain.LibraryImportPath}
	if data.Source == "" {
		shallow := *table
		shallow.Source = defaultSource
		data.UnitTable = &shallow
	}

	var buf bytes.Buffer
	if err := sourceTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// formatFloat writes v as a Go float literal. Plain decimals are used
// wherever they stay readable; very large or very small magnitudes fall
// back to exponent form.
func formatFloat(v float64) string {
	a := math.Abs(v)
	if v == 0 || (a >= 1e-12 && a < 1e21) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
