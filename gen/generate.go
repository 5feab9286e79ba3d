package gen

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"unicode"
)

// sourceTemplate renders one struct type per record plus a package-level
// bundle of one Lens per field, addressed by the exported field name so
// the lenses line up with struct record access in the container adapter.
var sourceTemplate = template.Must(template.New("source").Funcs(template.FuncMap{
	"export": exportName,
}).Parse(`// Code generated by focusgen. DO NOT EDIT.

package {{.Package}}

import "github.com/smpoulsen/focus"
{{range .Records}}
// {{.Name | export}} is a generated record type.
type {{.Name | export}} struct {
{{- range .Fields}}
	{{. | export}} any
{{- end}}
}

// {{.Name | export}}Lenses holds one lens per {{.Name | export}} field.
var {{.Name | export}}Lenses = struct {
{{- range .Fields}}
	{{. | export}} focus.Lens
{{- end}}
}{
{{- range .Fields}}
	{{. | export}}: focus.MakeLens("{{. | export}}"),
{{- end}}
}
{{end}}`))

// Generate renders Go source for every record in the schema.
func Generate(w io.Writer, schema *Schema) error {
	if err := schema.validate(); err != nil {
		return err
	}
	if err := sourceTemplate.Execute(w, schema); err != nil {
		return fmt.Errorf("rendering source: %w", err)
	}
	return nil
}

// exportName converts a schema name to an exported Go identifier:
// snake_case segments are capitalized and joined.
func exportName(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}
