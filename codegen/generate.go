package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// ImportPath is the runtime package referenced by generated code
const ImportPath = "github.com/viant/fieldwalk"

// DefaultOutput is the default generated file name
const DefaultOutput = "fieldwalk_gen.go"

var registrationTemplate = template.Must(template.New("registration").Parse(`// Code generated by fieldwalk; DO NOT EDIT.

package {{.Package}}

import (
	"reflect"
	"unsafe"

	"{{.ImportPath}}"
)

func init() {
{{- range $aStruct := .Structs}}
	// {{$aStruct.Name}}: size {{$aStruct.Size}}, align {{$aStruct.Align}}
	fieldwalk.MustRegister(reflect.TypeOf({{$aStruct.Name}}{}), fieldwalk.Accessors{
	{{- range $field := $aStruct.Fields}}
		{{- if $field.IsBlank}}
		nil, // _ {{$field.Type}} at {{$field.Offset}}
		{{- else}}
		func(p unsafe.Pointer) interface{} { return &(*{{$aStruct.Name}})(p).{{$field.Name}} }, // {{$field.Type}} at {{$field.Offset}}
		{{- end}}
	{{- end}}
	})
{{- end}}
}
`))

// Generate renders a source file registering accessors of the supplied structs
func (p *Package) Generate(structs []*Struct) ([]byte, error) {
	if len(structs) == 0 {
		return nil, fmt.Errorf("no struct types to generate in %v", p.Path)
	}
	if p.Path == ImportPath {
		return nil, fmt.Errorf("cannot generate registrations inside %v", ImportPath)
	}
	buffer := &bytes.Buffer{}
	err := registrationTemplate.Execute(buffer, struct {
		Package    string
		ImportPath string
		Structs    []*Struct
	}{Package: p.Name, ImportPath: ImportPath, Structs: structs})
	if err != nil {
		return nil, fmt.Errorf("failed to render %v: %w", p.Path, err)
	}
	source, err := format.Source(buffer.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source for %v: %w", p.Path, err)
	}
	return source, nil
}
