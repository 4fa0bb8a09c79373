package codegen

import (
	"fmt"
	"go/types"
	"path/filepath"

	"github.com/viant/fieldwalk"
	"github.com/viant/fieldwalk/layout"
	"golang.org/x/tools/go/packages"
)

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedImports |
	packages.NeedTypes | packages.NeedTypesSizes | packages.NeedSyntax | packages.NeedTypesInfo

type (
	//Package represents a loaded source package
	Package struct {
		Name  string
		Path  string
		Dir   string
		types *types.Package
		sizes types.Sizes
	}

	//Struct represents a struct declaration with resolved layout
	Struct struct {
		Name   string
		Size   uint64
		Align  uint64
		Fields []*Field
	}

	//Field represents a resolved struct field
	Field struct {
		Name   string
		Type   string
		Offset uint64
		Size   uint64
		Align  uint64
	}
)

// IsBlank returns true for blank (_) fields, they cannot be addressed by name
func (f *Field) IsBlank() bool {
	return f.Name == "_"
}

// Record returns layout record
func (s *Struct) Record() *layout.Record {
	ret := layout.NewRecord(s.Name, s.Size, s.Align)
	for _, field := range s.Fields {
		ret.AddField(field.Name, field.Type, field.Offset, field.Size, field.Align)
	}
	return ret
}

// Load loads packages matching patterns (default ".") relative to dir
func Load(dir string, patterns ...string) ([]*Package, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	cfg := &packages.Config{Mode: loadMode, Dir: dir}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages %v: %w", patterns, err)
	}
	var result []*Package
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("failed to load package %v: %v", pkg.PkgPath, pkg.Errors[0])
		}
		if pkg.Types == nil || pkg.TypesSizes == nil {
			return nil, fmt.Errorf("package %v has no type information", pkg.PkgPath)
		}
		aPackage := &Package{Name: pkg.Name, Path: pkg.PkgPath, types: pkg.Types, sizes: pkg.TypesSizes}
		if len(pkg.GoFiles) > 0 {
			aPackage.Dir = filepath.Dir(pkg.GoFiles[0])
		}
		result = append(result, aPackage)
	}
	return result, nil
}

// Analyze resolves layouts of the named struct types; with no names every non generic struct type is analyzed.
// A requested type that is not a struct, or a struct whose sequential layout differs from the compiler's one,
// fails the analysis.
func (p *Package) Analyze(names ...string) ([]*Struct, error) {
	scope := p.types.Scope()
	requested := len(names) > 0
	if !requested {
		names = scope.Names()
	}
	var result []*Struct
	for _, name := range names {
		obj := scope.Lookup(name)
		if obj == nil {
			return nil, fmt.Errorf("type %v not found in %v", name, p.Path)
		}
		typeName, ok := obj.(*types.TypeName)
		if !ok || typeName.IsAlias() {
			if requested {
				return nil, p.notReflectable(name, "not a defined type")
			}
			continue
		}
		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}
		if named.TypeParams().Len() > 0 {
			if requested {
				return nil, p.notReflectable(name, "generic type requires instantiation")
			}
			continue
		}
		structType, ok := named.Underlying().(*types.Struct)
		if !ok {
			if requested {
				return nil, p.notReflectable(name, "underlying type %v is not a struct", named.Underlying())
			}
			continue
		}
		aStruct, err := p.resolve(name, named, structType)
		if err != nil {
			return nil, err
		}
		result = append(result, aStruct)
	}
	return result, nil
}

func (p *Package) resolve(name string, named *types.Named, structType *types.Struct) (*Struct, error) {
	vars := make([]*types.Var, structType.NumFields())
	for i := range vars {
		vars[i] = structType.Field(i)
	}
	declared := p.sizes.Offsetsof(vars)
	cursor := layout.NewCursor[uint64]()
	ret := &Struct{Name: name}
	qualifier := types.RelativeTo(p.types)
	for i, field := range vars {
		size := uint64(p.sizes.Sizeof(field.Type()))
		align := uint64(p.sizes.Alignof(field.Type()))
		offset := cursor.Place(size, align)
		if offset != uint64(declared[i]) {
			return nil, p.unexpectedLayout(name, i, "computed offset %d, declared %d", offset, declared[i])
		}
		ret.Fields = append(ret.Fields, &Field{
			Name:   field.Name(),
			Type:   types.TypeString(field.Type(), qualifier),
			Offset: offset,
			Size:   size,
			Align:  align,
		})
	}
	ret.Size = cursor.Size(layout.GoRules)
	ret.Align = cursor.Align()
	if actual := uint64(p.sizes.Sizeof(named)); ret.Size != actual {
		return nil, p.unexpectedLayout(name, -1, "computed size %d, actual %d", ret.Size, actual)
	}
	return ret, nil
}

func (p *Package) notReflectable(name string, format string, args ...interface{}) error {
	return &fieldwalk.Error{Kind: fieldwalk.KindNotReflectable, Index: -1, Detail: p.Path + "." + name + ": " + fmt.Sprintf(format, args...)}
}

func (p *Package) unexpectedLayout(name string, index int, format string, args ...interface{}) error {
	return &fieldwalk.Error{Kind: fieldwalk.KindUnexpectedLayout, Index: index, Detail: p.Path + "." + name + ": " + fmt.Sprintf(format, args...)}
}
