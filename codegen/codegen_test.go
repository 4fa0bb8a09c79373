package codegen

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/fieldwalk"
)

func loadTestPackage(t *testing.T, dir string) *Package {
	pkgs, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	return pkgs[0]
}

func TestPackage_Analyze(t *testing.T) {
	pkg := loadTestPackage(t, "testdata/shapes")
	assert.Equal(t, "shapes", pkg.Name)

	structs, err := pkg.Analyze()
	require.NoError(t, err)
	var names []string
	for _, aStruct := range structs {
		names = append(names, aStruct.Name)
	}
	assert.Equal(t, []string{"Empty", "Header", "Pair"}, names)

	pair := structs[2]
	require.Len(t, pair.Fields, 2)
	assert.EqualValues(t, 0, pair.Fields[0].Offset)
	assert.EqualValues(t, 4, pair.Fields[1].Offset)
	assert.EqualValues(t, 8, pair.Size)
	assert.EqualValues(t, 4, pair.Align)
	assert.Equal(t, "int32", pair.Fields[1].Type)

	header := structs[1]
	require.Len(t, header.Fields, 4)
	assert.True(t, header.Fields[3].IsBlank())
	assert.Equal(t, "[2]uint8", header.Fields[3].Type)
	assert.EqualValues(t, header.Fields[2].Offset+header.Fields[2].Size, header.Fields[3].Offset)

	empty := structs[0]
	assert.EqualValues(t, 0, empty.Size)
	assert.Len(t, empty.Fields, 0)
}

func TestPackage_Analyze_Requested(t *testing.T) {
	pkg := loadTestPackage(t, "testdata/shapes")
	var testCases = []struct {
		description string
		names       []string
		expectKind  error
		expectCount int
	}{
		{description: "selected struct", names: []string{"Pair"}, expectCount: 1},
		{description: "named float with constructor", names: []string{"Celsius"}, expectKind: fieldwalk.ErrNotReflectable},
		{description: "generic struct", names: []string{"Box"}, expectKind: fieldwalk.ErrNotReflectable},
		{description: "alias", names: []string{"PairAlias"}, expectKind: fieldwalk.ErrNotReflectable},
		{description: "function", names: []string{"NewCelsius"}, expectKind: fieldwalk.ErrNotReflectable},
	}
	for _, testCase := range testCases {
		structs, err := pkg.Analyze(testCase.names...)
		if testCase.expectKind != nil {
			assert.ErrorIs(t, err, testCase.expectKind, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Len(t, structs, testCase.expectCount, testCase.description)
	}
	_, err := pkg.Analyze("Missing")
	assert.Error(t, err)
}

func TestPackage_Analyze_UnexpectedLayout(t *testing.T) {
	pkg := loadTestPackage(t, "testdata/invalid")
	_, err := pkg.Analyze()
	assert.ErrorIs(t, err, fieldwalk.ErrUnexpectedLayout)
	assert.Contains(t, err.Error(), "TrailingZero")

	structs, err := pkg.Analyze("Valid")
	require.NoError(t, err)
	assert.Len(t, structs, 1)
}

func TestPackage_Generate(t *testing.T) {
	pkg := loadTestPackage(t, "testdata/shapes")
	structs, err := pkg.Analyze()
	require.NoError(t, err)

	source, err := pkg.Generate(structs)
	require.NoError(t, err)
	code := string(source)
	assert.Contains(t, code, "// Code generated by fieldwalk; DO NOT EDIT.")
	assert.Contains(t, code, "package shapes")
	assert.Contains(t, code, `"github.com/viant/fieldwalk"`)
	assert.Contains(t, code, "fieldwalk.MustRegister(reflect.TypeOf(Pair{}), fieldwalk.Accessors{")
	assert.Contains(t, code, "return &(*Header)(p).label")
	assert.Contains(t, code, "nil, // _ [2]uint8")
	assert.Contains(t, code, "fieldwalk.MustRegister(reflect.TypeOf(Empty{}), fieldwalk.Accessors{")

	_, err = parser.ParseFile(token.NewFileSet(), DefaultOutput, source, parser.AllErrors)
	assert.NoError(t, err)

	_, err = pkg.Generate(nil)
	assert.Error(t, err)
}

func TestStruct_Record(t *testing.T) {
	pkg := loadTestPackage(t, "testdata/shapes")
	structs, err := pkg.Analyze("Pair")
	require.NoError(t, err)
	data, err := structs[0].Record().JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Pair","size":8,"align":4,"fields":[
		{"name":"Flag","type":"uint8","offset":0,"size":1,"align":1},
		{"name":"Total","type":"int32","offset":4,"size":4,"align":4,"padding":3}
	]}`, string(data))
}
