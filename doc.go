// Package fieldwalk visits every field of a plain struct in declaration order with a typed
// pointer to that field, without a field list, tags or generated code.
//
// Field count and field types are discovered by probing positional construction of the struct,
// offsets are recomputed from recorded sizes and alignments and validated against the actual
// layout. Discovery runs once per (struct type, visitor type) and is reused afterwards.
//
//	type Pair struct {
//		Flag  uint8
//		Total int32
//	}
//	pair := &Pair{}
//	err := fieldwalk.Each(pair, func(ref interface{}) {
//		switch actual := ref.(type) {
//		case *uint8:
//			*actual = 1
//		case *int32:
//			*actual = 10
//		}
//	})
//
// The cmd/fieldwalk generator performs the same discovery at build time from source and
// registers generated accessors, see package codegen.
package fieldwalk
