package layout

import (
	"github.com/francoispqt/gojay"
	"github.com/viant/tagly/format/text"
)

type (
	//Record represents a resolved aggregate layout
	Record struct {
		Name       string
		Size       uint64
		Align      uint64
		Fields     RecordFields
		caseFormat text.CaseFormat
	}

	//RecordField represents a resolved field position
	RecordField struct {
		Name    string
		Type    string
		Offset  uint64
		Size    uint64
		Align   uint64
		Padding uint64 //bytes inserted before the field
		owner   *Record
	}

	//RecordFields represents record fields
	RecordFields []*RecordField

	//Records represents layout records
	Records []*Record
)

// NewRecord creates a record
func NewRecord(name string, size, align uint64) *Record {
	return &Record{Name: name, Size: size, Align: align}
}

// AddField appends a field, padding is derived from the previous field end
func (r *Record) AddField(name, typeName string, offset, size, align uint64) *RecordField {
	end := r.end()
	field := &RecordField{Name: name, Type: typeName, Offset: offset, Size: size, Align: align, owner: r}
	if offset > end {
		field.Padding = offset - end
	}
	r.Fields = append(r.Fields, field)
	return field
}

// Trailing returns trailing padding size
func (r *Record) Trailing() uint64 {
	end := r.end()
	if r.Size > end {
		return r.Size - end
	}
	return 0
}

func (r *Record) end() uint64 {
	if len(r.Fields) == 0 {
		return 0
	}
	last := r.Fields[len(r.Fields)-1]
	return last.Offset + last.Size
}

// WithCaseFormat sets output field name case format
func (r *Record) WithCaseFormat(caseFormat text.CaseFormat) *Record {
	r.caseFormat = caseFormat
	return r
}

// MarshalJSONObject implements gojay.MarshalerJSONObject
func (r *Record) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", r.Name)
	enc.Uint64Key("size", r.Size)
	enc.Uint64Key("align", r.Align)
	enc.Uint64KeyOmitEmpty("trailing", r.Trailing())
	enc.ArrayKey("fields", r.Fields)
}

// IsNil implements gojay.MarshalerJSONObject
func (r *Record) IsNil() bool {
	return r == nil
}

// JSON returns JSON encoded record
func (r *Record) JSON() ([]byte, error) {
	return gojay.MarshalJSONObject(r)
}

// OutputName returns field name formatted with owner case format
func (f *RecordField) OutputName() string {
	if f.owner == nil || f.owner.caseFormat == "" {
		return f.Name
	}
	src := text.DetectCaseFormat(f.Name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(f.Name, f.owner.caseFormat)
}

// MarshalJSONObject implements gojay.MarshalerJSONObject
func (f *RecordField) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", f.OutputName())
	enc.StringKey("type", f.Type)
	enc.Uint64Key("offset", f.Offset)
	enc.Uint64Key("size", f.Size)
	enc.Uint64Key("align", f.Align)
	enc.Uint64KeyOmitEmpty("padding", f.Padding)
}

// IsNil implements gojay.MarshalerJSONObject
func (f *RecordField) IsNil() bool {
	return f == nil
}

// MarshalJSONArray implements gojay.MarshalerJSONArray
func (f RecordFields) MarshalJSONArray(enc *gojay.Encoder) {
	for _, field := range f {
		enc.Object(field)
	}
}

// IsNil implements gojay.MarshalerJSONArray
func (f RecordFields) IsNil() bool {
	return f == nil
}

// WithCaseFormat sets case format on all records
func (r Records) WithCaseFormat(caseFormat text.CaseFormat) Records {
	for _, record := range r {
		record.WithCaseFormat(caseFormat)
	}
	return r
}

// MarshalJSONArray implements gojay.MarshalerJSONArray
func (r Records) MarshalJSONArray(enc *gojay.Encoder) {
	for _, record := range r {
		enc.Object(record)
	}
}

// IsNil implements gojay.MarshalerJSONArray
func (r Records) IsNil() bool {
	return r == nil
}

// JSON returns JSON encoded records
func (r Records) JSON() ([]byte, error) {
	return gojay.MarshalJSONArray(r)
}
