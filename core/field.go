package core

import (
	"fmt"
	"strconv"
)

// FieldType represents the type of a field value
type FieldType uint8

const (
	FieldString FieldType = iota
	FieldInt
	FieldBool
	FieldAny
)

// Field is a key-value pair a client attaches to every entry it prints,
// such as a realm or session identifier.
type Field struct {
	Key   string
	Type  FieldType
	Int64 int64
	Str   string
	Any   interface{}
}

// StringValue returns the string representation of a field's value
func (f Field) StringValue() string {
	switch f.Type {
	case FieldString:
		return f.Str
	case FieldInt:
		return strconv.FormatInt(f.Int64, 10)
	case FieldBool:
		return strconv.FormatBool(f.Int64 == 1)
	case FieldAny:
		return fmt.Sprintf("%v", f.Any)
	default:
		return ""
	}
}
