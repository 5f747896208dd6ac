package core

import "testing"

func TestField_StringValue(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"String field", Field{Type: FieldString, Str: "hello"}, "hello"},
		{"Int field", Field{Type: FieldInt, Int64: 42}, "42"},
		{"Bool field (true)", Field{Type: FieldBool, Int64: 1}, "true"},
		{"Bool field (false)", Field{Type: FieldBool, Int64: 0}, "false"},
		{"Any field", Field{Type: FieldAny, Any: []int{1, 2}}, "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.StringValue(); got != tt.want {
				t.Errorf("Field.StringValue() = %v, want %v", got, tt.want)
			}
		})
	}
}
