package core

import (
	"errors"
	"math"
	"testing"
)

func TestPrimitive_ToString(t *testing.T) {
	tests := []struct {
		name  string
		value Primitive
		want  string
	}{
		{"undefined", Undefined(), "undefined"},
		{"null", Null(), "null"},
		{"true", Bool(true), "true"},
		{"integer", Int(42), "42"},
		{"fraction", Number(3.5), "3.5"},
		{"negative zero", Number(math.Copysign(0, -1)), "0"},
		{"NaN", Number(math.NaN()), "NaN"},
		{"infinity", Number(math.Inf(-1)), "-Infinity"},
		{"large", Number(1e21), "1e+21"},
		{"small", Number(1.5e-7), "1.5e-7"},
		{"string", String("hi"), "hi"},
		{"plain object", Object(nil), "[object Object]"},
		{"custom object", Object(func() (string, error) { return "custom", nil }), "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.value.ToString()
			if err != nil {
				t.Fatalf("ToString() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ToString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrimitive_ToStringFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := Object(func() (string, error) { return "", boom }).ToString()
	if !errors.Is(err, boom) {
		t.Errorf("ToString() error = %v, want %v", err, boom)
	}
}

func TestPrimitive_ToBoolean(t *testing.T) {
	falsy := []Primitive{Undefined(), Null(), Bool(false), Int(0), Number(math.NaN()), String("")}
	for _, v := range falsy {
		if v.ToBoolean() {
			t.Errorf("%+v should be falsy", v)
		}
	}
	truthy := []Primitive{Bool(true), Int(-1), String("0"), Object(nil)}
	for _, v := range truthy {
		if !v.ToBoolean() {
			t.Errorf("%+v should be truthy", v)
		}
	}
}

func TestValues(t *testing.T) {
	vs := Values("a", 1, true, nil, errors.New("e"), struct{}{})
	want := []string{"a", "1", "true", "null", "e", "[object Object]"}
	got, err := ToStrings(vs)
	if err != nil {
		t.Fatalf("ToStrings() error = %v", err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d = %q, want %q", i, got[i], want[i])
		}
	}
	if !vs[0].IsString() || vs[1].IsString() {
		t.Error("IsString mismatch")
	}
}

func TestJoin(t *testing.T) {
	got, err := Join(Values("a", 1, "b"))
	if err != nil || got != "a 1 b" {
		t.Errorf("Join() = %q, %v", got, err)
	}

	boom := errors.New("boom")
	_, err = Join([]Value{String("a"), Object(func() (string, error) { return "", boom })})
	if !errors.Is(err, boom) {
		t.Errorf("Join() error = %v, want %v", err, boom)
	}
}
