package core

import (
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{DebugLevel, "debug"},
		{ErrorLevel, "error"},
		{InfoLevel, "info"},
		{LogLevel, "log"},
		{WarnLevel, "warn"},
		{TraceLevel, "trace"},
		{CountLevel, "count"},
		{CountResetLevel, "countReset"},
		{AssertLevel, "assert"},
		{Level(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Severity(t *testing.T) {
	tests := []struct {
		level Level
		want  Severity
	}{
		{DebugLevel, DebugSeverity},
		{LogLevel, InfoSeverity},
		{InfoLevel, InfoSeverity},
		{CountLevel, InfoSeverity},
		{CountResetLevel, InfoSeverity},
		{TraceLevel, InfoSeverity},
		{WarnLevel, WarnSeverity},
		{ErrorLevel, ErrorSeverity},
		{AssertLevel, ErrorSeverity},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := tt.level.Severity(); got != tt.want {
				t.Errorf("Level.Severity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseSeverity(t *testing.T) {
	if ParseSeverity("warning") != WarnSeverity {
		t.Error("Expected WarnSeverity for 'warning'")
	}
	if ParseSeverity("bogus") != InfoSeverity {
		t.Error("Expected InfoSeverity for unknown input")
	}
}

func TestEntryPool(t *testing.T) {
	e1 := GetEntry()
	if e1 == nil {
		t.Fatal("GetEntry() returned nil")
	}
	if len(e1.Args) != 0 || len(e1.Fields) != 0 {
		t.Errorf("Expected empty entry, got %d args and %d fields", len(e1.Args), len(e1.Fields))
	}

	e1.Message = "test"
	e1.Args = append(e1.Args, "test")
	e1.Stack = []string{"f"}
	e1.Fields = append(e1.Fields, Field{Key: "test", Str: "value"})
	PutEntry(e1)

	e2 := GetEntry()
	if e2.Message != "" {
		t.Errorf("Expected empty message after pool reset, got %q", e2.Message)
	}
	if len(e2.Args) != 0 || len(e2.Fields) != 0 || e2.Stack != nil {
		t.Error("Expected clean entry after pool reset")
	}
}

func TestEntry_Clone(t *testing.T) {
	e := GetEntry()
	e.Level = TraceLevel
	e.Message = "label"
	e.Args = append(e.Args, "a")
	e.Stack = []string{}

	c := e.Clone()
	PutEntry(e)

	if c.Message != "label" || len(c.Args) != 1 || c.Args[0] != "a" {
		t.Errorf("Clone lost data: %+v", c)
	}
	if c.Stack == nil {
		t.Error("Clone should keep an empty, non-nil stack")
	}
	if c.Severity() != InfoSeverity {
		t.Errorf("Severity() = %v, want INFO", c.Severity())
	}
}

func BenchmarkGetEntry(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e := GetEntry()
		PutEntry(e)
	}
}
