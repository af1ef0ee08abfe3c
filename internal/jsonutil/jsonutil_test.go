package jsonutil

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestUnmarshalWithContext(t *testing.T) {
	type TestStruct struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`{"name":"test"}`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v TestStruct
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), "test context") {
				t.Errorf("error %q lacks context", err)
			}
			if !tt.wantErr && v.Name != "test" {
				t.Errorf("UnmarshalWithContext() v.Name = %q, want %q", v.Name, "test")
			}
		})
	}
}

func TestUnmarshalLine_Empty(t *testing.T) {
	var v map[string]any
	if err := UnmarshalLine("", &v); err == nil {
		t.Error("expected error for empty line")
	}
}

func TestWriteLine_RoundTrip(t *testing.T) {
	type row struct {
		Step  int       `json:"step"`
		Sizes []float64 `json:"sizes"`
	}
	var buf bytes.Buffer
	if err := WriteLine(&buf, row{Step: 1, Sizes: []float64{25, 75}}); err != nil {
		t.Fatalf("WriteLine: %v", err)
	}
	if err := WriteLine(&buf, row{Step: 2, Sizes: []float64{0, 100}}); err != nil {
		t.Fatalf("WriteLine: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	var got row
	if err := UnmarshalLine(lines[1], &got); err != nil {
		t.Fatalf("UnmarshalLine: %v", err)
	}
	if got.Step != 2 || len(got.Sizes) != 2 || got.Sizes[1] != 100 {
		t.Errorf("got %+v", got)
	}
}

func TestWriteLine_Unencodable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLine(&buf, math.Inf(1)); err == nil {
		t.Error("expected error for +Inf")
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written on error, got %q", buf.String())
	}
}
