package orders

import (
	"encoding/json"
	"testing"
)

func TestFlexString_Unmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"String value", `"110001"`, "110001"},
		{"Integer value", `110001`, "110001"},
		{"Float value", `499.0`, "499.0"},
		{"Large order id", `5678901234`, "5678901234"},
		{"Null", `null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexString
			if err := json.Unmarshal([]byte(tt.input), &f); err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", tt.input, err)
			}
			if f.String() != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.input, f, tt.want)
			}
		})
	}

	var f FlexString
	if err := json.Unmarshal([]byte(`{"nested":true}`), &f); err == nil {
		t.Error("Expected error for object value, got nil")
	}
}

func TestFlexString_Float64(t *testing.T) {
	if got := FlexString("499.0").Float64(); got != 499.0 {
		t.Errorf("Float64() = %v, want 499.0", got)
	}
	if got := FlexString("not a number").Float64(); got != 0 {
		t.Errorf("Float64() = %v, want 0 for unparseable input", got)
	}
}
