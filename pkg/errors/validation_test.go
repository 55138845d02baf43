package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateCount(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"one", 1, false},
		{"many", 500, false},

		{"zero", 0, true},
		{"negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCount("count", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCount(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateCount(%d) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateScale(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"one", 1.0, false},
		{"default", 1.5, false},
		{"small", 0.25, false},

		{"zero", 0, true},
		{"negative", -1.5, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScale(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScale(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty uses default", "", false},
		{"simple", "garage", false},
		{"with spaces", "storage boxes", false},
		{"with dash", "attic-2", false},

		{"too long", strings.Repeat("a", 200), true},
		{"slash", "boxes/garage", true},
		{"backslash", "boxes\\garage", true},
		{"dot", ".", true},
		{"dot dot", "..", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputDir(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"current", ".", false},
		{"relative", "out/labels", false},
		{"absolute", "/tmp/labels", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"null byte", "out\x00dir", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputDir(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputDir(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
