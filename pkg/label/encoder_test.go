package label

import (
	"testing"

	"github.com/matzehuels/qrlabels/pkg/errors"
)

func TestEncoders(t *testing.T) {
	for _, name := range EncoderNames() {
		t.Run(name, func(t *testing.T) {
			enc, err := EncoderByName(name)
			if err != nil {
				t.Fatal(err)
			}
			if enc.Name() != name {
				t.Errorf("Name() = %q, want %q", enc.Name(), name)
			}

			sym, err := enc.Encode("A1B2C")
			if err != nil {
				t.Fatalf("Encode error: %v", err)
			}
			if sym.Size != 21 {
				t.Errorf("Size = %d, want 21 (version 1)", sym.Size)
			}

			// Top-left finder pattern: dark outer ring, light ring, dark core,
			// then the light separator.
			checks := []struct {
				x, y int
				dark bool
			}{
				{0, 0, true},
				{6, 0, true},
				{0, 6, true},
				{1, 1, false},
				{3, 3, true},
				{7, 7, false},
				{-1, 0, false},
				{21, 21, false},
			}
			for _, c := range checks {
				if got := sym.Dark(c.x, c.y); got != c.dark {
					t.Errorf("Dark(%d, %d) = %v, want %v", c.x, c.y, got, c.dark)
				}
			}
		})
	}
}

func TestEncoderByName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"default", "", EncoderSkip, false},
		{"skip2", "skip2", EncoderSkip, false},
		{"rsc", "rsc", EncoderRSC, false},
		{"unknown", "zxing", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := EncoderByName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EncoderByName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
				}
				return
			}
			if enc.Name() != tt.want {
				t.Errorf("EncoderByName(%q) = %q, want %q", tt.input, enc.Name(), tt.want)
			}
		})
	}
}

func TestNewSymbol(t *testing.T) {
	sym := NewSymbol(3, func(x, y int) bool { return x == y })
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got, want := sym.Dark(x, y), x == y; got != want {
				t.Errorf("Dark(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}
