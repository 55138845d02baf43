package fonts

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestMonoTTF(t *testing.T) {
	data := MonoTTF()
	if len(data) == 0 {
		t.Fatal("MonoTTF() returned no data")
	}
	// TrueType fonts start with the 0x00010000 sfnt version.
	if !bytes.HasPrefix(data, []byte{0x00, 0x01, 0x00, 0x00}) {
		t.Errorf("MonoTTF() header = % x, want TrueType sfnt version", data[:4])
	}
}

func TestMonoTTFBase64(t *testing.T) {
	encoded := MonoTTFBase64()
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(decoded, MonoTTF()) {
		t.Error("MonoTTFBase64() does not round-trip to MonoTTF()")
	}
	if MonoTTFBase64() != encoded {
		t.Error("MonoTTFBase64() should be stable across calls")
	}
}

func TestMonoFace(t *testing.T) {
	face, err := MonoFace(30)
	if err != nil {
		t.Fatalf("MonoFace() error = %v", err)
	}
	defer face.Close()

	// Monospace: every glyph has the same advance.
	a, okA := face.GlyphAdvance('A')
	w, okW := face.GlyphAdvance('W')
	if !okA || !okW {
		t.Fatal("face is missing basic glyphs")
	}
	if a != w {
		t.Errorf("advance of 'A' = %v, 'W' = %v; want equal", a, w)
	}
	if m := face.Metrics(); m.Ascent <= 0 {
		t.Errorf("Metrics().Ascent = %v, want > 0", m.Ascent)
	}
}
