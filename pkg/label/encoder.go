package label

import (
	"sort"
	"strings"

	"github.com/skip2/go-qrcode"
	"rsc.io/qr"

	"github.com/matzehuels/qrlabels/pkg/errors"
)

// Encoder names accepted by EncoderByName.
const (
	EncoderSkip = "skip2"
	EncoderRSC  = "rsc"
)

// DefaultEncoder is the encoder used when none is configured.
const DefaultEncoder = EncoderSkip

// Symbol is a square QR module matrix without quiet zone.
type Symbol struct {
	Size    int
	modules []bool
}

// NewSymbol builds a size×size symbol from a module predicate.
func NewSymbol(size int, dark func(x, y int) bool) *Symbol {
	s := &Symbol{Size: size, modules: make([]bool, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			s.modules[y*size+x] = dark(x, y)
		}
	}
	return s
}

// Dark reports whether the module at column x, row y is dark.
// Coordinates outside the symbol are light.
func (s *Symbol) Dark(x, y int) bool {
	if x < 0 || y < 0 || x >= s.Size || y >= s.Size {
		return false
	}
	return s.modules[y*s.Size+x]
}

// Encoder turns text into a QR symbol.
type Encoder interface {
	Name() string
	Encode(text string) (*Symbol, error)
}

// SkipEncoder encodes with github.com/skip2/go-qrcode.
type SkipEncoder struct{}

func (SkipEncoder) Name() string { return EncoderSkip }

func (SkipEncoder) Encode(text string) (*Symbol, error) {
	q, err := qrcode.New(text, qrcode.Highest)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncoding, err, "encode %q", text)
	}
	q.DisableBorder = true
	bitmap := q.Bitmap()
	if len(bitmap) == 0 {
		return nil, errors.New(errors.ErrCodeEncoding, "encode %q: empty symbol", text)
	}
	return NewSymbol(len(bitmap), func(x, y int) bool { return bitmap[y][x] }), nil
}

// RSCEncoder encodes with rsc.io/qr.
type RSCEncoder struct{}

func (RSCEncoder) Name() string { return EncoderRSC }

func (RSCEncoder) Encode(text string) (*Symbol, error) {
	code, err := qr.Encode(text, qr.H)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncoding, err, "encode %q", text)
	}
	if code.Size == 0 {
		return nil, errors.New(errors.ErrCodeEncoding, "encode %q: empty symbol", text)
	}
	return NewSymbol(code.Size, code.Black), nil
}

var encoders = map[string]Encoder{
	EncoderSkip: SkipEncoder{},
	EncoderRSC:  RSCEncoder{},
}

// EncoderNames returns the registered encoder names in sorted order.
func EncoderNames() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EncoderByName looks up an encoder. An empty name selects DefaultEncoder.
func EncoderByName(name string) (Encoder, error) {
	if name == "" {
		name = DefaultEncoder
	}
	enc, ok := encoders[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid encoder: %q (must be one of: %s)", name, strings.Join(EncoderNames(), ", "))
	}
	return enc, nil
}
