package label

import (
	"math"

	"github.com/matzehuels/qrlabels/pkg/errors"
)

const (
	// DPI is the number of layout dots per inch.
	DPI = 300

	// QuietZone is the light border around a symbol, in modules.
	QuietZone = 4

	// BaseFontSize is the caption font size in dots at scale 1.
	BaseFontSize = 20

	// StrokeWidth is the caption frame width in dots.
	StrokeWidth = 1
)

// Rect is an axis-aligned rectangle in dots.
type Rect struct {
	X, Y, W, H float64
}

// Caption is the framed code text centered over the symbol.
type Caption struct {
	Text     string
	Box      Rect    // white, black-stroked frame
	CenterX  float64 // text anchor (horizontal center)
	CenterY  float64 // text anchor (vertical center)
	FontSize float64
}

// Drawing is the vector content of one label, relative to its top-left
// corner. Modules are dark rectangles, merged along rows.
type Drawing struct {
	Width, Height float64
	ModuleSize    float64
	Modules       []Rect
	Caption       Caption
}

// Label pairs a code with its symbol and drawing. How many copies of a
// label are placed is decided by the layout.
type Label struct {
	Code    string
	Symbol  *Symbol
	Drawing Drawing
}

// Size returns the edge length in dots of a label at the given scale.
func Size(scale float64) int {
	return int(scale * DPI)
}

// Render encodes code with enc and lays out its drawing at the given scale.
// The label is a square of Size(scale) dots.
func Render(code string, scale float64, enc Encoder) (Label, error) {
	if err := errors.ValidateScale(scale); err != nil {
		return Label{}, err
	}
	if Size(scale) < 1 {
		return Label{}, errors.New(errors.ErrCodeInvalidInput, "scale %v is too small to render a label", scale)
	}
	if enc == nil {
		enc = SkipEncoder{}
	}

	sym, err := enc.Encode(code)
	if err != nil {
		return Label{}, err
	}

	return Label{
		Code:    code,
		Symbol:  sym,
		Drawing: draw(code, sym, scale),
	}, nil
}

func draw(code string, sym *Symbol, scale float64) Drawing {
	size := float64(Size(scale))
	modules := sym.Size + 2*QuietZone
	m := size / float64(modules)
	content := m * float64(sym.Size)
	center := size / 2

	boxW := content/3 - 1
	boxH := 3*m - 1

	return Drawing{
		Width:      size,
		Height:     size,
		ModuleSize: m,
		Modules:    moduleRuns(sym, m),
		Caption: Caption{
			Text:     code,
			Box:      Rect{X: center - boxW/2, Y: center - boxH/2, W: boxW, H: boxH},
			CenterX:  center,
			CenterY:  center,
			FontSize: math.Floor(BaseFontSize * scale),
		},
	}
}

// moduleRuns merges horizontally adjacent dark modules into one rectangle
// per run, offset by the quiet zone.
func moduleRuns(sym *Symbol, m float64) []Rect {
	var rects []Rect
	for y := 0; y < sym.Size; y++ {
		for x := 0; x < sym.Size; {
			if !sym.Dark(x, y) {
				x++
				continue
			}
			start := x
			for x < sym.Size && sym.Dark(x, y) {
				x++
			}
			rects = append(rects, Rect{
				X: float64(start+QuietZone) * m,
				Y: float64(y+QuietZone) * m,
				W: float64(x-start) * m,
				H: m,
			})
		}
	}
	return rects
}

// Set is an ordered collection of labels indexed by code.
type Set struct {
	labels []Label
	index  map[string]int
}

// NewSet indexes labels by code. Later duplicates replace earlier ones.
func NewSet(labels []Label) *Set {
	s := &Set{labels: labels, index: make(map[string]int, len(labels))}
	for i, l := range labels {
		s.index[l.Code] = i
	}
	return s
}

// Get returns the label for code.
func (s *Set) Get(code string) (Label, bool) {
	i, ok := s.index[code]
	if !ok {
		return Label{}, false
	}
	return s.labels[i], true
}

// Labels returns the labels in insertion order.
func (s *Set) Labels() []Label { return s.labels }

// Len returns the number of labels.
func (s *Set) Len() int { return len(s.labels) }

// RenderAll renders every code once at the given scale.
func RenderAll(codes []string, scale float64, enc Encoder) (*Set, error) {
	labels := make([]Label, 0, len(codes))
	for _, code := range codes {
		l, err := Render(code, scale, enc)
		if err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}
	return NewSet(labels), nil
}
