package core

// Shape identifies the geometry of a draw primitive.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeEllipse
	ShapeCircle
	ShapePolygon
	ShapeLine
	ShapeText
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeEllipse:
		return "ellipse"
	case ShapeCircle:
		return "circle"
	case ShapePolygon:
		return "polygon"
	case ShapeLine:
		return "line"
	case ShapeText:
		return "text"
	default:
		return "unknown"
	}
}

// Primitive is a single drawable item in logical coordinates.
//
// Field use by shape:
//
//	rect, ellipse: X, Y, W, H (bounding box)
//	circle:        X, Y (centre), Radius
//	polygon:       Points
//	line:          Points[0] -> Points[1], Stroke
//	text:          X, Y (top-left, or centre when Centered), Text, Size
type Primitive struct {
	Shape    Shape
	X, Y     float64
	W, H     float64
	Radius   float64
	Points   []Point
	Text     string
	Size     float64
	Centered bool
	Color    Color
	Filled   bool
	Stroke   float64 // Outline width when not filled
}

// DrawList is the per-frame render boundary between the simulation and a
// front end. Items are painted in order over Background.
type DrawList struct {
	Background Color
	Items      []Primitive
}

// NewDrawList creates an empty draw list.
func NewDrawList() *DrawList {
	return &DrawList{Items: make([]Primitive, 0, 64)}
}

// Clear drops all items and sets the background colour.
func (d *DrawList) Clear(bg Color) {
	d.Background = bg
	d.Items = d.Items[:0]
}

// Len returns the number of primitives.
func (d *DrawList) Len() int {
	return len(d.Items)
}

// FillRect adds a filled rectangle.
func (d *DrawList) FillRect(x, y, w, h float64, c Color) {
	d.Items = append(d.Items, Primitive{Shape: ShapeRect, X: x, Y: y, W: w, H: h, Color: c, Filled: true})
}

// StrokeRect adds a rectangle outline.
func (d *DrawList) StrokeRect(x, y, w, h, stroke float64, c Color) {
	d.Items = append(d.Items, Primitive{Shape: ShapeRect, X: x, Y: y, W: w, H: h, Color: c, Stroke: stroke})
}

// FillEllipse adds a filled ellipse inscribed in the given box.
func (d *DrawList) FillEllipse(x, y, w, h float64, c Color) {
	d.Items = append(d.Items, Primitive{Shape: ShapeEllipse, X: x, Y: y, W: w, H: h, Color: c, Filled: true})
}

// FillCircle adds a filled circle.
func (d *DrawList) FillCircle(cx, cy, r float64, c Color) {
	d.Items = append(d.Items, Primitive{Shape: ShapeCircle, X: cx, Y: cy, Radius: r, Color: c, Filled: true})
}

// StrokeCircle adds a circle outline.
func (d *DrawList) StrokeCircle(cx, cy, r, stroke float64, c Color) {
	d.Items = append(d.Items, Primitive{Shape: ShapeCircle, X: cx, Y: cy, Radius: r, Color: c, Stroke: stroke})
}

// FillPolygon adds a filled polygon. Fewer than three points is a no-op.
func (d *DrawList) FillPolygon(c Color, pts ...Point) {
	if len(pts) < 3 {
		return
	}
	cp := make([]Point, len(pts))
	copy(cp, pts)
	d.Items = append(d.Items, Primitive{Shape: ShapePolygon, Points: cp, Color: c, Filled: true})
}

// Line adds a straight line segment.
func (d *DrawList) Line(x1, y1, x2, y2, stroke float64, c Color) {
	d.Items = append(d.Items, Primitive{
		Shape:  ShapeLine,
		Points: []Point{{X: x1, Y: y1}, {X: x2, Y: y2}},
		Color:  c,
		Stroke: stroke,
	})
}

// Text adds a text label anchored at its top-left corner.
func (d *DrawList) Text(x, y, size float64, text string, c Color) {
	d.Items = append(d.Items, Primitive{Shape: ShapeText, X: x, Y: y, Size: size, Text: text, Color: c})
}

// TextCentered adds a text label centred on (x, y).
func (d *DrawList) TextCentered(x, y, size float64, text string, c Color) {
	d.Items = append(d.Items, Primitive{Shape: ShapeText, X: x, Y: y, Size: size, Text: text, Color: c, Centered: true})
}

// Count returns how many primitives of the given shape are in the list.
func (d *DrawList) Count(s Shape) int {
	n := 0
	for _, it := range d.Items {
		if it.Shape == s {
			n++
		}
	}
	return n
}

// Texts returns every text label in draw order.
func (d *DrawList) Texts() []string {
	var out []string
	for _, it := range d.Items {
		if it.Shape == ShapeText {
			out = append(out, it.Text)
		}
	}
	return out
}
