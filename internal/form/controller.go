// Package form keeps the state of one calculator session: the entered
// dimensions, the selected brand and the results derived from them.
package form

import (
	"WireRing/internal/calc/brand"
	"WireRing/internal/calc/wire"

	"go.uber.org/zap"
)

type Field string

const (
	FieldWidth        Field = "width"
	FieldDepth        Field = "depth"
	FieldBendHeight   Field = "bendHeight"
	FieldWireDiameter Field = "wireDiameter"
)

// Fields lists the dimension fields in submission order.
var Fields = []Field{FieldWidth, FieldDepth, FieldBendHeight, FieldWireDiameter}

var fieldAliases = map[string]Field{
	"width":         FieldWidth,
	"depth":         FieldDepth,
	"bendHeight":    FieldBendHeight,
	"bend_height":   FieldBendHeight,
	"wireDiameter":  FieldWireDiameter,
	"wire_diameter": FieldWireDiameter,
}

// ParseField maps a field name from a form or request onto a Field.
func ParseField(name string) (Field, bool) {
	f, ok := fieldAliases[name]
	return f, ok
}

type InputSet struct {
	Brand        string  `json:"brand"`
	Width        float64 `json:"width"`
	Depth        float64 `json:"depth"`
	BendHeight   float64 `json:"bend_height"`
	WireDiameter float64 `json:"wire_diameter"`
}

func (in InputSet) wireInput() wire.Input {
	return wire.Input{
		WidthMM:        in.Width,
		DepthMM:        in.Depth,
		BendHeightMM:   in.BendHeight,
		WireDiameterMM: in.WireDiameter,
	}
}

// State is everything a view needs to render the form.
type State struct {
	Inputs     InputSet          `json:"inputs"`
	Results    wire.Result       `json:"results"`
	BrandName  string            `json:"brand_name,omitempty"`
	HasInputs  bool              `json:"has_inputs"`
	Partitions []brand.SizeEntry `json:"partitions"`
}

type Option func(*Controller)

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Controller is owned by a single session and is not safe for concurrent use.
type Controller struct {
	inputs  InputSet
	results wire.Result
	log     *zap.Logger
}

func New(opts ...Option) *Controller {
	c := &Controller{log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetBrand selects a brand. A known brand replaces the bend height with its
// preset; an unknown one leaves the bend height as it was.
func (c *Controller) SetBrand(id string) {
	next := c.inputs
	next.Brand = id
	if h, ok := brand.DefaultBendHeight(id); ok {
		next.BendHeight = h
	} else {
		c.log.Debug("no preset for brand", zap.String("brand", id))
	}
	c.inputs = next
	c.recompute()
}

// SetField stores a parsed dimension. Unparsable values store zero and
// unknown fields are ignored.
func (c *Controller) SetField(name Field, raw string) {
	v := ParseNumber(raw)
	next := c.inputs
	switch name {
	case FieldWidth:
		next.Width = v
	case FieldDepth:
		next.Depth = v
	case FieldBendHeight:
		next.BendHeight = v
	case FieldWireDiameter:
		next.WireDiameter = v
	default:
		c.log.Debug("ignoring unknown field", zap.String("field", string(name)))
		return
	}
	c.inputs = next
	c.recompute()
}

func (c *Controller) recompute() {
	c.results = wire.Calculate(c.inputs.wireInput())
	c.log.Debug("recomputed",
		zap.String("brand", c.inputs.Brand),
		zap.Float64("wire_size", c.results.WireSizeMM),
		zap.Float64("sheet_size", c.results.SheetSizeMM),
	)
}

func (c *Controller) Inputs() InputSet {
	return c.inputs
}

func (c *Controller) Results() wire.Result {
	return c.results
}

// Partitions returns the partition table of the selected brand, empty when
// no brand or an unknown brand is selected.
func (c *Controller) Partitions() []brand.SizeEntry {
	return brand.Partitions(c.inputs.Brand)
}

func (c *Controller) Snapshot() State {
	st := State{
		Inputs:     c.inputs,
		Results:    c.results,
		Partitions: c.Partitions(),
	}
	if b, ok := brand.Lookup(c.inputs.Brand); ok {
		st.BrandName = b.Name
	}
	in := c.inputs
	st.HasInputs = in.Width > 0 || in.Depth > 0 || in.BendHeight > 0 || in.WireDiameter > 0
	return st
}
