package form

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is a raw dimension as submitted. It decodes from a JSON string or a
// JSON number; null leaves the field unset.
type Value struct {
	Raw string
	Set bool
}

func V(raw string) *Value {
	return &Value{Raw: raw, Set: true}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value{Raw: s, Set: true}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("dimension must be a string or a number: %w", err)
	}
	*v = Value{Raw: n.String(), Set: true}
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(v.Raw)), nil
}

// Request is one complete form submission.
type Request struct {
	Brand        string `json:"brand"`
	Width        *Value `json:"width,omitempty"`
	Depth        *Value `json:"depth,omitempty"`
	BendHeight   *Value `json:"bend_height,omitempty"`
	WireDiameter *Value `json:"wire_diameter,omitempty"`
}

func (r Request) value(f Field) *Value {
	switch f {
	case FieldWidth:
		return r.Width
	case FieldDepth:
		return r.Depth
	case FieldBendHeight:
		return r.BendHeight
	case FieldWireDiameter:
		return r.WireDiameter
	}
	return nil
}

// Apply replays a submission: brand first, then each present field in
// Fields order. A bend height given in the request therefore wins over the
// brand preset.
func (c *Controller) Apply(req Request) {
	if req.Brand != "" {
		c.SetBrand(req.Brand)
	}
	for _, f := range Fields {
		if v := req.value(f); v != nil && v.Set {
			c.SetField(f, v.Raw)
		}
	}
}

// Evaluate runs a submission through a fresh controller.
func Evaluate(req Request, opts ...Option) State {
	c := New(opts...)
	c.Apply(req)
	return c.Snapshot()
}
