package form

import (
	"encoding/json"
	"math"
	"testing"

	"WireRing/internal/calc/brand"
	"WireRing/internal/calc/wire"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewControllerIsZero(t *testing.T) {
	c := New()
	assert.Equal(t, InputSet{}, c.Inputs())
	assert.Equal(t, wire.Result{}, c.Results())
	assert.Empty(t, c.Partitions())

	st := c.Snapshot()
	assert.False(t, st.HasInputs)
	assert.Empty(t, st.BrandName)
	assert.NotNil(t, st.Partitions)
}

func TestReferenceExample(t *testing.T) {
	c := New(WithLogger(zap.NewNop()))
	c.SetField(FieldWidth, "200")
	c.SetField(FieldDepth, "150")
	c.SetField(FieldBendHeight, "30")
	c.SetField(FieldWireDiameter, "1")

	assert.Equal(t, wire.Result{WireSizeMM: 655, SheetSizeMM: 257}, c.Results())
	assert.Equal(t, InputSet{Width: 200, Depth: 150, BendHeight: 30, WireDiameter: 1}, c.Inputs())
}

func TestRecomputeOnEveryEdit(t *testing.T) {
	c := New()
	c.SetField(FieldWidth, "200")
	c.SetField(FieldDepth, "150")
	c.SetField(FieldWireDiameter, "1")
	assert.Equal(t, wire.Result{}, c.Results(), "bend height still missing")

	c.SetBrand("lifetime")
	assert.Equal(t, wire.Result{WireSizeMM: 655, SheetSizeMM: 257}, c.Results())

	c.SetField(FieldWidth, "0")
	assert.Equal(t, wire.Result{}, c.Results())
}

func TestSetBrandAppliesPreset(t *testing.T) {
	tests := []struct {
		id   string
		want float64
	}{
		{"lifetime", 30},
		{"Lifetime", 30},
		{"godrej", 25},
		{"higloss", 50},
		{"pluss", 30},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			c := New()
			c.SetField(FieldBendHeight, "99")
			c.SetBrand(tt.id)
			assert.Equal(t, tt.want, c.Inputs().BendHeight)
			assert.Equal(t, tt.id, c.Inputs().Brand, "raw identifier is kept")
		})
	}
}

func TestSetBrandUnknownKeepsBendHeight(t *testing.T) {
	c := New()
	c.SetField(FieldBendHeight, "42")
	c.SetBrand("acme")

	assert.Equal(t, 42.0, c.Inputs().BendHeight)
	assert.Equal(t, "acme", c.Inputs().Brand)
	assert.Empty(t, c.Partitions())
	assert.Empty(t, c.Snapshot().BrandName)
}

func TestBendHeightSetAfterBrandWins(t *testing.T) {
	c := New()
	c.SetBrand("lifetime")
	c.SetField(FieldBendHeight, "12")
	c.SetField(FieldWidth, "100")
	assert.Equal(t, 12.0, c.Inputs().BendHeight)

	c.SetBrand("higloss")
	assert.Equal(t, 50.0, c.Inputs().BendHeight)
}

func TestSetFieldUnparsable(t *testing.T) {
	c := New()
	c.SetField(FieldWidth, "200")
	c.SetField(FieldWidth, "abc")
	assert.Equal(t, 0.0, c.Inputs().Width)

	c.SetField(FieldDepth, "")
	assert.Equal(t, 0.0, c.Inputs().Depth)
}

func TestSetFieldUnknownIgnored(t *testing.T) {
	c := New()
	c.SetField(FieldWidth, "10")
	before := c.Snapshot()
	c.SetField(Field("height"), "5")
	assert.Equal(t, before, c.Snapshot())
}

func TestPartitionsFollowBrand(t *testing.T) {
	c := New()
	c.SetBrand("Pluss")
	if diff := cmp.Diff(brand.Partitions("lifetime"), c.Partitions()); diff != "" {
		t.Errorf("pluss table differs from lifetime (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Pluss", c.Snapshot().BrandName)

	c.SetBrand("godrej")
	assert.Empty(t, c.Partitions())
}

func TestSnapshotHasInputs(t *testing.T) {
	c := New()
	c.SetField(FieldDepth, "3")
	assert.True(t, c.Snapshot().HasInputs)
}

func TestResultsNeverNegative(t *testing.T) {
	raws := []string{"-500", "-1", "0", "abc", "0.5", "1", "25", "1e6", "-Infinity"}
	for _, w := range raws {
		for _, d := range raws {
			for _, h := range raws {
				for _, dia := range raws {
					c := New()
					c.SetField(FieldWidth, w)
					c.SetField(FieldDepth, d)
					c.SetField(FieldBendHeight, h)
					c.SetField(FieldWireDiameter, dia)
					r := c.Results()
					require.False(t, r.WireSizeMM < 0 || math.IsNaN(r.WireSizeMM))
					require.False(t, r.SheetSizeMM < 0 || math.IsNaN(r.SheetSizeMM))
				}
			}
		}
	}
}

func TestParseField(t *testing.T) {
	for name, want := range map[string]Field{
		"width":         FieldWidth,
		"depth":         FieldDepth,
		"bendHeight":    FieldBendHeight,
		"bend_height":   FieldBendHeight,
		"wireDiameter":  FieldWireDiameter,
		"wire_diameter": FieldWireDiameter,
	} {
		got, ok := ParseField(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	_, ok := ParseField("brand")
	assert.False(t, ok)
}

func TestApply(t *testing.T) {
	c := New()
	c.Apply(Request{
		Brand:        "lifetime",
		Width:        V("200"),
		Depth:        V("150"),
		WireDiameter: V("1"),
	})
	assert.Equal(t, 30.0, c.Inputs().BendHeight)
	assert.Equal(t, wire.Result{WireSizeMM: 655, SheetSizeMM: 257}, c.Results())

	st := Evaluate(Request{Brand: "lifetime", BendHeight: V("10"), Width: V("100")})
	assert.Equal(t, 10.0, st.Inputs.BendHeight, "explicit bend height overrides preset")
	assert.Len(t, st.Partitions, 4)
}

func TestRequestDecoding(t *testing.T) {
	var req Request
	err := json.Unmarshal([]byte(`{"brand":"Godrej","width":"200.5","depth":150,"bend_height":null}`), &req)
	require.NoError(t, err)

	require.NotNil(t, req.Width)
	assert.Equal(t, "200.5", req.Width.Raw)
	require.NotNil(t, req.Depth)
	assert.Equal(t, "150", req.Depth.Raw)
	assert.Nil(t, req.BendHeight)
	assert.Nil(t, req.WireDiameter)

	st := Evaluate(req)
	assert.Equal(t, InputSet{Brand: "Godrej", Width: 200.5, Depth: 150, BendHeight: 25}, st.Inputs)

	err = json.Unmarshal([]byte(`{"width":true}`), &req)
	assert.Error(t, err)
}
