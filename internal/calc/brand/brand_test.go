package brand

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cutlery = []SizeEntry{
	{Size: `15"`, Partitions: []Partition{{Length: 366, Qty: 3}}},
	{Size: `17"`, Partitions: []Partition{{Length: 366, Qty: 2}, {Length: 471, Qty: 1}}},
	{Size: `19"`, Partitions: []Partition{{Length: 366, Qty: 1}, {Length: 350, Qty: 1}, {Length: 491, Qty: 1}}},
	{Size: `21"`, Partitions: []Partition{{Length: 366, Qty: 1}, {Length: 386, Qty: 1}, {Length: 491, Qty: 1}}},
}

func TestDefaultBendHeight(t *testing.T) {
	tests := []struct {
		id     string
		want   float64
		wantOK bool
	}{
		{"lifetime", 30, true},
		{"godrej", 25, true},
		{"higloss", 50, true},
		{"pluss", 30, true},
		{"Lifetime", 30, true},
		{"  HIGLOSS ", 50, true},
		{"ikea", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := DefaultBendHeight(tt.id)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPartitions(t *testing.T) {
	for _, id := range []string{"lifetime", "pluss", "PLUSS"} {
		if diff := cmp.Diff(cutlery, Partitions(id)); diff != "" {
			t.Errorf("Partitions(%q) mismatch (-want +got):\n%s", id, diff)
		}
	}

	for _, id := range []string{"godrej", "higloss", "unknown", ""} {
		got := Partitions(id)
		require.NotNil(t, got, id)
		assert.Empty(t, got, id)
	}
}

func TestPartitionsReturnsCopy(t *testing.T) {
	got := Partitions("lifetime")
	got[0].Partitions[0].Length = 1
	got[0].Size = "changed"

	if diff := cmp.Diff(cutlery, Partitions("lifetime")); diff != "" {
		t.Errorf("catalog was mutated through a returned table (-want +got):\n%s", diff)
	}
}

func TestBrandsOrder(t *testing.T) {
	brands := Brands()
	require.Len(t, brands, 4)

	var names []string
	for _, b := range brands {
		names = append(names, b.Name)
		assert.Nil(t, b.Partitions)
	}
	assert.Equal(t, []string{"Godrej", "Lifetime", "Higloss", "Pluss"}, names)
}

func TestLookup(t *testing.T) {
	b, ok := Lookup("Pluss")
	require.True(t, ok)
	assert.Equal(t, "pluss", b.ID)
	assert.Equal(t, "Pluss", b.Name)
	assert.Equal(t, 30.0, b.BendHeightMM)
	assert.Len(t, b.Partitions, 4)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestParseRejectsBadCatalogs(t *testing.T) {
	_, err := parse([]byte("brands: [{name: X, bend_height_mm: 1}]"))
	assert.Error(t, err)

	_, err = parse([]byte("brands: [{id: a}, {id: A}]"))
	assert.Error(t, err)

	_, err = parse([]byte("brands: {"))
	assert.Error(t, err)
}
