package build

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftdata/driftgen/pkg/core"
)

func testRegistry() *Registry {
	return NewRegistry(gofakeit.New(11))
}

func TestRegistryUnknownGenerator(t *testing.T) {
	_, err := testRegistry().Generate(core.ColumnSpec{Category: "nope", Kind: "missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.missing")
}

func TestRegistryRegisterOverrides(t *testing.T) {
	r := testRegistry()
	r.Register("person", "name", func(f *gofakeit.Faker, s core.ColumnSpec) (any, error) {
		return "fixed", nil
	})
	v, err := r.Generate(core.ColumnSpec{Category: "person", Kind: "name"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", v)
}

func TestFinanceAmount(t *testing.T) {
	r := testRegistry()
	s := core.ColumnSpec{
		Category: "finance", Kind: "amount",
		DecimalPlaces: 2,
		Options:       map[string]any{"min": 10.0, "max": 20.0},
	}

	for i := 0; i < 50; i++ {
		v, err := r.Generate(s)
		require.NoError(t, err)

		str, ok := v.(string)
		require.True(t, ok, "amount should be a string before numeric conversion")
		require.Len(t, strings.SplitN(str, ".", 2), 2)
		assert.Len(t, strings.SplitN(str, ".", 2)[1], 2)

		f, err := strconv.ParseFloat(str, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, f, 10.0)
		assert.LessOrEqual(t, f, 20.0)
	}
}

func TestFinanceAmountPositionalArgs(t *testing.T) {
	r := testRegistry()
	s := core.ColumnSpec{Category: "finance", Kind: "amount", Args: []any{100, 200}}

	v, err := r.Generate(s)
	require.NoError(t, err)
	f, err := strconv.ParseFloat(v.(string), 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, f, 100.0)
	assert.LessOrEqual(t, f, 200.0)
}

func TestFinanceAmountInvalidRange(t *testing.T) {
	r := testRegistry()
	_, err := r.Generate(core.ColumnSpec{Category: "finance", Kind: "amount", Args: []any{200, 100}})
	assert.Error(t, err)
}

func TestDatetimePast(t *testing.T) {
	r := testRegistry()
	v, err := r.Generate(core.ColumnSpec{Category: "datetime", Kind: "past"})
	require.NoError(t, err)

	parsed, err := time.Parse(TimeLayout, v.(string))
	require.NoError(t, err)
	assert.True(t, parsed.Before(time.Now().Add(time.Minute)))
	assert.True(t, parsed.After(time.Now().AddDate(-1, 0, -1)))
}

func TestDatetimeBetween(t *testing.T) {
	r := testRegistry()
	s := core.ColumnSpec{
		Category: "datetime", Kind: "between",
		Options: map[string]any{
			"start": "2024-01-01T00:00:00Z",
			"end":   "2024-12-31T00:00:00Z",
		},
	}
	v, err := r.Generate(s)
	require.NoError(t, err)

	parsed, err := time.Parse(TimeLayout, v.(string))
	require.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
}

func TestDatetimeBetweenMissingParams(t *testing.T) {
	r := testRegistry()
	_, err := r.Generate(core.ColumnSpec{Category: "datetime", Kind: "between"})
	assert.Error(t, err)
}

func TestGeoGenerators(t *testing.T) {
	r := testRegistry()

	lat, err := r.Generate(core.ColumnSpec{Category: "address", Kind: "latitude"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, lat.(float64), -90.0)
	assert.LessOrEqual(t, lat.(float64), 90.0)

	lon, err := r.Generate(core.ColumnSpec{Category: "address", Kind: "longitude"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, lon.(float64), -180.0)
	assert.LessOrEqual(t, lon.(float64), 180.0)
}

func TestNumberInt(t *testing.T) {
	r := testRegistry()
	s := core.ColumnSpec{Category: "number", Kind: "int", Options: map[string]any{"min": 5, "max": 9}}

	for i := 0; i < 50; i++ {
		v, err := r.Generate(s)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v.(int), 5)
		assert.LessOrEqual(t, v.(int), 9)
	}
}

func TestStringGenerators(t *testing.T) {
	r := testRegistry()

	uuid, err := r.Generate(core.ColumnSpec{Category: "string", Kind: "uuid"})
	require.NoError(t, err)
	assert.Len(t, uuid.(string), 36)

	name, err := r.Generate(core.ColumnSpec{Category: "person", Kind: "name"})
	require.NoError(t, err)
	assert.NotEmpty(t, name.(string))
}
