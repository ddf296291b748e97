package table

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftdata/driftgen/pkg/core"
)

func sampleColumnMajor() core.Table {
	return core.Table{Rows: [][]any{
		{"Id", "Name", "Amount"},
		{1.0, 2.0, 3.0},
		{"alice", "bob", "carol"},
		{10.5, 20.25, 30.75},
	}}
}

func TestTransposeRoundTrip(t *testing.T) {
	tbl := sampleColumnMajor()
	assert.Equal(t, tbl, Transpose(Transpose(tbl)))
}

func TestTransposeShape(t *testing.T) {
	rowMajor := Transpose(sampleColumnMajor())

	// 3 columns, 3 data rows
	assert.Equal(t, []string{"Id", "Name", "Amount"}, rowMajor.Header())
	require.Equal(t, 3, rowMajor.DataRowCount())
	assert.Equal(t, []any{1.0, "alice", 10.5}, rowMajor.Rows[1])
	assert.Equal(t, []any{2.0, "bob", 20.25}, rowMajor.Rows[2])
	assert.Equal(t, []any{3.0, "carol", 30.75}, rowMajor.Rows[3])
}

func TestTransposeHeaderOnly(t *testing.T) {
	tbl := core.Table{Rows: [][]any{{"Id", "Name"}}}
	out := Transpose(tbl)
	assert.Equal(t, tbl, out)
}

func TestCloneIsIndependent(t *testing.T) {
	original := sampleColumnMajor()
	clone := Clone(original)
	require.Equal(t, original, clone)

	clone.Rows[0][1] = "renamed"
	clone.Rows[2][0] = "mallory"

	assert.Equal(t, "Name", original.Rows[0][1])
	assert.Equal(t, "alice", original.Rows[2][0])
}

func TestClonePreservesNumericTypes(t *testing.T) {
	original := core.Table{Rows: [][]any{
		{"Amount"},
		{1.5, 2.5},
	}}
	clone := Clone(original)
	assert.IsType(t, float64(0), clone.Rows[1][0])
}

func TestRemoveRandomRows(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	rows := [][]any{{"Id"}}
	originals := make(map[any]struct{})
	for i := 0; i < 8; i++ {
		rows = append(rows, []any{float64(i)})
		originals[float64(i)] = struct{}{}
	}
	tbl := core.Table{Rows: rows}

	err := RemoveRandomRows(&tbl, 3, rng)
	require.NoError(t, err)
	require.Equal(t, 5, tbl.DataRowCount())

	// Every surviving row is one of the original eight.
	seen := make(map[any]struct{})
	for _, row := range tbl.Rows[1:] {
		_, ok := originals[row[0]]
		assert.True(t, ok, "row %v is not an original row", row[0])
		_, dup := seen[row[0]]
		assert.False(t, dup, "row %v appears twice", row[0])
		seen[row[0]] = struct{}{}
	}
}

func TestRemoveRandomRowsKeepsHeader(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 100; trial++ {
		tbl := core.Table{Rows: [][]any{
			{"Id"},
			{"a"}, {"b"}, {"c"},
		}}
		require.NoError(t, RemoveRandomRows(&tbl, 2, rng))
		assert.Equal(t, []string{"Id"}, tbl.Header())
		assert.Equal(t, 1, tbl.DataRowCount())
	}
}

func TestRemoveRandomRowsErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tbl := core.Table{Rows: [][]any{{"Id"}, {"a"}}}

	assert.Error(t, RemoveRandomRows(&tbl, 2, rng))
	assert.Error(t, RemoveRandomRows(&tbl, -1, rng))
	assert.NoError(t, RemoveRandomRows(&tbl, 0, rng))
	assert.Equal(t, 1, tbl.DataRowCount())
}

func TestToDelimitedText(t *testing.T) {
	tbl := core.Table{Rows: [][]any{
		{"Id", "Name", "Amount"},
		{1.0, "alice", 10.5},
		{2.0, "bob", int64(1700000000000)},
	}}

	text := ToDelimitedText(tbl)
	assert.Equal(t, "\"Id\",\"Name\",\"Amount\"\n1,\"alice\",10.5\n2,\"bob\",1700000000000\n", text)
}

func TestToDelimitedTextEscapesQuotes(t *testing.T) {
	tbl := core.Table{Rows: [][]any{
		{"Note"},
		{`say "hi"`},
	}}
	assert.Equal(t, "\"Note\"\n\"say \"\"hi\"\"\"\n", ToDelimitedText(tbl))
}

func TestToDelimitedTextHeaderIsPositional(t *testing.T) {
	// Header cells are quoted like any other non-numeric cell; only row
	// position distinguishes them.
	tbl := core.Table{Rows: [][]any{
		{"Name"},
		{"Name"},
	}}
	assert.Equal(t, "\"Name\"\n\"Name\"\n", ToDelimitedText(tbl))
}
