package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Dataset {
	return New([]string{"id", "price"},
		Row{"id": 1, "price": 10.0},
		Row{"id": 2, "price": nil},
		Row{"id": 3},
	)
}

func TestColumnAccess(t *testing.T) {
	d := sample()

	assert.Equal(t, 3, d.Len())
	assert.True(t, d.HasColumn("price"))
	assert.False(t, d.HasColumn("tags"))

	col, err := d.Column("price")
	require.NoError(t, err)
	assert.Equal(t, []any{10.0, nil, nil}, col)

	_, err = d.Column("tags")
	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "tags", missing.Column)
}

func TestColumnsReturnsCopy(t *testing.T) {
	d := sample()
	cols := d.Columns()
	cols[0] = "changed"
	assert.Equal(t, []string{"id", "price"}, d.Columns())
}

func TestWithColumnCopyOnWrite(t *testing.T) {
	d := sample()

	out, err := d.WithColumn("flag", []any{1, 0, 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "price", "flag"}, out.Columns())
	assert.Equal(t, 1, out.Value(2, "flag"))
	assert.Equal(t, []string{"id", "price"}, d.Columns())
	_, ok := d.Row(0)["flag"]
	assert.False(t, ok, "input rows must not gain the new column")
}

func TestWithColumnsValidatesBeforeCopying(t *testing.T) {
	d := sample()

	_, err := d.WithColumns([]string{"a", "price"}, [][]any{{1, 2, 3}, {1, 2, 3}})
	var exists *ColumnExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "price", exists.Column)

	_, err = d.WithColumns([]string{"a", "a"}, [][]any{{1, 2, 3}, {1, 2, 3}})
	require.ErrorAs(t, err, &exists)

	_, err = d.WithColumns([]string{"a"}, [][]any{{1, 2}})
	var mismatch *LengthMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 3, mismatch.Want)
	assert.Equal(t, 2, mismatch.Got)

	assert.Equal(t, []string{"id", "price"}, d.Columns())
}

func TestDrop(t *testing.T) {
	d := sample()
	out := d.Drop("price", "unknown")

	assert.Equal(t, []string{"id"}, out.Columns())
	_, ok := out.Row(0)["price"]
	assert.False(t, ok)
	assert.Equal(t, 10.0, d.Value(0, "price"))
}

func TestIsMissing(t *testing.T) {
	assert.True(t, IsMissing(nil))
	assert.True(t, IsMissing(math.NaN()))
	assert.True(t, IsMissing(float32(math.NaN())))
	assert.False(t, IsMissing(0))
	assert.False(t, IsMissing(""))
	assert.False(t, IsMissing([]string{}))
}
