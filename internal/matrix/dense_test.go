package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewColumnVector(t *testing.T) {
	m, err := New(2, 1, []float64{0.0, 0.0})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 1, m.Cols())
	assert.Equal(t, [][]float64{{0.0}, {0.0}}, m.Data())
}

func TestNewRowMajor(t *testing.T) {
	m, err := New(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.Data())
	assert.Equal(t, 6.0, m.At(1, 2))
	assert.Equal(t, Shape{Rows: 2, Cols: 3}, m.Shape())
}

func TestNewShapeError(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		values     []float64
		wantErr    bool
	}{
		{"exact", 2, 2, []float64{1, 2, 3, 4}, false},
		{"empty", 0, 0, nil, false},
		{"zero rows", 0, 3, []float64{}, false},
		{"too few", 2, 2, []float64{1, 2, 3}, true},
		{"too many", 1, 2, []float64{1, 2, 3}, true},
		{"none for non-empty", 3, 1, nil, true},
		{"negative", -1, -2, []float64{1, 2}, true},
		{"element count overflows", 1 << 32, 1 << 32, nil, true},
		{"element count overflows by one", math.MaxInt/2 + 1, 2, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.rows, tt.cols, tt.values)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.rows, m.Rows())
				assert.Equal(t, tt.cols, m.Cols())
				return
			}
			require.Error(t, err)
			assert.Nil(t, m)
			assert.True(t, IsShapeError(err), "want ShapeError, got %v", err)
			assert.False(t, IsDimensionMismatch(err))

			var shapeErr *ShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.Equal(t, len(tt.values), shapeErr.Len)
		})
	}
}

func TestNewCopiesValues(t *testing.T) {
	values := []float64{1, 2}
	m, err := New(1, 2, values)
	require.NoError(t, err)

	values[0] = 100
	assert.Equal(t, 1.0, m.At(0, 0))

	raw := m.RawData()
	raw[1] = 100
	assert.Equal(t, 2.0, m.At(0, 1))

	rows := m.Data()
	rows[0][0] = 100
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, Shape{Rows: 3, Cols: 2}, m.Shape())
	assert.Equal(t, 5.0, m.At(2, 0))

	_, err = FromRows([][]float64{{1, 2}, {3}, {4, 5, 6}})
	assert.True(t, IsShapeError(err))

	empty, err := FromRows(nil)
	require.NoError(t, err)
	assert.Equal(t, Shape{}, empty.Shape())
}

func TestColumn(t *testing.T) {
	c := Column(1, 0)
	assert.Equal(t, Shape{Rows: 2, Cols: 1}, c.Shape())
	assert.Equal(t, [][]float64{{1}, {0}}, c.Data())
}

func TestAtOutOfBounds(t *testing.T) {
	m := Column(1, 2)
	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.At(0, 1) })
}

func TestEqual(t *testing.T) {
	a := Column(1, 2)
	b := Column(1, 2)
	c := Column(1, 2.0000001)
	row, err := New(1, 2, []float64{1, 2})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.EqualApprox(c, 1e-6))
	assert.False(t, a.Equal(row), "same values, different shape")
	assert.False(t, a.EqualApprox(row, 1))
}

func TestString(t *testing.T) {
	m, err := New(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, "[[1 2] [3 4]]", m.String())
	assert.Equal(t, "2x2", m.Shape().String())
}
