package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate("g"))
	assert.NoError(t, Validate("ml"))
	assert.NoError(t, Validate("piece"))
	assert.Error(t, Validate("kg"))
	assert.Error(t, Validate(""))
}

func TestDisplay(t *testing.T) {
	t.Parallel()

	v, u := Display(500, Gram)
	assert.Equal(t, 500.0, v)
	assert.Equal(t, "g", u)

	v, u = Display(1500, Gram)
	assert.Equal(t, 1.5, v)
	assert.Equal(t, "kg", u)

	v, u = Display(2000, Milli)
	assert.Equal(t, 2.0, v)
	assert.Equal(t, "L", u)

	v, u = Display(1200, Piece)
	assert.Equal(t, 1200.0, v)
	assert.Equal(t, "piece", u)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.5 kg", Format(1500, Gram))
	assert.Equal(t, "3 piece", Format(3, Piece))
	assert.Equal(t, "250 ml", Format(250, Milli))
}

func TestToBase(t *testing.T) {
	t.Parallel()

	w := 60.0
	q, u := ToBase(2, Piece, &w)
	assert.Equal(t, 120.0, q)
	assert.Equal(t, "g", u)

	// Piece without a weight passes the raw count through.
	q, u = ToBase(2, Piece, nil)
	assert.Equal(t, 2.0, q)
	assert.Equal(t, "piece", u)

	q, u = ToBase(500, Gram, nil)
	assert.Equal(t, 500.0, q)
	assert.Equal(t, "g", u)

	q, u = ToBase(250, Milli, &w)
	assert.Equal(t, 250.0, q)
	assert.Equal(t, "ml", u)
}

func TestPiecePrice(t *testing.T) {
	t.Parallel()

	w := 60.0
	assert.Equal(t, 0.3, PiecePrice(0.005, &w))
	assert.Equal(t, 0.005, PiecePrice(0.005, nil))

	zero := 0.0
	assert.Equal(t, 0.005, PiecePrice(0.005, &zero))
}
