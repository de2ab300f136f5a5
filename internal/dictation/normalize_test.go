package dictation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "telefono nandu", Normalize("Teléfono Ñandú"))
	assert.Equal(t, "camion pinguino", Normalize("CAMIÓN PINGÜINO"))
}

func TestFold_OffsetsPointIntoOriginal(t *testing.T) {
	f := fold("Ñandú 9")

	assert.Equal(t, "nandu 9", f.text)
	assert.Len(t, f.origin, len(f.text)+1)
	assert.Equal(t, " 9", f.original[f.originalOffset(5):])
	assert.Equal(t, 0, f.originalOffset(0))
	assert.Equal(t, len(f.original), f.originalOffset(len(f.text)))
}
