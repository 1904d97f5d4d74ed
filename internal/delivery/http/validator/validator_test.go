package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	domainerrors "cryofood/internal/domain/errors"
)

type sample struct {
	Name   string `validate:"required,max=5"`
	Number string `validate:"omitempty,numeric"`
}

type secretSample struct {
	Secret string `validate:"maxbytes=72"`
}

func TestCustomValidator(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Name: "peas"}))
	assert.NoError(t, v.Validate(&sample{Name: "peas", Number: "12"}))
	assert.ErrorIs(t, v.Validate(&sample{}), domainerrors.ErrValidationFailed)
	assert.ErrorIs(t, v.Validate(&sample{Name: "lasagna"}), domainerrors.ErrValidationFailed)
	assert.ErrorIs(t, v.Validate(&sample{Name: "peas", Number: "x1"}), domainerrors.ErrValidationFailed)
}

func TestCustomValidator_MaxBytes(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&secretSample{}))
	assert.NoError(t, v.Validate(&secretSample{Secret: strings.Repeat("x", 72)}))
	assert.NoError(t, v.Validate(&secretSample{Secret: strings.Repeat("é", 36)}))
	assert.ErrorIs(t, v.Validate(&secretSample{Secret: strings.Repeat("x", 73)}), domainerrors.ErrValidationFailed)
	// 40 runes, 80 bytes.
	assert.ErrorIs(t, v.Validate(&secretSample{Secret: strings.Repeat("é", 40)}), domainerrors.ErrValidationFailed)
}
