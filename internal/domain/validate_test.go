package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("frodo"))
	assert.NoError(t, ValidateName(strings.Repeat("a", 100)))

	require.Error(t, ValidateName(""))
	assert.ErrorIs(t, ValidateName(""), ErrInvalidInput)
	assert.ErrorIs(t, ValidateName(strings.Repeat("a", 101)), ErrInvalidInput)
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("frodo@shire.example"))

	assert.ErrorIs(t, ValidateEmail(""), ErrInvalidInput)
	assert.ErrorIs(t, ValidateEmail("not-an-email"), ErrInvalidInput)
	assert.ErrorIs(t, ValidateEmail(strings.Repeat("a", 250)+"@x.example"), ErrInvalidInput)
}

func TestValidateEmailIsCaseSensitiveByOmission(t *testing.T) {
	// Both casings pass validation; resolution is exact-match downstream.
	assert.NoError(t, ValidateEmail("Frodo@Shire.example"))
	assert.NoError(t, ValidateEmail("frodo@shire.example"))
}

func TestValidateDisplayName(t *testing.T) {
	assert.NoError(t, ValidateDisplayName(""))
	assert.NoError(t, ValidateDisplayName("Frodo of the Shire"))
	assert.ErrorIs(t, ValidateDisplayName(strings.Repeat("a", 256)), ErrInvalidInput)
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("pw123456"))
	assert.NoError(t, ValidatePassword("x"), "no strength policy beyond presence")
	assert.ErrorIs(t, ValidatePassword(""), ErrInvalidInput)
}

func TestValidateRecoveryCode(t *testing.T) {
	assert.NoError(t, ValidateRecoveryCode("012345"))
	assert.NoError(t, ValidateRecoveryCode("000000"))

	assert.ErrorIs(t, ValidateRecoveryCode("12345"), ErrInvalidInput)
	assert.ErrorIs(t, ValidateRecoveryCode("1234567"), ErrInvalidInput)
	assert.ErrorIs(t, ValidateRecoveryCode("12a456"), ErrInvalidInput)
	assert.ErrorIs(t, ValidateRecoveryCode(""), ErrInvalidInput)
}
