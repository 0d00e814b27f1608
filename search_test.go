package sealedpii

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashCondition(t *testing.T) {
	hash := "ab12"
	cond := HashCondition("email_hash", hash, 1)

	require.Equal(t, "email_hash = $1", cond.SQL)
	require.Equal(t, []any{hash}, cond.Args)
}

func TestHashCondition_ParamOffset(t *testing.T) {
	cond := HashCondition("license_hash", "ff", 3)
	require.Equal(t, "license_hash = $3", cond.SQL)
}

func TestHashCondition_Empty(t *testing.T) {
	cond := HashCondition("email_hash", "", 1)
	require.Equal(t, "FALSE", cond.SQL)
	require.Nil(t, cond.Args)
}

func TestHashCondition_InvalidColumn(t *testing.T) {
	invalid := []string{"", "1col", "email-hash", "email_hash; DROP TABLE sellers", "e mail"}
	for _, col := range invalid {
		t.Run(col, func(t *testing.T) {
			require.Panics(t, func() { HashCondition(col, "ff", 1) })
		})
	}
}

func TestHashCondition_InvalidParamOffset(t *testing.T) {
	require.Panics(t, func() { HashCondition("email_hash", "ff", 0) })
	require.Panics(t, func() { HashCondition("email_hash", "ff", maxParamNumber+1) })
	require.NotPanics(t, func() { HashCondition("email_hash", "ff", maxParamNumber) })
}

func TestIsValidColumnName(t *testing.T) {
	valid := []string{"email", "_private", "Email_Hash2", "a"}
	for _, col := range valid {
		require.True(t, isValidColumnName(col), col)
	}
}

func TestEmailSearchCondition(t *testing.T) {
	c := newTestCipher(t)

	cond, err := c.EmailSearchCondition("email_hash", "Seller@Example.com ", 2)
	require.NoError(t, err)

	expected, err := c.EmailHash("seller@example.com")
	require.NoError(t, err)
	require.Equal(t, "email_hash = $2", cond.SQL)
	require.Equal(t, []any{expected}, cond.Args)

	cond, err = c.EmailSearchCondition("email_hash", "   ", 1)
	require.NoError(t, err)
	require.Equal(t, "FALSE", cond.SQL)
}

func TestLicenseSearchCondition(t *testing.T) {
	c := newTestCipher(t)

	cond, err := c.LicenseSearchCondition("license_hash", "re-1", "ca", 1)
	require.NoError(t, err)

	expected, err := c.LicenseHash("RE-1", "CA")
	require.NoError(t, err)
	require.Equal(t, []any{expected}, cond.Args)

	cond, err = c.LicenseSearchCondition("license_hash", "", "CA", 1)
	require.NoError(t, err)
	require.Equal(t, "FALSE", cond.SQL)
}

func TestSearchCondition_MissingConfiguration(t *testing.T) {
	c, err := New(NewStaticKeyProvider(""))
	require.NoError(t, err)

	_, err = c.EmailSearchCondition("email_hash", "a@b.com", 1)
	require.ErrorIs(t, err, ErrConfiguration)
	_, err = c.LicenseSearchCondition("license_hash", "1", "CA", 1)
	require.ErrorIs(t, err, ErrConfiguration)
}
