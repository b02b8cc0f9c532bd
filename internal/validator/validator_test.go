package validator

import (
	"errors"
	"testing"

	"github.com/glowbook/admin-console/internal/model"
	"github.com/stretchr/testify/require"
)

func TestStructUsesJSONNames(t *testing.T) {
	err := Struct(&model.LoginRequest{Password: "123"})
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "identifier is a required field", verr.Fields["identifier"])
	require.Contains(t, verr.Fields, "password")
	require.Contains(t, err.Error(), "validation failed: ")
}

func TestStructPasses(t *testing.T) {
	require.NoError(t, Struct(&model.LoginRequest{Identifier: "admin@glowbook.app", Password: "secret1"}))
}

func TestStructConditionalReason(t *testing.T) {
	require.NoError(t, Struct(&model.UpdateSalonStatusRequest{Status: model.SalonStatusApproved}))

	err := Struct(&model.UpdateSalonStatusRequest{Status: model.SalonStatusRejected})
	var verr *Error
	require.True(t, errors.As(err, &verr))
	require.Contains(t, verr.Fields, "reason")

	err = Struct(&model.UpdateSalonStatusRequest{Status: "archived"})
	require.True(t, errors.As(err, &verr))
	require.Contains(t, verr.Fields, "status")
}

func TestStructEmbeddedListParams(t *testing.T) {
	err := Struct(&model.SalonListParams{ListParams: model.ListParams{Limit: 500}})
	var verr *Error
	require.True(t, errors.As(err, &verr))
	require.Contains(t, verr.Fields, "limit")
}

func TestVar(t *testing.T) {
	require.NoError(t, Var("id", "abc123", "required"))

	err := Var("id", "", "required")
	var verr *Error
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "id is a required field", verr.Fields["id"])
}

func TestTranslateErrorsNonValidation(t *testing.T) {
	fields := TranslateErrors(errors.New("boom"))
	require.Equal(t, map[string]string{"detail": "boom"}, fields)
}
