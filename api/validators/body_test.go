package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/marketconnect/marketconnect-backend/pkg/errors"
)

type samplePayload struct {
	FullName     string   `json:"fullName" validate:"required"`
	MobileNumber string   `json:"mobileNumber" validate:"required"`
	Needs        []string `json:"needs" validate:"required,min=1"`
}

func TestDecodeJSONBodyListsMissingFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"fullName":"A"}`))

	var payload samplePayload
	err := DecodeJSONBody(r, &payload)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "mobileNumber")
	assert.Contains(t, details, "needs")
	assert.NotContains(t, details, "fullName")
}

func TestDecodeJSONBodyRejectsMalformedJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"fullName":`))

	var payload samplePayload
	err := DecodeJSONBody(r, &payload)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestDecodeJSONBodyAcceptsValidPayload(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(
		`{"fullName":"A","mobileNumber":"999","needs":["Oil"]}`))

	var payload samplePayload
	require.NoError(t, DecodeJSONBody(r, &payload))
	assert.Equal(t, []string{"Oil"}, payload.Needs)
}
