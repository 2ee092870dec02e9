package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, MetadataFor(CodeValidation).HTTPStatus)
	assert.Equal(t, http.StatusNotFound, MetadataFor(CodeNotFound).HTTPStatus)
	assert.Equal(t, http.StatusConflict, MetadataFor(CodeConflict).HTTPStatus)
	assert.Equal(t, http.StatusUnprocessableEntity, MetadataFor(CodeStateConflict).HTTPStatus)

	// unknown codes fall back to internal
	assert.Equal(t, http.StatusInternalServerError, MetadataFor(Code("BOGUS")).HTTPStatus)
}

func TestWrapPreservesChain(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(CodeDependency, cause, "writing row")

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "writing row: disk full", err.Error())
	assert.Equal(t, CodeDependency, err.Code())
}

func TestAsFindsTypedErrorThroughWrapping(t *testing.T) {
	inner := New(CodeNotFound, "order not found")
	outer := fmt.Errorf("handling request: %w", inner)

	typed := As(outer)
	require.NotNil(t, typed)
	assert.Equal(t, CodeNotFound, typed.Code())

	assert.Nil(t, As(errors.New("plain")))
}

func TestDumpCollectsChain(t *testing.T) {
	err := Wrap(CodeInternal, errors.New("root"), "top")
	d := Dump(err)

	assert.Equal(t, "top: root", d.TopMessage)
	assert.Equal(t, CodeInternal, d.Code)
	assert.Len(t, d.Chain, 2)
}
