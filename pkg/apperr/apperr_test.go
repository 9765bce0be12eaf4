package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	cause := errors.New("connection refused")
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("Missing file")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("No prompts found")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Storage("failed to store file", cause)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(DataStore("DB error inserting memory", cause)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestClientMessageHidesCause(t *testing.T) {
	err := DataStore("DB error inserting memory", errors.New("pq: relation does not exist"))
	assert.Equal(t, "DB error inserting memory", ClientMessage(err))
	assert.NotContains(t, ClientMessage(err), "relation")
	assert.Equal(t, "internal error", ClientMessage(errors.New("plain")))
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handling request: %w", Storage("failed to store file", errors.New("disk full")))
	assert.True(t, IsKind(err, KindStorage))
	assert.False(t, IsKind(err, KindValidation))

	var ae *Error
	assert.True(t, errors.As(err, &ae))
	assert.ErrorContains(t, ae.Unwrap(), "disk full")
}
