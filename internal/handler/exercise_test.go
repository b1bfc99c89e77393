package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/exercise-tracker/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseStringUnmarshalJSON(t *testing.T) {
	tests := map[string]LooseString{
		`{"duration":30}`:     "30",
		`{"duration":12.5}`:   "12.5",
		`{"duration":"45"}`:   "45",
		`{"duration":"soon"}`: "soon",
		`{"duration":null}`:   "",
		`{}`:                  "",
	}

	for body, want := range tests {
		var req AddExerciseRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req), body)
		assert.Equal(t, want, req.Duration, body)
	}

	var req AddExerciseRequest
	assert.Error(t, json.Unmarshal([]byte(`{"duration":true}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"duration":{"minutes":3}}`), &req))
}

func TestNewUserRequestValidate(t *testing.T) {
	assert.NoError(t, (&NewUserRequest{Username: "alice"}).Validate())

	tests := map[string]string{
		"":                      "username is required",
		"abcdefghijklmnopqrstu": "username too long",
	}
	for username, want := range tests {
		err := (&NewUserRequest{Username: LooseString(username)}).Validate()

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr), username)
		status, message := httpErr.Normalize()
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, want, message)
	}
}

func TestNewRequestIsFresh(t *testing.T) {
	prototype := &NewUserRequest{Username: "stale"}

	first := newRequest(prototype)
	second := newRequest(prototype)

	assert.Empty(t, first.Username)
	first.Username = "alice"
	assert.Empty(t, second.Username)
	assert.Equal(t, LooseString("stale"), prototype.Username)
	assert.NotSame(t, first, second)
}
