package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOKWithData(t *testing.T) {
	resp := StatusOKWithData(map[string]any{"uid": "123"})

	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.NotNil(t, resp.Data)
}

func TestError(t *testing.T) {
	resp := Error("something failed")

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "something failed", resp.Error)
	assert.Nil(t, resp.Data)
}

func TestValidationError(t *testing.T) {
	type payload struct {
		Username string `validate:"required,min=3,max=50"`
		Email    string `validate:"required,email"`
	}

	validate := validator.New()

	t.Run("missing required fields", func(t *testing.T) {
		err := validate.Struct(payload{})
		require.Error(t, err)

		resp := ValidationError(err.(validator.ValidationErrors))
		assert.Equal(t, StatusError, resp.Status)
		assert.Contains(t, resp.Error, "field Username is a required field")
		assert.Contains(t, resp.Error, "field Email is a required field")
	})

	t.Run("invalid email and short username", func(t *testing.T) {
		err := validate.Struct(payload{Username: "ab", Email: "not-an-email"})
		require.Error(t, err)

		resp := ValidationError(err.(validator.ValidationErrors))
		assert.Contains(t, resp.Error, "field Username is shorter than the minimum length")
		assert.Contains(t, resp.Error, "field Email must be a valid email address")
	})
}
