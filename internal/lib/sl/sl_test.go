package sl

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	err := errors.New("boom")
	attr := Err(err)

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, slog.KindString, attr.Value.Kind())
	assert.Equal(t, "boom", attr.Value.String())
}

func TestUID(t *testing.T) {
	attr := UID("2f1a9c1e-0000-0000-0000-000000000000")

	assert.Equal(t, "uid", attr.Key)
	assert.Equal(t, "2f1a9c1e-0000-0000-0000-000000000000", attr.Value.String())
}
