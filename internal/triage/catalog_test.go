package triage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Resolve(t *testing.T) {
	c := DefaultCatalog()

	name, err := c.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "llama3.3", name)

	name, err = c.Resolve("deepseek-r1:32b")
	require.NoError(t, err)
	assert.Equal(t, "deepseek-r1:32b", name)

	_, err = c.Resolve("llama2")
	assert.True(t, errors.Is(err, ErrUnknownModel))
}

func TestCatalog_Names(t *testing.T) {
	assert.Equal(t, []string{"llama3.3", "mistral", "deepseek-r1:32b"}, DefaultCatalog().Names())
}

func TestRequest_Validate(t *testing.T) {
	assert.NoError(t, Request{Ticket: " x "}.Validate())
	assert.ErrorIs(t, Request{Ticket: " \t"}.Validate(), ErrEmptyTicket)
}
