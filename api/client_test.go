package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformClient(t *testing.T) {
	client, err := PlatformClient("", "a-token", false)

	assert.Nil(t, err)
	assert.Equal(t, DefaultBaseURL, client.BaseURL)
}

func TestPlatformClientWithoutToken(t *testing.T) {
	client, err := PlatformClient("", "", false)

	assert.Nil(t, client)
	assert.NotNil(t, err)
}
