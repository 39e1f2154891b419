package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	data := Get()

	if assert.NotNil(t, data) {
		assert.Equal(t, []string{"admin"}, data.FindPermissions("/v1/hotels", "POST").Permissions)
		assert.Equal(t, []string{"admin"}, data.FindPermissions("/v1/rooms/", "POST").Permissions)
		assert.Empty(t, data.FindPermissions("/v1/hotels", "GET").Permissions)
		assert.Empty(t, data.FindPermissions("/v1/booking", "POST").Permissions)
	}
}

func TestParse_Invalid(t *testing.T) {
	assert.Nil(t, parse([]byte("{")))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "/", normalize("/"))
	assert.Equal(t, "/v1/rooms", normalize("/v1/rooms/"))
	assert.Equal(t, "/v1/rooms/{id}", normalize("/v1/rooms/{id}"))
}
