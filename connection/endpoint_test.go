package connection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpointFromOrigin(t *testing.T) {
	tc := []struct {
		origin   string
		endpoint string
	}{
		{"https://console.example.com", "wss://console.example.com/ws"},
		{"http://console.example.com", "ws://console.example.com/ws"},
		{"http://localhost:8080", "ws://localhost:8080/ws"},
		{"https://10.0.0.2:8443/hosts/list?page=2#top", "wss://10.0.0.2:8443/ws"},
		{"wss://console.example.com/other", "wss://console.example.com/ws"},
		{"ws://[::1]:9000", "ws://[::1]:9000/ws"},
	}

	for _, c := range tc {
		endpoint, err := EndpointFromOrigin(c.origin)
		assert.Nil(t, err, c.origin)
		assert.Equal(t, c.endpoint, endpoint)
	}
}

func TestEndpointFromOriginInvalid(t *testing.T) {
	for _, origin := range []string{
		"",
		"ftp://console.example.com",
		"console.example.com",
		"http://",
		"https://%zz",
	} {
		_, err := EndpointFromOrigin(origin)
		assert.ErrorIs(t, err, ErrInvalidOrigin, origin)
	}
}
