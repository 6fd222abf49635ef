package util

import (
	"net"
	"testing"

	"github.com/hostdeck/wsconnect/api"
	"github.com/stretchr/testify/assert"
)

func TestDeepCopy(t *testing.T) {
	source := &api.DiscoveryEntry{
		Name:      "console",
		Host:      "console.local",
		Port:      8080,
		Addresses: []net.IP{net.ParseIP("192.168.1.10")},
	}
	dest := &api.DiscoveryEntry{}

	DeepCopy(source, dest)
	assert.Equal(t, source.Name, dest.Name)
	assert.Equal(t, source.Port, dest.Port)
	assert.Equal(t, "192.168.1.10", dest.Addresses[0].String())

	dest.Addresses[0] = net.ParseIP("10.0.0.1")
	assert.Equal(t, "192.168.1.10", source.Addresses[0].String())
}

func TestIsRunningOnCI(t *testing.T) {
	t.Setenv("ACTION_ENVIRONMENT", "")
	t.Setenv("CI", "")
	assert.False(t, IsRunningOnCI())

	t.Setenv("CI", "true")
	assert.True(t, IsRunningOnCI())
}
