package discovery

import (
	"net"
	"testing"

	"github.com/holoplot/go-avahi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestAvahi(t *testing.T) {
	suite.Run(t, new(AvahiSuite))
}

type AvahiSuite struct {
	suite.Suite

	sut *AvahiProvider

	resolved []string
	removed  []string
}

func (a *AvahiSuite) BeforeTest(suiteName, testName string) {
	a.sut = NewAvahiProvider([]int32{1})
	a.resolved = nil
	a.removed = nil
}

func (a *AvahiSuite) AfterTest(suiteName, testName string) {
	a.sut.Shutdown()
}

func (a *AvahiSuite) processEntry(elements map[string]string, name, host string, addresses []net.IP, port int, remove bool) {
	if remove {
		a.removed = append(a.removed, name)
		return
	}
	a.resolved = append(a.resolved, name)
}

func (a *AvahiSuite) Test_Avahi() {
	// As we do not have an Avahi server running for automated testing
	// these tests are very limited

	if !a.sut.CheckAvailability() {
		// returns right away without a server
		a.sut.ResolveEntries(a.processEntry)
	}

	// interface is not in the allowed list
	testService := avahi.Service{
		Interface: 0,
	}
	err := a.sut.processService(testService, false, a.processEntry)
	assert.NotNil(a.T(), err)
}

func (a *AvahiSuite) Test_ProcessAddedService() {
	service := avahi.Service{
		Name:      "console",
		Host:      "console.local",
		Interface: 1,
		Port:      8080,
		Txt:       [][]byte{[]byte("txtvers=1"), []byte("id=console-1")},
	}

	err := a.sut.processAddedService(service, a.processEntry)
	assert.NotNil(a.T(), err)

	service.Address = "fd00::1"
	err = a.sut.processAddedService(service, a.processEntry)
	assert.NotNil(a.T(), err)

	service.Address = "0.0.0.0"
	err = a.sut.processAddedService(service, a.processEntry)
	assert.NotNil(a.T(), err)

	service.Address = "192.168.1.10"
	err = a.sut.processAddedService(service, a.processEntry)
	assert.Nil(a.T(), err)
	assert.Equal(a.T(), []string{"console"}, a.resolved)

	err = a.sut.processService(service, true, a.processEntry)
	assert.Nil(a.T(), err)
	assert.Equal(a.T(), []string{"console"}, a.removed)

	// elements are only known once
	err = a.sut.processService(service, true, a.processEntry)
	assert.NotNil(a.T(), err)
}

func (a *AvahiSuite) Test_InterfaceAllowed() {
	assert.True(a.T(), a.sut.interfaceAllowed(1))
	assert.False(a.T(), a.sut.interfaceAllowed(2))

	all := NewAvahiProvider([]int32{avahi.InterfaceUnspec})
	assert.True(a.T(), all.interfaceAllowed(7))
}
