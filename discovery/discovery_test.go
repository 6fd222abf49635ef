package discovery

import (
	"net"
	"testing"
	"time"

	"github.com/hostdeck/wsconnect/api"
	"github.com/hostdeck/wsconnect/mocks"
	"github.com/hostdeck/wsconnect/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestDiscoverySuite(t *testing.T) {
	suite.Run(t, new(DiscoverySuite))
}

type DiscoverySuite struct {
	suite.Suite

	sut *DiscoveryManager

	report   *mocks.DiscoveryReportInterface
	provider *mocks.MockDiscoveryProviderInterface

	resolving chan api.DiscoveryResolveCB
	reported  chan map[string]*api.DiscoveryEntry
}

func (s *DiscoverySuite) BeforeTest(suiteName, testName string) {
	s.resolving = make(chan api.DiscoveryResolveCB, 1)
	s.reported = make(chan map[string]*api.DiscoveryEntry, 10)

	ctrl := gomock.NewController(s.T())
	s.provider = mocks.NewMockDiscoveryProviderInterface(ctrl)
	s.provider.EXPECT().ResolveEntries(gomock.Any()).Do(func(cb api.DiscoveryResolveCB) {
		s.resolving <- cb
	}).AnyTimes()
	s.provider.EXPECT().Shutdown().AnyTimes()

	s.report = mocks.NewDiscoveryReportInterface(s.T())
	s.report.EXPECT().ReportDiscoveryEntries(mock.Anything).RunAndReturn(func(entries map[string]*api.DiscoveryEntry) {
		s.reported <- entries
	}).Maybe()

	s.sut = NewDiscovery(nil, ProviderSelectionAll)
	s.sut.provider = s.provider
}

func (s *DiscoverySuite) AfterTest(suiteName, testName string) {
	s.sut.Shutdown()
}

func (s *DiscoverySuite) start() api.DiscoveryResolveCB {
	err := s.sut.Start(s.report)
	assert.Nil(s.T(), err)

	select {
	case cb := <-s.resolving:
		return cb
	case <-time.After(time.Second):
		s.FailNow("provider was not started")
	}
	return nil
}

func (s *DiscoverySuite) waitForReport() map[string]*api.DiscoveryEntry {
	select {
	case entries := <-s.reported:
		return entries
	case <-time.After(time.Second):
		s.FailNow("no entries reported")
	}
	return nil
}

func validElements() map[string]string {
	return map[string]string{
		"txtvers": "1",
		"id":      "console-1",
	}
}

func (s *DiscoverySuite) Test_Start() {
	cb := s.start()
	assert.NotNil(s.T(), cb)

	s.sut.Shutdown()
	assert.Nil(s.T(), s.sut.provider)

	// a second shutdown is fine
	s.sut.Shutdown()
}

func (s *DiscoverySuite) Test_Start_IFaces() {
	// we don't have access to iface names on CI
	if util.IsRunningOnCI() {
		return
	}

	ifaces, err := net.Interfaces()
	assert.Nil(s.T(), err)
	assert.NotEqual(s.T(), 0, len(ifaces))

	s.sut.ifaces = []string{ifaces[0].Name}
	netIfaces, indexes, err := s.sut.interfaces()
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), 1, len(netIfaces))
	assert.Equal(s.T(), 1, len(indexes))
}

func (s *DiscoverySuite) Test_Start_IFaces_Invalid() {
	s.sut.provider = nil
	s.sut.ifaces = []string{"noifacename"}

	err := s.sut.Start(s.report)
	assert.NotNil(s.T(), err)
}

func (s *DiscoverySuite) Test_ProcessEntry() {
	cb := s.start()

	name := "hostdeck console"
	host := "console.local."
	ips := []net.IP{}
	port := 8080

	elements := map[string]string{}
	cb(elements, name, host, ips, port, false)
	assert.Equal(s.T(), 0, len(s.sut.Entries()))

	elements["txtvers"] = "2"
	elements["id"] = "console-1"
	cb(elements, name, host, ips, port, false)
	assert.Equal(s.T(), 0, len(s.sut.Entries()))

	elements["txtvers"] = "1"
	elements["tls"] = "yes"
	cb(elements, name, host, ips, port, false)
	assert.Equal(s.T(), 0, len(s.sut.Entries()))

	elements["tls"] = "true"
	cb(elements, name, host, ips, 0, false)
	assert.Equal(s.T(), 0, len(s.sut.Entries()))

	cb(elements, name, host, ips, port, false)
	entries := s.waitForReport()
	assert.Equal(s.T(), 1, len(entries))

	entry := entries["console-1"]
	assert.NotNil(s.T(), entry)
	assert.Equal(s.T(), api.WebsocketPath, entry.Path)
	assert.True(s.T(), entry.Secure)
	assert.Equal(s.T(), port, entry.Port)

	// another address of the same service is merged
	cb(elements, name, host, []net.IP{net.ParseIP("192.168.1.10")}, port, false)
	entries = s.waitForReport()
	assert.Equal(s.T(), 1, len(entries))
	assert.Equal(s.T(), 1, len(entries["console-1"].Addresses))

	// known addresses and link local IPv6 addresses do not change anything
	cb(elements, name, host, []net.IP{net.ParseIP("192.168.1.10"), net.ParseIP("fe80::1")}, port, false)
	assert.Equal(s.T(), 1, len(s.sut.Entries()["console-1"].Addresses))

	cb(elements, name, host, nil, -1, true)
	entries = s.waitForReport()
	assert.Equal(s.T(), 0, len(entries))
	assert.Equal(s.T(), 0, len(s.sut.Entries()))

	// removing an unknown entry is not reported
	cb(elements, name, host, nil, -1, true)
	select {
	case <-s.reported:
		s.Fail("unexpected report")
	case <-time.After(100 * time.Millisecond):
	}
}

func (s *DiscoverySuite) Test_EntriesAreCopies() {
	cb := s.start()

	cb(validElements(), "console", "console.local.", []net.IP{net.ParseIP("10.0.0.2")}, 8443, false)
	_ = s.waitForReport()

	entries := s.sut.Entries()
	entries["console-1"].Port = 1
	entries["console-1"].Addresses = nil

	entries = s.sut.Entries()
	assert.Equal(s.T(), 8443, entries["console-1"].Port)
	assert.Equal(s.T(), 1, len(entries["console-1"].Addresses))
}

func (s *DiscoverySuite) Test_MergeWhileReading() {
	sut := NewDiscovery(nil, ProviderSelectionAll)
	sut.processEntry(validElements(), "console", "console.local.", []net.IP{net.ParseIP("10.0.0.1")}, 8080, false)

	sut.mux.Lock()
	stored := sut.entries["console-1"]
	sut.mux.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 2; i < 50; i++ {
			sut.processEntry(validElements(), "console", "console.local.", []net.IP{net.IPv4(10, 0, 0, byte(i))}, 8080, false)
		}
	}()

	for i := 0; i < 50; i++ {
		_ = sut.Entries()
	}
	<-done

	// a merge replaces the entry, a copy handed out before is left alone
	assert.Equal(s.T(), 1, len(stored.Addresses))
	assert.Equal(s.T(), 49, len(sut.Entries()["console-1"].Addresses))
}

func TestEndpoints(t *testing.T) {
	assert.Nil(t, Endpoints(nil))

	entry := &api.DiscoveryEntry{
		Host:      "console.local.",
		Port:      8443,
		Secure:    true,
		Addresses: []net.IP{net.ParseIP("192.168.1.10"), net.ParseIP("fd00::2")},
	}
	assert.Equal(t, []string{
		"wss://console.local:8443/ws",
		"wss://192.168.1.10:8443/ws",
		"wss://[fd00::2]:8443/ws",
	}, Endpoints(entry))

	entry = &api.DiscoveryEntry{
		Port:      8080,
		Path:      "/api/ws",
		Addresses: []net.IP{net.ParseIP("10.0.0.2")},
	}
	assert.Equal(t, []string{"ws://10.0.0.2:8080/api/ws"}, Endpoints(entry))
}
