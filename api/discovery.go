package api

import "net"

/* Discovery */

type DiscoveryEntry struct {
	Name       string   // the mDNS service name
	Identifier string   // mandatory, the identifier of the console server instance
	Path       string   // the websocket path, defaults to WebsocketPath
	Secure     bool     // wether the server expects TLS
	Host       string   // mandatory, the host name
	Port       int      // mandatory, the port of the console server
	Addresses  []net.IP // the IPv4 addresses used by the service
}

// implemented by applications, used by discovery
type DiscoveryReportInterface interface {
	ReportDiscoveryEntries(entries map[string]*DiscoveryEntry)
}

// implemented by discovery.DiscoveryManager, used by applications
type DiscoveryInterface interface {
	Start(cb DiscoveryReportInterface) error
	Shutdown()
	Entries() map[string]*DiscoveryEntry
}

// implemented by discovery, used by providers
type DiscoveryResolveCB func(elements map[string]string, name, host string, addresses []net.IP, port int, remove bool)

// implemented by discovery providers, used by discovery
type DiscoveryProviderInterface interface {
	CheckAvailability() bool
	Shutdown()
	ResolveEntries(cb DiscoveryResolveCB)
}
