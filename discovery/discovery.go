package discovery

import (
	"errors"
	"net"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/holoplot/go-avahi"
	"github.com/hostdeck/wsconnect/api"
	"github.com/hostdeck/wsconnect/logging"
	"github.com/hostdeck/wsconnect/util"
)

var ErrNoProvider = errors.New("no mDNS provider available")

type ProviderSelection uint

const (
	ProviderSelectionAll          ProviderSelection = iota // Automatically use avahi if available, otherwise use Go native Zeroconf, default
	ProviderSelectionAvahiOnly                             // Only use avahi
	ProviderSelectionZeroconfOnly                          // Only use Go native zeroconf
)

// DiscoveryManager browses the local network for console servers
type DiscoveryManager struct {
	// Network interface to use for browsing
	// Optional, if not set all detected interfaces will be used
	ifaces []string

	// the currently available entries with the server identifier as the key in the map
	entries map[string]*api.DiscoveryEntry

	report api.DiscoveryReportInterface

	provider api.DiscoveryProviderInterface

	providerSelection ProviderSelection

	shutdownOnce sync.Once

	mux sync.Mutex
}

// Create a new discovery manager
//
// Parameters:
//   - ifaces: the network interfaces to use or empty if all are to be used
//   - providerSelection: the mDNS provider selection
func NewDiscovery(ifaces []string, providerSelection ProviderSelection) *DiscoveryManager {
	return &DiscoveryManager{
		ifaces:            ifaces,
		providerSelection: providerSelection,
		entries:           make(map[string]*api.DiscoveryEntry),
	}
}

// Return allowed interfaces for mDNS
func (m *DiscoveryManager) interfaces() ([]net.Interface, []int32, error) {
	var ifaces []net.Interface
	var ifaceIndexes []int32

	if len(m.ifaces) > 0 {
		ifaces = make([]net.Interface, len(m.ifaces))
		ifaceIndexes = make([]int32, len(m.ifaces))
		for i, ifaceName := range m.ifaces {
			iface, err := net.InterfaceByName(ifaceName)
			if err != nil {
				return nil, nil, err
			}
			ifaces[i] = *iface
			// conversion is safe, as the index is always positive and not higher than int32
			ifaceIndexes[i] = int32(iface.Index) // #nosec G115
		}
	}

	if len(ifaces) == 0 {
		ifaces = nil
		ifaceIndexes = []int32{avahi.InterfaceUnspec}
	}

	return ifaces, ifaceIndexes, nil
}

var _ api.DiscoveryInterface = (*DiscoveryManager)(nil)

// start browsing, every change of the found entries is reported to cb
func (m *DiscoveryManager) Start(cb api.DiscoveryReportInterface) error {
	m.mux.Lock()
	m.report = cb
	provider := m.provider
	m.mux.Unlock()

	if provider == nil {
		var err error
		if provider, err = m.selectProvider(); err != nil {
			return err
		}

		m.mux.Lock()
		m.provider = provider
		m.mux.Unlock()
	}

	go provider.ResolveEntries(m.processEntry)

	return nil
}

func (m *DiscoveryManager) selectProvider() (api.DiscoveryProviderInterface, error) {
	ifaces, ifaceIndexes, err := m.interfaces()
	if err != nil {
		return nil, err
	}

	switch m.providerSelection {
	case ProviderSelectionAvahiOnly:
		provider := NewAvahiProvider(ifaceIndexes)
		if !provider.CheckAvailability() {
			provider.Shutdown()
			return nil, ErrNoProvider
		}
		return provider, nil

	case ProviderSelectionZeroconfOnly:
		return NewZeroconfProvider(ifaces), nil
	}

	// First try avahi, if not available use zeroconf
	avahiProvider := NewAvahiProvider(ifaceIndexes)
	if avahiProvider.CheckAvailability() {
		logging.Log().Debug("discovery: using avahi")
		return avahiProvider, nil
	}
	avahiProvider.Shutdown()

	logging.Log().Debug("discovery: using zeroconf")

	zeroconfProvider := NewZeroconfProvider(ifaces)
	if !zeroconfProvider.CheckAvailability() {
		return nil, ErrNoProvider
	}

	return zeroconfProvider, nil
}

// stop browsing
func (m *DiscoveryManager) Shutdown() {
	m.shutdownOnce.Do(func() {
		m.mux.Lock()
		defer m.mux.Unlock()

		if m.provider == nil {
			return
		}

		m.provider.Shutdown()
		m.provider = nil
	})
}

// returns a copy of the currently known entries
func (m *DiscoveryManager) Entries() map[string]*api.DiscoveryEntry {
	m.mux.Lock()
	defer m.mux.Unlock()

	entries := make(map[string]*api.DiscoveryEntry)
	for k, v := range m.entries {
		newEntry := &api.DiscoveryEntry{}
		util.DeepCopy[*api.DiscoveryEntry](v, newEntry)
		entries[k] = newEntry
	}

	return entries
}

func (m *DiscoveryManager) entry(identifier string) (*api.DiscoveryEntry, bool) {
	m.mux.Lock()
	defer m.mux.Unlock()

	entry, ok := m.entries[identifier]
	return entry, ok
}

func (m *DiscoveryManager) setEntry(identifier string, entry *api.DiscoveryEntry) {
	m.mux.Lock()
	defer m.mux.Unlock()

	m.entries[identifier] = entry
}

func (m *DiscoveryManager) removeEntry(identifier string) {
	m.mux.Lock()
	defer m.mux.Unlock()

	delete(m.entries, identifier)
}

// avahi sends an item for each network address, merge them into a new copy of the entry
func (m *DiscoveryManager) mergeAddresses(identifier string, addresses []net.IP) (bool, []net.IP) {
	m.mux.Lock()
	defer m.mux.Unlock()

	entry, ok := m.entries[identifier]
	if !ok {
		return false, nil
	}

	merged := make([]net.IP, len(entry.Addresses), len(entry.Addresses)+len(addresses))
	copy(merged, entry.Addresses)

	updated := false
	for _, address := range addresses {
		isNewElement := true

		for _, item := range merged {
			if item.Equal(address) {
				isNewElement = false
				break
			}
		}

		if isNewElement {
			merged = append(merged, address)
			updated = true
		}
	}

	if !updated {
		return false, merged
	}

	newEntry := *entry
	newEntry.Addresses = merged
	m.entries[identifier] = &newEntry

	return true, merged
}

// process a resolved mDNS service and manage the entries map
func (m *DiscoveryManager) processEntry(elements map[string]string, name, host string, addresses []net.IP, port int, remove bool) {
	// check for mandatory text elements
	for _, item := range []string{"txtvers", "id"} {
		if _, ok := elements[item]; !ok {
			logging.Log().Debug("discovery: txt - missing mandatory element", item)
			return
		}
	}

	txtvers := elements["txtvers"]
	if txtvers != "1" {
		logging.Log().Debug("discovery: txt - unknown txtvers", txtvers)
		return
	}

	identifier := elements["id"]
	if len(identifier) == 0 {
		logging.Log().Debug("discovery: txt - empty id")
		return
	}

	path := api.WebsocketPath
	if value, ok := elements["path"]; ok && len(value) > 0 {
		path = value
	}

	secure := false
	if value, ok := elements["tls"]; ok {
		if value != "true" && value != "false" {
			logging.Log().Debug("discovery: txt - tls value is not a text boolean", value)
			return
		}
		secure = value == "true"
	}

	// remove IPv6 local link addresses
	var newAddresses []net.IP
	for _, address := range addresses {
		if address.To4() == nil && address.IsLinkLocalUnicast() {
			continue
		}
		newAddresses = append(newAddresses, address)
	}
	addresses = newAddresses

	updated := false

	_, exists := m.entry(identifier)

	if remove && exists {
		updated = true
		// there will be a remove for each address with avahi, but we'll delete it right away
		m.removeEntry(identifier)

		logging.Log().Debug("discovery: remove - id:", identifier, "name:", name, "host:", host, "port:", port)
	} else if exists && !remove {
		var merged []net.IP
		updated, merged = m.mergeAddresses(identifier, addresses)

		if updated {
			logging.Log().Debug("discovery: update - id:", identifier, "name:", name, "host:", host, "port:", port, "addresses:", merged)
		}
	} else if !exists && !remove {
		if port <= 0 || (len(host) == 0 && len(addresses) == 0) {
			logging.Log().Debug("discovery: ignoring unreachable service", name)
			return
		}

		updated = true
		newEntry := &api.DiscoveryEntry{
			Name:       name,
			Identifier: identifier,
			Path:       path,
			Secure:     secure,
			Host:       host,
			Port:       port,
			Addresses:  addresses,
		}
		m.setEntry(identifier, newEntry)

		logging.Log().Debug("discovery: new - id:", identifier, "name:", name, "host:", host, "port:", port, "path:", path, "tls:", secure, "addresses:", addresses)
	}

	m.mux.Lock()
	report := m.report
	m.mux.Unlock()

	if report == nil || !updated {
		return
	}

	go report.ReportDiscoveryEntries(m.Entries())
}

// returns the websocket URLs to try for an entry, the host name first, then every address
func Endpoints(entry *api.DiscoveryEntry) []string {
	if entry == nil {
		return nil
	}

	scheme := "ws"
	if entry.Secure {
		scheme = "wss"
	}

	path := entry.Path
	if len(path) == 0 {
		path = api.WebsocketPath
	}

	port := strconv.Itoa(entry.Port)

	var hosts []string
	// mDNS host names are fully qualified
	if host := strings.TrimSuffix(entry.Host, "."); len(host) > 0 {
		hosts = append(hosts, host)
	}
	for _, address := range entry.Addresses {
		hosts = append(hosts, address.String())
	}

	var result []string
	for _, host := range hosts {
		u := url.URL{
			Scheme: scheme,
			Host:   net.JoinHostPort(host, port),
			Path:   path,
		}
		result = append(result, u.String())
	}

	return result
}
