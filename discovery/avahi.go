package discovery

import (
	"fmt"
	"net"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/holoplot/go-avahi"
	"github.com/hostdeck/wsconnect/api"
	"github.com/hostdeck/wsconnect/logging"
)

// AvahiProvider browses via the avahi daemon on the system D-Bus
type AvahiProvider struct {
	ifaceIndexes []int32

	avServer *avahi.Server

	shutdownOnce sync.Once

	// Used to store the service elements for each service, so that we can recall them when a service is removed
	serviceElements map[string]map[string]string

	shutdownChan chan struct{}

	mux sync.Mutex
}

func NewAvahiProvider(ifaceIndexes []int32) *AvahiProvider {
	return &AvahiProvider{
		ifaceIndexes:    ifaceIndexes,
		shutdownChan:    make(chan struct{}),
		serviceElements: make(map[string]map[string]string),
	}
}

var _ api.DiscoveryProviderInterface = (*AvahiProvider)(nil)

func (a *AvahiProvider) CheckAvailability() bool {
	a.mux.Lock()
	defer a.mux.Unlock()

	dbusConn, err := dbus.SystemBus()
	if err != nil {
		return false
	}

	a.avServer, err = avahi.ServerNew(dbusConn)
	if err != nil {
		return false
	}

	if _, err := a.avServer.GetAPIVersion(); err != nil {
		return false
	}

	avBrowser, err := a.avServer.ServiceBrowserNew(avahi.InterfaceUnspec, avahi.ProtoUnspec, zeroconfServiceType, zeroconfDomain, 0)
	if err != nil {
		return false
	}

	if avBrowser != nil {
		a.avServer.ServiceBrowserFree(avBrowser)
		return true
	}

	return false
}

func (a *AvahiProvider) Shutdown() {
	a.mux.Lock()
	defer a.mux.Unlock()

	a.shutdownOnce.Do(func() {
		close(a.shutdownChan)

		if a.avServer == nil {
			return
		}

		a.avServer.Close()
		a.avServer = nil
	})
}

// browse until Shutdown is called
func (a *AvahiProvider) ResolveEntries(callback api.DiscoveryResolveCB) {
	a.mux.Lock()

	if a.avServer == nil {
		a.mux.Unlock()
		return
	}

	// instead of limiting search on specific allowed interfaces, we allow all and filter the results
	avBrowser, err := a.avServer.ServiceBrowserNew(avahi.InterfaceUnspec, avahi.ProtoUnspec, zeroconfServiceType, zeroconfDomain, 0)
	if err != nil {
		logging.Log().Debug("discovery: error setting up avahi browser:", err)
		a.mux.Unlock()
		return
	}

	if avBrowser == nil {
		logging.Log().Debug("discovery: avahi browser is not available")
		a.mux.Unlock()
		return
	}

	a.mux.Unlock()

	defer func() {
		a.mux.Lock()

		if a.avServer != nil {
			a.avServer.ServiceBrowserFree(avBrowser)
		}

		a.mux.Unlock()
	}()

	for {
		select {
		case <-a.shutdownChan:
			return
		case service := <-avBrowser.AddChannel:
			if err := a.processService(service, false, callback); err != nil {
				logging.Log().Debug("discovery: avahi -", err)
			}
		case service := <-avBrowser.RemoveChannel:
			if err := a.processService(service, true, callback); err != nil {
				logging.Log().Debug("discovery: avahi -", err)
			}
		}
	}
}

// process an avahi mDNS service
// as avahi returns a service per interface, we need to combine them
func (a *AvahiProvider) processService(service avahi.Service, remove bool, cb api.DiscoveryResolveCB) error {
	if !a.interfaceAllowed(service.Interface) {
		return fmt.Errorf("ignoring service as its interface is not in the allowed list: %s", service.Name)
	}

	if remove {
		return a.processRemovedService(service, cb)
	}

	a.mux.Lock()
	server := a.avServer
	a.mux.Unlock()

	if server == nil {
		return fmt.Errorf("avahi is shut down, ignoring service: %s", service.Name)
	}

	resolved, err := server.ResolveService(service.Interface, service.Protocol, service.Name, service.Type, service.Domain, avahi.ProtoUnspec, 0)
	if err != nil {
		return fmt.Errorf("error resolving service: %s error: %s", service.Name, err)
	}

	return a.processAddedService(resolved, cb)
}

func (a *AvahiProvider) interfaceAllowed(iface int32) bool {
	if len(a.ifaceIndexes) == 1 && a.ifaceIndexes[0] == avahi.InterfaceUnspec {
		return true
	}

	for _, item := range a.ifaceIndexes {
		if item == iface {
			return true
		}
	}

	return false
}

func (a *AvahiProvider) processRemovedService(service avahi.Service, cb api.DiscoveryResolveCB) error {
	key := serviceUniqueKey(service)

	a.mux.Lock()
	elements, ok := a.serviceElements[key]
	delete(a.serviceElements, key)
	a.mux.Unlock()

	if !ok {
		return fmt.Errorf("removed service was never resolved: %s", service.Name)
	}

	cb(elements, service.Name, service.Host, nil, -1, true)

	return nil
}

func (a *AvahiProvider) processAddedService(service avahi.Service, cb api.DiscoveryResolveCB) error {
	var txt []string
	for _, element := range service.Txt {
		txt = append(txt, string(element))
	}
	elements := parseTxt(txt)

	address := net.ParseIP(service.Address)
	// if the address can not be used, ignore the entry
	if address == nil || address.IsUnspecified() {
		return fmt.Errorf("service provides unusable address: %s", service.Name)
	}

	// only IPv4 for now
	if address.To4() == nil {
		return fmt.Errorf("no IPv4 addresses available %s", service.Name)
	}

	a.mux.Lock()
	a.serviceElements[serviceUniqueKey(service)] = elements
	a.mux.Unlock()

	cb(elements, service.Name, service.Host, []net.IP{address}, int(service.Port), false)

	return nil
}

// Create a unique key for a service
func serviceUniqueKey(service avahi.Service) string {
	return fmt.Sprintf("%s-%s-%s-%d-%d", service.Name, service.Type, service.Domain, service.Protocol, service.Interface)
}
