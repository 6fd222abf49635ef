package discovery

import (
	"context"
	"net"
	"sync"

	"github.com/DerAndereAndi/zeroconf/v2"
	"github.com/hostdeck/wsconnect/api"
)

// ZeroconfProvider browses with the Go native mDNS implementation
type ZeroconfProvider struct {
	ifaces []net.Interface

	ctx    context.Context
	cancel context.CancelFunc

	shutdownOnce sync.Once
}

func NewZeroconfProvider(ifaces []net.Interface) *ZeroconfProvider {
	ctx, cancel := context.WithCancel(context.Background())

	return &ZeroconfProvider{
		ifaces: ifaces,
		ctx:    ctx,
		cancel: cancel,
	}
}

var _ api.DiscoveryProviderInterface = (*ZeroconfProvider)(nil)

func (z *ZeroconfProvider) CheckAvailability() bool {
	return true
}

func (z *ZeroconfProvider) Shutdown() {
	z.shutdownOnce.Do(func() {
		z.cancel()
	})
}

// browse until Shutdown is called
func (z *ZeroconfProvider) ResolveEntries(callback api.DiscoveryResolveCB) {
	zcEntries := make(chan *zeroconf.ServiceEntry)
	zcRemoved := make(chan *zeroconf.ServiceEntry)

	var opts []zeroconf.ClientOption
	if len(z.ifaces) > 0 {
		opts = append(opts, zeroconf.SelectIfaces(z.ifaces))
	}

	go func() {
		_ = zeroconf.Browse(z.ctx, zeroconfServiceType, zeroconfDomain, zcEntries, zcRemoved, opts...)
	}()

	for {
		select {
		case <-z.ctx.Done():
			return
		case service := <-zcRemoved:
			z.processService(service, true, callback)
		case service := <-zcEntries:
			z.processService(service, false, callback)
		}
	}
}

func (z *ZeroconfProvider) processService(service *zeroconf.ServiceEntry, remove bool, callback api.DiscoveryResolveCB) {
	// Zeroconf has issues with merging mDNS data and sometimes reports incomplete records
	if service == nil || len(service.Text) == 0 {
		return
	}

	elements := parseTxt(service.Text)

	// Only use IPv4 for now
	callback(elements, service.Instance, service.HostName, service.AddrIPv4, service.Port, remove)
}
