package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/hostdeck/wsconnect/api"
	"github.com/hostdeck/wsconnect/config"
	"github.com/hostdeck/wsconnect/connection"
	"github.com/hostdeck/wsconnect/discovery"
	"github.com/hostdeck/wsconnect/dispatch"
	"github.com/hostdeck/wsconnect/logging"
	"github.com/hostdeck/wsconnect/model"
	"github.com/hostdeck/wsconnect/ws"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// Build information, set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "hostdeck-tap",
		Usage:   "follow the live notification channel of a hostdeck console",
		Version: fmt.Sprintf("%s (commit: %s)", Version, Commit),
		Flags:   flags(),
		Action:  run,
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML configuration file",
			EnvVars: []string{"HOSTDECK_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "origin",
			Aliases: []string{"o"},
			Usage:   "console page origin, e.g. https://console.example.com",
			EnvVars: []string{"HOSTDECK_ORIGIN"},
		},
		&cli.StringFlag{
			Name:    "endpoint",
			Aliases: []string{"e"},
			Usage:   "websocket URL, overrides the origin",
			EnvVars: []string{"HOSTDECK_ENDPOINT"},
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "bearer token for the upgrade request",
			EnvVars: []string{"HOSTDECK_TOKEN"},
		},
		&cli.BoolFlag{
			Name:  "discover",
			Usage: "find the console via mDNS if no endpoint is set",
		},
		&cli.DurationFlag{
			Name:  "reconnect-delay",
			Usage: "fixed delay before reconnecting",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "trace, debug, info, warn or error",
		},
		&cli.StringFlag{
			Name:  "send",
			Usage: "JSON message to send every time the connection opens",
		},
		&cli.BoolFlag{
			Name:  "redis",
			Usage: "relay notifications to Redis pub/sub",
		},
		&cli.IntFlag{
			Name:  "count",
			Usage: "exit after this many notifications, 0 runs until interrupted",
		},
	}
}

// load the configuration file if given and apply the command line flags on top
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.LoadWithDefaults(path); err != nil {
			return nil, err
		}
	}

	if c.IsSet("origin") {
		cfg.Connection.Origin = c.String("origin")
	}
	if c.IsSet("endpoint") {
		cfg.Connection.Endpoint = c.String("endpoint")
	}
	if c.IsSet("token") {
		cfg.Connection.Token = c.String("token")
	}
	if c.IsSet("reconnect-delay") {
		cfg.Connection.ReconnectDelay = c.Duration("reconnect-delay")
		cfg.Connection.Backoff.Enabled = false
	}
	if c.Bool("discover") {
		cfg.Discovery.Enabled = true
	}
	if c.Bool("redis") {
		cfg.Redis.Enabled = true
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func setupLogging(level string, out io.Writer) {
	logger := zerolog.New(out).With().Timestamp().Logger().Level(logging.ParseLevel(level))
	logging.SetLogging(logging.NewZerologLogger(logger))
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	setupLogging(cfg.Log.Level, c.App.ErrWriter)

	var outbound json.RawMessage
	if send := c.String("send"); send != "" {
		if !json.Valid([]byte(send)) {
			return errors.New("--send is not valid JSON")
		}
		outbound = json.RawMessage(send)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	endpoint, err := cfg.Connection.WebsocketEndpoint()
	if err != nil {
		return err
	}
	if endpoint == "" {
		if endpoint, err = discoverEndpoint(ctx, &cfg.Discovery); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bridge := dispatch.NewBridge()
	printer := newPrinter(c.App.Writer, c.Int("count"), cancel)
	defer bridge.Subscribe(printer).Unsubscribe()

	if cfg.Redis.Enabled {
		relay := dispatch.NewRedisRelay(cfg.Redis.RelayConfig())
		if err := relay.Start(); err != nil {
			return fmt.Errorf("redis relay: %w", err)
		}
		defer func() {
			if err := relay.Stop(); err != nil {
				logging.Log().Debug("redis relay stop:", err)
			}
		}()
		defer bridge.Subscribe(relay).Unsubscribe()
	}

	dialer := ws.NewDialer(cfg.Connection.HandshakeTimeout, staticToken(cfg.Connection.Token), nil)
	observer := &stateObserver{}

	manager := connection.NewManager(endpoint, dialer, bridge,
		connection.WithReconnectPolicy(cfg.Connection.ReconnectPolicy()),
		connection.WithStateReader(observer))

	if outbound != nil {
		observer.onOpen = func() {
			if err := manager.Send(outbound); err != nil {
				logging.Log().Error("sending message failed:", err)
			}
		}
	}
	observer.onExhausted = cancel

	logging.Log().Info("connecting to", endpoint)

	if err := manager.Connect(); err != nil {
		return err
	}
	defer manager.Disconnect()

	<-ctx.Done()

	return nil
}

// discover the console on the local network and return its first websocket URL
func discoverEndpoint(ctx context.Context, cfg *config.DiscoveryConfig) (string, error) {
	if !cfg.Enabled {
		return "", errors.New("no endpoint configured, set --origin, --endpoint or --discover")
	}

	found := make(chan string, 1)
	manager := discovery.NewDiscovery(cfg.Interfaces, cfg.ProviderSelection())
	if err := manager.Start(discoveryReport(func(entries map[string]*api.DiscoveryEntry) {
		for _, entry := range entries {
			if endpoints := discovery.Endpoints(entry); len(endpoints) > 0 {
				select {
				case found <- endpoints[0]:
				default:
				}
				return
			}
		}
	})); err != nil {
		return "", err
	}
	defer manager.Shutdown()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	select {
	case endpoint := <-found:
		logging.Log().Info("discovered console at", endpoint)
		return endpoint, nil
	case <-ctx.Done():
		return "", fmt.Errorf("no console found: %w", ctx.Err())
	}
}

type discoveryReport func(entries map[string]*api.DiscoveryEntry)

func (d discoveryReport) ReportDiscoveryEntries(entries map[string]*api.DiscoveryEntry) {
	d(entries)
}

type staticToken string

func (s staticToken) Token() string {
	return string(s)
}

// logs connection state changes and triggers the configured actions
type stateObserver struct {
	onOpen      func()
	onExhausted func()
}

func (s *stateObserver) HandleConnectionStateUpdate(detail model.ConnectionStateDetail) {
	if detail.Error != nil {
		logging.Log().Info("connection", detail.State, "-", detail.Error)
	} else {
		logging.Log().Info("connection", detail.State)
	}

	switch {
	case detail.State == model.ConnectionStateOpen && s.onOpen != nil:
		go s.onOpen()
	case errors.Is(detail.Error, connection.ErrReconnectExhausted) && s.onExhausted != nil:
		s.onExhausted()
	}
}

// writes every notification as one line
type printer struct {
	out   io.Writer
	limit int
	done  func()

	count int
	mux   sync.Mutex
}

func newPrinter(out io.Writer, limit int, done func()) *printer {
	return &printer{out: out, limit: limit, done: done}
}

func (p *printer) HandleMessage(msg *model.Message) {
	p.mux.Lock()
	defer p.mux.Unlock()

	if p.limit > 0 && p.count >= p.limit {
		return
	}

	fmt.Fprintln(p.out, msg.String())

	p.count++
	if p.limit > 0 && p.count == p.limit {
		p.done()
	}
}
