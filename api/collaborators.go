package api

import (
	"context"
	"io"

	"github.com/hostdeck/wsconnect/model"
)

/* Collaborators of the connectivity layer, implemented by the console application */

// provides the bearer token attached to the websocket upgrade request
//
// implemented by the session store, used by ws.Dialer
type TokenSourceInterface interface {
	// returns an empty string if there is no session
	Token() string
}

// REST access to the console server, every request carries the session bearer token
type RestClientInterface interface {
	Register(ctx context.Context, username, password string) (*model.AuthResponse, error)
	Login(ctx context.Context, username, password string) (*model.AuthResponse, error)

	CreateHost(ctx context.Context, host *model.Host) (*model.Host, error)
	Hosts(ctx context.Context) ([]*model.Host, error)
	Host(ctx context.Context, id string) (*model.Host, error)
	DeleteHost(ctx context.Context, id string) error

	BrowseFiles(ctx context.Context, hostID, path string) ([]*model.FileEntry, error)
	DownloadFile(ctx context.Context, hostID, path string) (io.ReadCloser, error)
	UploadFile(ctx context.Context, hostID, path string, content io.Reader) error
	DeleteFile(ctx context.Context, hostID, path string) error
	CreateDirectory(ctx context.Context, hostID, path string) error
}

// holds the session, may react to pushed updates by subscribing as a MessageListenerInterface
type SessionStoreInterface interface {
	TokenSourceInterface

	IsAuthenticated() bool
	User() *model.User
	Login(ctx context.Context, username, password string) bool
	Register(ctx context.Context, username, password string) bool
	Logout()
}

// holds the host inventory, may react to pushed updates by subscribing as a MessageListenerInterface
type HostStoreInterface interface {
	Hosts() []*model.Host
	CurrentHost() *model.Host
	SetCurrentHost(host *model.Host)
	FetchHosts(ctx context.Context) error
	CreateHost(ctx context.Context, host *model.Host) bool
	DeleteHost(ctx context.Context, id string) bool
}

// persisted light/dark setting, optionally following the OS preference
type PreferenceServiceInterface interface {
	Theme() model.Theme
	SetTheme(theme model.Theme)
	FollowSystem() bool
	SetFollowSystem(follow bool)
}
