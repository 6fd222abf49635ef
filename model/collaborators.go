package model

import "time"

// data exchanged with the console REST API, only used by collaborator interfaces

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// returned by login and register
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type HostType string

const (
	HostTypeLocal HostType = "local"
	HostTypeHttp  HostType = "http"
	HostTypeSftp  HostType = "sftp"
)

type HostConfig struct {
	Path     *string `json:"path,omitempty"`
	URL      *string `json:"url,omitempty"`
	Host     *string `json:"host,omitempty"`
	Port     *uint16 `json:"port,omitempty"`
	Username *string `json:"username,omitempty"`
}

type Host struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Name      string     `json:"name"`
	HostType  HostType   `json:"host_type"`
	Config    HostConfig `json:"config"`
	CreatedAt time.Time  `json:"created_at"`
}

type FileEntry struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	IsDir    bool      `json:"is_dir"`
	Size     uint64    `json:"size"`
	Modified time.Time `json:"modified"`
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)
