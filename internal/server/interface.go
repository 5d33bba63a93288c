package server

import "context"

// Server defines the interface for the HTTP front end
type Server interface {
	Start() error
	Stop(ctx context.Context) error
}
