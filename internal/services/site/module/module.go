// Package module defines the contract site feature modules implement.
package module

import "net/http"

// Mount is a module's handler bound to the exact path it serves.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is one independently mountable site feature.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
