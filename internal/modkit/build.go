package modkit

import (
	"net/http"

	"legallens/internal/modkit/httpkit"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	// router hooks set via options and exposed to modules
	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.subrouter == nil {
		c.subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		Subrouter: c.subrouter,
		Register:  c.register,
	}
}

// Mount routes b's module under its prefix, applying the module middlewares,
// the subrouter hook, own then b.Register
func (b Built) Mount(r httpkit.Router, own func(httpkit.Router)) {
	r.Route(b.Prefix, func(rr httpkit.Router) {
		if len(b.Mw) > 0 {
			rr.Use(b.Mw...)
		}
		rr = b.Subrouter(rr)
		if own != nil {
			own(rr)
		}
		b.Register(rr)
	})
}
