package module

import (
	"legallens/internal/core/catalog"
	"legallens/internal/services/api/catalog/domain"
)

// Ports are what the catalog module offers other modules
type Ports struct {
	// Catalogs is the live holder the resolver reads on every query
	Catalogs *catalog.Holder
	Service  domain.ServicePort
}

// Ports implements the module interface
func (m *Module) Ports() any { return Ports{Catalogs: m.svc.Holder(), Service: m.svc} }
