package module

import (
	dsdomain "exposure/internal/services/datasets/domain"
	expdomain "exposure/internal/services/explorer/domain"
)

// Ports are the port sets other modules can pull from the registry
type Ports struct {
	Datasets dsdomain.ServicePort
	Explorer expdomain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
