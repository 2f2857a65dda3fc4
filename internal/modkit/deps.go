package modkit

import (
	"exposure/internal/platform/config"
	"exposure/internal/platform/logger"
)

// Deps holds core dependencies passed to modules. This is wiring only and
// does not introduce new abstractions; module-owned stores live behind the
// module's own ports
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
}

// ZeroOK returns true when deps are safe to use with zero values in tests
func (d Deps) ZeroOK() bool { return true }
