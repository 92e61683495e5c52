package application

import (
	"github.com/google/wire"
	"github.com/mdvault/backend/internal/application/monitor"
)

// ProviderSet Application 层总 ProviderSet
var ProviderSet = wire.NewSet(
	monitor.ProviderSet,
)
