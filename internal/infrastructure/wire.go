package infrastructure

import (
	"github.com/google/wire"
	"github.com/mdvault/backend/internal/infrastructure/config"
	"github.com/mdvault/backend/internal/infrastructure/notification"
	"github.com/mdvault/backend/internal/infrastructure/watcher"
	"github.com/mdvault/backend/internal/infrastructure/websocket"
)

// ProviderSet Infrastructure 层总 ProviderSet
var ProviderSet = wire.NewSet(
	config.ProviderSet,
	websocket.ProviderSet,
	notification.ProviderSet,
	watcher.ProviderSet,
)
