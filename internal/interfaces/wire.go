package interfaces

import (
	"github.com/google/wire"
	"github.com/mdvault/backend/internal/interfaces/http"
)

// ProviderSet Interfaces 层总 ProviderSet
var ProviderSet = wire.NewSet(
	http.ProviderSet,
)
