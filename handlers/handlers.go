package handlers

import (
	"purebiz_laundry_go/services"

	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers with the services they call. It is built
// once in main and its methods are registered as routes.
type Handlers struct {
	relay    *services.Relay
	catalog  *services.Catalog
	carousel *services.Carousel
	logger   *zap.Logger
}

func NewHandlers(relay *services.Relay, catalog *services.Catalog, carousel *services.Carousel, logger *zap.Logger) *Handlers {
	return &Handlers{
		relay:    relay,
		catalog:  catalog,
		carousel: carousel,
		logger:   logger,
	}
}
