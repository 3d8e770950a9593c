package bootstrap

import (
	"fmt"
	"net/http"

	"github.com/jonesrussell/omnibar/internal/api"
	"github.com/jonesrussell/omnibar/internal/config"
	"github.com/jonesrussell/omnibar/internal/database"
	"github.com/jonesrussell/omnibar/internal/events"
	"github.com/jonesrussell/omnibar/internal/handlers"
	"github.com/jonesrussell/omnibar/internal/importer"
	"github.com/jonesrussell/omnibar/internal/logger"
	"github.com/jonesrussell/omnibar/internal/settings"
	"github.com/jonesrussell/omnibar/internal/suggest"
)

// SetupHTTPServer wires the suggestion sources and handlers into an HTTP
// server. Source order decides completion priority: custom domains first,
// then the bundled top domains.
func SetupHTTPServer(
	cfg *config.Config,
	db *database.DB,
	publisher *events.Publisher,
	log logger.Logger,
) *http.Server {
	store := settings.NewPostgres(db.DB(), log)

	custom := suggest.NewCustomSource(store, log)
	static := suggest.NewStaticSource(store, log, cfg.Suggest.TopDomainsPath)
	completer := suggest.NewCompleter(log, custom, static)

	imp := importer.NewImporter(custom, log)

	completeHandler := handlers.NewCompleteHandler(completer, log)
	domainHandler := handlers.NewDomainHandler(custom, imp, publisher, log)
	toggleHandler := handlers.NewToggleHandler(store, log)

	router := api.NewRouter(cfg, completeHandler, domainHandler, toggleHandler, log)

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
