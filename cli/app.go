// cli/app.go
package cli

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pcbinspect/client/audit"
	"github.com/pcbinspect/client/config"
	"github.com/pcbinspect/client/controller"
	"github.com/pcbinspect/client/dao"
	"github.com/pcbinspect/client/db"
	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/service"
	"github.com/pcbinspect/client/util"
)

// App is one wired client: storage, backend client, services and views.
type App struct {
	Services *service.Services
	Views    *controller.Controllers
	Audit    audit.Service
	Out      io.Writer

	store    db.Store
	eventBus *util.EventBus
	cancel   context.CancelFunc
}

// NewApp wires the client for cfg. Alerts go to errOut, command output to out.
func NewApp(ctx context.Context, cfg *config.Configuration, out, errOut io.Writer) (*App, error) {
	store, err := db.NewStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open session storage: %w", err)
	}

	client, err := dao.NewClient(ctx, cfg.API.BaseURL, cfg.API.Timeout, store)
	if err != nil {
		return nil, err
	}

	busCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	eventBus := util.NewEventBus()
	eventBus.Start(busCtx)

	auditService := audit.NewService(newAuditRepository(cfg.Audit, store))
	audit.Subscribe(eventBus, auditService)

	services, err := service.InitializeServices(client, store, util.NewValidationUtil(), eventBus)
	if err != nil {
		cancel()
		return nil, err
	}

	logger.Debug("Client wired",
		zap.String("baseURL", client.BaseURL()),
		zap.String("storage", cfg.Storage.Backend))

	return &App{
		Services: services,
		Views:    controller.InitializeControllers(services, util.NewNotificationService(errOut)),
		Audit:    auditService,
		Out:      out,
		store:    store,
		eventBus: eventBus,
		cancel:   cancel,
	}, nil
}

// Elasticsearch when configured, otherwise the log plus the client store.
func newAuditRepository(cfg config.AuditConfiguration, store db.Store) audit.Repository {
	if cfg.ElasticsearchURL == "" {
		return audit.NewLogRepository(store)
	}
	repo, err := audit.NewElasticsearchRepository(cfg.ElasticsearchURL, cfg.Index)
	if err != nil {
		logger.Warn("Falling back to log audit repository", zap.Error(err))
		return audit.NewLogRepository(store)
	}
	return repo
}

// Close waits for pending event handlers and releases the store.
func (a *App) Close() error {
	a.eventBus.Wait()
	a.cancel()
	if c, ok := a.store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
