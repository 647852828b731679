package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "smeta/docs" // swagger docs
	"smeta/internal/adapter/http/handlers"
	"smeta/internal/adapter/persistence/repository"
	"smeta/internal/infrastructure/database"
	"smeta/internal/infrastructure/pdf"
	"smeta/internal/usecase"
	"smeta/internal/usecase/interfaces"
	"smeta/pkg/config"
	"smeta/pkg/money"
)

const shutdownTimeout = 10 * time.Second

// Handlers are the HTTP entry points mounted by NewRouter.
type Handlers struct {
	Drafts  *handlers.DraftHandler
	Pricing *handlers.PricingHandler
}

// Run wires the service from cfg and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	h, err := buildHandlers(ctx, cfg)
	if err != nil {
		return err
	}
	if cfg.App.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("storage", cfg.Storage.Driver).Msg("[http][server] listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter mounts every route on a fresh engine.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, h.Pricing)
	addDraftRoutes(v1, h.Drafts)
	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config) (Handlers, error) {
	repo, err := newDocumentRepository(ctx, cfg)
	if err != nil {
		return Handlers{}, err
	}

	formatter := money.NewFormatterFromLocale(cfg.PDF.Locale)

	var renderer interfaces.IDocumentRenderer
	marotoRenderer, err := pdf.NewMarotoRenderer(formatter, cfg.PDF.FontFile)
	if err != nil {
		log.Error().Err(err).Msg("[pdf][infra] renderer not configured; PDF downloads disabled")
	} else {
		renderer = marotoRenderer
	}

	draftUseCase := usecase.NewDraftUseCase(repo, renderer)

	return Handlers{
		Drafts:  handlers.NewDraftHandler(draftUseCase, formatter, cfg.Storage.DefaultSlot),
		Pricing: handlers.NewPricingHandler(formatter),
	}, nil
}

func newDocumentRepository(ctx context.Context, cfg *config.Config) (interfaces.IDocumentRepository, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return nil, err
		}
		return repository.NewDocumentDynamoRepository(ddb, cfg.Storage.DraftsTable), nil
	case config.StorageDriverFile, "":
		return repository.NewDocumentFileRepository(cfg.Storage.Dir), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}
