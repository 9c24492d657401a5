package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mrfixit/internal/browse"
	"mrfixit/internal/config"
	"mrfixit/internal/database"
	"mrfixit/internal/handlers"
	"mrfixit/internal/middleware"
	"mrfixit/internal/repositories"
	"mrfixit/internal/seed"
	"mrfixit/internal/services"
	"mrfixit/internal/slides"
	"mrfixit/pkg/rabbitmq"
)

// server wires the storefront together and owns everything that must be
// released on shutdown.
type server struct {
	app      *fiber.App
	rotator  *slides.Rotator
	sessions *browse.Manager
	db       *gorm.DB
	mq       *rabbitmq.Client
	cancel   context.CancelFunc
}

type stores struct {
	products repositories.ProductRepository
	blog     repositories.BlogRepository
	content  repositories.ContentRepository
}

func openStores(cfg *config.Config) (stores, *gorm.DB, error) {
	if cfg.DatabaseDriver == "memory" {
		return stores{
			products: repositories.NewMockProductRepository(),
			blog:     repositories.NewMockBlogRepository(),
			content:  repositories.NewMockContentRepository(),
		}, nil, nil
	}

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return stores{}, nil, err
	}
	return stores{
		products: repositories.NewGORMProductRepository(db),
		blog:     repositories.NewGORMBlogRepository(db),
		content:  repositories.NewGORMContentRepository(db),
	}, db, nil
}

// newServer builds the application. A RabbitMQ URL that cannot be reached
// is logged and publishing is disabled; storage errors are fatal.
func newServer(cfg *config.Config, logger *zap.Logger) (*server, error) {
	st, db, err := openStores(cfg)
	if err != nil {
		return nil, err
	}
	if err := seed.Load(st.products, st.blog, st.content); err != nil {
		return nil, fmt.Errorf("failed to seed storefront: %w", err)
	}

	s := &server{db: db}

	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, logger)
		if err != nil {
			logger.Warn("rabbitmq unavailable, events will not be published", zap.Error(err))
		} else {
			s.mq = mq
			publisher = mq
			if err := mq.Consume(rabbitmq.LogEvent(logger)); err != nil {
				logger.Warn("failed to start event consumer", zap.Error(err))
			}
		}
	} else {
		logger.Info("RABBITMQ_URL not set, events will not be published")
	}

	slideSet, err := st.content.GetSlides()
	if err != nil {
		return nil, fmt.Errorf("failed to load slides: %w", err)
	}

	catalogService := services.NewCatalogService(st.products, st.content, cfg.ProductsPerPage, cfg.SimulatedLatency)
	blogService := services.NewBlogService(st.blog, seed.BlogCategories(), cfg.BlogPostsPerPage, cfg.SimulatedLatency)
	contentService := services.NewContentService(st.content, blogService, services.StaticContent{
		Values:       seed.CompanyValues(),
		Testimonials: seed.Testimonials(),
		History:      seed.History(),
	})
	contactService := services.NewContactService(publisher, logger)
	cartService := services.NewCartService(st.products, publisher, logger)

	s.rotator = slides.New(slideSet, slides.WithInterval(cfg.HeroAutoplay))
	s.sessions = browse.NewManager(catalogService, cfg.ProductsPerPage, cfg.BrowseSessionTTL, logger)

	app := fiber.New(fiber.Config{
		AppName:               "mrfixit",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(logger))
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		mqStatus := "disabled"
		if s.mq != nil {
			mqStatus = "connected"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": cfg.DatabaseDriver,
			"rabbitmq": mqStatus,
		})
	})

	apiV1 := app.Group("/api/v1")
	handlers.NewProductHandler(catalogService, logger).RegisterRoutes(apiV1)
	handlers.NewBlogHandler(blogService, logger).RegisterRoutes(apiV1)
	handlers.NewHeroHandler(s.rotator).RegisterRoutes(apiV1)
	handlers.NewContentHandler(contentService, logger).RegisterRoutes(apiV1)
	handlers.NewContactHandler(contactService, logger).RegisterRoutes(apiV1)
	handlers.NewCartHandler(cartService, logger).RegisterRoutes(apiV1)
	handlers.NewBrowseHandler(s.sessions, cfg.BrowseSessionTTL, logger).RegisterRoutes(apiV1)

	s.app = app
	return s, nil
}

// start launches the background workers: hero autoplay and session expiry.
func (s *server) start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.rotator.Start()
	go s.sessions.Run(ctx)
}

func (s *server) close() error {
	if s.cancel != nil {
		s.cancel()
	}
	s.rotator.Close()

	var err error
	if s.mq != nil {
		err = multierr.Append(err, s.mq.Close())
	}
	if s.db != nil {
		err = multierr.Append(err, database.Close(s.db))
	}
	return err
}

func main() {
	cfg, err := config.Load(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	srv, err := newServer(cfg, logger)
	if err != nil {
		logger.Fatal("failed to start storefront", zap.Error(err))
	}
	srv.start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("starting server", zap.String("addr", cfg.AppPort), zap.String("database", cfg.DatabaseDriver))
		if err := srv.app.Listen(cfg.AppPort); err != nil {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down server")

	if err := srv.app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("error during fiber shutdown", zap.Error(err))
	}
	if err := srv.close(); err != nil {
		logger.Error("error releasing resources", zap.Error(err))
	}
	logger.Info("server gracefully stopped")
}
