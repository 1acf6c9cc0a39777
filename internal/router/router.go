package router

import (
	"time"

	"github.com/anonto42/medishare/backend/internal/handlers"
	"github.com/anonto42/medishare/backend/internal/middleware"
	"github.com/anonto42/medishare/backend/internal/repositories"
	"github.com/anonto42/medishare/backend/internal/repositories/memory"
	"github.com/anonto42/medishare/backend/internal/services"
	"github.com/anonto42/medishare/backend/pkg/config"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Repositories is the storage backing one server instance.
type Repositories struct {
	Users         repositories.UserRepository
	Listings      repositories.ListingRepository
	Requests      repositories.RequestRepository
	Notifications repositories.NotificationRepository
	Feedback      repositories.FeedbackRepository
}

// SQLRepositories backs accounts, requests, notifications and feedback with
// gorm and the catalog with Mongo.
func SQLRepositories(db *config.DB) Repositories {
	return Repositories{
		Users:         repositories.NewPostgresUserRepository(db.SQL),
		Listings:      repositories.NewMongoListingRepository(db.MongoDB),
		Requests:      repositories.NewPostgresRequestRepository(db.SQL),
		Notifications: repositories.NewPostgresNotificationRepository(db.SQL),
		Feedback:      repositories.NewPostgresFeedbackRepository(db.SQL),
	}
}

// MemoryRepositories backs everything with the in-process store.
func MemoryRepositories(store *memory.Store) Repositories {
	return Repositories{
		Users:         store.Users,
		Listings:      store.Listings,
		Requests:      store.Requests,
		Notifications: store.Notifications,
		Feedback:      store.Feedback,
	}
}

// Options carries the non-storage collaborators. Firebase and Publisher may
// be nil.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	Firebase  services.FirebaseTokenVerifier
	Publisher services.NotificationPublisher
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, repos Repositories, opts Options) {
	e.GET("/health", handlers.HealthCheck)

	// --- Services ---
	accounts := services.NewAccountService(repos.Users, opts.JWTSecret, opts.TokenTTL, opts.Firebase)
	catalog := services.NewCatalogService(repos.Listings, repos.Users)
	ledger := services.NewRequestLedger(repos.Requests, catalog, repos.Users)
	outbox := services.NewNotificationOutbox(repos.Notifications, opts.Publisher)
	workflow := services.NewMatchingWorkflow(ledger, outbox)
	reputation := services.NewReputationService(repos.Feedback, accounts, catalog, ledger)

	// --- Unprotected routes ---
	public := e.Group("/api")
	authHandler := handlers.NewAuthHandler(accounts, opts.Firebase != nil)
	authHandler.RegisterAuthRoutes(public)
	catalogHandler := handlers.NewCatalogHandler(catalog)
	catalogHandler.RegisterPublicRoutes(public)
	logrus.Debug("public routes configured")

	// --- Protected routes (require JWT authentication) ---
	protected := e.Group("/api", middleware.JWTAuthMiddleware(opts.JWTSecret))
	catalogHandler.RegisterProtectedRoutes(protected)
	handlers.NewRequestHandler(workflow, ledger).RegisterRequestRoutes(protected)
	handlers.NewNotificationHandler(outbox).RegisterNotificationRoutes(protected)
	handlers.NewProfileHandler(reputation).RegisterProfileRoutes(protected)
	logrus.Debug("protected routes configured")
}
