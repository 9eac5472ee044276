package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/clubvision/clubvision/docs"
	"github.com/clubvision/clubvision/internal/auth"
	"github.com/clubvision/clubvision/internal/bulkupload"
	"github.com/clubvision/clubvision/internal/config"
	"github.com/clubvision/clubvision/internal/database"
	"github.com/clubvision/clubvision/internal/dependent"
	"github.com/clubvision/clubvision/internal/eventpass"
	"github.com/clubvision/clubvision/internal/membership"
	"github.com/clubvision/clubvision/internal/user"
	mw "github.com/clubvision/clubvision/pkg/middleware"
)

// @title           Club Vision API
// @version         1.0
// @description     Backend for the club membership application: OTP login, memberships, dependents, event passes, and admin bulk upload.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize redis for the OTP store
	redisClient, err := database.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	logger.Info("Connected to database and redis")

	// User directory
	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo)

	// Auth feature
	otpStore := auth.NewOTPStore(redisClient)
	authService := auth.NewService(otpStore, userService, logger)
	authHandler := auth.NewHandler(authService)

	// Dependent feature
	dependentRepo := dependent.NewRepository(db)
	dependentService := dependent.NewService(dependentRepo)
	dependentHandler := dependent.NewHandler(dependentService)

	// Membership feature
	membershipRepo := membership.NewRepository(db)
	membershipService := membership.NewService(membershipRepo)
	membershipHandler := membership.NewHandler(membershipService)

	// Event pass feature
	passRepo := eventpass.NewRepository(db)
	passService := eventpass.NewService(passRepo, membershipService)
	passHandler := eventpass.NewHandler(passService, membershipService)

	// Bulk upload pipeline (with directory/ledger collaborators injected)
	bulkService := bulkupload.NewService(userService, dependentService, membershipService, logger)
	bulkHandler := bulkupload.NewHandler(bulkService, membershipService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/db-test", func(w http.ResponseWriter, r *http.Request) {
		var one int
		if err := db.QueryRowContext(r.Context(), "SELECT 1").Scan(&one); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"db":"down"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"db":1}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes())

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireUser)

			r.Get("/me/clubs", membershipHandler.MyClubs)
			r.Mount("/me/dependents", dependentHandler.Routes())
			r.Get("/me/passes", passHandler.MyPasses)

			r.Route("/events/{eventID}/passes", func(r chi.Router) {
				r.Post("/", passHandler.Generate)
				r.Get("/me", passHandler.MyPassesForEvent)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Get("/my-clubs", membershipHandler.AdminClubs)

				r.Route("/clubs/{clubID}", func(r chi.Router) {
					r.Get("/pending-members", membershipHandler.PendingMembers)
					r.Get("/members", membershipHandler.Members)
					r.Get("/passes", passHandler.ClubPasses)
					r.Post("/bulk-upload", bulkHandler.Upload)
				})

				r.Route("/memberships/{membershipID}", func(r chi.Router) {
					r.Post("/approve", membershipHandler.Approve)
					r.Post("/reject", membershipHandler.Reject)
				})
			})
		})
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	logger.Info("Server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Fatal("Server failed to start", zap.Error(err))
	}
}

// newLogger builds the application logger at the configured level
func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()

	zapLevel := zap.NewAtomicLevel()
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.Level = zapLevel

	return cfg.Build()
}
