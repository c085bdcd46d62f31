package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/carelink/carelink-portal/internal/handlers"
	"github.com/carelink/carelink-portal/internal/jwt"
	"github.com/carelink/carelink-portal/internal/logger"
	"github.com/carelink/carelink-portal/internal/middlewares"
	"github.com/carelink/carelink-portal/internal/repositories"
	"github.com/carelink/carelink-portal/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title carelink-portal API
// @version 1.0.0
// @description Healthcare portal backend: accounts, health records, appointments, donors, community and feedback
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, dataDir,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic, auditDSN,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, dataDir,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic, auditDSN,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, storage, Redis, Kafka, audit, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, dataDir string,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic, auditDSN string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Record store config
	dataDir = getEnv("DATA_DIR", "data")

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config, empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "carelink-events")

	// Audit trail config, empty DSN disables the audit log
	auditDSN = getEnv("AUDIT_DATABASE_DSN", "")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, record store, Redis, optional Kafka and
// audit sinks, and the HTTP server. It sets up routes, applies
// middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, dataDir string,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	kafkaAddr, kafkaTopic, auditDSN string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Initialize the CSV record store
	tables := repositories.NewTables(dataDir)
	if err := tables.EnsureSchema(); err != nil {
		return fmt.Errorf("record store initialization failed: %w", err)
	}
	logger.Log.Infof("Record store ready in %s", dataDir)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Optional audit trail database
	var audit services.AuditWriter
	if auditDSN != "" {
		db, err := sqlx.ConnectContext(ctx, "pgx", auditDSN)
		if err != nil {
			return fmt.Errorf("audit database connection error: %w", err)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("audit database ping failed: %w", err)
		}
		audit = repositories.NewAuditWriteRepository(db)
		logger.Log.Info("Audit trail enabled")
	}

	// Optional Kafka event publishing
	var events services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		events = w
		logger.Log.Infof("Kafka events enabled, topic %s", kafkaTopic)
	}

	// Initialize JWT service
	tokens := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(tables.Users)
	userWriteRepo := repositories.NewUserWriteRepository(tables.Users)
	healthReadRepo := repositories.NewHealthRecordReadRepository(tables.HealthRecords)
	healthWriteRepo := repositories.NewHealthRecordWriteRepository(tables.HealthRecords)
	apptReadRepo := repositories.NewAppointmentReadRepository(tables.Appointments)
	apptWriteRepo := repositories.NewAppointmentWriteRepository(tables.Appointments)
	bloodReadRepo := repositories.NewBloodDonorReadRepository(tables.BloodDonors)
	bloodWriteRepo := repositories.NewBloodDonorWriteRepository(tables.BloodDonors)
	organWriteRepo := repositories.NewOrganDonorWriteRepository(tables.OrganDonors)
	postReadRepo := repositories.NewCommunityPostReadRepository(tables.CommunityPosts)
	postWriteRepo := repositories.NewCommunityPostWriteRepository(tables.CommunityPosts)
	feedbackWriteRepo := repositories.NewFeedbackWriteRepository(tables.Feedback)
	pharmacyReadRepo := repositories.NewPharmacyReadRepository(tables.Pharmacies)
	sessionRepo := repositories.NewSessionRepository(rdb, time.Duration(jwtExpSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, sessionRepo, audit)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo, audit)
	healthService := services.NewHealthRecordService(healthReadRepo, healthWriteRepo, audit)
	apptService := services.NewAppointmentService(apptReadRepo, apptWriteRepo, audit, events)
	donorService := services.NewDonorService(bloodReadRepo, bloodWriteRepo, organWriteRepo, audit, events)
	communityService := services.NewCommunityService(userReadRepo, postReadRepo, postWriteRepo, audit)
	feedbackService := services.NewFeedbackService(feedbackWriteRepo, audit)
	pharmacyService := services.NewPharmacyService(pharmacyReadRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(tokens, sessionRepo)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Post("/logout", handlers.NewLogoutHandler(authService))

			r.Get("/profile", handlers.NewGetProfileHandler(profileService))
			r.Put("/profile", handlers.NewUpdateProfileHandler(profileService))
			r.Put("/profile/password", handlers.NewUpdatePasswordHandler(profileService))

			r.Post("/health-records", handlers.NewAddHealthRecordHandler(healthService))
			r.Get("/health-records", handlers.NewListHealthRecordsHandler(healthService))

			r.Post("/appointments", handlers.NewBookAppointmentHandler(apptService))
			r.Get("/appointments", handlers.NewListAppointmentsHandler(apptService))
			r.Put("/appointments/{appointmentID}/cancel", handlers.NewCancelAppointmentHandler(apptService))

			r.Post("/donors/blood", handlers.NewRegisterBloodDonorHandler(donorService))
			r.Get("/donors/blood", handlers.NewSearchBloodDonorsHandler(donorService))
			r.Get("/donors/blood/me", handlers.NewGetDonorStatusHandler(donorService))
			r.Put("/donors/blood/availability", handlers.NewSetDonorAvailabilityHandler(donorService))
			r.Post("/donors/organ", handlers.NewRegisterOrganDonorHandler(donorService))

			r.Post("/community/posts", handlers.NewCreatePostHandler(communityService))
			r.Get("/community/posts", handlers.NewListPostsHandler(communityService))

			r.Post("/feedback", handlers.NewAddFeedbackHandler(feedbackService))

			r.Get("/pharmacies", handlers.NewListPharmaciesHandler(pharmacyService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
