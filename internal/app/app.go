package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
	"github.com/simp-lee/logger"
	"gorm.io/gorm"

	"github.com/peoplekit/portal/internal/config"
	"github.com/peoplekit/portal/internal/domain"
	"github.com/peoplekit/portal/internal/middleware"
	"github.com/peoplekit/portal/internal/module/attendance"
	"github.com/peoplekit/portal/internal/module/auth"
	"github.com/peoplekit/portal/internal/module/calendar"
	"github.com/peoplekit/portal/internal/module/employee"
	"github.com/peoplekit/portal/internal/module/leave"
	"github.com/peoplekit/portal/internal/module/payroll"
	"github.com/peoplekit/portal/internal/module/settings"
	"github.com/peoplekit/portal/internal/permission"
)

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine     *gin.Engine
	db         *gorm.DB
	logger     *logger.Logger
	jwtService jwt.Service
	cfg        *config.Config
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

// migratedModels is every persisted type, in dependency order.
var migratedModels = []any{
	&domain.User{},
	&domain.Department{},
	&domain.Position{},
	&domain.DocumentCategory{},
	&domain.BreakPolicy{},
	&domain.Employee{},
	&domain.NextOfKin{},
	&domain.EmergencyContact{},
	&domain.EmploymentContract{},
	&domain.PaymentProfile{},
	&domain.PropertyItem{},
	&domain.EmployeeDocument{},
	&domain.OffsiteRequest{},
	&domain.LeaveType{},
	&domain.LeaveRequest{},
	&domain.PayrollPeriod{},
	&domain.Payslip{},
	&domain.Event{},
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging, database, the JWT service, the permission checker,
// every business module, middleware, and routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	success := false

	// 1. Setup logger.
	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	if cfg.Server.Mode == gin.DebugMode && cfg.Server.Host == "0.0.0.0" {
		log.Warn("insecure server config: debug mode on 0.0.0.0 may expose debug behavior and permissive CORS")
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	// 2. Setup database.
	db, err := config.SetupDatabase(&cfg.Database, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}
	defer func() {
		if success {
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", slog.Any("error", err))
		}
	}()

	// 3. AutoMigrate in debug mode only.
	if cfg.Server.Mode == "debug" {
		if err := db.AutoMigrate(migratedModels...); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("auto migration completed")
	}

	// 4. JWT service and token expiry.
	tokenExpiry, err := time.ParseDuration(cfg.Auth.TokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("parse token expiry: %w", err)
	}
	jwtService, err := jwt.New(cfg.Auth.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("setup jwt service: %w", err)
	}
	defer func() {
		if success {
			return
		}
		jwtService.Close()
	}()

	// 5. Permission checker.
	checker, err := permission.NewChecker()
	if err != nil {
		return nil, fmt.Errorf("setup permission checker: %w", err)
	}

	// 6. Manual dependency injection: repository → service → handler → module.
	userRepo := auth.NewUserRepository(db)
	authSvc := auth.NewService(jwtService, userRepo, tokenExpiry)

	employeeRepo := employee.NewRepository(db)
	employeeSvc := employee.NewService(employeeRepo)

	offsiteRepo := attendance.NewRepository(db)
	offsiteSvc := attendance.NewService(offsiteRepo)

	leaveRepo := leave.NewRepository(db)
	leaveSvc := leave.NewService(leaveRepo)

	payrollRepo := payroll.NewRepository(db)
	payrollSvc := payroll.NewService(payrollRepo, employeeRepo, cfg.Payroll)

	eventRepo := calendar.NewRepository(db)
	eventSvc := calendar.NewService(eventRepo)

	settingsRepo := settings.NewRepository(db)
	settingsSvc := settings.NewService(settingsRepo, employeeRepo)

	modules := []Module{
		auth.NewModule(auth.NewHandler(authSvc)),
		employee.NewModule(employee.NewHandler(employeeSvc), checker),
		attendance.NewModule(attendance.NewHandler(offsiteSvc), checker),
		leave.NewModule(leave.NewHandler(leaveSvc), checker),
		payroll.NewModule(payroll.NewHandler(payrollSvc), checker),
		calendar.NewModule(calendar.NewHandler(eventSvc), checker),
		settings.NewModule(settings.NewHandler(settingsSvc), checker),
	}

	// 7. Create Gin engine with custom middleware (not gin.Default()).
	if err := validateGinMode(cfg.Server.Mode); err != nil {
		return nil, err
	}
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	// Build CORS config from application settings.
	// In release mode, when no allowlist is configured, default to deny cross-origin requests.
	corsConfig := resolveCORSConfig(cfg.Server.Mode, cfg.Server.CORS.AllowOrigins)

	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TrustUpstream: false,
		}),
		middleware.Logger(log.Logger),
		middleware.CORSWithConfig(corsConfig),
	)
	if cfg.Server.RateLimit.Enabled {
		engine.Use(middleware.RateLimit(cfg.Server.RateLimit.RPS))
	}
	if cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics())
	}

	// 8. Register all routes.
	if err := RegisterRoutes(engine, &RouteDeps{
		Modules:        modules,
		DB:             db,
		JWTService:     jwtService,
		PublicPaths:    cfg.Auth.PublicPaths,
		MetricsEnabled: cfg.Metrics.Enabled,
	}); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine:     engine,
		db:         db,
		logger:     log,
		jwtService: jwtService,
		cfg:        cfg,
	}, nil
}

func resolveCORSConfig(mode string, configuredAllowOrigins []string) middleware.CORSConfig {
	corsConfig := middleware.DefaultCORSConfig()

	if len(configuredAllowOrigins) > 0 {
		corsConfig.AllowOrigins = configuredAllowOrigins
		return corsConfig
	}

	if mode == gin.ReleaseMode {
		corsConfig.AllowOrigins = []string{}
	}

	return corsConfig
}

func validateGinMode(mode string) error {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It performs graceful shutdown with a 5-second timeout and closes the JWT
// service and the database connection.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine)

	// Listen for SIGINT / SIGTERM.
	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server in a goroutine.
	errCh := make(chan error, 1)
	go func() {
		if a.logger != nil {
			a.logger.Info("server started", slog.String("addr", addr))
		} else {
			slog.Info("server started", slog.String("addr", addr))
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error

	// Wait for shutdown signal or server error.
	select {
	case <-ctx.Done():
		if a.logger != nil {
			a.logger.Info("shutdown signal received")
		} else {
			slog.Info("shutdown signal received")
		}
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		// Graceful shutdown with 5-second deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			if a.logger != nil {
				a.logger.Error("server shutdown error", slog.Any("error", err))
			} else {
				slog.Error("server shutdown error", slog.Any("error", err))
			}
		}
	}

	if a.jwtService != nil {
		a.jwtService.Close()
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				if a.logger != nil {
					a.logger.Error("database close error", slog.Any("error", err))
				} else {
					slog.Error("database close error", slog.Any("error", err))
				}
			} else {
				if a.logger != nil {
					a.logger.Info("database connection closed")
				} else {
					slog.Info("database connection closed")
				}
			}
		}
	}

	if a.logger != nil {
		a.logger.Info("server stopped")
		if err := a.logger.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	} else {
		slog.Info("server stopped")
	}

	if runErr != nil {
		return runErr
	}

	return nil
}
