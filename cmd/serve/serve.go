package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/audit"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/config"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/controller"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/db"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/identity"
	logger "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/logging"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/metrics"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/middleware"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/router"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/service"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/util"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the privileged-action gateway",
	Long: `Run the HTTP gateway that executes admin actions and user deletions.

Examples:
  bloodconnect serve                        # Listen on server.port from config
  bloodconnect serve --port 9090            # Override the listen port
  bloodconnect serve --config-dir ./deploy  # Read config.yaml from ./deploy`,
	RunE: serveCommand,
}

const (
	configDirFlag = "config-dir"
	portFlag      = "port"
)

var serveFlags = map[string]cobraflags.Flag{
	configDirFlag: &cobraflags.StringFlag{
		Name:  configDirFlag,
		Value: "config",
		Usage: "Directory containing config.yaml",
	},
	portFlag: &cobraflags.StringFlag{
		Name:  portFlag,
		Value: "",
		Usage: "Port to listen on. If empty, server.port from config is used",
	},
}

func NewServeCommand() *cobra.Command {
	cobraflags.RegisterMap(serveCmd, serveFlags)
	return serveCmd
}

func serveCommand(_ *cobra.Command, _ []string) error {
	// Initialize configuration
	if err := config.InitConfig(serveFlags[configDirFlag].GetString()); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(config.GetString("log.dir"), config.GetString("log.level")); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	metrics.Init()

	// Initialize Postgres
	if err := db.InitPostgres(); err != nil {
		return err
	}
	defer db.ClosePostgres()

	limit := config.GetInt("rateLimit.requests")
	window := config.GetDuration("rateLimit.window")

	// Redis is optional; without it each instance limits on its own
	var limiter middleware.Limiter
	if config.GetBool("redis.enabled") {
		if err := db.InitRedis(); err != nil {
			return err
		}
		defer db.CloseRedis()
		limiter = db.NewRedisRateLimiter(db.RedisClient, limit, window)
	} else {
		limiter = middleware.NewLocalLimiter(limit, window)
	}

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	auditRepository, err := newAuditRepository()
	if err != nil {
		return err
	}
	auditService := audit.NewService(auditRepository)

	provider, err := newIdentityProvider()
	if err != nil {
		return err
	}

	services := service.InitializeServices(db.Postgres, provider, auditService, util.NewValidationUtil(), eventBus)
	controllers := controller.InitializeControllers(services, eventBus, config.GetInt("realtime.bufferSize"), db.Ping)

	gin.SetMode(config.GetString("server.mode"))
	r := router.SetupRouter(controllers, limiter, limit, window)

	port := serveFlags[portFlag].GetString()
	if port == "" {
		port = config.GetString("server.port")
	}
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start the server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("port", port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	}
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("Server exiting")
	return nil
}

func newAuditRepository() (audit.Repository, error) {
	switch backend := strings.ToLower(config.GetString("audit.backend")); backend {
	case "", "postgres":
		return audit.NewPostgresRepository(db.Postgres), nil
	case "elasticsearch":
		return audit.NewElasticsearchRepository(config.GetString("elasticsearch.url"), config.GetString("elasticsearch.index"))
	default:
		return nil, fmt.Errorf("unknown audit backend %q", backend)
	}
}

// newIdentityProvider resolves tokens remotely or by verifying the JWT
// locally. Deletion always goes through the auth provider's admin API.
func newIdentityProvider() (identity.Provider, error) {
	gotrue := identity.NewGoTrueClient(
		config.GetString("auth.supabaseURL"),
		config.GetString("auth.anonKey"),
		config.GetString("auth.serviceRoleKey"),
	)

	var resolver identity.TokenResolver = gotrue
	switch mode := strings.ToLower(config.GetString("auth.verification")); mode {
	case "", "remote":
	case "local":
		verifier, err := identity.NewJWTVerifier(config.GetString("auth.jwtSecret"))
		if err != nil {
			return nil, err
		}
		resolver = verifier
	default:
		return nil, fmt.Errorf("unknown auth verification mode %q", mode)
	}

	return identity.NewProvider(resolver, gotrue), nil
}
