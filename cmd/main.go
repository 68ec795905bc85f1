package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"

	apictx "github.com/pricewatch/pricewatch-server/internal/api/context"
	"github.com/pricewatch/pricewatch-server/internal/api/http/router"
	"github.com/pricewatch/pricewatch-server/internal/config"
	"github.com/pricewatch/pricewatch-server/internal/logger"
	"github.com/pricewatch/pricewatch-server/internal/model"
	"github.com/pricewatch/pricewatch-server/internal/notification"
	"github.com/pricewatch/pricewatch-server/internal/notification/sns"
	"github.com/pricewatch/pricewatch-server/internal/password"
	"github.com/pricewatch/pricewatch-server/internal/repository/dynamo"
	"github.com/pricewatch/pricewatch-server/internal/repository/postgres"
	"github.com/pricewatch/pricewatch-server/internal/server"
	"github.com/pricewatch/pricewatch-server/internal/service"
	"github.com/pricewatch/pricewatch-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	userStore, productStore, cleanup, err := newStores(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer cleanup()

	notifier, err := newNotifier(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize notifier", "error", err)
	}

	tokenManager := token.NewJWT(cfg.JWT.Secret)
	hasher := password.NewHasher()
	ctxMgr := apictx.NewManager()

	authService := service.NewAuth(userStore, hasher, tokenManager, notifier, logger)
	productService := service.NewProduct(productStore, logger)

	r := router.New(authService, productService, tokenManager, ctxMgr, logger)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// newStores builds the user and product stores for the configured backend.
// The returned cleanup releases backend resources and is safe to defer.
func newStores(ctx context.Context, cfg *config.Config) (model.UserStore, model.ProductStore, func() error, error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, nil, nil, err
		}
		return postgres.NewUserRepository(db), postgres.NewProductRepository(db), db.Close, nil

	case config.BackendDynamo:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Dynamo.Region))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to load aws config: %w", err)
		}
		dynamoClient := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			if cfg.Dynamo.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Dynamo.Endpoint)
				o.Credentials = credentials.NewStaticCredentialsProvider("local", "local", "")
			}
		})
		client := dynamo.NewClient(dynamoClient, cfg.Dynamo.Table)
		return dynamo.NewUserRepository(client), dynamo.NewProductRepository(client), func() error { return nil }, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}

func newNotifier(ctx context.Context, cfg *config.Config) (model.Notifier, error) {
	if !cfg.SNS.Enabled {
		return notification.NewNoop(), nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.SNS.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return sns.NewClient(awssns.NewFromConfig(awsCfg)), nil
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
