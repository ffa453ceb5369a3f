package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/common/errs"
	"github.com/essienricch/Nft-Creator-Haven/internal/config"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/api/httphandler"
	platformconfig "github.com/essienricch/Nft-Creator-Haven/modules/platform/config"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/contentstore/pinata"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/contentstore/s3store"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/datagateway"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/ledger"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/usecase"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/walletagent"
	"github.com/essienricch/Nft-Creator-Haven/pkg/automaxprocs"
	"github.com/essienricch/Nft-Creator-Haven/pkg/logger"
	"github.com/essienricch/Nft-Creator-Haven/pkg/logger/slogx"
	"github.com/essienricch/Nft-Creator-Haven/pkg/middleware/errorhandler"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

func NewRunCommand() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start creator platform service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := automaxprocs.Init(); err != nil {
				logger.Error("Failed to set GOMAXPROCS", slogx.Error(err))
			}
			return runHandler(cmd, args)
		},
	}

	// Add local flags
	flags := runCmd.Flags()
	flags.String("contract-address", "", "platform contract address, E.g. `0x1234...`")
	flags.String("content-store", "", "content store backend, E.g. `pinata` or `s3`")

	// Bind flags to configuration
	config.BindPFlag("platform.ledger.contract_address", flags.Lookup("contract-address"))
	config.BindPFlag("platform.content_store.backend", flags.Lookup("content-store"))

	return runCmd
}

const (
	shutdownTimeout = 60 * time.Second
)

func runHandler(cmd *cobra.Command, _ []string) error {
	conf := config.Load()

	// Validate inputs and configurations
	{
		if !conf.Network.IsSupported() {
			return errors.Wrapf(errs.Unsupported, "%q network is not supported", conf.Network.String())
		}
	}

	// Initialize application process context
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = logger.WithContext(ctx, slogx.Stringer("network", conf.Network))

	injector := do.New()
	do.ProvideValue(injector, conf)
	do.ProvideValue(injector, ctx)

	// Initialize signing agent
	do.Provide(injector, func(i do.Injector) (walletagent.Agent, error) {
		conf := do.MustInvoke[config.Config](i)

		agent, err := walletagent.NewKeystoreAgent(conf.Platform.Wallet, conf.Network)
		if err != nil {
			return nil, errors.Wrap(err, "invalid wallet configuration")
		}
		return agent, nil
	})

	// Initialize ledger client
	do.Provide(injector, func(i do.Injector) (*ledger.Client, error) {
		conf := do.MustInvoke[config.Config](i)
		agent := do.MustInvoke[walletagent.Agent](i)

		start := time.Now()
		logger.InfoContext(ctx, "Connecting to ledger RPC...", slogx.String("contract", conf.Platform.Ledger.ContractAddress))
		client, err := ledger.New(ctx, conf.Platform.Ledger, conf.Network, agent)
		if err != nil {
			return nil, errors.Wrap(err, "can't create ledger client")
		}
		logger.InfoContext(ctx, "Connected to ledger RPC", slogx.Duration("latency", time.Since(start)))

		return client, nil
	})

	// Initialize content storage
	do.Provide(injector, func(i do.Injector) (datagateway.ContentStorage, error) {
		conf := do.MustInvoke[config.Config](i)

		switch conf.Platform.ContentStore.Backend {
		case platformconfig.ContentStoreBackendPinata:
			storage, err := pinata.New(conf.Platform.ContentStore.Pinata)
			if err != nil {
				return nil, errors.Wrap(err, "can't create pinata content store")
			}
			return storage, nil
		case platformconfig.ContentStoreBackendS3:
			storage, err := s3store.New(ctx, conf.Platform.ContentStore.S3)
			if err != nil {
				return nil, errors.Wrap(err, "can't create s3 content store")
			}
			return storage, nil
		}
		return nil, errors.Wrapf(errs.Unsupported, "%q content store backend is not supported", conf.Platform.ContentStore.Backend)
	})

	// Initialize usecase and HTTP handler
	do.Provide(injector, func(i do.Injector) (*usecase.Usecase, error) {
		conf := do.MustInvoke[config.Config](i)
		return usecase.New(
			do.MustInvoke[*ledger.Client](i),
			do.MustInvoke[datagateway.ContentStorage](i),
			do.MustInvoke[walletagent.Agent](i),
			conf.Network,
		), nil
	})
	do.Provide(injector, func(i do.Injector) (*httphandler.HttpHandler, error) {
		conf := do.MustInvoke[config.Config](i)
		return httphandler.New(conf.Network, do.MustInvoke[*usecase.Usecase](i)), nil
	})

	// Initialize HTTP server
	do.Provide(injector, func(i do.Injector) (*fiber.App, error) {
		app := fiber.New(fiber.Config{
			AppName:      "Creator Platform",
			ErrorHandler: fiber.DefaultErrorHandler,
		})
		app.
			Use(favicon.New()).
			Use(cors.New()).
			Use(requestid.New()).
			Use(fiberrecover.New(fiberrecover.Config{
				EnableStackTrace: true,
				StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
					buf := make([]byte, 1024)
					buf = buf[:runtime.Stack(buf, false)]
					logger.ErrorContext(c.UserContext(), "Something went wrong, panic in http handler", slogx.Any("panic", e), slogx.String("stacktrace", string(buf)))
				},
			})).
			Use(compress.New(compress.Config{
				Level: compress.LevelDefault,
			})).
			Use(errorhandler.New())

		// Health check
		app.Get("/", func(c *fiber.Ctx) error {
			return errors.WithStack(c.SendStatus(http.StatusOK))
		})

		handler := do.MustInvoke[*httphandler.HttpHandler](i)
		if err := handler.Mount(app); err != nil {
			return nil, errors.Wrap(err, "can't mount http handlers")
		}

		return app, nil
	})

	// Unlock the signing account up front so the first mint doesn't pay for it
	agent := do.MustInvoke[walletagent.Agent](injector)
	if err := agent.RequestAccess(ctx); err != nil {
		logger.WarnContext(ctx, "Signing account is not available, mints will fail until the keystore is unlocked", slogx.Error(err))
	}
	unsubscribe := agent.OnAccountChange(func(address ethcommon.Address) {
		logger.InfoContext(ctx, "Active signing account changed", slogx.Stringer("account", address))
	})
	defer unsubscribe()

	ledgerClient := do.MustInvoke[*ledger.Client](injector)
	defer ledgerClient.Close()

	// Run API server
	httpServer := do.MustInvoke[*fiber.App](injector)
	go func() {
		// stop main process if API stopped
		defer stop()

		logger.InfoContext(ctx, "Started HTTP server", slogx.Int("port", conf.HTTPServer.Port))
		if err := httpServer.Listen(fmt.Sprintf(":%d", conf.HTTPServer.Port)); err != nil {
			logger.PanicContext(ctx, "Something went wrong, error during running HTTP server", slogx.Error(err))
		}
	}()

	logger.InfoContext(ctx, "Creator platform started")

	// Wait for interrupt signal to gracefully stop the server
	<-ctx.Done()

	// Force shutdown if timeout exceeded or got signal again
	go func() {
		defer os.Exit(1)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		select {
		case <-ctx.Done():
			logger.FatalContext(ctx, "Received exit signal again. Force shutdown...")
		case <-time.After(shutdownTimeout + 15*time.Second):
			logger.FatalContext(ctx, "Shutdown timeout exceeded. Force shutdown...")
		}
	}()

	if err := httpServer.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.ErrorContext(ctx, "Failed while shutting down HTTP server", slogx.Error(err))
	}
	if err := injector.Shutdown(); err != nil {
		logger.PanicContext(ctx, "Failed while gracefully shutting down", slogx.Error(err))
	}

	return nil
}
