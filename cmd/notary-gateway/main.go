package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/chainsafe/fabric-notary-gateway/pkg/app/api"
	"github.com/chainsafe/fabric-notary-gateway/pkg/config"
	"github.com/chainsafe/fabric-notary-gateway/pkg/identity"
	"github.com/chainsafe/fabric-notary-gateway/pkg/migrations/walletdb"
	"github.com/chainsafe/fabric-notary-gateway/pkg/pgutil"
	mghelper "github.com/chainsafe/fabric-notary-gateway/pkg/pgutil/migrations"
)

var configFlag = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Value:   "config.yaml",
	Usage:   "path to configuration file",
	EnvVars: []string{"NOTARY_GATEWAY_CONFIG"},
}

func main() {
	app := &cli.App{
		Name:  "notary-gateway",
		Usage: "Register Fabric identities and invoke the notary chaincode over HTTP",
		Flags: []cli.Flag{configFlag},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP gateway",
				Action: serve,
			},
			{
				Name:      "migrate",
				Usage:     "run wallet database migrations",
				ArgsUsage: "<init|up|down|status>",
				Action:    runMigrations,
			},
			{
				Name:  "enroll-admin",
				Usage: "enroll the configured admin identity into the wallet",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "secret",
						Usage:    "admin enrollment secret",
						EnvVars:  []string{"ADMIN_ENROLLMENT_SECRET"},
						Required: true,
					},
				},
				Action: enrollAdmin,
			},
			{
				Name:  "register",
				Usage: "register a user with the CA and import it into the wallet",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "user-id", Required: true},
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "role", Required: true},
				},
				Action: register,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(cCtx *cli.Context) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cCtx.String(configFlag.Name))
	if err != nil {
		return nil, nil, err
	}
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}
	return cfg, logger, nil
}

func serve(cCtx *cli.Context) error {
	cfg, err := config.Load(cCtx.String(configFlag.Name))
	if err != nil {
		return err
	}
	return api.NewServer(cfg).Run()
}

func runMigrations(cCtx *cli.Context) error {
	if cCtx.NArg() != 1 {
		return cli.ShowSubcommandHelp(cCtx)
	}
	cfg, logger, err := loadConfig(cCtx)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	logger.Info("Running wallet migrations", zap.String("database", cfg.Database.Database))
	migrator := migrate.NewMigrator(db, walletdb.Migrations)
	return mghelper.RunMigrations(ctx, migrator, logger, cCtx.Args().First())
}

func withComponents(cCtx *cli.Context, fn func(context.Context, *api.Components, *zap.Logger) error) error {
	cfg, logger, err := loadConfig(cCtx)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, err := api.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = components.Close() }()

	return fn(ctx, components, logger)
}

func enrollAdmin(cCtx *cli.Context) error {
	return withComponents(cCtx, func(ctx context.Context, c *api.Components, _ *zap.Logger) error {
		resp, err := c.Registration.EnrollAdmin(ctx, cCtx.String("secret"))
		if err != nil {
			return err
		}
		fmt.Println(resp.Message)
		return nil
	})
}

func register(cCtx *cli.Context) error {
	return withComponents(cCtx, func(ctx context.Context, c *api.Components, _ *zap.Logger) error {
		resp, err := c.Registration.Register(ctx, &identity.RegisterRequest{
			UserID: cCtx.String("user-id"),
			Name:   cCtx.String("name"),
			Role:   cCtx.String("role"),
		})
		if err != nil {
			return err
		}
		fmt.Println(resp.Message)
		return nil
	})
}
