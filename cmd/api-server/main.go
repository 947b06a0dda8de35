package main

import (
	"fmt"
	"os"

	"Scribe/config"
	"Scribe/internal/module/user"
	"Scribe/pkg/database"
	"Scribe/pkg/jwt"
	"Scribe/pkg/log"
	"Scribe/pkg/server"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func configPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.L.Fatal("api-server", zap.Error(err))
	}
}

func newApp() *cli.App {
	var cfg *config.Config

	return &cli.App{
		Name:  "api-server",
		Usage: "Scribe blogging backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file path",
				Value:   configPath(),
			},
		},
		Before: func(ctx *cli.Context) error {
			var err error
			cfg, err = config.Load(ctx.String("config"))
			if err != nil {
				return err
			}
			log.SetDebug(cfg.Debug())
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					app, cleanup, err := InitServer(cfg)
					if err != nil {
						return err
					}
					defer cleanup()
					return server.Run(ctx, app)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					db, cleanup, err := database.NewDB(cfg)
					if err != nil {
						return err
					}
					defer cleanup()
					if err := database.Migrate(db); err != nil {
						return err
					}
					log.L.Info("migrate success")
					return nil
				},
			},
			{
				Name:  "token",
				Usage: "sign a bearer token for local testing",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "user", Usage: "user id", Required: true},
					&cli.DurationFlag{Name: "ttl", Usage: "token lifetime, 0 for no expiry (default jwt.expire)"},
				},
				Action: func(ctx *cli.Context) error {
					ttl := cfg.Jwt.Expire
					if ctx.IsSet("ttl") {
						ttl = ctx.Duration("ttl")
					}
					token, err := jwt.GenerateToken([]byte(cfg.Jwt.Secret), ctx.Int64("user"), ttl)
					if err != nil {
						return err
					}
					fmt.Fprintln(ctx.App.Writer, token)
					return nil
				},
			},
			{
				Name:  "user",
				Usage: "manage accounts",
				Subcommands: []*cli.Command{
					{
						Name:  "create",
						Usage: "provision a user",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "name", Required: true},
							&cli.StringFlag{Name: "username", Required: true},
							&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"SCRIBE_USER_PASSWORD"}},
						},
						Action: func(ctx *cli.Context) error {
							db, cleanup, err := database.NewDB(cfg)
							if err != nil {
								return err
							}
							defer cleanup()

							svc := user.NewService(user.NewRepository(db))
							u, err := svc.CreateUser(ctx.Context, user.CreateUserRequest{
								Name:     ctx.String("name"),
								Username: ctx.String("username"),
								Password: ctx.String("password"),
							})
							if err != nil {
								return err
							}
							log.L.Info("user created", zap.Int64("id", u.ID), zap.String("username", u.Username))
							return nil
						},
					},
				},
			},
		},
	}
}
