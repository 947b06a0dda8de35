//go:build wireinject
// +build wireinject

package main

import (
	"Scribe/config"
	"Scribe/dao"
	"Scribe/handler"
	"Scribe/internal/module/user"
	"Scribe/pkg/client"
	"Scribe/pkg/database"
	"Scribe/pkg/llm"
	"Scribe/pkg/server"
	"Scribe/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		llm.NewGenerator,
		server.NewGinEngine,

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
		handler.ProviderSet,
		user.ProviderSet,
	)
	return nil, nil, nil
}
