//go:build wireinject
// +build wireinject

package main

import (
	"booksite/config"
	"booksite/dao"
	"booksite/handler"
	"booksite/pkg/client"
	"booksite/pkg/database"
	"booksite/pkg/server"
	"booksite/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		server.NewGinEngine,

		wire.Struct(new(handler.Home), "*"),
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Bookmark), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil
}
