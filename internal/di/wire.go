//go:build wireinject

package di

import (
	"github.com/google/wire"

	"gchat-cardbot/internal/adapter/logging"
	"gchat-cardbot/internal/app"
	"gchat-cardbot/internal/config"
	"gchat-cardbot/internal/domain/ports"
	"gchat-cardbot/internal/server"
	"gchat-cardbot/internal/usecase"
)

var baseSet = wire.NewSet(
	config.Load,
	provideSlogLogger,
	logging.New,
	wire.Bind(new(ports.Logger), new(*logging.SLogger)),
	provideStatusProvider,
	provideSummaryWriter,
	provideSender,
	provideDigestConfig,
	usecase.NewStatusDigest,
)

// InitializeApp wires the cron scheduler application.
func InitializeApp() (*app.App, error) {
	wire.Build(baseSet, app.New, provideSchedule)
	return nil, nil
}

// InitializeDigest wires the digest use case for one-shot runs.
func InitializeDigest() (*usecase.StatusDigest, error) {
	wire.Build(baseSet)
	return nil, nil
}

// InitializeServer wires the card bridge server.
func InitializeServer() (*server.Server, error) {
	wire.Build(baseSet, provideServer)
	return nil, nil
}
