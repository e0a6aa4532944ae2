package auth

import (
	"go.uber.org/fx"

	"github.com/bikestores/bikestore/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newSessionCodec),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type codecParams struct {
	fx.In

	Config *config.Config
}

func newSessionCodec(p codecParams) SessionCodec {
	return NewHMACCodec(p.Config.SessionSecret, Options{TTL: p.Config.SessionTTL})
}
