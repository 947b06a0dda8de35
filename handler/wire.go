package handler

import (
	"Scribe/dao/cache"
	"Scribe/middleware"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(Blog), "*"),
	wire.Struct(new(Recommendation), "*"),
	wire.Struct(new(UserAction), "*"),
	wire.Struct(new(Notification), "*"),

	wire.Bind(new(middleware.Limiter), new(*cache.RateLimitStorage)),
)
