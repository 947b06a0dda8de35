package dao

import (
	"Scribe/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUserDAO,
	NewBlogDAO,
	NewRecommendationDAO,
	NewFollowDAO,
	NewMuteDAO,
	NewNotificationDAO,

	cache.NewUnreadStorage,
	cache.NewRateLimitStorage,
)
