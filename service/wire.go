package service

import (
	"Scribe/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(BlogService), "*"),
	wire.Bind(new(IBlogService), new(*BlogService)),

	wire.Struct(new(RecommendationService), "*"),
	wire.Bind(new(IRecommendationService), new(*RecommendationService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(MuteService), "*"),
	wire.Bind(new(IMuteService), new(*MuteService)),

	wire.Struct(new(NotificationService), "*"),
	wire.Bind(new(INotificationService), new(*NotificationService)),

	wire.Bind(new(UnreadCounter), new(*cache.UnreadStorage)),
)
