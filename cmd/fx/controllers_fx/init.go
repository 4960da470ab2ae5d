package controllers_fx

import (
	"go.uber.org/fx"

	"librio/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewBookController),
	fx.Provide(controllers.NewReviewController),
	fx.Provide(controllers.NewLibraryController),
	fx.Provide(controllers.NewSubscriptionController),
	fx.Provide(controllers.NewPaymentController),
	fx.Provide(controllers.NewRecommendationController))
