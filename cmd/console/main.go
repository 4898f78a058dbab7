package main

import (
	"context"
	"log/slog"
	"os"

	"console/config"
	"console/internal/delivery"
	"console/internal/delivery/http"
	"console/internal/delivery/http/middleware"
	"console/internal/delivery/http/router/handler"
	"console/internal/infra/auth"
	logs "console/internal/infra/log"
	"console/internal/infra/marketplace"
	"console/internal/infra/session"
	"console/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		auth.NewClaimsReader,
		session.NewStore,
		marketplace.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			marketplace.NewAuthRepository,
			marketplace.NewUserRepository,
			marketplace.NewVendorRepository,
			marketplace.NewProductRepository,
			marketplace.NewOrderRepository,
			marketplace.NewPaymentRepository,
			marketplace.NewReviewRepository,
			marketplace.NewCategoryRepository,
			marketplace.NewWithdrawalRepository,
			marketplace.NewDeletionRepository,
			marketplace.NewDashboardRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAccountService,
			impl.NewUserService,
			impl.NewVendorService,
			impl.NewProductService,
			impl.NewOrderService,
			impl.NewPaymentService,
			impl.NewReviewService,
			impl.NewCategoryService,
			impl.NewWithdrawalService,
			impl.NewDeletionService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewVendorHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewPaymentHandler,
			handler.NewReviewHandler,
			handler.NewCategoryHandler,
			handler.NewWithdrawalHandler,
			handler.NewDeletionHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
