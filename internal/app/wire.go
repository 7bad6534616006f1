//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	ledgerGateway "ecofreight/internal/gateway/ledger"
	"ecofreight/internal/handlers/tasks/delay_watch"
	"ecofreight/internal/pkg/config"
	"ecofreight/internal/pkg/factory/carbon_estimate"
	"ecofreight/internal/pkg/factory/tracking_code"
	reviewRepo "ecofreight/internal/repository/review"
	shipmentRepo "ecofreight/internal/repository/shipment"
	"ecofreight/internal/repository/trackingcache"
	trackingEventRepo "ecofreight/internal/repository/trackingevent"
	reviewService "ecofreight/internal/service/review"
	shipmentService "ecofreight/internal/service/shipment"
	trackingService "ecofreight/internal/service/tracking"
	"ecofreight/pkg/logger"
	"ecofreight/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideDelayWatchInterval,

		provideShipmentRepository,
		provideTrackingEventRepository,
		provideReviewRepository,
		provideTrackingCache,
		provideLedgerGateway,

		provideServiceShipment,
		provideServiceTracking,
		provideServiceReview,
		tracking_code.New,
		carbon_estimate.New,

		provideDelayWatchTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Tracking)),
		wire.Bind(new(ServiceReview), new(*reviewService.Review)),

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.Ledger), new(*ledgerGateway.LedgerGateway)),
		wire.Bind(new(shipmentService.TrackingCodeFactory), new(*tracking_code.TrackingCodeFactory)),
		wire.Bind(new(shipmentService.CarbonFactory), new(*carbon_estimate.CarbonEstimateFactory)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(trackingService.Repository), new(*trackingEventRepo.Repository)),
		wire.Bind(new(trackingService.ShipmentService), new(*shipmentService.Shipment)),
		wire.Bind(new(trackingService.Ledger), new(*ledgerGateway.LedgerGateway)),
		wire.Bind(new(trackingService.Cache), new(*trackingcache.Cache)),

		wire.Bind(new(reviewService.Repository), new(*reviewRepo.Repository)),
		wire.Bind(new(reviewService.ShipmentService), new(*shipmentService.Shipment)),
		wire.Bind(new(reviewService.Ledger), new(*ledgerGateway.LedgerGateway)),
		wire.Bind(new(reviewService.TxManager), new(*tx.Manager)),

		wire.Bind(new(delay_watch.Service), new(*shipmentService.Shipment)),
	)
	return &Application{}, nil
}

// InitializeTelemetryWorkerApp для Kafka воркера (cmd/worker-telemetry)
func InitializeTelemetryWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*TelemetryWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideShipmentRepository,
		provideTrackingEventRepository,
		provideTrackingCache,
		provideLedgerGateway,

		provideServiceShipment,
		provideServiceTracking,
		tracking_code.New,
		carbon_estimate.New,

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.Ledger), new(*ledgerGateway.LedgerGateway)),
		wire.Bind(new(shipmentService.TrackingCodeFactory), new(*tracking_code.TrackingCodeFactory)),
		wire.Bind(new(shipmentService.CarbonFactory), new(*carbon_estimate.CarbonEstimateFactory)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(trackingService.Repository), new(*trackingEventRepo.Repository)),
		wire.Bind(new(trackingService.ShipmentService), new(*shipmentService.Shipment)),
		wire.Bind(new(trackingService.Ledger), new(*ledgerGateway.LedgerGateway)),
		wire.Bind(new(trackingService.Cache), new(*trackingcache.Cache)),

		wire.Struct(new(TelemetryWorkerApp), "*"),
	)
	return nil, nil
}
