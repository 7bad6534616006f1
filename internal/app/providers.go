package app

import (
	"context"
	"net/http"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	ledgerGateway "ecofreight/internal/gateway/ledger"
	"ecofreight/internal/handlers/rest/review_post"
	"ecofreight/internal/handlers/rest/shipment_get"
	"ecofreight/internal/handlers/rest/shipment_post"
	"ecofreight/internal/handlers/rest/shipment_status_put"
	"ecofreight/internal/handlers/rest/shipments_get"
	"ecofreight/internal/handlers/rest/track_get"
	"ecofreight/internal/handlers/rest/update_post"
	"ecofreight/internal/handlers/tasks/delay_watch"
	"ecofreight/internal/pkg/config"
	reviewRepo "ecofreight/internal/repository/review"
	shipmentRepo "ecofreight/internal/repository/shipment"
	"ecofreight/internal/repository/trackingcache"
	trackingEventRepo "ecofreight/internal/repository/trackingevent"
	reviewService "ecofreight/internal/service/review"
	shipmentService "ecofreight/internal/service/shipment"
	trackingService "ecofreight/internal/service/tracking"
	"ecofreight/pkg/background"
	"ecofreight/pkg/logger"
	"ecofreight/pkg/querier"
	"ecofreight/pkg/tx"
)

type (
	DelayWatchInterval time.Duration
)

type Application struct {
	ServiceShipment   ServiceShipment
	ServiceTracking   ServiceTracking
	ServiceReview     ServiceReview
	BackgroundWorkers *background.Worker
}

type ServiceShipment interface {
	shipment_get.Service
	shipment_post.Service
	shipments_get.Service
	shipment_status_put.Service
}

type ServiceTracking interface {
	track_get.Service
	update_post.Service
}

type ServiceReview interface {
	review_post.Service
}

type TelemetryWorkerApp struct {
	TrackingService *trackingService.Tracking
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideTrackingEventRepository(querier *querier.Querier) *trackingEventRepo.Repository {
	return trackingEventRepo.New(querier)
}

func provideReviewRepository(querier *querier.Querier) *reviewRepo.Repository {
	return reviewRepo.New(querier)
}

func provideTrackingCache(redisClient *goredis.Client, cfg *config.Config) *trackingcache.Cache {
	return trackingcache.New(redisClient, cfg.Redis.TrackingViewTTL)
}

func provideLedgerGateway(cfg *config.Config) *ledgerGateway.LedgerGateway {
	return ledgerGateway.New(&http.Client{}, cfg.Ledger.Endpoint, cfg.Ledger.RequestTimeout)
}

func provideServiceShipment(
	repository shipmentService.Repository,
	ledger shipmentService.Ledger,
	codeFactory shipmentService.TrackingCodeFactory,
	carbonFactory shipmentService.CarbonFactory,
	txManager shipmentService.TxManager,
	log logger.Logger,
) *shipmentService.Shipment {
	return shipmentService.New(
		repository,
		ledger,
		codeFactory,
		carbonFactory,
		txManager,
		log,
	)
}

func provideServiceTracking(
	repository trackingService.Repository,
	shipments trackingService.ShipmentService,
	ledger trackingService.Ledger,
	cache trackingService.Cache,
	log logger.Logger,
) *trackingService.Tracking {
	return trackingService.New(
		repository,
		shipments,
		ledger,
		cache,
		log,
	)
}

func provideServiceReview(
	repository reviewService.Repository,
	shipments reviewService.ShipmentService,
	ledger reviewService.Ledger,
	txManager reviewService.TxManager,
	log logger.Logger,
) *reviewService.Review {
	return reviewService.New(
		repository,
		shipments,
		ledger,
		txManager,
		log,
	)
}

func provideDelayWatchInterval(cfg *config.Config) DelayWatchInterval {
	return DelayWatchInterval(cfg.Tasks.DelayWatchInterval)
}

func provideDelayWatchTask(
	log logger.Logger,
	shipments delay_watch.Service,
	interval DelayWatchInterval,
) *delay_watch.DelayWatch {
	return delay_watch.NewDelayWatch(log, shipments, time.Duration(interval))
}

func provideTaskList(
	delayWatchTask *delay_watch.DelayWatch,
) []background.Task {
	return []background.Task{
		delayWatchTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
