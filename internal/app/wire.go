//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"orchestrator/internal/gateway/courier"
	shipment_cancel_post "orchestrator/internal/handlers/rest/shipment_cancel_post"
	shipment_label_get "orchestrator/internal/handlers/rest/shipment_label_get"
	shipment_requests_post "orchestrator/internal/handlers/rest/shipment_requests_post"
	shipment_requests_process_post "orchestrator/internal/handlers/rest/shipment_requests_process_post"
	shipment_status_get "orchestrator/internal/handlers/rest/shipment_status_get"
	shipment_track_get "orchestrator/internal/handlers/rest/shipment_track_get"
	webhook_dhl_post "orchestrator/internal/handlers/rest/webhook_dhl_post"
	"orchestrator/internal/handlers/tasks/request_processing"
	"orchestrator/internal/pkg/config"
	"orchestrator/internal/pkg/factory/courier_adapter"
	"orchestrator/internal/pkg/factory/delivery_estimate"
	"orchestrator/internal/pkg/lock"
	"orchestrator/internal/pkg/redis"

	labelCache "orchestrator/internal/cache/label"
	courierRepo "orchestrator/internal/repository/courier"
	partyRepo "orchestrator/internal/repository/party"
	referenceRepo "orchestrator/internal/repository/reference"
	shipmentRepo "orchestrator/internal/repository/shipment"
	labelRepo "orchestrator/internal/repository/shipment_label"
	requestRepo "orchestrator/internal/repository/shipment_request"
	statusRepo "orchestrator/internal/repository/shipment_status"
	cancellationService "orchestrator/internal/service/cancellation"
	creationService "orchestrator/internal/service/creation"
	intakeService "orchestrator/internal/service/intake"
	labelService "orchestrator/internal/service/label"
	lifecycleService "orchestrator/internal/service/lifecycle"
	selectorService "orchestrator/internal/service/selector"
	statusService "orchestrator/internal/service/status"
	webhookService "orchestrator/internal/service/webhook"

	"orchestrator/pkg/background"
	"orchestrator/pkg/logger"
	"orchestrator/pkg/querier"
	"orchestrator/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

const batchLockName = "request-batch"

type Application struct {
	ServiceIntake       ServiceIntake
	ServiceLifecycle    ServiceLifecycle
	ServiceLabel        ServiceLabel
	ServiceStatus       ServiceStatus
	ServiceCancellation ServiceCancellation
	ServiceWebhook      ServiceWebhook
	BackgroundWorkers   *background.Worker
}

type ServiceIntake interface {
	shipment_requests_post.Service
}

type ServiceLifecycle interface {
	shipment_requests_process_post.Service
	request_processing.Service
}

type ServiceLabel interface {
	shipment_label_get.Service
}

type ServiceStatus interface {
	shipment_status_get.Service
	shipment_track_get.Service
}

type ServiceCancellation interface {
	shipment_cancel_post.Service
}

type ServiceWebhook interface {
	webhook_dhl_post.Service
}

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

		provideCourierRepository,
		providePartyRepository,
		provideReferenceRepository,
		provideShipmentRepository,
		provideLabelRepository,
		provideRequestRepository,
		provideStatusRepository,

		delivery_estimate.New,
		provideAdapterFactory,
		provideCourierRegistry,
		provideLabelCache,
		provideBatchLocker,

		provideServiceSelector,
		provideServiceCreation,
		provideServiceIntake,
		provideServiceLifecycle,
		provideServiceLabel,
		provideServiceStatus,
		provideServiceCancellation,
		provideServiceWebhook,

		provideRequestProcessingTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceIntake), new(*intakeService.Intake)),
		wire.Bind(new(ServiceLifecycle), new(*lifecycleService.Lifecycle)),
		wire.Bind(new(ServiceLabel), new(*labelService.Label)),
		wire.Bind(new(ServiceStatus), new(*statusService.Status)),
		wire.Bind(new(ServiceCancellation), new(*cancellationService.Cancellation)),
		wire.Bind(new(ServiceWebhook), new(*webhookService.Webhook)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	WebhookService *webhookService.Webhook
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-courier-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideCourierRepository,
		provideShipmentRepository,
		provideStatusRepository,

		delivery_estimate.New,
		provideAdapterFactory,
		provideCourierRegistry,

		provideServiceWebhook,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func providePartyRepository(querier *querier.Querier) *partyRepo.Repository {
	return partyRepo.New(querier)
}

func provideReferenceRepository(querier *querier.Querier) *referenceRepo.Repository {
	return referenceRepo.New(querier)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideLabelRepository(querier *querier.Querier) *labelRepo.Repository {
	return labelRepo.New(querier)
}

func provideRequestRepository(querier *querier.Querier) *requestRepo.Repository {
	return requestRepo.New(querier)
}

func provideStatusRepository(querier *querier.Querier) *statusRepo.Repository {
	return statusRepo.New(querier)
}

func provideAdapterFactory(cfg *config.Config, estimator *delivery_estimate.DeliveryEstimateFactory) *courier_adapter.AdapterFactory {
	return courier_adapter.New(courier_adapter.Config{
		DHLUseMock:       cfg.Courier.UseMock,
		DHLBillingNumber: cfg.Courier.DHLBillingNumber,
		HTTPTimeout:      cfg.Courier.HTTPTimeout,
	}, estimator)
}

func provideCourierRegistry(configs *courierRepo.Repository, factory *courier_adapter.AdapterFactory) *courier.Registry {
	return courier_adapter.NewRegistry(configs, factory)
}

// provideLabelCache nil клиент (redis выключен) передается как nil интерфейс, иначе кэш не поймет, что его нет.
func provideLabelCache(client *goredis.Client, cfg *config.Config) *labelCache.Cache {
	if client == nil {
		return labelCache.New(nil, cfg.Redis.Prefix, cfg.Redis.LabelCacheTTL)
	}
	return labelCache.New(client, cfg.Redis.Prefix, cfg.Redis.LabelCacheTTL)
}

func provideBatchLocker(client *goredis.Client, cfg *config.Config) *lock.Locker {
	key := redis.Key(cfg.Redis.Prefix, "lock", batchLockName)
	if client == nil {
		return lock.New(nil, key, cfg.Tasks.RequestLockTTL)
	}
	return lock.New(client, key, cfg.Tasks.RequestLockTTL)
}

func provideServiceSelector(couriers *courierRepo.Repository) *selectorService.Selector {
	return selectorService.New(couriers)
}

func provideServiceCreation(
	reference *referenceRepo.Repository,
	shipments *shipmentRepo.Repository,
	statuses *statusRepo.Repository,
	txManager *tx.Manager,
) *creationService.Creation {
	return creationService.New(reference, shipments, statuses, txManager)
}

func provideServiceIntake(
	log logger.Logger,
	shipments *shipmentRepo.Repository,
	requests *requestRepo.Repository,
	parties *partyRepo.Repository,
	reference *referenceRepo.Repository,
	txManager *tx.Manager,
) *intakeService.Intake {
	return intakeService.New(log, shipments, requests, parties, reference, txManager)
}

func provideServiceLifecycle(
	log logger.Logger,
	requests *requestRepo.Repository,
	parties *partyRepo.Repository,
	reference *referenceRepo.Repository,
	selector *selectorService.Selector,
	registry *courier.Registry,
	creator *creationService.Creation,
	locker *lock.Locker,
	txManager *tx.Manager,
) *lifecycleService.Lifecycle {
	return lifecycleService.New(log, requests, parties, reference, selector, registry, creator, locker, txManager)
}

func provideServiceLabel(
	log logger.Logger,
	shipments *shipmentRepo.Repository,
	labels *labelRepo.Repository,
	cache *labelCache.Cache,
	registry *courier.Registry,
	txManager *tx.Manager,
) *labelService.Label {
	return labelService.New(log, shipments, labels, cache, registry, txManager)
}

func provideServiceStatus(
	shipments *shipmentRepo.Repository,
	statuses *statusRepo.Repository,
	registry *courier.Registry,
) *statusService.Status {
	return statusService.New(shipments, statuses, registry)
}

func provideServiceCancellation(
	log logger.Logger,
	shipments *shipmentRepo.Repository,
	statuses *statusRepo.Repository,
	registry *courier.Registry,
	txManager *tx.Manager,
) *cancellationService.Cancellation {
	return cancellationService.New(log, shipments, statuses, registry, txManager)
}

func provideServiceWebhook(
	log logger.Logger,
	cfg *config.Config,
	shipments *shipmentRepo.Repository,
	statuses *statusRepo.Repository,
	registry *courier.Registry,
	txManager *tx.Manager,
) *webhookService.Webhook {
	return webhookService.New(log, cfg.Webhook.DHLAPIKey, shipments, statuses, registry, txManager)
}

func provideRequestProcessingTask(
	log logger.Logger,
	service ServiceLifecycle,
	cfg *config.Config,
) *request_processing.RequestProcessing {
	return request_processing.NewRequestProcessing(log, service, cfg.Tasks.RequestProcessingInterval, cfg.Tasks.RequestBatchSize)
}

func provideTaskList(
	requestProcessingTask *request_processing.RequestProcessing,
) []background.Task {
	return []background.Task{
		requestProcessingTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
