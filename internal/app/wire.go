//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"driver-earnings/internal/handlers/kafka-consumer/delivery_status_changed"
	"driver-earnings/internal/handlers/rest/dashboard_get"
	"driver-earnings/internal/handlers/rest/delivery_complete_post"
	"driver-earnings/internal/handlers/rest/delivery_post"
	"driver-earnings/internal/handlers/rest/report_get"
	"driver-earnings/internal/handlers/rest/shift_toggle_post"
	"driver-earnings/internal/handlers/tasks/activity_gauges"
	"driver-earnings/internal/pkg/config"
	"driver-earnings/internal/pkg/factory/report_window"

	connectionRepo "driver-earnings/internal/repository/connection"
	deliveryRepo "driver-earnings/internal/repository/delivery"
	profileRepo "driver-earnings/internal/repository/profile"
	shiftRepo "driver-earnings/internal/repository/shift"
	deliveryService "driver-earnings/internal/service/delivery"
	reportService "driver-earnings/internal/service/report"
	shiftService "driver-earnings/internal/service/shift"

	"driver-earnings/pkg/background"
	"driver-earnings/pkg/logger"
	"driver-earnings/pkg/querier"
	"driver-earnings/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ActivityGaugesInterval time.Duration
)

type Application struct {
	ServiceReport     ServiceReport
	ServiceDelivery   ServiceDelivery
	ServiceShift      ServiceShift
	BackgroundWorkers *background.Worker
}

type ServiceReport interface {
	report_get.Service
	dashboard_get.Service
}

type ServiceDelivery interface {
	delivery_post.Service
	delivery_complete_post.Service
}

type ServiceShift interface {
	shift_toggle_post.Service
}

var repositorySet = wire.NewSet(
	provideQuerier,
	provideProfileRepository,
	provideConnectionRepository,
	provideDeliveryRepository,
	provideShiftRepository,
)

var deliverySet = wire.NewSet(
	provideServiceDelivery,

	wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
	wire.Bind(new(deliveryService.ProfileRepository), new(*profileRepo.Repository)),
	wire.Bind(new(deliveryService.ConnectionRepository), new(*connectionRepo.Repository)),
	wire.Bind(new(deliveryService.ShiftRepository), new(*shiftRepo.Repository)),
	wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		repositorySet,
		deliverySet,
		provideWindowFactory,
		provideActivityGaugesInterval,

		provideServiceReport,
		provideServiceShift,

		provideActivityGaugesTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceReport), new(*reportService.Service)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceShift), new(*shiftService.Shift)),

		wire.Bind(new(reportService.ProfileRepository), new(*profileRepo.Repository)),
		wire.Bind(new(reportService.ConnectionRepository), new(*connectionRepo.Repository)),
		wire.Bind(new(reportService.DeliveryRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(reportService.ShiftRepository), new(*shiftRepo.Repository)),
		wire.Bind(new(reportService.WindowFactory), new(*report_window.WindowFactory)),

		wire.Bind(new(shiftService.Repository), new(*shiftRepo.Repository)),
		wire.Bind(new(shiftService.ProfileRepository), new(*profileRepo.Repository)),
		wire.Bind(new(shiftService.ConnectionRepository), new(*connectionRepo.Repository)),
		wire.Bind(new(shiftService.TxManager), new(*tx.Manager)),

		wire.Bind(new(activity_gauges.ShiftCounter), new(*shiftRepo.Repository)),
		wire.Bind(new(activity_gauges.DeliveryCounter), new(*deliveryRepo.Repository)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	DeliveryService delivery_status_changed.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-delivery-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		repositorySet,
		deliverySet,

		wire.Bind(new(delivery_status_changed.Service), new(*deliveryService.Delivery)),

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

func provideProfileRepository(querier *querier.Querier) *profileRepo.Repository {
	return profileRepo.New(querier)
}

func provideConnectionRepository(querier *querier.Querier) *connectionRepo.Repository {
	return connectionRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideShiftRepository(querier *querier.Querier) *shiftRepo.Repository {
	return shiftRepo.New(querier)
}

func provideWindowFactory(cfg *config.Config) *report_window.WindowFactory {
	return report_window.New(cfg.Report.RolloverHour)
}

func provideServiceReport(
	profiles reportService.ProfileRepository,
	connections reportService.ConnectionRepository,
	deliveries reportService.DeliveryRepository,
	shifts reportService.ShiftRepository,
	windows reportService.WindowFactory,
) *reportService.Service {
	return reportService.New(profiles, connections, deliveries, shifts, windows)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	profiles deliveryService.ProfileRepository,
	connections deliveryService.ConnectionRepository,
	shifts deliveryService.ShiftRepository,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(
		repository,
		profiles,
		connections,
		shifts,
		txManager,
	)
}

func provideServiceShift(
	repository shiftService.Repository,
	profiles shiftService.ProfileRepository,
	connections shiftService.ConnectionRepository,
	txManager shiftService.TxManager,
) *shiftService.Shift {
	return shiftService.New(repository, profiles, connections, txManager)
}

func provideActivityGaugesInterval(cfg *config.Config) ActivityGaugesInterval {
	return ActivityGaugesInterval(cfg.Tasks.ActivityGaugesInterval)
}

func provideActivityGaugesTask(
	log logger.Logger,
	shifts activity_gauges.ShiftCounter,
	deliveries activity_gauges.DeliveryCounter,
	interval ActivityGaugesInterval,
) *activity_gauges.ActivityGauges {
	return activity_gauges.NewActivityGauges(log, shifts, deliveries, time.Duration(interval))
}

func provideTaskList(
	activityGaugesTask *activity_gauges.ActivityGauges,
) []background.Task {
	return []background.Task{
		activityGaugesTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
