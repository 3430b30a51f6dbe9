package cmd

import (
	"log/slog"
	"net/http"

	httpadapter "shop/internal/adapters/in/http"
	"shop/internal/adapters/out/kafka"
	"shop/internal/adapters/out/postgres"
	"shop/internal/core/application/hooks"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/status"
	"shop/internal/core/ports"
	"shop/internal/jobs"
	"shop/internal/pkg/metrics"

	"gorm.io/gorm"
)

// CompositionRoot wires the status changer, its hooks and the handlers built on it.
// Every command handler shares one StatusChanger and one hook bus.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	registry   *status.Registry
	changer    *commands.StatusChanger
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	registry *status.Registry,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) CompositionRoot {
	bus := hooks.NewBus(logger)
	changer := commands.NewStatusChanger(registry, bus, businessMetrics)

	hooks.RegisterBuiltins(bus, changer)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   registry,
		changer:    changer,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uowFactory, c.changer)
}

func (c *CompositionRoot) CreateChangePaymentStatusCommandHandler() commands.ChangePaymentStatusCommandHandler {
	return commands.NewChangePaymentStatusCommandHandler(c.uowFactory, c.changer)
}

func (c *CompositionRoot) CreateChangeShipmentStatusCommandHandler() commands.ChangeShipmentStatusCommandHandler {
	return commands.NewChangeShipmentStatusCommandHandler(c.uowFactory, c.changer)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uowFactory, c.changer)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.uowFactory, c.changer)
}

func (c *CompositionRoot) CreateRelayNotificationsCommandHandler(
	publisher ports.NotificationPublisher,
) commands.RelayNotificationsCommandHandler {
	return commands.NewRelayNotificationsCommandHandler(c.uowFactory, publisher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.registry)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB, c.registry)
}

func (c *CompositionRoot) CreateGetStatusesQueryHandler() queries.GetStatusesQueryHandler {
	return queries.NewGetStatusesQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateResolveStatusQueryHandler() queries.ResolveStatusQueryHandler {
	return queries.NewResolveStatusQueryHandler(c.registry)
}

// CreateNotificationPublisher publishes to Kafka when brokers are configured
// and only logs the messages otherwise.
func (c *CompositionRoot) CreateNotificationPublisher() ports.NotificationPublisher {
	brokers := kafka.ParseBrokers(c.config.KafkaBrokers)
	if len(brokers) == 0 {
		c.logger.Warn("KAFKA_BROKERS is empty, notifications are only logged")
		return kafka.NewLogPublisher(c.logger)
	}
	return kafka.NewPublisher(brokers, c.config.KafkaTopicPrefix, c.logger)
}

func (c *CompositionRoot) CreateJobManager(publisher ports.NotificationPublisher) *jobs.JobManager {
	relay := c.CreateRelayNotificationsCommandHandler(publisher)

	manager := jobs.NewJobManager()
	manager.Register("notification_relay", jobs.NewNotificationRelayJob(
		&relay, c.config.RelaySchedule, c.config.RelayBatchSize, c.logger))
	return manager
}

func (c *CompositionRoot) CreateHTTPServer(metricsHandler http.Handler) *httpadapter.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	changePaymentStatus := c.CreateChangePaymentStatusCommandHandler()
	changeShipmentStatus := c.CreateChangeShipmentStatusCommandHandler()
	cancelOrder := c.CreateCancelOrderCommandHandler()
	createShipment := c.CreateCreateShipmentCommandHandler()

	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:          &createOrder,
		ChangePaymentStatus:  &changePaymentStatus,
		ChangeShipmentStatus: &changeShipmentStatus,
		CancelOrder:          &cancelOrder,
		CreateShipment:       &createShipment,
		GetOrder:             c.CreateGetOrderQueryHandler(),
		GetOpenOrders:        c.CreateGetOpenOrdersQueryHandler(),
		GetStatuses:          c.CreateGetStatusesQueryHandler(),
		ResolveStatus:        c.CreateResolveStatusQueryHandler(),
	}, metricsHandler, c.logger)
}
