package cmd

import (
	"log/slog"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/rabbitmq"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	orderRepository ports.OrderRepository
	eventPublisher  ports.EventPublisher
	logger          *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	publisher *rabbitmq.Publisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		orderRepository: orderrepo.NewGormOrderRepository(gormDB),
		eventPublisher:  publisher,
		logger:          logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderRepository, c.eventPublisher, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderRepository, c.eventPublisher, c.logger)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderRepository, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderRepository)
}
