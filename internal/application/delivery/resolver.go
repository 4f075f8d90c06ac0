package delivery

import (
	"context"

	"github.com/andromeda/ordersync/internal/domain/delivery"
	"github.com/andromeda/ordersync/internal/domain/ordering"
	"go.uber.org/zap"
)

// Resolver finds the order and store a partner task belongs to.
// Lookups are best effort: anomalies are logged and the first match (or
// nothing) is returned instead of an error.
type Resolver struct {
	orders ordering.OrderReader
	stores delivery.StoreDirectory
	logger *zap.Logger
}

// NewResolver creates a new resolver
func NewResolver(orders ordering.OrderReader, stores delivery.StoreDirectory, logger *zap.Logger) *Resolver {
	return &Resolver{
		orders: orders,
		stores: stores,
		logger: logger,
	}
}

// ResolveOrder returns the most recent order carrying the task id, or nil
func (r *Resolver) ResolveOrder(ctx context.Context, taskID int64) *ordering.OrderHeader {
	if taskID == 0 {
		r.logger.Error("delivery task id is missing")
	}

	orders, err := r.orders.FindByDeliveryTaskID(ctx, taskID)
	if err != nil {
		r.logger.Error("failed to look up orders by delivery task",
			zap.Int64("task_id", taskID),
			zap.Error(err),
		)
		return nil
	}

	switch {
	case len(orders) == 0:
		r.logger.Error("no order matches delivery task", zap.Int64("task_id", taskID))
		return nil
	case len(orders) > 1:
		r.logger.Error("several orders match delivery task, using the most recent",
			zap.Int64("task_id", taskID),
			zap.Int("matches", len(orders)),
			zap.String("order_id", orders[0].ID.String()),
		)
	}

	order := orders[0]
	return &order
}

// ResolveStore returns the first store the order belongs to, or nil
func (r *Resolver) ResolveStore(ctx context.Context, order *ordering.OrderHeader) *delivery.StoreDetails {
	if order == nil {
		return nil
	}

	stores, err := r.stores.FindStoresBySiteAndApplication(ctx, order.ExternalSiteID, order.ApplicationID)
	if err != nil {
		r.logger.Error("failed to look up stores",
			zap.String("external_site_id", order.ExternalSiteID),
			zap.Int("application_id", order.ApplicationID),
			zap.Error(err),
		)
		return nil
	}

	switch {
	case len(stores) > 1:
		r.logger.Error("more than one store returned",
			zap.String("external_site_id", order.ExternalSiteID),
			zap.Int("application_id", order.ApplicationID),
			zap.Int("matches", len(stores)),
		)
	case len(stores) == 0:
		r.logger.Error("no stores returned",
			zap.String("external_site_id", order.ExternalSiteID),
			zap.Int("application_id", order.ApplicationID),
		)
		return nil
	}

	store := stores[0]
	return &store
}
