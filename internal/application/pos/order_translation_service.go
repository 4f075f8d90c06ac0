package pos

import (
	"context"
	"fmt"
	"time"

	"github.com/andromeda/ordersync/internal/domain/ordering"
	"github.com/andromeda/ordersync/internal/domain/pos"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Clock converts stored instants to store local time and reports the
// current local time
type Clock interface {
	pos.TimeZoneConverter
	Now() time.Time
}

// OrderTranslationService turns stored orders into POS add-order requests
type OrderTranslationService struct {
	orders       ordering.OrderReader
	translations ordering.TranslationRepository
	translator   *pos.Translator
	clock        Clock
	logger       *zap.Logger
}

// NewOrderTranslationService creates a new order translation service
func NewOrderTranslationService(
	orders ordering.OrderReader,
	translations ordering.TranslationRepository,
	clock Clock,
	logger *zap.Logger,
) *OrderTranslationService {
	return &OrderTranslationService{
		orders:       orders,
		translations: translations,
		translator:   pos.NewTranslator(clock),
		clock:        clock,
		logger:       logger,
	}
}

// BuildRequest loads the order and the lookup tables, translates the order
// and validates the result
func (s *OrderTranslationService) BuildRequest(ctx context.Context, orderID uuid.UUID) (*pos.AddOrderRequest, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	food, err := s.translations.FoodTranslations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load food translations: %w", err)
	}
	payments, err := s.translations.PaymentTranslations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load payment translations: %w", err)
	}

	req, err := s.translator.Build(order, s.clock.Now(), food, payments)
	if err != nil {
		s.logger.Warn("order could not be translated",
			zap.String("order_id", orderID.String()),
			zap.String("external_order_ref", order.ExternalOrderRef),
			zap.Error(err),
		)
		return nil, err
	}

	if err := pos.Validate(req); err != nil {
		s.logger.Warn("translated order is invalid",
			zap.String("order_id", orderID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Debug("order translated",
		zap.String("order_id", orderID.String()),
		zap.Int("lines", len(req.Items)),
	)
	return req, nil
}
