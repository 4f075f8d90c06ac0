package handler

import (
	"context"
	"errors"

	"github.com/andromeda/ordersync/internal/domain/pos"
	"github.com/andromeda/ordersync/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestBuilder builds the POS request for a stored order
type RequestBuilder interface {
	BuildRequest(ctx context.Context, orderID uuid.UUID) (*pos.AddOrderRequest, error)
}

// POSOrderHandler exposes the translated POS request of an order
type POSOrderHandler struct {
	BaseHandler
	builder RequestBuilder
}

// NewPOSOrderHandler creates a new POSOrderHandler
func NewPOSOrderHandler(builder RequestBuilder) *POSOrderHandler {
	return &POSOrderHandler{builder: builder}
}

// GetRequest returns the validated add-order request for an order
// GET /api/v1/pos/orders/:id/request
func (h *POSOrderHandler) GetRequest(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid order id")
		return
	}

	request, err := h.builder.BuildRequest(c.Request.Context(), orderID)
	if err != nil {
		h.handleBuildError(c, err)
		return
	}
	h.Success(c, request)
}

func (h *POSOrderHandler) handleBuildError(c *gin.Context, err error) {
	var missing *pos.MissingPLUError
	if errors.As(err, &missing) {
		resp := dto.NewErrorResponseWithRequestID(dto.ErrCodePLUMissing, err.Error(), getRequestID(c))
		resp.Error.ProductIDs = missing.ProductIDs
		c.JSON(dto.GetHTTPStatus(dto.ErrCodePLUMissing), resp)
		return
	}

	var invalid *pos.ValidationError
	if errors.As(err, &invalid) {
		resp := dto.NewErrorResponseWithRequestID(dto.ErrCodeInvalidRequest, invalid.Message, getRequestID(c))
		resp.Error.Field = invalid.Field
		c.JSON(dto.GetHTTPStatus(dto.ErrCodeInvalidRequest), resp)
		return
	}

	if errors.Is(err, pos.ErrPLUMissing) {
		h.ErrorWithCode(c, dto.ErrCodePLUMissing, err.Error())
		return
	}
	if errors.Is(err, pos.ErrInvalidRequest) {
		h.ErrorWithCode(c, dto.ErrCodeInvalidRequest, err.Error())
		return
	}

	h.HandleError(c, err)
}
