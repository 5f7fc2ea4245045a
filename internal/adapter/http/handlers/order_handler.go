package handlers

import (
	"log"
	"net/http"
	"time"

	"varejo_xpto/internal/adapter/http/dto/request"
	"varejo_xpto/internal/adapter/http/dto/response"
	"varejo_xpto/internal/metrics"
	"varejo_xpto/internal/usecase"
	"varejo_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles HTTP requests for order submission.

type OrderHandler struct {
	usecase usecase.ISubmitOrderUseCase
	metrics *metrics.Registry
}

func NewOrderHandler(uc usecase.ISubmitOrderUseCase, reg *metrics.Registry) *OrderHandler {
	return &OrderHandler{usecase: uc, metrics: reg}
}

// SubmitOrder accepts an order submission and queues it for asynchronous
// processing.
//
// @Summary      Submit an order
// @Description  Validates the submission and publishes it to the processing pipeline.
// @Accept       json
// @Produce      json
// @Param        order body request.SubmitOrderRequest true "order submission"
// @Success      202 {object} response.SubmitOrderResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /orders [post]
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var req request.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[ingress][handler] bind failed err=%v", err)
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	req.Sanitize()
	if err := req.Validate(time.Now()); err != nil {
		log.Printf("[ingress][handler] validation failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, response.ErrorResponse{Error: appErr.Message})
		return
	}

	customer, card, address, items := req.ToDomain()
	orderID, err := h.usecase.Submit(c.Request.Context(), customer, card, address, items)
	if err != nil {
		log.Printf("[ingress][handler] submit failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, response.ErrorResponse{Error: appErr.Message})
		return
	}

	if h.metrics != nil {
		h.metrics.OrdersSubmitted.Inc()
	}
	log.Printf("[ingress][handler] submit accepted order_id=%s", orderID)
	c.JSON(http.StatusAccepted, response.Submitted(orderID))
}
