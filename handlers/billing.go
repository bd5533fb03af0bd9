package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neujobscan/backend/billing"
	"github.com/neujobscan/backend/models"
	"github.com/neujobscan/backend/storage"
)

// BillingHandler handles plan checkout requests
type BillingHandler struct {
	provider billing.CheckoutProvider
	users    storage.UserStore
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(provider billing.CheckoutProvider, users storage.UserStore) *BillingHandler {
	return &BillingHandler{
		provider: provider,
		users:    users,
	}
}

// CreateCheckout opens a checkout session for a plan upgrade
// @Summary Start a checkout session
// @Description Create a checkout session for upgrading to a paid plan
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Checkout request"
// @Success 200 {object} models.APIResponse{data=billing.CheckoutSession} "Checkout session"
// @Failure 400 {object} models.ErrorResponse "Invalid plan or email"
// @Failure 502 {object} models.ErrorResponse "Payment backend unavailable"
// @Router /billing/checkout [post]
func (h *BillingHandler) CreateCheckout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest, "Invalid request body", err.Error()))
		return
	}

	if !billing.ValidPlan(req.Plan) {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest, "Unknown plan", "plan must be one of: pro, premium"))
		return
	}

	session, err := h.provider.CreateSession(c.Request.Context(), req.Plan, req.Email)
	if err != nil {
		log.Printf("[BillingHandler] Checkout session failed for %s: %v", req.Email, err)
		c.JSON(http.StatusBadGateway, models.NewErrorResponse(
			http.StatusBadGateway, "Could not start checkout", err.Error()))
		return
	}

	log.Printf("[BillingHandler] Checkout session %s created for %s (plan=%s)",
		session.SessionID, req.Email, req.Plan)
	c.JSON(http.StatusOK, models.NewAPIResponse(http.StatusOK, session, "Checkout session created"))
}
