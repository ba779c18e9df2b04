package handlers

import (
	"log"
	"net/http"

	request "konveksi_checkout/internal/adapter/http/dto/request"
	response "konveksi_checkout/internal/adapter/http/dto/response"
	"konveksi_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler turns cart selections and buy-now requests into orders.
type CheckoutHandler struct {
	drafts usecase.IOrderDraftUseCase
}

func NewCheckoutHandler(drafts usecase.IOrderDraftUseCase) *CheckoutHandler {
	return &CheckoutHandler{drafts: drafts}
}

// CheckoutCart godoc
// @Summary      Create an order from cart lines
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.CartCheckoutRequest  true  "Cart selection"
// @Success      201   {object}  response.OrderSubmissionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /checkout/cart [post]
func (h *CheckoutHandler) CheckoutCart(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req request.CartCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[checkout][handler] invalid cart payload subject=%s err=%v", principal.Subject, err)
		writeError(c, errInvalidRequest)
		return
	}

	draft, err := h.drafts.BuildFromCart(req.CartLines(), req.Note)
	if err != nil {
		log.Printf("[checkout][handler] cart draft rejected subject=%s err=%v", principal.Subject, err)
		writeError(c, mapCheckoutError(err))
		return
	}

	submission, err := h.drafts.Submit(c.Request.Context(), principal, draft)
	if err != nil {
		log.Printf("[checkout][handler] cart submit failed subject=%s err=%v", principal.Subject, err)
		writeError(c, mapCheckoutError(err))
		return
	}
	log.Printf("[checkout][handler] cart checkout success subject=%s order_id=%s", principal.Subject, submission.Order.ID)

	c.JSON(http.StatusCreated, response.FromOrderSubmission(submission))
}

// BuyNow godoc
// @Summary      Create an order for a single product
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.BuyNowRequest  true  "Product line"
// @Success      201   {object}  response.OrderSubmissionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /checkout/buy-now [post]
func (h *CheckoutHandler) BuyNow(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}
	var req request.BuyNowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[checkout][handler] invalid buy-now payload subject=%s err=%v", principal.Subject, err)
		writeError(c, errInvalidRequest)
		return
	}

	draft, err := h.drafts.BuildBuyNow(req.Line.ToEntity(), req.Note)
	if err != nil {
		log.Printf("[checkout][handler] buy-now draft rejected subject=%s err=%v", principal.Subject, err)
		writeError(c, mapCheckoutError(err))
		return
	}

	// The draft is kept so a failed submit can be resumed after a reload.
	if err := h.drafts.StashDraft(c.Request.Context(), principal, draft); err != nil {
		log.Printf("[checkout][handler] buy-now stash failed subject=%s err=%v", principal.Subject, err)
	}

	submission, err := h.drafts.Submit(c.Request.Context(), principal, draft)
	if err != nil {
		log.Printf("[checkout][handler] buy-now submit failed subject=%s err=%v", principal.Subject, err)
		writeError(c, mapCheckoutError(err))
		return
	}
	log.Printf("[checkout][handler] buy-now success subject=%s order_id=%s", principal.Subject, submission.Order.ID)

	c.JSON(http.StatusCreated, response.FromOrderSubmission(submission))
}
