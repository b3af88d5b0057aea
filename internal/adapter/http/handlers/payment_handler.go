package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "pagfacil/internal/adapter/http/dto/request"
	response "pagfacil/internal/adapter/http/dto/response"
	"pagfacil/internal/usecase"
	"pagfacil/internal/usecase/interfaces"
	"pagfacil/pkg"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler exposes the payment orchestrator over HTTP.

type PaymentHandler struct {
	usecase usecase.IPaymentOrchestrator
}

func NewPaymentHandler(uc usecase.IPaymentOrchestrator) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment handles POST /create-payment.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] create invalid payload err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create start method=%s", payload.BillingType)

	result, err := h.usecase.CreatePayment(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[payment][handler] create failed method=%s err=%v", payload.BillingType, err)
		appErr := mapCreatePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success payment_id=%s status=%s", result.PaymentID, result.Status)

	c.JSON(http.StatusOK, response.FromCreatePaymentResult(result))
}

// ConfirmPayment handles POST /confirm-payment.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var payload request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] confirm start payment_id=%s", payload.PaymentID)

	result, err := h.usecase.ConfirmPayment(c.Request.Context(), payload.PaymentID)
	if err != nil {
		log.Printf("[payment][handler] confirm failed payment_id=%s err=%v", payload.PaymentID, err)
		appErr := mapConfirmPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] confirm result payment_id=%s status=%s payment_status=%s", payload.PaymentID, result.Status, result.PaymentStatus)

	c.JSON(http.StatusOK, response.FromConfirmPaymentResult(result))
}

// GetPixQrCode handles GET /pix/:paymentId, proxying the processor's QR
// endpoint verbatim.
func (h *PaymentHandler) GetPixQrCode(c *gin.Context) {
	paymentID := c.Param("paymentId")

	qr, err := h.usecase.GetPixQrCode(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] pix qrcode failed payment_id=%s err=%v", paymentID, err)
		appErr := mapConfirmPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, qr)
}

// mapCreatePaymentError follows the create-payment status policy: validation
// failures and processor rejections both answer 400, echoing the upstream
// body when there is one.
func mapCreatePaymentError(err error) *pkg.AppError {
	var upstream *interfaces.UpstreamError
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be a positive number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingCardDetails):
		return pkg.NewDomainErrorSimple("MISSING_CARD_DETAILS", "Credit card details are required for CREDIT_CARD", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBillingMethod):
		return pkg.NewDomainErrorSimple("INVALID_BILLING_METHOD", "Billing method must be PIX or CREDIT_CARD", http.StatusBadRequest)
	case errors.As(err, &upstream):
		return pkg.NewDomainError("PROCESSOR_ERROR", upstream.Body, err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapConfirmPaymentError keeps the confirm/QR-lookup policy: missing input is
// 400, upstream failure is 500. The create/confirm status-code split is
// inherited behavior.
func mapConfirmPaymentError(err error) *pkg.AppError {
	var upstream *interfaces.UpstreamError
	switch {
	case errors.Is(err, usecase.ErrMissingPaymentID):
		return pkg.NewDomainErrorSimple("MISSING_PAYMENT_ID", "paymentId is required", http.StatusBadRequest)
	case errors.As(err, &upstream):
		return pkg.NewDomainError("PROCESSOR_ERROR", upstream.Body, err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
