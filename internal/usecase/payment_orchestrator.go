package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"pagfacil/internal/domain/entities"
	"pagfacil/internal/usecase/interfaces"
)

var (
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidBillingMethod = errors.New("invalid billing method")
	ErrMissingCardDetails   = errors.New("missing credit card details")
	ErrMissingPaymentID     = errors.New("missing payment id")
)

// CreatePaymentInput is the checkout request handed to the orchestrator.
//
// Amount arrives as json.Number so that validation (and its short-circuit
// before any upstream call) happens here, not in the JSON codec.
type CreatePaymentInput struct {
	BillingMethod string
	Customer      entities.CustomerInput
	Description   string
	Amount        json.Number
	Card          *entities.CardDetails
	CardHolder    *entities.CardHolderInfo
}

type CreatePaymentResult struct {
	Success   bool
	PaymentID string
	Status    entities.PaymentStatus

	// PIX only; nil when the processor omitted the inline QR data.
	PixQrCode *string
	PixImage  *string
}

type ConfirmPaymentResult struct {
	Status        string // "pending" | "success"
	PaymentStatus entities.PaymentStatus
	Description   string
	Value         float64
}

// IPaymentOrchestrator sequences processor calls per billing method and
// triggers the notifier without blocking the response.

type IPaymentOrchestrator interface {
	CreatePayment(ctx context.Context, in CreatePaymentInput) (CreatePaymentResult, error)
	ConfirmPayment(ctx context.Context, paymentID string) (ConfirmPaymentResult, error)
	GetPixQrCode(ctx context.Context, paymentID string) (entities.PixQrCode, error)
}

type PaymentOrchestrator struct {
	gateway  interfaces.IProcessorGateway
	notifier interfaces.INotifier

	now func() time.Time
}

var _ IPaymentOrchestrator = (*PaymentOrchestrator)(nil)

func NewPaymentOrchestrator(gateway interfaces.IProcessorGateway, notifier interfaces.INotifier) *PaymentOrchestrator {
	return &PaymentOrchestrator{gateway: gateway, notifier: notifier, now: time.Now}
}

// CreatePayment runs the two-phase creation flow:
//
//	validate -> create customer -> create payment -> branch on billing method
//	  CREDIT_CARD -> charge card -> detached notify -> success
//	  PIX         -> success with QR data
//	  other       -> invalid method
//
// The flow is deliberately not idempotent: a retried request creates a
// duplicate customer and a duplicate charge upstream.
func (o *PaymentOrchestrator) CreatePayment(ctx context.Context, in CreatePaymentInput) (CreatePaymentResult, error) {
	method := entities.BillingMethod(strings.ToUpper(strings.TrimSpace(in.BillingMethod)))
	log.Printf("[payment][usecase] create start method=%s customer=%q", method, in.Customer.Name)

	value, err := parseAmount(in.Amount)
	if err != nil {
		log.Printf("[payment][usecase] invalid amount %q: %v", in.Amount, err)
		return CreatePaymentResult{}, err
	}
	if method == entities.BillingMethodCreditCard && in.Card == nil {
		log.Printf("[payment][usecase] credit card method without card details")
		return CreatePaymentResult{}, ErrMissingCardDetails
	}
	if o.gateway == nil {
		return CreatePaymentResult{}, errors.New("processor gateway not configured")
	}

	customerRef, err := o.gateway.CreateCustomer(ctx, in.Customer)
	if err != nil {
		log.Printf("[payment][usecase] create customer failed err=%v", err)
		return CreatePaymentResult{}, err
	}
	log.Printf("[payment][usecase] customer created customer_ref=%s", customerRef)

	dueDate := o.now().UTC().Add(24 * time.Hour).Format("2006-01-02")
	record, err := o.gateway.CreatePayment(ctx, method, customerRef, in.Description, value, dueDate)
	if err != nil {
		log.Printf("[payment][usecase] create payment failed customer_ref=%s err=%v", customerRef, err)
		return CreatePaymentResult{}, err
	}
	log.Printf("[payment][usecase] payment created payment_id=%s status=%s due_date=%s", record.ID, record.Status, dueDate)

	switch method {
	case entities.BillingMethodCreditCard:
		status, err := o.gateway.ChargeCard(ctx, record.ID, *in.Card, in.CardHolder)
		if err != nil {
			// The customer and payment already exist upstream; the processor
			// keeps whatever state it assigned, no compensating cancel.
			log.Printf("[payment][usecase] card charge failed payment_id=%s err=%v", record.ID, err)
			return CreatePaymentResult{}, err
		}
		log.Printf("[payment][usecase] card charged payment_id=%s status=%s", record.ID, status)

		o.notifyDetached(in.Customer.Phone, fmt.Sprintf("Pagamento confirmado! %s - R$ %.2f", in.Description, value))

		return CreatePaymentResult{Success: true, PaymentID: record.ID, Status: status}, nil

	case entities.BillingMethodPix:
		res := CreatePaymentResult{Success: true, PaymentID: record.ID, Status: record.Status}
		if record.Pix != nil {
			res.PixQrCode = &record.Pix.Payload
			res.PixImage = &record.Pix.EncodedImage
		}
		return res, nil

	default:
		log.Printf("[payment][usecase] invalid billing method %q payment_id=%s", method, record.ID)
		return CreatePaymentResult{}, ErrInvalidBillingMethod
	}
}

// ConfirmPayment re-fetches the payment from the processor. Settled payments
// (CONFIRMED/RECEIVED) answer "success" and fire one detached notification;
// everything else answers "pending" with the raw upstream status.
//
// The payer's phone is not threaded from create to confirm, so the
// notification goes to the notifier's placeholder number.
func (o *PaymentOrchestrator) ConfirmPayment(ctx context.Context, paymentID string) (ConfirmPaymentResult, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return ConfirmPaymentResult{}, ErrMissingPaymentID
	}
	log.Printf("[payment][usecase] confirm start payment_id=%s", paymentID)

	record, err := o.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][usecase] confirm fetch failed payment_id=%s err=%v", paymentID, err)
		return ConfirmPaymentResult{}, err
	}

	if !record.Status.IsSettled() {
		log.Printf("[payment][usecase] confirm pending payment_id=%s status=%s", paymentID, record.Status)
		return ConfirmPaymentResult{Status: "pending", PaymentStatus: record.Status}, nil
	}

	log.Printf("[payment][usecase] confirm success payment_id=%s status=%s", paymentID, record.Status)
	o.notifyDetached("", fmt.Sprintf("Pagamento confirmado! %s - R$ %.2f", record.Description, record.Value))

	return ConfirmPaymentResult{
		Status:        "success",
		PaymentStatus: record.Status,
		Description:   record.Description,
		Value:         record.Value,
	}, nil
}

func (o *PaymentOrchestrator) GetPixQrCode(ctx context.Context, paymentID string) (entities.PixQrCode, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.PixQrCode{}, ErrMissingPaymentID
	}
	return o.gateway.GetPixQrCode(ctx, paymentID)
}

// notifyDetached fires the notification off the response path. No ordering or
// delivery guarantee exists; a shutdown mid-flight loses it silently. The
// request context ends with the response, so the dispatch runs on its own
// background context.
func (o *PaymentOrchestrator) notifyDetached(phone, message string) {
	if o.notifier == nil {
		return
	}
	go o.notifier.Notify(context.Background(), phone, message)
}

// parseAmount validates and rounds the checkout amount. The amount must parse
// as a finite positive number; rounding to 2 decimal digits happens here so
// every upstream call carries the same value.
func parseAmount(raw json.Number) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw.String()), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	if v <= 0 {
		return 0, ErrInvalidAmount
	}
	return roundAmount(v), nil
}

// roundAmount rounds half-up at the second decimal digit. It works on the
// decimal digits of the value's shortest representation rather than on a
// float-scaled product, so ties like 1.005 round to 1.01 instead of picking
// up the representation error of 1.005*100.
func roundAmount(v float64) float64 {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 || len(s)-dot-1 <= 2 {
		return v
	}

	frac := s[dot+1:]
	cents, err := strconv.ParseInt(s[:dot]+frac[:2], 10, 64)
	if err != nil {
		// Out of int64 cent range; cent precision is meaningless there.
		return math.Round(v*100) / 100
	}
	if frac[2] >= '5' {
		cents++
	}
	return float64(cents) / 100
}
