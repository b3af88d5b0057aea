package interfaces

import (
	"context"

	"pagfacil/internal/domain/entities"
)

//go:generate mockgen -source=processor_gateway_interface.go -destination=mocks/processor_gateway_interface_mock.go

// IProcessorGateway abstracts the external payment processor (e.g. Asaas).
//
// The relay uses it to create a customer, open a charge, optionally drive the
// card sub-step and re-fetch payment state. The processor is the single
// source of truth; nothing returned here is cached or persisted.
type IProcessorGateway interface {
	// CreateCustomer registers the payer and returns the processor-owned
	// customer reference (opaque, per-request, never cached).
	CreateCustomer(ctx context.Context, customer entities.CustomerInput) (string, error)

	// CreatePayment opens a charge against customerRef. For CREDIT_CARD the
	// request carries a single-installment charge of the full amount.
	CreatePayment(ctx context.Context, method entities.BillingMethod, customerRef, description string, value float64, dueDate string) (entities.PaymentRecord, error)

	// ChargeCard runs the second-phase card charge. On failure the already
	// created payment is left in whatever state the processor assigned.
	ChargeCard(ctx context.Context, paymentID string, card entities.CardDetails, holder *entities.CardHolderInfo) (entities.PaymentStatus, error)

	// GetPayment re-fetches the payment record by id.
	GetPayment(ctx context.Context, paymentID string) (entities.PaymentRecord, error)

	// GetPixQrCode fetches the PIX QR payload/image for a payment.
	GetPixQrCode(ctx context.Context, paymentID string) (entities.PixQrCode, error)
}
