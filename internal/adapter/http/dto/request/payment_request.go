package request

import (
	"encoding/json"

	"pagfacil/internal/domain/entities"
	"pagfacil/internal/usecase"
)

// CreatePaymentRequest is the checkout payload sent by the client app.
//
// Field names follow the processor's vocabulary (`billingType`, `value`) so
// the client payload maps one-to-one. `value` is kept as json.Number; the
// orchestrator owns its validation and rounding.
type CreatePaymentRequest struct {
	BillingType          string                   `json:"billingType" binding:"required"`
	CustomerData         CustomerDataRequest      `json:"customerData" binding:"required"`
	Description          string                   `json:"description"`
	Value                json.Number              `json:"value"`
	CreditCard           *entities.CardDetails    `json:"creditCard"`
	CreditCardHolderInfo *entities.CardHolderInfo `json:"creditCardHolderInfo"`
}

type CustomerDataRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	CpfCnpj string `json:"cpfCnpj"`
	Phone   string `json:"phone"`
}

func (r CreatePaymentRequest) ToInput() usecase.CreatePaymentInput {
	return usecase.CreatePaymentInput{
		BillingMethod: r.BillingType,
		Customer: entities.CustomerInput{
			Name:  r.CustomerData.Name,
			Email: r.CustomerData.Email,
			TaxID: r.CustomerData.CpfCnpj,
			Phone: r.CustomerData.Phone,
		},
		Description: r.Description,
		Amount:      r.Value,
		Card:        r.CreditCard,
		CardHolder:  r.CreditCardHolderInfo,
	}
}

// ConfirmPaymentRequest carries the id of the payment to re-check upstream.
type ConfirmPaymentRequest struct {
	PaymentID string `json:"paymentId"`
}
