package response

import (
	"pagfacil/internal/usecase"
)

// CreatePaymentResponse mirrors the shape the client app consumes.
// pixQrCode/pixImage stay null (not omitted) when the processor has no QR
// data for the payment.
type CreatePaymentResponse struct {
	Success   bool    `json:"success"`
	PaymentID string  `json:"paymentId"`
	Status    string  `json:"status"`
	PixQrCode *string `json:"pixQrCode"`
	PixImage  *string `json:"pixImage"`
}

func FromCreatePaymentResult(r usecase.CreatePaymentResult) CreatePaymentResponse {
	return CreatePaymentResponse{
		Success:   r.Success,
		PaymentID: r.PaymentID,
		Status:    string(r.Status),
		PixQrCode: r.PixQrCode,
		PixImage:  r.PixImage,
	}
}

// ConfirmPaymentResponse keeps the pending body minimal (status + raw
// upstream status); a "success" answer always carries description and value,
// even when they are zero.
type ConfirmPaymentResponse struct {
	Status        string   `json:"status"`
	PaymentStatus string   `json:"paymentStatus"`
	Description   *string  `json:"description,omitempty"`
	Value         *float64 `json:"value,omitempty"`
}

func FromConfirmPaymentResult(r usecase.ConfirmPaymentResult) ConfirmPaymentResponse {
	res := ConfirmPaymentResponse{
		Status:        r.Status,
		PaymentStatus: string(r.PaymentStatus),
	}
	if r.Status == "success" {
		res.Description = &r.Description
		res.Value = &r.Value
	}
	return res
}
