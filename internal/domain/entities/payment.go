package entities

// BillingMethod discriminates between the PIX and card-based charge flows.
type BillingMethod string

const (
	BillingMethodPix        BillingMethod = "PIX"
	BillingMethodCreditCard BillingMethod = "CREDIT_CARD"
)

// PaymentStatus is the processor-owned payment lifecycle status.
//
// The processor is authoritative; this service never persists or advances a
// status on its own, it only re-fetches. Values outside the known set are
// carried verbatim.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusConfirmed PaymentStatus = "CONFIRMED"
	PaymentStatusReceived  PaymentStatus = "RECEIVED"
)

// IsSettled reports whether the processor considers the payment paid.
func (s PaymentStatus) IsSettled() bool {
	return s == PaymentStatusConfirmed || s == PaymentStatusReceived
}

// CustomerInput is the transient customer record sent to the processor.
// It exists only within a single request; the processor owns the resulting
// customer. Phone feeds the notifier only and may be empty.
type CustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	TaxID string `json:"cpfCnpj"`
	Phone string `json:"-"`
}

// CardDetails carries the raw card data for the second-phase charge call.
type CardDetails struct {
	HolderName  string `json:"holderName"`
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CCV         string `json:"ccv"`
}

// CardHolderInfo is the holder data the processor requires alongside the card.
type CardHolderInfo struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	TaxID         string `json:"cpfCnpj"`
	PostalCode    string `json:"postalCode"`
	AddressNumber string `json:"addressNumber"`
	Phone         string `json:"phone"`
}

// PixQrCode is the processor-generated PIX copy-and-paste payload plus the
// base64-encoded QR image.
type PixQrCode struct {
	Payload      string `json:"payload"`
	EncodedImage string `json:"encodedImage"`
}

// PaymentRecord mirrors the processor's view of a payment. The source of
// truth lives upstream; confirm and QR-lookup flows re-fetch it every time.
type PaymentRecord struct {
	ID          string
	Status      PaymentStatus
	Value       float64
	Description string
	DueDate     string

	// Pix is set only when the processor already generated the QR data
	// inline with the payment (PIX billing).
	Pix *PixQrCode
}
