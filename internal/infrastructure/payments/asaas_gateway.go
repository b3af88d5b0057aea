package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"pagfacil/internal/domain/entities"
	"pagfacil/internal/usecase/interfaces"
)

var ErrMissingAsaasAPIKey = errors.New("missing ASAAS_API_KEY")

const DefaultBaseURL = "https://api-sandbox.asaas.com/v3"

// AsaasGateway is the REST binding to the Asaas payment processor.
//
// One instance is built at startup and shared by every request; the base URL,
// API key and *http.Client are read-only after construction. Auth is the
// Asaas `access_token` header. Non-2xx answers surface as
// *interfaces.UpstreamError carrying the upstream body verbatim.

type AsaasGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ interfaces.IProcessorGateway = (*AsaasGateway)(nil)

func NewAsaasGateway(baseURL, apiKey string, client *http.Client) (*AsaasGateway, error) {
	if apiKey == "" {
		log.Printf("[processor][gateway] missing ASAAS_API_KEY")
		return nil, ErrMissingAsaasAPIKey
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{}
	}
	log.Printf("[processor][gateway] Asaas client initialized base_url=%s", baseURL)
	return &AsaasGateway{baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey, client: client}, nil
}

type asaasCustomerResponse struct {
	ID string `json:"id"`
}

type asaasPaymentRequest struct {
	BillingType      string  `json:"billingType"`
	Customer         string  `json:"customer"`
	Description      string  `json:"description,omitempty"`
	Value            float64 `json:"value"`
	DueDate          string  `json:"dueDate"`
	InstallmentCount int     `json:"installmentCount,omitempty"`
}

type asaasPaymentResponse struct {
	ID             string  `json:"id"`
	Status         string  `json:"status"`
	Value          float64 `json:"value"`
	Description    string  `json:"description"`
	DueDate        string  `json:"dueDate"`
	PixTransaction *struct {
		QrCode *struct {
			Payload      string `json:"payload"`
			EncodedImage string `json:"encodedImage"`
		} `json:"qrCode"`
	} `json:"pixTransaction"`
}

func (r asaasPaymentResponse) toRecord() entities.PaymentRecord {
	rec := entities.PaymentRecord{
		ID:          r.ID,
		Status:      entities.PaymentStatus(r.Status),
		Value:       r.Value,
		Description: r.Description,
		DueDate:     r.DueDate,
	}
	if r.PixTransaction != nil && r.PixTransaction.QrCode != nil {
		rec.Pix = &entities.PixQrCode{
			Payload:      r.PixTransaction.QrCode.Payload,
			EncodedImage: r.PixTransaction.QrCode.EncodedImage,
		}
	}
	return rec
}

func (g *AsaasGateway) CreateCustomer(ctx context.Context, customer entities.CustomerInput) (string, error) {
	log.Printf("[processor][gateway] create customer start name=%q", customer.Name)

	var resp asaasCustomerResponse
	if err := g.do(ctx, http.MethodPost, "/customers", "create-customer", customer, &resp); err != nil {
		return "", err
	}
	log.Printf("[processor][gateway] create customer success customer_ref=%s", resp.ID)
	return resp.ID, nil
}

func (g *AsaasGateway) CreatePayment(ctx context.Context, method entities.BillingMethod, customerRef, description string, value float64, dueDate string) (entities.PaymentRecord, error) {
	log.Printf("[processor][gateway] create payment start method=%s customer_ref=%s value=%.2f due_date=%s", method, customerRef, value, dueDate)

	payload := asaasPaymentRequest{
		BillingType: string(method),
		Customer:    customerRef,
		Description: description,
		Value:       value,
		DueDate:     dueDate,
	}
	if method == entities.BillingMethodCreditCard {
		// Single-installment charge of the full amount; multi-installment is
		// not supported.
		payload.InstallmentCount = 1
	}

	var resp asaasPaymentResponse
	if err := g.do(ctx, http.MethodPost, "/payments", "create-payment", payload, &resp); err != nil {
		return entities.PaymentRecord{}, err
	}
	log.Printf("[processor][gateway] create payment success payment_id=%s status=%s", resp.ID, resp.Status)
	return resp.toRecord(), nil
}

func (g *AsaasGateway) ChargeCard(ctx context.Context, paymentID string, card entities.CardDetails, holder *entities.CardHolderInfo) (entities.PaymentStatus, error) {
	log.Printf("[processor][gateway] charge card start payment_id=%s", paymentID)

	payload := struct {
		CreditCard           entities.CardDetails     `json:"creditCard"`
		CreditCardHolderInfo *entities.CardHolderInfo `json:"creditCardHolderInfo,omitempty"`
	}{CreditCard: card, CreditCardHolderInfo: holder}

	var resp asaasPaymentResponse
	if err := g.do(ctx, http.MethodPost, "/payments/"+paymentID+"/payWithCreditCard", "charge-card", payload, &resp); err != nil {
		return "", err
	}
	log.Printf("[processor][gateway] charge card success payment_id=%s status=%s", paymentID, resp.Status)
	return entities.PaymentStatus(resp.Status), nil
}

func (g *AsaasGateway) GetPayment(ctx context.Context, paymentID string) (entities.PaymentRecord, error) {
	var resp asaasPaymentResponse
	if err := g.do(ctx, http.MethodGet, "/payments/"+paymentID, "get-payment", nil, &resp); err != nil {
		return entities.PaymentRecord{}, err
	}
	log.Printf("[processor][gateway] get payment success payment_id=%s status=%s", resp.ID, resp.Status)
	return resp.toRecord(), nil
}

func (g *AsaasGateway) GetPixQrCode(ctx context.Context, paymentID string) (entities.PixQrCode, error) {
	var resp entities.PixQrCode
	if err := g.do(ctx, http.MethodGet, "/payments/"+paymentID+"/pixQrCode", "get-pix-qrcode", nil, &resp); err != nil {
		return entities.PixQrCode{}, err
	}
	return resp, nil
}

func (g *AsaasGateway) do(ctx context.Context, method, path, operation string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", operation, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", operation, err)
	}
	req.Header.Set("access_token", g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[processor][gateway] %s transport failed err=%v", operation, err)
		return &interfaces.UpstreamError{Service: "asaas", Operation: operation, Body: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[processor][gateway] %s failed status=%d body=%s", operation, resp.StatusCode, raw)
		return &interfaces.UpstreamError{Service: "asaas", Operation: operation, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode %s response: %w", operation, err)
		}
	}
	return nil
}
