package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/logger"

	"github.com/shopspring/decimal"
)

const (
	defaultAsaasTimeout = 15 * time.Second
	maxDescriptionLen   = 255
)

// AsaasClient talks to the Asaas v3 REST API.
type AsaasClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// NewAsaasClient creates a gateway client. Missing credentials are reported
// on the first call, not here.
func NewAsaasClient(settings *config.AsaasSettings, logger logger.Logger) (*AsaasClient, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = defaultAsaasTimeout
	}

	return &AsaasClient{
		apiKey:     settings.APIKey,
		baseURL:    strings.TrimRight(settings.APIBase, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

func (c *AsaasClient) checkConfiguration() error {
	if c.apiKey == "" {
		return &payments.MissingConfigurationError{Setting: "ASAAS_API_KEY"}
	}
	if c.baseURL == "" {
		return &payments.MissingConfigurationError{Setting: "ASAAS_API_BASE"}
	}
	return nil
}

// request sends a JSON request and decodes the JSON object answered.
func (c *AsaasClient) request(ctx context.Context, method, path string, query url.Values, body any) (map[string]any, error) {
	if err := c.checkConfiguration(); err != nil {
		return nil, err
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("access_token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &payments.APIError{Message: fmt.Sprintf("Erro de comunicacao com a API da Asaas: %v", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &payments.APIError{Message: fmt.Sprintf("Erro de comunicacao com a API da Asaas: %v", err), StatusCode: resp.StatusCode}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		data := map[string]any{}
		if err := json.Unmarshal(raw, &data); err != nil {
			data = map[string]any{"raw": string(raw)}
		}
		var message any = data
		if errs, ok := data["errors"]; ok {
			message = errs
		}
		return nil, &payments.APIError{
			Message:      fmt.Sprintf("Erro da API Asaas: %v", message),
			StatusCode:   resp.StatusCode,
			ResponseData: data,
		}
	}
	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	data := map[string]any{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &payments.APIError{Message: "Resposta invalida da API Asaas.", StatusCode: resp.StatusCode}
	}
	return data, nil
}

// EnsureCustomer looks the customer up by CPF and creates it when absent.
func (c *AsaasClient) EnsureCustomer(ctx context.Context, req payments.CustomerRequest) (*payments.Customer, error) {
	found, err := c.request(ctx, http.MethodGet, "/customers", url.Values{"cpfCnpj": {req.CPF}}, nil)
	if err != nil {
		return nil, err
	}
	if list, ok := found["data"].([]any); ok && len(list) > 0 {
		if customer, ok := list[0].(map[string]any); ok {
			return &payments.Customer{ID: stringField(customer, "id"), Raw: customer}, nil
		}
	}

	payload := map[string]any{
		"name":    req.Name,
		"cpfCnpj": req.CPF,
	}
	if req.Email != "" {
		payload["email"] = req.Email
	}
	if req.MobilePhone != "" {
		payload["mobilePhone"] = req.MobilePhone
	}
	created, err := c.request(ctx, http.MethodPost, "/customers", nil, payload)
	if err != nil {
		return nil, err
	}

	id, err := requireID(created, "cliente")
	if err != nil {
		return nil, err
	}

	c.logger.Info("Created Asaas customer", "customer_id", id)
	return &payments.Customer{ID: id, Raw: created}, nil
}

// CreatePayment creates a charge. For PIX charges the QR code is fetched as
// well; a failure there only logs a warning.
func (c *AsaasClient) CreatePayment(ctx context.Context, req payments.ChargeRequest) (*payments.Charge, error) {
	description := truncateRunes(req.Description, maxDescriptionLen)

	payload := map[string]any{
		"customer":          req.CustomerID,
		"billingType":       string(req.BillingType),
		"value":             json.Number(req.Value.StringFixed(2)),
		"dueDate":           req.DueDate.Format(events.DateLayout),
		"description":       description,
		"externalReference": req.ExternalReference,
	}
	raw, err := c.request(ctx, http.MethodPost, "/payments", nil, payload)
	if err != nil {
		return nil, err
	}

	id, err := requireID(raw, "pagamento")
	if err != nil {
		return nil, err
	}

	charge := &payments.Charge{
		ID:          id,
		Status:      payments.Status(stringField(raw, "status")),
		BillingType: payments.BillingType(stringField(raw, "billingType")),
		DueDate:     req.DueDate,
		Value:       req.Value,
		InvoiceURL:  stringField(raw, "invoiceUrl"),
		BankSlipURL: stringField(raw, "bankSlipUrl"),
		Raw:         raw,
	}
	if due, err := time.Parse(events.DateLayout, stringField(raw, "dueDate")); err == nil {
		charge.DueDate = due
	}
	if value, ok := raw["value"].(float64); ok {
		charge.Value = decimal.NewFromFloat(value).Round(2)
	}

	if charge.BillingType == payments.BillingPix {
		pix, err := c.request(ctx, http.MethodGet, "/payments/"+url.PathEscape(charge.ID)+"/pixQrCode", nil, nil)
		if err != nil {
			c.logger.Warn("Nao foi possivel obter o QRCode PIX", "payment_id", charge.ID, "error", err)
		} else {
			charge.PixQRCodeImage = stringField(pix, "encodedImage")
			charge.PixCopyAndPaste = stringField(pix, "payload")
		}
	}

	c.logger.Info("Created Asaas payment", "payment_id", charge.ID, "billing_type", charge.BillingType, "status", charge.Status)
	return charge, nil
}

// requireID returns the id of a created resource. A success response
// without one is reported as a gateway error.
func requireID(data map[string]any, resource string) (string, error) {
	id := stringField(data, "id")
	if id == "" {
		return "", &payments.APIError{
			Message:      fmt.Sprintf("Resposta da API Asaas sem identificador do %s.", resource),
			StatusCode:   http.StatusOK,
			ResponseData: data,
		}
	}
	return id, nil
}

func stringField(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
