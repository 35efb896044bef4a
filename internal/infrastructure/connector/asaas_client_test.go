//go:build unit
// +build unit

package connector

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/payments"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAsaasClient(t *testing.T, handler http.HandlerFunc) *AsaasClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewAsaasClient(&config.AsaasSettings{
		APIKey:  "test-key",
		APIBase: server.URL + "/",
		Timeout: 5 * time.Second,
	}, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return client
}

func TestAsaasClient_EnsureCustomer_Existing(t *testing.T) {
	client := newTestAsaasClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/customers", r.URL.Path)
		assert.Equal(t, "12345678901", r.URL.Query().Get("cpfCnpj"))
		assert.Equal(t, "test-key", r.Header.Get("access_token"))
		_, _ = w.Write([]byte(`{"data":[{"id":"cus_1","name":"Joao"}]}`))
	})

	customer, err := client.EnsureCustomer(context.Background(), payments.CustomerRequest{Name: "Joao", CPF: "12345678901"})
	require.NoError(t, err)
	assert.Equal(t, "cus_1", customer.ID)
}

func TestAsaasClient_EnsureCustomer_Creates(t *testing.T) {
	var created map[string]any
	client := newTestAsaasClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`{"data":[]}`))
			return
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&created))
		_, _ = w.Write([]byte(`{"id":"cus_2"}`))
	})

	customer, err := client.EnsureCustomer(context.Background(), payments.CustomerRequest{
		Name:        "Joao",
		CPF:         "12345678901",
		MobilePhone: "85988887777",
	})
	require.NoError(t, err)
	assert.Equal(t, "cus_2", customer.ID)
	assert.Equal(t, "85988887777", created["mobilePhone"])
	assert.NotContains(t, created, "email")
}

func TestAsaasClient_CreatePayment_Pix(t *testing.T) {
	var body map[string]any
	client := newTestAsaasClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/payments":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			_, _ = w.Write([]byte(`{"id":"pay_1","status":"PENDING","billingType":"PIX","dueDate":"2026-10-20","value":80.5,"invoiceUrl":"https://asaas/i/1"}`))
		case "/payments/pay_1/pixQrCode":
			_, _ = w.Write([]byte(`{"encodedImage":"aW1n","payload":"000201"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	charge, err := client.CreatePayment(context.Background(), payments.ChargeRequest{
		CustomerID:        "cus_1",
		Value:             decimal.RequireFromString("80.5"),
		DueDate:           time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
		Description:       strings.Repeat("a", 300),
		BillingType:       payments.BillingPix,
		ExternalReference: "reg-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "pay_1", charge.ID)
	assert.Equal(t, payments.StatusPending, charge.Status)
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), charge.DueDate)
	assert.Equal(t, "aW1n", charge.PixQRCodeImage)
	assert.Equal(t, "000201", charge.PixCopyAndPaste)

	assert.Equal(t, 80.5, body["value"])
	assert.Equal(t, "2026-10-17", body["dueDate"])
	assert.Len(t, body["description"], 255)
}

func TestAsaasClient_CreatePayment_PixQRCodeFailureIgnored(t *testing.T) {
	client := newTestAsaasClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/payments" {
			_, _ = w.Write([]byte(`{"id":"pay_1","status":"PENDING","billingType":"PIX"}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	})

	charge, err := client.CreatePayment(context.Background(), payments.ChargeRequest{BillingType: payments.BillingPix})
	require.NoError(t, err)
	assert.Empty(t, charge.PixQRCodeImage)
}

func TestAsaasClient_CreatePayment_MissingID(t *testing.T) {
	client := newTestAsaasClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"PENDING","billingType":"PIX"}`))
	})

	charge, err := client.CreatePayment(context.Background(), payments.ChargeRequest{
		CustomerID:  "cus_1",
		Value:       decimal.NewFromInt(80),
		BillingType: payments.BillingPix,
	})
	assert.Nil(t, charge)
	var apiErr *payments.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Contains(t, apiErr.Error(), "identificador do pagamento")
	assert.Equal(t, "PENDING", apiErr.ResponseData["status"])
}

func TestAsaasClient_EnsureCustomer_CreatedWithoutID(t *testing.T) {
	client := newTestAsaasClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`{"data":[]}`))
			return
		}
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.EnsureCustomer(context.Background(), payments.CustomerRequest{Name: "Joao", CPF: "12345678901"})
	var apiErr *payments.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Contains(t, apiErr.Error(), "identificador do cliente")
}

func TestAsaasClient_APIError(t *testing.T) {
	client := newTestAsaasClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"code":"invalid_cpfCnpj","description":"CPF invalido"}]}`))
	})

	_, err := client.EnsureCustomer(context.Background(), payments.CustomerRequest{CPF: "1"})
	var apiErr *payments.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "CPF invalido")
	assert.Contains(t, apiErr.ResponseData, "errors")
}

func TestAsaasClient_MissingConfiguration(t *testing.T) {
	client, err := NewAsaasClient(&config.AsaasSettings{APIBase: "https://sandbox.asaas.com/api/v3"}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = client.EnsureCustomer(context.Background(), payments.CustomerRequest{CPF: "12345678901"})
	assert.True(t, errors.Is(err, payments.ErrMissingConfiguration))
	assert.Contains(t, err.Error(), "ASAAS_API_KEY")
}

func TestAsaasClient_TransportError(t *testing.T) {
	client, err := NewAsaasClient(&config.AsaasSettings{APIKey: "k", APIBase: "http://127.0.0.1:1"}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = client.EnsureCustomer(context.Background(), payments.CustomerRequest{CPF: "12345678901"})
	var apiErr *payments.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Zero(t, apiErr.StatusCode)
}
