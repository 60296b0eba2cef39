package alliance_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/alovak/swift-alliance/alliance"
	"github.com/alovak/swift-alliance/ledger"
	"github.com/alovak/swift-alliance/transport"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, cfg *alliance.Config) (chi.Router, string) {
	t.Helper()

	if cfg == nil {
		cfg = alliance.DefaultConfig()
	}
	logPath := filepath.Join(t.TempDir(), "send_log.txt")

	repo := ledger.NewRepository()
	require.NoError(t, ledger.SeedDemo(context.Background(), repo))

	api := alliance.NewAPI(
		ledger.NewService(repo),
		transport.NewRegistry(transport.NewLocalSave(logPath)),
		cfg,
	)
	router := chi.NewRouter()
	api.AppendRoutes(router)
	return router, logPath
}

func postJSON(t *testing.T, router chi.Router, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	jsonReq, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonReq))
	router.ServeHTTP(w, req)
	return w
}

func paymentRequest() map[string]string {
	return map[string]string{
		"ordering_account":    "DE89370400440532013000",
		"ordering_name":       "Acme GmbH",
		"beneficiary_account": "FR1420041010050500013M02606",
		"beneficiary_name":    "Globex SA",
		"amount":              "1234.56",
		"currency":            "EUR",
		"value_date":          "2024-06-01",
		"remittance_info":     "Invoice 123",
		"reference":           "REF001",
	}
}

func TestAPI_GenerateMT103(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := postJSON(t, router, "/messages/mt103", paymentRequest())
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Reference string   `json:"reference"`
		Content   string   `json:"content"`
		Valid     bool     `json:"valid"`
		Issues    []string `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "REF001", resp.Reference)
	require.Contains(t, resp.Content, ":32A:240601EUR1234,56")
	require.True(t, resp.Valid, "issues: %v", resp.Issues)
}

func TestAPI_GenerateMT103_InputError(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	req := paymentRequest()
	req["amount"] = "abc"

	w := postJSON(t, router, "/messages/mt103", req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "amount")
}

func TestAPI_GeneratePain001_WithSchema(t *testing.T) {
	cfg := alliance.DefaultConfig()
	cfg.SchemaPath = filepath.Join("..", "swift", "testdata", "pain.001.xsd")
	router, _ := newTestRouter(t, cfg)

	w := postJSON(t, router, "/messages/pain001", paymentRequest())
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Content string   `json:"content"`
		Valid   bool     `json:"valid"`
		Issues  []string `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Content, `<InstdAmt Ccy="EUR">1234.56</InstdAmt>`)
	require.Contains(t, resp.Content, "<EndToEndId>REF001</EndToEndId>")
	require.True(t, resp.Valid, "issues: %v", resp.Issues)
}

func TestAPI_GeneratePain001_NoSchemaConfigured(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := postJSON(t, router, "/messages/pain001", paymentRequest())
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Valid  bool     `json:"valid"`
		Issues []string `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Valid)
	require.Contains(t, resp.Issues[0], "no schema")
}

func TestAPI_ValidateMT103(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := postJSON(t, router, "/validate/mt103", map[string]string{
		"content": ":20:REF001\n:23B:CRED",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Valid  bool     `json:"valid"`
		Issues []string `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Valid)
	require.Contains(t, resp.Issues, "missing mandatory tag :32A:")
}

func TestAPI_Send_RefusesInvalidWithoutOverride(t *testing.T) {
	router, logPath := newTestRouter(t, nil)

	w := postJSON(t, router, "/messages/send", map[string]any{
		"format":    "mt103",
		"content":   ":20:REF001",
		"transport": "local",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	_, err := os.Stat(logPath)
	require.True(t, os.IsNotExist(err), "nothing must be sent")
}

func TestAPI_Send_OverrideAndLocalTransport(t *testing.T) {
	router, logPath := newTestRouter(t, nil)

	w := postJSON(t, router, "/messages/send", map[string]any{
		"format":    "mt103",
		"content":   ":20:REF001",
		"transport": "local",
		"override":  true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), ":20:REF001")
}

func TestAPI_Send_UnknownTransport(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := postJSON(t, router, "/messages/send", map[string]any{
		"format":    "mt103",
		"content":   ":20:REF001",
		"transport": "sftp",
		"override":  true,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "not enabled")
}

func TestAPI_AccountsAndOrderingParty(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/accounts", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var accounts []struct {
		AccountNumber string `json:"account_number"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &accounts))
	require.Len(t, accounts, 3)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/accounts/DE89370400440532013000/ordering-party", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var party struct {
		Name     string `json:"name"`
		Account  string `json:"account"`
		Currency string `json:"currency"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &party))
	require.Equal(t, "Alice Meyer", party.Name)
	require.Equal(t, "EUR", party.Currency)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/accounts/unknown/ordering-party", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}
