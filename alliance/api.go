package alliance

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alovak/swift-alliance/ledger"
	"github.com/alovak/swift-alliance/swift"
	"github.com/alovak/swift-alliance/transport"
	"github.com/go-chi/chi/v5"
)

// API exposes the codec-and-validator operations plus the ledger lookups the
// form frontends use for pre-filling. All validation outcomes come back as
// structured results; only infrastructure problems surface as HTTP 5xx.
type API struct {
	ledger     *ledger.Service
	transports *transport.Registry
	config     *Config
}

func NewAPI(ledgerSvc *ledger.Service, transports *transport.Registry, config *Config) *API {
	return &API{
		ledger:     ledgerSvc,
		transports: transports,
		config:     config,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Route("/accounts", func(r chi.Router) {
		r.Get("/", a.listAccounts)
		r.Route("/{accountNumber}", func(r chi.Router) {
			r.Get("/", a.getAccount)
			r.Get("/ordering-party", a.getOrderingParty)
		})
	})
	r.Route("/messages", func(r chi.Router) {
		r.Post("/mt103", a.generateMT103)
		r.Post("/pain001", a.generatePain001)
		r.Post("/send", a.send)
	})
	r.Route("/validate", func(r chi.Router) {
		r.Post("/mt103", a.validateMT103)
		r.Post("/pain001", a.validatePain001)
	})
}

type generateRequest struct {
	OrderingAccount    string `json:"ordering_account"`
	OrderingName       string `json:"ordering_name"`
	BeneficiaryAccount string `json:"beneficiary_account"`
	BeneficiaryName    string `json:"beneficiary_name"`
	BeneficiaryBIC     string `json:"beneficiary_bic"`
	Amount             string `json:"amount"`
	Currency           string `json:"currency"`
	ValueDate          string `json:"value_date"`
	RemittanceInfo     string `json:"remittance_info"`
	Reference          string `json:"reference"`
}

func (req generateRequest) paymentInput() swift.PaymentInput {
	return swift.PaymentInput{
		OrderingAccount:    req.OrderingAccount,
		OrderingName:       req.OrderingName,
		BeneficiaryAccount: req.BeneficiaryAccount,
		BeneficiaryName:    req.BeneficiaryName,
		BeneficiaryBIC:     req.BeneficiaryBIC,
		Amount:             req.Amount,
		Currency:           req.Currency,
		ValueDate:          req.ValueDate,
		RemittanceInfo:     req.RemittanceInfo,
		Reference:          req.Reference,
	}
}

type generateResponse struct {
	Reference string   `json:"reference"`
	Content   string   `json:"content"`
	Truncated string   `json:"truncated,omitempty"`
	Valid     bool     `json:"valid"`
	Issues    []string `json:"issues,omitempty"`
}

func (a *API) generateMT103(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	payment, err := swift.NewPayment(req.paymentInput())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := generateResponse{Reference: payment.Reference}

	text, err := swift.GenerateMT103(payment)
	if err != nil {
		// Truncated text is still usable; the caller decides whether to
		// proceed with it.
		var fce *swift.FormatConstraintError
		if !errors.As(err, &fce) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		resp.Truncated = fce.Tag
	}
	resp.Content = text
	resp.Valid, resp.Issues = swift.ValidateMT103(text)

	writeJSON(w, http.StatusOK, resp)
}

func (a *API) generatePain001(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	payment, err := swift.NewPayment(req.paymentInput())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var opts []swift.Pain001Option
	if a.config.Pain001Namespace != "" {
		opts = append(opts, swift.WithNamespace(a.config.Pain001Namespace))
	}
	doc, err := swift.GeneratePain001(payment, opts...)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := generateResponse{Reference: payment.Reference, Content: doc}
	valid, issues, err := swift.ValidatePain001(doc, a.config.SchemaPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	resp.Valid, resp.Issues = valid, issues

	writeJSON(w, http.StatusOK, resp)
}

type validateRequest struct {
	Content    string `json:"content"`
	SchemaPath string `json:"schema_path,omitempty"`
}

type validateResponse struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues,omitempty"`
}

func (a *API) validateMT103(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	valid, issues := swift.ValidateMT103(req.Content)
	writeJSON(w, http.StatusOK, validateResponse{Valid: valid, Issues: issues})
}

func (a *API) validatePain001(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	schemaPath := req.SchemaPath
	if schemaPath == "" {
		schemaPath = a.config.SchemaPath
	}
	valid, issues, err := swift.ValidatePain001(req.Content, schemaPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, validateResponse{Valid: valid, Issues: issues})
}

type sendRequest struct {
	Format    string `json:"format"` // "mt103" or "pain001"
	Content   string `json:"content"`
	Transport string `json:"transport"`
	// Override lets the caller send a message that failed validation. The
	// confirmation flow belongs to the frontend; the API only requires the
	// explicit flag.
	Override bool `json:"override"`
}

type sendResponse struct {
	Transport string `json:"transport"`
	Filename  string `json:"filename"`
}

func (a *API) send(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Content == "" {
		http.Error(w, "content is required", http.StatusBadRequest)
		return
	}

	var valid bool
	var issues []string
	var ext string
	switch req.Format {
	case "mt103":
		valid, issues = swift.ValidateMT103(req.Content)
		ext = "txt"
	case "pain001":
		var err error
		valid, issues, err = swift.ValidatePain001(req.Content, a.config.SchemaPath)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		ext = "xml"
	default:
		http.Error(w, fmt.Sprintf("unknown format %q", req.Format), http.StatusBadRequest)
		return
	}

	if !valid && !req.Override {
		writeJSON(w, http.StatusUnprocessableEntity, validateResponse{Valid: false, Issues: issues})
		return
	}

	tr, err := a.transports.Get(req.Transport)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filename := fmt.Sprintf("swift_message_%s.%s", time.Now().UTC().Format("20060102150405"), ext)
	if err := tr.Send(r.Context(), filename, []byte(req.Content)); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, sendResponse{Transport: tr.Name(), Filename: filename})
}

func (a *API) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := a.ledger.ListAccounts(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (a *API) getAccount(w http.ResponseWriter, r *http.Request) {
	account, err := a.ledger.GetAccount(r.Context(), chi.URLParam(r, "accountNumber"))
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (a *API) getOrderingParty(w http.ResponseWriter, r *http.Request) {
	party, err := a.ledger.OrderingParty(r.Context(), chi.URLParam(r, "accountNumber"))
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, party)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
