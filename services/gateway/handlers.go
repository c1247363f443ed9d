package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/NilFoundation/ledger-gateway/common/logging"
	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeText = "text/plain; charset=utf-8"

	maxRequestBodySize = 1 << 20

	headerRequestID = "X-Request-Id"
)

var (
	corsAllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsAllowedHeaders = []string{"Content-Type"}
)

type handler struct {
	api       LedgerAPI
	contracts *ContractHolder
	page      *page
	logger    logging.Logger
}

// newHandler builds the full middleware chain: request id, access log, CORS, readiness gate, router.
func newHandler(
	api LedgerAPI,
	contracts *ContractHolder,
	page *page,
	metrics *gatewayMetrics,
	logger logging.Logger,
) http.Handler {
	h := &handler{api: api, contracts: contracts, page: page, logger: logger}

	router := mux.NewRouter().UseEncodedPath()
	router.HandleFunc("/", h.index).Methods(http.MethodGet).Name("index")
	router.HandleFunc("/register", h.register).Methods(http.MethodPost).Name("register")
	router.HandleFunc("/transfer", h.transfer).Methods(http.MethodPost).Name("transfer")
	router.HandleFunc("/balance/{name:[^/]*}", h.balance).Methods(http.MethodGet).Name("balance")
	router.NotFoundHandler = http.HandlerFunc(notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(notFound)
	if metrics != nil {
		router.Use(metrics.middleware)
	}

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods(corsAllowedMethods),
		handlers.AllowedHeaders(corsAllowedHeaders),
		handlers.ExposedHeaders([]string{headerRequestID}),
		handlers.OptionStatusCode(http.StatusNoContent),
	)

	return withRequestID(handlers.CustomLoggingHandler(
		io.Discard,
		answerOptions(cors(h.requireContract(router))),
		accessLogFormatter(logger),
	))
}

// withRequestID keeps a client-supplied UUID request id or assigns a new one and echoes it in the response.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			r.Header.Set(headerRequestID, id)
		}
		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r)
	})
}

// answerOptions replies 204 to OPTIONS requests that are not CORS preflights.
// Preflights are left to the CORS handler.
func answerOptions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") == "" {
			header := w.Header()
			header.Set("Access-Control-Allow-Origin", "*")
			header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			header.Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *handler) requireContract(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.contracts.Ready() {
			writeError(w, ErrContractNotReady)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func accessLogFormatter(logger logging.Logger) handlers.LogFormatter {
	return func(_ io.Writer, params handlers.LogFormatterParams) {
		logger.Info().
			Str(logging.FieldRequestId, params.Request.Header.Get(headerRequestID)).
			Str(logging.FieldHttpMethod, params.Request.Method).
			Str(logging.FieldUrl, params.URL.RequestURI()).
			Int(logging.FieldHttpStatus, params.StatusCode).
			Int(logging.FieldHttpSize, params.Size).
			Str(logging.FieldRemoteAddr, params.Request.RemoteAddr).
			Msg("HTTP request served")
	}
}

func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	contract, err := h.contracts.Get()
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, h.page.Render(contract))
}

func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	h.logger.Debug().Str(logging.FieldAccountName, req.Name).Str(logging.FieldAmount, string(req.Balance)).
		Msg("Register request")

	message, err := h.api.Register(r.Context(), req.Name, req.Balance)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: message})
}

func (h *handler) transfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	message, err := h.api.Transfer(r.Context(), req.From, req.To, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: message})
}

func (h *handler) balance(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, validationError("account name is not properly escaped"))
		return
	}

	balance, err := h.api.GetBalance(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balance)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	if err := decoder.Decode(v); err != nil {
		return validationError("request body must be a JSON object with the expected fields: %v", err)
	}
	return nil
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrContractNotReady):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusOf(err), ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(http.StatusNotFound)
	_, _ = io.WriteString(w, "Not Found")
}
