package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"clilogin/auth"
	"clilogin/internal/config"
)

const (
	signedInPath = "/signed-in"
	errorPath    = "/error"

	// errorPageMessage is all the end user ever sees on a failed callback.
	// Diagnostic detail stays on the rejected result, not in the browser.
	errorPageMessage = "An error occurred in the cli."

	unsupportedMethodBody = "Supported HTTP methods are OPTIONS, GET, POST"
)

// callbackPayload is the authorization data carried by a callback request,
// from the query string on GET or the form-encoded body on POST.
type callbackPayload struct {
	code     string
	codeType string
	state    string
}

type result struct {
	code any
	err  error
}

// Handler validates callback requests for a single login attempt. It is
// terminal after the first resolution: exactly one result is ever delivered,
// and the caller tears the server down once Wait returns.
type Handler struct {
	expectedID string
	signedIn   string
	errorURL   string
	origin     string

	once    sync.Once
	results chan result
}

// NewHandler builds the handler for one login attempt. expectedID is the
// session identifier embedded in the state parameter of the authorization URL.
func NewHandler(expectedID string, env config.Environment) (*Handler, error) {
	base, err := env.BaseURL()
	if err != nil {
		return nil, err
	}
	origin, err := env.Origin()
	if err != nil {
		return nil, err
	}
	return &Handler{
		expectedID: expectedID,
		signedIn:   base + signedInPath,
		errorURL:   base + errorPath + "?message=" + url.QueryEscape(errorPageMessage),
		origin:     origin,
		results:    make(chan result, 1),
	}, nil
}

// Router wires the callback routes. Anything other than OPTIONS, GET or POST
// lands on the method-not-allowed handler.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Options("/", h.handleOptions)
	r.Get("/", h.handleGet)
	r.Post("/", h.handlePost)
	r.MethodNotAllowed(h.handleUnsupportedMethod)
	return r
}

// Wait blocks until the callback resolves or ctx expires. The handler itself
// carries no deadline; the caller owns the timeout.
func (h *Handler) Wait(ctx context.Context) (any, error) {
	select {
	case res := <-h.results:
		return res.code, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// resolve delivers the outcome. Only the first call wins; the channel is
// buffered so delivery never blocks the response path.
func (h *Handler) resolve(code any, err error) {
	h.once.Do(func() {
		h.results <- result{code: code, err: err}
	})
}

// handleOptions answers CORS preflight with headers only.
func (h *Handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	applyCORS(w, h.origin)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	payload := callbackPayload{
		code:     q.Get("code"),
		codeType: q.Get("code_type"),
		state:    q.Get("state"),
	}

	code, err := h.validate(payload)

	w.Header().Set("Cache-Control", "private, no-cache")
	if err != nil {
		log.Debug().Err(err).Msg("callback rejected")
		w.Header().Set("Location", h.errorURL)
		w.WriteHeader(http.StatusBadRequest)
		h.resolve(nil, err)
		return
	}

	http.Redirect(w, r, h.signedIn, http.StatusFound)
	h.resolve(code, nil)
}

func (h *Handler) handlePost(w http.ResponseWriter, r *http.Request) {
	// The body is buffered in full before any of it is parsed; partial
	// bodies are never inspected.
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, envelope{
			ProtocolVersion: protocolVersion,
			Redirect:        h.errorURL,
			Error:           true,
			Message:         errorPageMessage,
		})
		h.resolve(nil, fmt.Errorf("read callback body: %w", err))
		return
	}

	form, err := url.ParseQuery(string(body))
	if err != nil {
		form = url.Values{}
	}
	payload := callbackPayload{
		code:     form.Get("code"),
		codeType: form.Get("code_type"),
		state:    form.Get("state"),
	}

	code, err := h.validate(payload)
	if err != nil {
		log.Debug().Err(err).Msg("callback rejected")
		h.writeJSON(w, http.StatusBadRequest, envelope{
			ProtocolVersion: protocolVersion,
			Redirect:        h.errorURL,
			Error:           true,
			Message:         errorPageMessage,
		})
		h.resolve(nil, err)
		return
	}

	h.writeJSON(w, http.StatusOK, envelope{
		ProtocolVersion: protocolVersion,
		Redirect:        h.signedIn,
	})
	h.resolve(code, nil)
}

func (h *Handler) handleUnsupportedMethod(w http.ResponseWriter, r *http.Request) {
	applyCORS(w, h.origin)
	w.WriteHeader(http.StatusMethodNotAllowed)
	fmt.Fprint(w, unsupportedMethodBody)
}

// validate applies the shared acceptance rule: the callback must carry a
// non-empty code, and the id inside its state parameter must equal the
// session identifier exactly. The returned error names whatever code was
// submitted; that detail goes to the caller, never to the browser.
func (h *Handler) validate(p callbackPayload) (any, error) {
	if p.code == "" || auth.DecodeState(p.state).ID != h.expectedID {
		return nil, fmt.Errorf("error code=%s", p.code)
	}
	return auth.TransformCode(p.code, p.codeType)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body envelope) {
	applyCORS(w, h.origin)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Err(err).Msg("Failed to write callback response")
	}
}
