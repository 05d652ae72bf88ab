package reply

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/parley-chat/parley/internal/errors"
	"github.com/parley-chat/parley/internal/logger"
)

// DefaultEndpoint is where the HTTP producer posts when no endpoint is
// configured.
const DefaultEndpoint = "http://127.0.0.1:8000/chat"

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// HTTP posts messages to a chat endpoint and returns the replies.
type HTTP struct {
	endpoint string
	client   *http.Client
	log      *slog.Logger
}

// NewHTTP creates an HTTP producer for the given endpoint. An empty
// endpoint falls back to DefaultEndpoint.
func NewHTTP(endpoint string) *HTTP {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	// No client timeout: a slow endpoint keeps the request in flight until
	// it answers. Cancellation, if any, comes from the caller's ctx.
	return &HTTP{
		endpoint: endpoint,
		client:   &http.Client{},
		log:      logger.ComponentLogger("reply-http"),
	}
}

// Name implements Producer.
func (h *HTTP) Name() string { return "http" }

// Endpoint returns the configured endpoint URL.
func (h *HTTP) Endpoint() string { return h.endpoint }

// Reply implements Producer. It posts the message as JSON and decodes the
// reply. Any non-2xx status is an error carrying the numeric status code.
func (h *HTTP) Reply(ctx context.Context, text string) (string, error) {
	const op errors.Op = "reply.HTTP.Reply"

	body, err := json.Marshal(chatRequest{Message: text})
	if err != nil {
		return "", errors.E(op, errors.KindReply, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.E(op, errors.KindReply, err)
	}
	req.Header.Set("Content-Type", "application/json")

	h.log.Debug("Posting message", "endpoint", h.endpoint, "bytes", len(body))

	resp, err := h.client.Do(req)
	if err != nil {
		return "", errors.ReplyTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		h.log.Warn("Endpoint returned error status", "status", resp.StatusCode)
		return "", errors.ReplyStatus(resp.StatusCode)
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", errors.ReplyDecode(err)
	}

	return decoded.Reply, nil
}
