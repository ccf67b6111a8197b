// Package libre is a LibreTranslate compatible client implementing language.Service
// Single attempt per call: no retries, bounded by the http client timeout
package libre

import (
	"bytes"
	"context"
	"encoding/json"
	stderrs "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"legallens/internal/core/language"
	perr "legallens/internal/platform/errors"
	"legallens/internal/platform/logger"
)

const (
	defaultTimeout = 10 * time.Second
	defaultUA      = "legallens-translate"
	maxErrBody     = 2048
)

// Options configures the Client
type Options struct {
	BaseURL   string // eg http://libretranslate:5000
	APIKey    string // optional
	UserAgent string
	Timeout   time.Duration
	HTTP      *http.Client // overrides Timeout when set
}

// Client talks to the /detect, /translate and /languages endpoints
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a Client with defaults applied
func NewClient(o Options) *Client {
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	hc := o.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	return &Client{
		http: hc,
		opts: o,
		log:  *logger.Named("translate"),
	}
}

type translateReq struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResp struct {
	TranslatedText string `json:"translatedText"`
}

type detectReq struct {
	Q      string `json:"q"`
	APIKey string `json:"api_key,omitempty"`
}

type detection struct {
	Confidence float64 `json:"confidence"`
	Language   string  `json:"language"`
}

// Lang is one entry of /languages
type Lang struct {
	Code    string   `json:"code"`
	Name    string   `json:"name"`
	Targets []string `json:"targets,omitempty"`
}

var errEmptyTranslation = stderrs.New("libre: empty translatedText")

type errorBody struct {
	Error string `json:"error"`
}

// Translate implements language.Translator
func (c *Client) Translate(ctx context.Context, text string, from, to language.Code) (string, error) {
	if from == to || strings.TrimSpace(text) == "" {
		return text, nil
	}
	var out translateResp
	err := c.post(ctx, "/translate", translateReq{
		Q:      text,
		Source: from.String(),
		Target: to.String(),
		Format: "text",
		APIKey: c.opts.APIKey,
	}, &out)
	if err != nil {
		return "", language.Translation(err, fmt.Sprintf("translate %s->%s", from, to))
	}
	if strings.TrimSpace(out.TranslatedText) == "" {
		return "", language.Translation(errEmptyTranslation, fmt.Sprintf("translate %s->%s", from, to))
	}
	return out.TranslatedText, nil
}

// Detect implements language.Detector, picking the most confident candidate
func (c *Client) Detect(ctx context.Context, text string) (language.Code, error) {
	var out []detection
	if err := c.post(ctx, "/detect", detectReq{Q: text, APIKey: c.opts.APIKey}, &out); err != nil {
		return language.Unknown, language.Detection(err, "detect language")
	}
	best := -1
	for i, d := range out {
		if best < 0 || d.Confidence > out[best].Confidence {
			best = i
		}
	}
	if best < 0 {
		return language.Unknown, nil
	}
	code := language.Parse(out[best].Language)
	if code == "" {
		return language.Unknown, nil
	}
	return code, nil
}

// Languages lists the languages the server supports; doubles as a readiness probe
func (c *Client) Languages(ctx context.Context) ([]Lang, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+"/languages", nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "translate new request failed")
	}
	var out []Lang
	if err := c.do(req, "/languages", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Ping reports whether the backend answers
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Languages(ctx)
	return err
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "translate encode %s", path)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "translate new request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out any) error {
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	lat := time.Since(start)
	if err != nil {
		c.log.Warn().Err(err).Str("path", path).Dur("latency", lat).Msg("translate transport error")
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "translate %s failed", path)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("method", req.Method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("translate http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		msg := strings.TrimSpace(string(raw))
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil && eb.Error != "" {
			msg = eb.Error
		}
		return perr.Newf(statusCode(resp.StatusCode), "translate %s status %d: %s", path, resp.StatusCode, msg)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "translate %s decode", path)
	}
	return nil
}

func statusCode(status int) perr.ErrorCode {
	switch {
	case status == http.StatusTooManyRequests:
		return perr.ErrorCodeTooManyRequests
	case status == http.StatusUnauthorized:
		return perr.ErrorCodeUnauthorized
	case status == http.StatusForbidden:
		return perr.ErrorCodeForbidden
	case status == http.StatusBadRequest:
		return perr.ErrorCodeInvalidArgument
	default:
		return perr.ErrorCodeUnavailable
	}
}

var _ language.Service = (*Client)(nil)
