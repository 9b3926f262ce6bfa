// client реализует отправку GraphQL-запроса trafficNews в ADAC
// и маппинг ответа в доменные модели.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pribylovaa/go-traffic-news/internal/graphql"
	"github.com/pribylovaa/go-traffic-news/internal/models"
	"github.com/pribylovaa/go-traffic-news/pkg/log"
)

const (
	// DefaultURL — продовый эндпоинт ADAC.
	DefaultURL = "https://www.adac.de/bff"
	// DefaultTimeout — таймаут одного запроса, если в ctx нет дедлайна.
	DefaultTimeout = 15 * time.Second
	// DefaultMaxBodyBytes — лимит тела ответа одной страницы.
	DefaultMaxBodyBytes = 4 << 20

	// HeaderRequestID — заголовок с идентификатором прогона.
	HeaderRequestID = "x-request-id"

	bodySnippetLen = 512
)

// Options — параметры клиента. Нулевые значения заменяются дефолтами.
type Options struct {
	URL          string
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64
	// Observer — необязательный получатель итогов round trip (метрики).
	Observer Observer
}

// Observer получает итог каждого round trip. status == 0 — ошибка транспорта.
type Observer interface {
	ObserveRoundTrip(status int, dur time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveRoundTrip(int, time.Duration) {}

// Client отправляет документы запроса на GraphQL-эндпоинт.
//
// HTTP-клиент настраивается извне (транспорт, прокси и т.д.);
// таймаут одного запроса задаётся Options.Timeout.
type Client struct {
	http    *http.Client
	url     string
	timeout time.Duration
	ua      string
	maxBody int64
	obs     Observer
}

// New создаёт клиент.
func New(httpClient *http.Client, opts Options) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if opts.URL == "" {
		opts.URL = DefaultURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}

	return &Client{
		http:    httpClient,
		url:     opts.URL,
		timeout: opts.Timeout,
		ua:      opts.UserAgent,
		maxBody: opts.MaxBodyBytes,
		obs:     opts.Observer,
	}
}

// Send сериализует doc, считает хеш от полученных байт и отправляет POST.
// Возвращает сырое тело ответа, если статус 2xx.
//
// Особенности:
//   - хеш считается от тех же байт, что уходят в теле;
//   - таймаут клиента навешивается только если у ctx нет своего дедлайна;
//   - ретраев нет: любая ошибка транспорта или не-2xx — терминальная.
func (c *Client) Send(ctx context.Context, doc graphql.Document) (json.RawMessage, error) {
	const op = "client.Send"

	payload, err := doc.Marshal()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %w", op, err)
	}
	req.Header.Set("content-type", "application/json")
	req.Header.Set("accept", "application/json")
	req.Header.Set(graphql.HeaderQueryHash, graphql.HeaderHash(payload))
	if c.ua != "" {
		req.Header.Set("user-agent", c.ua)
	}
	if id := log.RunID(ctx); id != "" {
		req.Header.Set(HeaderRequestID, id)
	}

	lg := log.From(ctx)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.obs.ObserveRoundTrip(0, time.Since(start))
		lg.Warn("http_error",
			slog.String("op", op),
			slog.String("url", c.url),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	c.obs.ObserveRoundTrip(resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%s: read_body: %w", op, err)
	}

	lg.Debug("http_done",
		slog.String("op", op),
		slog.Int("page", doc.Variables.Filter.Country.PageNumber),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
		slog.Duration("dur", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s: %w", op, &HTTPError{StatusCode: resp.StatusCode, Body: snippet(body)})
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("%s: %w", op, invalid("$", fmt.Errorf("body exceeds %d bytes", c.maxBody)))
	}

	return body, nil
}

// FetchPage — один цикл builder → sender → mapper для страницы req.PageNumber.
func (c *Client) FetchPage(ctx context.Context, req models.NewsRequest) (models.Page, error) {
	const op = "client.FetchPage"

	body, err := c.Send(ctx, graphql.BuildQuery(req))
	if err != nil {
		return models.Page{}, err
	}

	total, raws, err := ExtractPage(body)
	if err != nil {
		return models.Page{}, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]models.News, 0, len(raws))
	for i, raw := range raws {
		n, err := ParseItem(raw)
		if err != nil {
			return models.Page{}, fmt.Errorf("%s: page=%d item=%d: %w", op, req.PageNumber, i, err)
		}
		items = append(items, n)
	}

	return models.Page{Total: total, Items: items}, nil
}

// withTimeout навешивает таймаут d на ctx при отсутствии дедлайна.
// Существующий дедлайн не переопределяется; d <= 0 — no-op.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > bodySnippetLen {
		s = strings.ToValidUTF8(s[:bodySnippetLen], "") + "…"
	}
	return s
}
