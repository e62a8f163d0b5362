package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/"
	DefaultModel   = "gemini-3-flash-preview"

	apiVersion = "v1beta"
)

// Client клиент сервиса генерации текста (Gemini generateContent)
type Client struct {
	genai   *genai.Client
	model   string
	timeout time.Duration
	log     Logger
	metrics Metrics
}

// NewClient создает новый экземпляр клиента.
// Пустой apiKey отключает клиент: Describe и Summarize возвращают ErrDisabled.
func NewClient(ctx context.Context, baseURL, apiKey, model string, timeout time.Duration, log Logger, metrics Metrics) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}

	c := &Client{
		model:   model,
		timeout: timeout,
		log:     log,
		metrics: metrics,
	}
	if apiKey == "" {
		return c, nil
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{},
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    strings.TrimRight(baseURL, "/") + "/",
			APIVersion: apiVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create genai client: %v", ErrInternal, err)
	}
	c.genai = gc

	return c, nil
}

// Enabled true, если настроен API-ключ
func (c *Client) Enabled() bool {
	return c.genai != nil
}

// Describe генерирует описание услуги (до трех предложений, pt-BR).
// Пустой ответ модели заменяется DefaultDescription.
func (c *Client) Describe(ctx context.Context, serviceName string) (string, error) {
	serviceName = strings.TrimSpace(serviceName)
	if serviceName == "" {
		return "", fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}

	prompt := fmt.Sprintf(
		"Escreva uma descrição profissional e persuasiva de até 3 frases para um serviço chamado: %q.",
		serviceName,
	)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if text == "" {
		return DefaultDescription, nil
	}
	return text, nil
}

// Summarize генерирует краткую сводку дня по списку записей.
// Пустой ответ модели заменяется DefaultSummary.
func (c *Client) Summarize(ctx context.Context, items []AgendaItem) (string, error) {
	if items == nil {
		items = []AgendaItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode agenda: %v", ErrInternal, err)
	}

	prompt := fmt.Sprintf(
		"Resuma o dia de hoje com base nestes agendamentos: %s. "+
			"Dê dicas de produtividade ou uma saudação encorajadora. Responda em Português de forma concisa.",
		payload,
	)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if text == "" {
		return DefaultSummary, nil
	}
	return text, nil
}

// DescribeOrFallback Describe с graceful degradation: при любой ошибке
// возвращает FallbackDescription и никогда не возвращает ошибку
func (c *Client) DescribeOrFallback(ctx context.Context, serviceName string) string {
	text, err := c.Describe(ctx, serviceName)
	if err != nil {
		c.fallback("describe", err)
		return FallbackDescription
	}
	return text
}

// SummarizeOrFallback Summarize с graceful degradation
func (c *Client) SummarizeOrFallback(ctx context.Context, items []AgendaItem) string {
	text, err := c.Summarize(ctx, items)
	if err != nil {
		c.fallback("summarize", err)
		return FallbackSummary
	}
	return text
}

func (c *Client) fallback(operation string, err error) {
	if c.metrics != nil {
		c.metrics.SummarizerFallback(operation)
	}
	if errors.Is(err, ErrDisabled) {
		c.log.Info("Summarizer disabled, using fallback text for %s", operation)
		return
	}
	// Повышаем уровень до ERROR, чтобы быстрее заметить проблему
	c.log.Error("Summarizer unavailable, applying graceful degradation for %s: %v", operation, err)
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classify(ctx, err)
	}

	var sb strings.Builder
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, p := range resp.Candidates[0].Content.Parts {
			if p != nil {
				sb.WriteString(p.Text)
			}
		}
	}

	return strings.TrimSpace(sb.String()), nil
}

// classify сводит ошибку SDK к ошибкам пакета.
// 429 и 5xx, таймаут и сетевые сбои временные, остальное ErrInvalidResponse.
func classify(ctx context.Context, err error) error {
	if apiErr, ok := asAPIError(err); ok {
		if apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError {
			return fmt.Errorf("%w: status code %d: %s", ErrUnavailable, apiErr.Code, apiErr.Message)
		}
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, apiErr.Code, apiErr.Message)
	}

	if ctx.Err() != nil {
		return fmt.Errorf("%w: request timed out: %v", ErrUnavailable, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}

	// Ответ пришел, но не разобран
	return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
}

func asAPIError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return *apiErrPtr, true
	}
	return genai.APIError{}, false
}
