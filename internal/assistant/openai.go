package assistant

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/maisondecafe/kiosk-bot/internal/config"
	"github.com/maisondecafe/kiosk-bot/internal/locale"
	"github.com/maisondecafe/kiosk-bot/internal/observability"
)

const (
	rateLimiterBurst        = 5
	circuitBreakerThreshold = 5
	circuitBreakerTimeout   = time.Minute

	toolTypeFileSearch = "file_search"
	toolTypeRetrieval  = "retrieval"

	errRateLimiter = "rate limiter: %w"
)

type openaiClient struct {
	cfg         *config.Config
	client      *openai.Client
	logger      *zerolog.Logger
	rateLimiter *rate.Limiter

	// Circuit breaker state
	consecutiveFailures int
	circuitOpenUntil    time.Time
	mu                  sync.Mutex
}

// ErrCircuitBreakerOpen indicates the circuit breaker is open.
var ErrCircuitBreakerOpen = fmt.Errorf("circuit breaker is open")

// NewOpenAI builds the production client.
func NewOpenAI(cfg *config.Config, logger *zerolog.Logger) Client {
	return &openaiClient{
		cfg:         cfg,
		client:      openai.NewClient(cfg.OpenAIAPIKey),
		logger:      logger,
		rateLimiter: rate.NewLimiter(rate.Limit(float64(cfg.OpenAIRPS)), rateLimiterBurst),
	}
}

func (c *openaiClient) checkCircuit() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if time.Now().Before(c.circuitOpenUntil) {
		return fmt.Errorf("%w until %v", ErrCircuitBreakerOpen, c.circuitOpenUntil)
	}

	return nil
}

func (c *openaiClient) recordSuccess() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.consecutiveFailures = 0
}

func (c *openaiClient) recordFailure() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.consecutiveFailures++
	if c.consecutiveFailures >= circuitBreakerThreshold {
		c.circuitOpenUntil = time.Now().Add(circuitBreakerTimeout)
		c.logger.Warn().
			Int("consecutive_failures", c.consecutiveFailures).
			Time("open_until", c.circuitOpenUntil).
			Msg("Circuit breaker opened")
	}
}

func (c *openaiClient) EnsureThread(ctx context.Context, threadID string) (string, error) {
	if threadID != "" {
		return threadID, nil
	}

	if err := c.checkCircuit(); err != nil {
		return "", err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf(errRateLimiter, err)
	}

	thread, err := c.client.CreateThread(ctx, openai.ThreadRequest{})
	if err != nil {
		c.recordFailure()

		return "", fmt.Errorf("create thread: %w", err)
	}

	c.recordSuccess()

	return thread.ID, nil
}

func (c *openaiClient) Ask(ctx context.Context, threadID, text string, lang locale.Language, action locale.Action) (Answer, error) {
	started := time.Now()

	answer, err := c.ask(ctx, threadID, text, lang, action)

	observability.AssistantRequestDuration.WithLabelValues(outcomeLabel(err)).Observe(time.Since(started).Seconds())

	return answer, err
}

func (c *openaiClient) ask(ctx context.Context, threadID, text string, lang locale.Language, action locale.Action) (Answer, error) {
	if err := c.checkCircuit(); err != nil {
		return Answer{}, err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return Answer{}, fmt.Errorf(errRateLimiter, err)
	}

	_, err := c.client.CreateMessage(ctx, threadID, openai.MessageRequest{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	})
	if err != nil {
		c.recordFailure()

		return Answer{}, fmt.Errorf("add user message: %w", err)
	}

	temperature := c.cfg.Temperature

	run, err := c.client.CreateRun(ctx, threadID, openai.RunRequest{
		AssistantID:  c.cfg.AssistantID,
		Instructions: locale.Instructions(lang, action),
		Temperature:  &temperature,
	})
	if err != nil {
		c.recordFailure()

		return Answer{}, fmt.Errorf("create run: %w", err)
	}

	if err := c.waitForRun(ctx, threadID, run.ID); err != nil {
		return Answer{}, err
	}

	c.recordSuccess()

	used, err := c.runUsedFileSearch(ctx, threadID, run.ID)
	if err != nil {
		// Trace inspection failure is treated as "no retrieval": safer to
		// withhold an answer than to pass an unsourced one.
		c.logger.Warn().Err(err).Str("run_id", run.ID).Msg("run step inspection failed")

		used = false
	}

	answerText, err := c.latestAssistantMessage(ctx, threadID, run.ID)
	if err != nil {
		return Answer{}, err
	}

	return Answer{Text: strings.TrimSpace(answerText), UsedFileSearch: used}, nil
}

// waitForRun polls run status at the configured interval until completion,
// terminal failure, or the overall timeout elapses.
func (c *openaiClient) waitForRun(ctx context.Context, threadID, runID string) error {
	deadline := time.Now().Add(c.cfg.RunTimeout)
	ticker := time.NewTicker(c.cfg.RunPollInterval)

	defer ticker.Stop()

	for {
		run, err := c.client.RetrieveRun(ctx, threadID, runID)
		if err != nil {
			c.recordFailure()

			return fmt.Errorf("retrieve run: %w", err)
		}

		switch run.Status {
		case openai.RunStatusCompleted:
			return nil
		case openai.RunStatusFailed, openai.RunStatusCancelled, openai.RunStatusExpired:
			c.recordFailure()

			return fmt.Errorf("%w: status %s", ErrRunFailed, run.Status)
		}

		if time.Now().After(deadline) {
			return ErrRunTimeout
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// runUsedFileSearch walks the run's execution trace looking for a file_search
// tool call. Older assistants report the tool as "retrieval".
func (c *openaiClient) runUsedFileSearch(ctx context.Context, threadID, runID string) (bool, error) {
	steps, err := c.client.ListRunSteps(ctx, threadID, runID, openai.Pagination{})
	if err != nil {
		return false, fmt.Errorf("list run steps: %w", err)
	}

	for _, step := range steps.RunSteps {
		for _, call := range step.StepDetails.ToolCalls {
			switch string(call.Type) {
			case toolTypeFileSearch, toolTypeRetrieval:
				return true, nil
			}
		}
	}

	return false, nil
}

func (c *openaiClient) latestAssistantMessage(ctx context.Context, threadID, runID string) (string, error) {
	limit := 10
	order := "desc"

	msgs, err := c.client.ListMessage(ctx, threadID, &limit, &order, nil, nil, &runID)
	if err != nil {
		return "", fmt.Errorf("list messages: %w", err)
	}

	for _, msg := range msgs.Messages {
		if msg.Role != openai.ChatMessageRoleAssistant {
			continue
		}

		for _, content := range msg.Content {
			if content.Text != nil && content.Text.Value != "" {
				return content.Text.Value, nil
			}
		}
	}

	return "", nil
}

func (c *openaiClient) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	if err := c.checkCircuit(); err != nil {
		return "", err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf(errRateLimiter, err)
	}

	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.cfg.TranscribeModel,
		Reader:   audio,
		FilePath: filename,
	})
	if err != nil {
		c.recordFailure()

		return "", fmt.Errorf("transcribe voice: %w", err)
	}

	c.recordSuccess()

	return strings.TrimSpace(resp.Text), nil
}

func outcomeLabel(err error) string {
	if err != nil {
		return "error"
	}

	return "ok"
}
