package verifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"github.com/maisondecafe/kiosk-bot/internal/locale"
	"github.com/maisondecafe/kiosk-bot/internal/observability"
)

const rewritePrompt = "You are a compliance editor for Maison de Café. Rewrite the draft answer so that:\n" +
	"- every number not in the allowed list is removed or replaced with wording without figures;\n" +
	"- none of the banned phrases appear;\n" +
	"- no new facts or figures are invented;\n" +
	"- tone, language and meaning stay the same.\n" +
	"Allowed numbers: %s.\nBanned phrases: %s.\nReturn only the rewritten answer."

// Rewriter is the single chat-completion call the verifier needs.
type Rewriter interface {
	Rewrite(ctx context.Context, systemPrompt, draft string) (string, error)
}

// OpenAIRewriter implements Rewriter on the chat-completions API.
type OpenAIRewriter struct {
	client *openai.Client
	model  string
}

func NewOpenAIRewriter(apiKey, model string) *OpenAIRewriter {
	return &OpenAIRewriter{client: openai.NewClient(apiKey), model: model}
}

func (r *OpenAIRewriter) Rewrite(ctx context.Context, systemPrompt, draft string) (string, error) {
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: draft},
		},
	})
	if err != nil {
		return "", fmt.Errorf("verifier completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("verifier completion: empty response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Verifier repairs drafts against the policy, falling back to gold answers.
type Verifier struct {
	policy   Policy
	rewriter Rewriter
	logger   *zerolog.Logger
}

func New(policy Policy, rewriter Rewriter, logger *zerolog.Logger) *Verifier {
	return &Verifier{
		policy:   policy,
		rewriter: rewriter,
		logger:   logger,
	}
}

// Verify returns a policy-clean answer derived from draft. The sequence is:
// pass the draft through unchanged when clean; otherwise ask the rewriter to
// repair it; if the repair still violates or the rewriter errors, substitute
// the gold answer for the question's guessed intent. Never returns an error
// or an empty string.
func (v *Verifier) Verify(ctx context.Context, question, draft string, lang locale.Language) string {
	violations := v.policy.Violations(draft)
	if len(violations) == 0 {
		return draft
	}

	v.logger.Debug().Strs("violations", violations).Msg("draft failed policy, rewriting")

	rewritten, err := v.rewriter.Rewrite(ctx, v.systemPrompt(), draft)
	if err == nil && rewritten != "" && len(v.policy.Violations(rewritten)) == 0 {
		return rewritten
	}

	if err != nil {
		v.logger.Warn().Err(err).Msg("verifier rewrite failed")
	}

	intent := GuessIntent(question)
	observability.VerifierFallbacks.WithLabelValues(string(intent)).Inc()

	return GoldAnswer(intent, lang)
}

func (v *Verifier) systemPrompt() string {
	allowed := make([]string, 0, len(v.policy.AllowedNumbers))
	for n := range v.policy.AllowedNumbers {
		allowed = append(allowed, n)
	}

	banned := make([]string, 0, len(v.policy.BannedPatterns))
	for _, re := range v.policy.BannedPatterns {
		banned = append(banned, re.String())
	}

	return fmt.Sprintf(rewritePrompt, strings.Join(allowed, ", "), strings.Join(banned, "; "))
}
