package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/startright-uk/startright/internal/generation"
	"github.com/startright-uk/startright/internal/prompt"
)

// FallbackReply is returned when the model answers without any text.
const FallbackReply = "Sorry, I didn't quite catch that. Could you try asking again?"

// SystemPrompt sets up the sales assistant persona.
const SystemPrompt = `You are Charlie, the friendly assistant for StartRight UK, a small business that helps people start their own business in the UK.

How you behave:
- Warm, upbeat and down to earth. Use British English and a relaxed British tone.
- Keep answers short: two or three sentences unless the customer asks for detail.
- Ask about their business idea, who their customers are and where they are based.
- Give genuinely useful pointers, then explain how our packages take it further:
  - Premium (£29): business study, business plan and personalised advice.
  - Business Plan (£29) or Market Study (£29): a focused document for banks, investors or research.
  - Pro (£99): everything in Premium plus a company formation checklist, handled for them.
  - Pro + Domain (£109): everything in Pro plus a .co.uk domain and business email set up.
- If they have no business name yet, mention we can suggest names with available domains.
- Never invent legal or tax rules. For anything specific, suggest they check GOV.UK or speak to an accountant.
- Never ask for card details in the chat; payment happens on the checkout page.`

// Relay forwards a single chat message to the text-generation service.
// It keeps no memory between calls.
type Relay struct {
	generator generation.Generator
	maxTokens int
}

// NewRelay creates a Relay. A non-positive maxTokens uses the default chat budget.
func NewRelay(generator generation.Generator, maxTokens int) *Relay {
	if maxTokens <= 0 {
		maxTokens = prompt.ChatMaxTokens
	}

	return &Relay{generator: generator, maxTokens: maxTokens}
}

// Reply returns the assistant's answer to message.
func (r *Relay) Reply(ctx context.Context, message string) (string, error) {
	text, err := r.generator.Generate(ctx, &generation.Request{
		System:    SystemPrompt,
		Prompt:    message,
		MaxTokens: r.maxTokens,
	})
	if errors.Is(err, generation.ErrNoContent) {
		return FallbackReply, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get chat reply: %w", err)
	}

	return text, nil
}
