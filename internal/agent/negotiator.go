// Package agent wires the task store to a tool-calling language model using
// a fixed two-round protocol: one round to pick a capability, one round to
// phrase the reply.
package agent

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/mbriand/taskpal/internal/models"
)

// CapabilityCall is the model's selection of one capability plus its raw
// JSON arguments.
type CapabilityCall struct {
	ID        string
	Name      string
	Arguments string
}

// Decision is the outcome of the first negotiation round: either a
// capability call or a direct textual reply.
type Decision struct {
	Call  *CapabilityCall
	Reply string
}

// Negotiator is the reasoning collaborator that decides which capability
// (if any) to invoke and phrases the final reply. Implementations are
// best-effort; the dispatcher treats every error as recoverable.
type Negotiator interface {
	Negotiate(ctx context.Context, utterance string, menu []*schema.ToolInfo) (Decision, error)
	Finalize(ctx context.Context, utterance string, call CapabilityCall, result string) (string, error)
}

// ModelNegotiator implements Negotiator over an eino tool-calling chat model.
type ModelNegotiator struct {
	chatModel model.ToolCallingChatModel
	persona   string
}

// NewModelNegotiator creates a negotiator. An empty persona falls back to
// DefaultPersona.
func NewModelNegotiator(chatModel model.ToolCallingChatModel, persona string) *ModelNegotiator {
	if persona == "" {
		persona = DefaultPersona
	}
	return &ModelNegotiator{chatModel: chatModel, persona: persona}
}

// Negotiate sends the utterance plus the capability menu and returns either
// the first tool call or the model's direct reply.
func (n *ModelNegotiator) Negotiate(ctx context.Context, utterance string, menu []*schema.ToolInfo) (Decision, error) {
	tm, err := n.chatModel.WithTools(menu)
	if err != nil {
		return Decision{}, fmt.Errorf("bind capabilities: %w", err)
	}

	out, err := tm.Generate(ctx, []*schema.Message{
		schema.SystemMessage(n.persona),
		schema.UserMessage(utterance),
	})
	if err != nil {
		return Decision{}, models.HandleError(err)
	}

	if len(out.ToolCalls) > 0 {
		tc := out.ToolCalls[0]
		return Decision{Call: &CapabilityCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		}}, nil
	}
	return Decision{Reply: out.Content}, nil
}

// Finalize replays the exchange — utterance, the assistant's capability
// call, the capability's textual result — and asks for the reply to show
// the user. No capabilities are bound for this round.
func (n *ModelNegotiator) Finalize(ctx context.Context, utterance string, call CapabilityCall, result string) (string, error) {
	out, err := n.chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(finalizePrompt),
		schema.UserMessage(utterance),
		{
			Role: schema.Assistant,
			ToolCalls: []schema.ToolCall{{
				ID:   call.ID,
				Type: "function",
				Function: schema.FunctionCall{
					Name:      call.Name,
					Arguments: call.Arguments,
				},
			}},
		},
		schema.ToolMessage(result, call.ID),
	})
	if err != nil {
		return "", models.HandleError(err)
	}
	return out.Content, nil
}
