package agent

import (
	"context"
	"fmt"
	"log/slog"
)

// Dispatcher routes a user utterance through the two-round negotiation,
// executing at most one capability per utterance. No chaining, no retries.
type Dispatcher struct {
	negotiator Negotiator
	registry   *Registry
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(negotiator Negotiator, registry *Registry) *Dispatcher {
	return &Dispatcher{negotiator: negotiator, registry: registry}
}

// Handle processes one utterance and always returns conversational text.
// Faults in the model round trip or the store surface as an apology string,
// never as an error: the reply channel is the only channel to the user.
func (d *Dispatcher) Handle(ctx context.Context, utterance string) string {
	decision, err := d.negotiator.Negotiate(ctx, utterance, d.registry.Menu())
	if err != nil {
		slog.Warn("negotiation failed", "error", err)
		return apology(err)
	}

	if decision.Call == nil {
		return decision.Reply
	}
	call := *decision.Call

	result, err := d.execute(call)
	if err != nil {
		slog.Warn("capability failed", "capability", call.Name, "error", err)
		return apology(err)
	}

	reply, err := d.negotiator.Finalize(ctx, utterance, call, result)
	if err != nil {
		slog.Warn("finalize failed", "capability", call.Name, "error", err)
		return apology(err)
	}
	return reply
}

// execute runs the selected capability. An unknown name is never invoked;
// its diagnostic text becomes the capability result instead.
func (d *Dispatcher) execute(call CapabilityCall) (string, error) {
	c, ok := d.registry.Lookup(call.Name)
	if !ok {
		slog.Warn("model selected unknown capability", "capability", call.Name)
		return fmt.Sprintf("Unknown operation: %s", call.Name), nil
	}

	slog.Debug("executing capability", "capability", call.Name, "arguments", call.Arguments)
	return c.Run(call.Arguments)
}

func apology(err error) string {
	return fmt.Sprintf("Sorry, I encountered an error: %v", err)
}
