package assistant

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync/atomic"
)

// Canned user-facing replies. The real error never leaves the server;
// it goes to the developer log only.
const (
	ConnectionRefusedReply = "System Error: Connection to the neural grid was refused. Please check your API credentials or network settings."
	RecalibratingReply     = "The assistant is currently recalibrating its neural pathways. Please try your query again in a moment."
)

// ErrBusy is returned while a previous message is still outstanding.
var ErrBusy = errors.New("assistant: a reply is already pending")

// InstructionSource supplies the system instruction at call time, so
// admin edits apply to the very next message.
type InstructionSource interface {
	Instruction() string
}

// Bridge forwards visitor messages to a generative-language provider
// and normalizes every failure into one of two canned replies. It
// allows a single outstanding request at a time and does no retrying,
// caching, or timeout enforcement of its own.
type Bridge struct {
	provider     Provider
	instructions InstructionSource
	greeting     string
	temperature  float64
	busy         atomic.Bool
}

// NewBridge creates a bridge over the given provider.
func NewBridge(provider Provider, instructions InstructionSource, greeting string, temperature float64) *Bridge {
	return &Bridge{
		provider:     provider,
		instructions: instructions,
		greeting:     greeting,
		temperature:  temperature,
	}
}

// Greeting returns the assistant's opening message.
func (b *Bridge) Greeting() string { return b.greeting }

// Reply sends the visitor's message and returns the model's text
// verbatim, or a canned fallback on any failure. An empty reply counts
// as a failure. Returns ErrBusy while a previous call is in flight.
func (b *Bridge) Reply(ctx context.Context, userMessage string) (string, error) {
	if !b.busy.CompareAndSwap(false, true) {
		return "", ErrBusy
	}
	defer b.busy.Store(false)

	text, err := b.provider.Complete(ctx, Request{
		Instruction: b.instructions.Instruction(),
		UserMessage: userMessage,
		Temperature: b.temperature,
	})
	if err != nil {
		log.Printf("assistant: provider error: %v", err)
		return classifyFailure(err), nil
	}
	if text == "" {
		log.Printf("assistant: provider returned an empty reply")
		return RecalibratingReply, nil
	}
	return text, nil
}

// classifyFailure buckets an error by message-substring sniffing:
// credential and connection failures get the connection-refused reply,
// everything else the recalibrating one.
func classifyFailure(err error) string {
	msg := err.Error()
	if strings.Contains(msg, "refused") || strings.Contains(msg, "API_KEY") {
		return ConnectionRefusedReply
	}
	return RecalibratingReply
}
