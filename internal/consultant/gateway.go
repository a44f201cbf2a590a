package consultant

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luxesalon/salon-platform/pkg/logging"
)

// SystemInstruction is the fixed preamble for every consultation session.
const SystemInstruction = `You are a high-end salon virtual consultant for "LuxeSalon".
Your goal is to help users choose hairstyles, beard styles, or spa treatments based on their description.
Keep answers concise, friendly, and professional.
If a user asks about services, recommend one of the following: Haircut, Beard Sculpting, Facial, Manicure.
Do not mention prices unless asked. Focus on aesthetics and suitability for face shapes.`

// Gateway mediates between the chat surface and the generative-text
// backend. Session state is explicit: a session is created lazily on the
// first Send for its ID and reused for every later call. The gateway owns
// a per-session in-flight guard, so two concurrent sends for the same
// session cannot interleave turns regardless of what the caller does.
//
// Send returns typed errors rather than canned reply text; the fixed
// user-facing fallback strings are a policy layered on top (see
// FallbackGateway).
type Gateway struct {
	llm    LLMClient
	store  HistoryStore
	logger *logging.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewGateway creates a consultant gateway. store may be nil, in which case
// transcripts live only in memory.
func NewGateway(llm LLMClient, store HistoryStore, logger *logging.Logger) *Gateway {
	if llm == nil {
		panic("consultant: llm client required")
	}
	if store == nil {
		store = NewMemoryHistoryStore()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Gateway{
		llm:      llm,
		store:    store,
		logger:   logger,
		inFlight: make(map[string]struct{}),
	}
}

// Send appends the user's message to the session and requests a
// completion. On success it returns the assistant message verbatim. The
// user's message is recorded even when the backend fails, so the
// transcript stays complete.
func (g *Gateway) Send(ctx context.Context, sessionID, text string) (Message, error) {
	return g.send(ctx, sessionID, text, nil)
}

// send runs one conversational turn under the session guard. recoverReply,
// when non-nil, is consulted on backend failure; a replacement reply it
// returns is appended to the transcript before the guard is released, so a
// concurrent Send stays refused until the thread is complete.
func (g *Gateway) send(ctx context.Context, sessionID, text string, recoverReply func(error) (string, bool)) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyMessage
	}

	if err := g.acquire(sessionID); err != nil {
		return Message{}, err
	}
	defer g.release(sessionID)

	history, err := g.store.Load(ctx, sessionID)
	if err != nil {
		g.logger.Warn("failed to load session history, starting fresh",
			"session_id", sessionID, "error", err)
		history = []Message{}
	}

	userMsg := Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}

	resp, llmErr := g.llm.Complete(ctx, LLMRequest{
		System:      SystemInstruction,
		History:     history,
		UserMessage: text,
	})
	if llmErr == nil && strings.TrimSpace(resp.Text) == "" {
		llmErr = ErrEmptyCompletion
	}
	if llmErr != nil {
		if recoverReply != nil {
			if reply, ok := recoverReply(llmErr); ok {
				assistantMsg := Message{
					ID:        uuid.NewString(),
					Role:      RoleAssistant,
					Text:      reply,
					Timestamp: time.Now().UTC(),
				}
				g.saveHistory(ctx, sessionID, append(history, userMsg, assistantMsg))
				return assistantMsg, nil
			}
		}
		g.saveHistory(ctx, sessionID, append(history, userMsg))
		return Message{}, llmErr
	}

	assistantMsg := Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Text:      resp.Text,
		Timestamp: time.Now().UTC(),
	}
	g.saveHistory(ctx, sessionID, append(history, userMsg, assistantMsg))

	g.logger.Info("consultation reply generated",
		"session_id", sessionID,
		"length", len(resp.Text),
		"tokens", resp.Usage.TotalTokens,
	)
	return assistantMsg, nil
}

// History returns the session transcript in insertion order.
func (g *Gateway) History(ctx context.Context, sessionID string) ([]Message, error) {
	return g.store.Load(ctx, sessionID)
}

func (g *Gateway) saveHistory(ctx context.Context, sessionID string, history []Message) {
	if err := g.store.Save(ctx, sessionID, history); err != nil {
		g.logger.Error("failed to persist session history",
			"session_id", sessionID, "error", err)
	}
}

func (g *Gateway) acquire(sessionID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[sessionID]; busy {
		return ErrSessionBusy
	}
	g.inFlight[sessionID] = struct{}{}
	return nil
}

func (g *Gateway) release(sessionID string) {
	g.mu.Lock()
	delete(g.inFlight, sessionID)
	g.mu.Unlock()
}
