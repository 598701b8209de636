// Package chat holds the conversation orchestration core: the ordered
// message log, send routing between the image and text paths, and the
// persistence of every mutation.
package chat

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/gateway"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/models"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/observability"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/store"
)

// Fallback strings. Response failures degrade to these; they never raise
// past the orchestrator boundary.
const (
	imageCaption       = "Here is the image you requested:"
	missingImageText   = "I wasn't able to generate an image for that request."
	emptyResponseText  = "I'm looking into that..."
	requestFailureText = "I encountered an issue processing your request. Please check your connection and API configuration."

	// An image-only draft still needs a non-empty prompt.
	imageOnlyPrompt = "Help me with this."

	imageAspectRatio = "1:1"
)

// Orchestrator owns the conversation log. All dependencies are injected at
// construction; presentation surfaces read snapshots and invoke the public
// operations, never mutating state directly.
type Orchestrator struct {
	gw     gateway.Client
	store  store.Store
	logger *slog.Logger

	now   func() time.Time
	newID func() string

	mu         sync.Mutex
	log        []models.Message
	persistErr error
}

func NewOrchestrator(gw gateway.Client, st store.Store) *Orchestrator {
	return &Orchestrator{
		gw:     gw,
		store:  st,
		logger: observability.Logger(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Load reads the persisted log. An absent or corrupt record yields an empty
// log, never an error: startup must not be blocked by bad state.
func (o *Orchestrator) Load() []models.Message {
	o.mu.Lock()
	defer o.mu.Unlock()

	raw, err := o.store.Load(store.KeyChatHistory)
	if err != nil {
		o.logger.Error("loading conversation log", "error", err)
		o.log = nil
		return nil
	}
	if raw == nil {
		o.log = nil
		return nil
	}

	var log []models.Message
	if err := json.Unmarshal(raw, &log); err != nil {
		o.logger.Error("conversation log corrupt, starting empty", "error", err)
		o.log = nil
		return nil
	}
	o.log = log
	return o.snapshotLocked()
}

// Messages returns a read-only snapshot of the log.
func (o *Orchestrator) Messages() []models.Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

func (o *Orchestrator) snapshotLocked() []models.Message {
	out := make([]models.Message, len(o.log))
	copy(out, o.log)
	return out
}

// JumpTo looks up a message by id for the presentation layer's scroll
// intent. Pure lookup; no state changes.
func (o *Orchestrator) JumpTo(id string) (models.Message, int, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, msg := range o.log {
		if msg.ID == id {
			return msg, i, true
		}
	}
	return models.Message{}, 0, false
}

// PersistErr returns the last best-effort persistence failure, if any.
// Storage writes are write-after-mutate and non-fatal; the in-memory log
// stays authoritative.
func (o *Orchestrator) PersistErr() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.persistErr
}

// Send runs one conversation turn. An empty draft is a silent no-op. The
// user message is appended and persisted synchronously before any network
// activity, so the user's input survives a failed request. The returned
// message is the appended assistant reply (a fallback on failure); ok is
// false only for the empty-draft no-op.
//
// Sends are not queued: the UI's loading flag rejects a second send while
// one is in flight. The mutex still serializes appends so log order matches
// call order if a second caller slips through.
func (o *Orchestrator) Send(ctx context.Context, draft models.Draft, mode models.Mode, profile models.Profile) (models.Message, bool) {
	if draft.Empty() {
		return models.Message{}, false
	}

	o.append(models.Message{
		ID:        o.newID(),
		Role:      models.RoleUser,
		Text:      draft.Text,
		Image:     draft.Image,
		Timestamp: o.now(),
	})

	log := o.logger.With("mode", mode, "has_image", draft.Image != nil)

	var reply models.Message
	if IsImageRequest(draft.Text) {
		reply = o.imageTurn(ctx, draft.Text, log)
	} else {
		reply = o.textTurn(ctx, draft, mode, profile, log)
	}

	o.append(reply)
	return reply, true
}

// imageTurn routes to the image-generation capability: prompt only, fixed
// square aspect ratio. The first image part and first text part win.
func (o *Orchestrator) imageTurn(ctx context.Context, prompt string, log *slog.Logger) models.Message {
	res, err := o.gw.GenerateImage(ctx, gateway.Request{
		Prompt:      prompt,
		AspectRatio: imageAspectRatio,
	})
	if err != nil {
		log.Error("image generation failed", "error", err)
		return o.failureMessage()
	}

	var image *models.Attachment
	var text string
	for _, part := range res.Parts {
		if part.Image != nil && image == nil {
			image = part.Image
		}
		if part.Text != "" && text == "" {
			text = part.Text
		}
	}
	if text == "" {
		if image != nil {
			text = imageCaption
		} else {
			text = missingImageText
		}
	}

	return models.Message{
		ID:        o.newID(),
		Role:      models.RoleAssistant,
		Text:      text,
		Image:     image,
		Timestamp: o.now(),
	}
}

// textTurn routes to the text-generation capability, applying the mode's
// request configuration and the persona framing.
func (o *Orchestrator) textTurn(ctx context.Context, draft models.Draft, mode models.Mode, profile models.Profile, log *slog.Logger) models.Message {
	prompt := draft.Text
	if prompt == "" {
		prompt = imageOnlyPrompt
	}

	cfg := ConfigFor(mode)
	res, err := o.gw.GenerateText(ctx, gateway.Request{
		Prompt:          prompt,
		Image:           draft.Image,
		SystemFraming:   Framing(mode, profile.DisplayName),
		WebGrounding:    cfg.WebGrounding,
		ReasoningBudget: cfg.ReasoningBudget,
		Tier:            TierFor(profile),
	})
	if err != nil {
		log.Error("text generation failed", "error", err)
		return o.failureMessage()
	}

	text := res.Text
	if text == "" {
		text = emptyResponseText
	}

	var sources []models.Source
	if mode == models.ModeWeb {
		for _, c := range res.Citations {
			if c.Kind == gateway.CitationWeb {
				sources = append(sources, models.Source{URI: c.URI, Title: c.Title})
			}
		}
	}

	return models.Message{
		ID:        o.newID(),
		Role:      models.RoleAssistant,
		Text:      text,
		Timestamp: o.now(),
		Sources:   sources,
	}
}

func (o *Orchestrator) failureMessage() models.Message {
	return models.Message{
		ID:        o.newID(),
		Role:      models.RoleAssistant,
		Text:      requestFailureText,
		Timestamp: o.now(),
	}
}

// Clear empties the log in memory and removes the persisted record, as one
// atomic operation. User confirmation happens upstream.
func (o *Orchestrator) Clear() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.log = nil
	if err := o.store.Remove(store.KeyChatHistory); err != nil {
		o.logger.Error("removing conversation log", "error", err)
		return err
	}
	return nil
}

// append adds one message and mirrors the full log to the store. The write
// is ordered after the mutation so a persisted log is never newer than the
// one shown.
func (o *Orchestrator) append(msg models.Message) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.log = append(o.log, msg)

	raw, err := json.Marshal(o.log)
	if err != nil {
		o.persistErr = err
		o.logger.Error("encoding conversation log", "error", err)
		return
	}
	if err := o.store.Save(store.KeyChatHistory, raw); err != nil {
		o.persistErr = err
		o.logger.Error("persisting conversation log", "error", err)
		return
	}
	o.persistErr = nil
}
