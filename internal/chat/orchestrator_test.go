package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/gateway"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/models"
	"github.com/saimahanthchenagoni1-netizen/Dot-AI/internal/store"
)

func newTestOrchestrator(gw gateway.Client, st store.Store) *Orchestrator {
	o := NewOrchestrator(gw, st)
	o.now = func() time.Time { return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC) }
	var seq int
	o.newID = func() string {
		seq++
		return fmt.Sprintf("msg-%d", seq)
	}
	return o
}

func TestSendEmptyDraftIsNoOp(t *testing.T) {
	gw := gateway.NewMock()
	o := newTestOrchestrator(gw, store.NewMemory())

	_, ok := o.Send(context.Background(), models.Draft{}, models.ModeGeneral, models.DefaultProfile())

	assert.False(t, ok)
	assert.Empty(t, o.Messages())
	assert.Empty(t, gw.TextRequests)
	assert.Empty(t, gw.ImageRequests)
}

func TestSendAppendsUserMessageBeforeGatewayReturns(t *testing.T) {
	gw := gateway.NewMock()
	gw.Block = make(chan struct{})
	st := store.NewMemory()
	o := newTestOrchestrator(gw, st)

	done := make(chan struct{})
	go func() {
		defer close(done)
		o.Send(context.Background(), models.Draft{Text: "hello"}, models.ModeGeneral, models.DefaultProfile())
	}()

	// The user turn must be visible (and persisted) while the request is
	// still in flight.
	require.Eventually(t, func() bool {
		return len(o.Messages()) == 1
	}, time.Second, 5*time.Millisecond)

	msgs := o.Messages()
	assert.Equal(t, models.RoleUser, msgs[0].Role)
	assert.Equal(t, "hello", msgs[0].Text)

	raw, err := st.Load(store.KeyChatHistory)
	require.NoError(t, err)
	assert.NotNil(t, raw)

	close(gw.Block)
	<-done

	msgs = o.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, models.RoleAssistant, msgs[1].Role)
}

func TestSendTextTurn(t *testing.T) {
	gw := gateway.NewMock()
	gw.TextResults = []*gateway.TextResult{{Text: "Hi there!"}}
	o := newTestOrchestrator(gw, store.NewMemory())

	profile := models.Profile{DisplayName: "Ada"}
	reply, ok := o.Send(context.Background(), models.Draft{Text: "hello"}, models.ModeGeneral, profile)

	require.True(t, ok)
	assert.Equal(t, models.RoleAssistant, reply.Role)
	assert.Equal(t, "Hi there!", reply.Text)
	assert.Nil(t, reply.Sources)

	require.Len(t, gw.TextRequests, 1)
	req := gw.TextRequests[0]
	assert.Equal(t, "hello", req.Prompt)
	assert.Contains(t, req.SystemFraming, "Ada")
	assert.Contains(t, req.SystemFraming, "general")
	assert.False(t, req.WebGrounding)
	assert.Zero(t, req.ReasoningBudget)
	assert.Equal(t, gateway.TierFast, req.Tier)
}

func TestSendRoutesImageRequests(t *testing.T) {
	gw := gateway.NewMock()
	gw.ImageResults = []*gateway.ImageResult{{Parts: []gateway.Part{
		{Image: &models.Attachment{MIME: "image/png", Data: []byte{1, 2, 3}}},
	}}}
	o := newTestOrchestrator(gw, store.NewMemory())

	reply, ok := o.Send(context.Background(), models.Draft{Text: "draw a picture of a cat"}, models.ModeGeneral, models.DefaultProfile())

	require.True(t, ok)
	assert.Empty(t, gw.TextRequests)
	require.Len(t, gw.ImageRequests, 1)
	assert.Equal(t, "draw a picture of a cat", gw.ImageRequests[0].Prompt)
	assert.Equal(t, "1:1", gw.ImageRequests[0].AspectRatio)

	require.NotNil(t, reply.Image)
	assert.Equal(t, "image/png", reply.Image.MIME)
	assert.Equal(t, imageCaption, reply.Text)
}

func TestSendImageTurnWithoutImagePart(t *testing.T) {
	gw := gateway.NewMock()
	gw.ImageResults = []*gateway.ImageResult{{Parts: nil}}
	o := newTestOrchestrator(gw, store.NewMemory())

	reply, ok := o.Send(context.Background(), models.Draft{Text: "draw a picture of a cat"}, models.ModeGeneral, models.DefaultProfile())

	require.True(t, ok)
	assert.Nil(t, reply.Image)
	assert.Equal(t, missingImageText, reply.Text)
}

func TestSendTransportFailureAppendsFallback(t *testing.T) {
	gw := gateway.NewMock()
	gw.TextErrs = []error{errors.New("connection refused")}
	o := newTestOrchestrator(gw, store.NewMemory())

	reply, ok := o.Send(context.Background(), models.Draft{Text: "hello"}, models.ModeGeneral, models.DefaultProfile())

	require.True(t, ok)
	assert.Equal(t, requestFailureText, reply.Text)

	msgs := o.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, models.RoleUser, msgs[0].Role)
	assert.Equal(t, models.RoleAssistant, msgs[1].Role)
}

func TestSendEmptyResponseTextFallback(t *testing.T) {
	gw := gateway.NewMock()
	gw.TextResults = []*gateway.TextResult{{Text: ""}}
	o := newTestOrchestrator(gw, store.NewMemory())

	reply, _ := o.Send(context.Background(), models.Draft{Text: "hello"}, models.ModeGeneral, models.DefaultProfile())

	assert.Equal(t, emptyResponseText, reply.Text)
}

func TestSendWebModeCollectsWebCitationsInOrder(t *testing.T) {
	gw := gateway.NewMock()
	gw.TextResults = []*gateway.TextResult{{
		Text: "Grounded answer.",
		Citations: []gateway.Citation{
			{URI: "https://a.example", Title: "A", Kind: gateway.CitationWeb},
			{URI: "https://docs.internal", Title: "Doc", Kind: gateway.CitationOther},
			{URI: "https://b.example", Title: "B", Kind: gateway.CitationWeb},
		},
	}}
	o := newTestOrchestrator(gw, store.NewMemory())

	reply, _ := o.Send(context.Background(), models.Draft{Text: "latest news"}, models.ModeWeb, models.DefaultProfile())

	require.Len(t, gw.TextRequests, 1)
	assert.True(t, gw.TextRequests[0].WebGrounding)

	require.Len(t, reply.Sources, 2)
	assert.Equal(t, models.Source{URI: "https://a.example", Title: "A"}, reply.Sources[0])
	assert.Equal(t, models.Source{URI: "https://b.example", Title: "B"}, reply.Sources[1])
}

func TestSendGeneralModeIgnoresCitations(t *testing.T) {
	gw := gateway.NewMock()
	gw.TextResults = []*gateway.TextResult{{
		Text: "Answer.",
		Citations: []gateway.Citation{
			{URI: "https://a.example", Title: "A", Kind: gateway.CitationWeb},
		},
	}}
	o := newTestOrchestrator(gw, store.NewMemory())

	reply, _ := o.Send(context.Background(), models.Draft{Text: "hello"}, models.ModeGeneral, models.DefaultProfile())

	assert.Nil(t, reply.Sources)
}

func TestSendReasoningModeSetsBudget(t *testing.T) {
	gw := gateway.NewMock()
	o := newTestOrchestrator(gw, store.NewMemory())

	o.Send(context.Background(), models.Draft{Text: "prove it"}, models.ModeReasoning, models.DefaultProfile())

	require.Len(t, gw.TextRequests, 1)
	assert.Equal(t, int32(4000), gw.TextRequests[0].ReasoningBudget)
	assert.False(t, gw.TextRequests[0].WebGrounding)
}

func TestSendProModelChangesOnlyTier(t *testing.T) {
	gw := gateway.NewMock()
	o := newTestOrchestrator(gw, store.NewMemory())

	base := models.Profile{DisplayName: "Ada"}
	pro := base
	pro.Preferences.ProModel = true

	o.Send(context.Background(), models.Draft{Text: "one"}, models.ModeGeneral, base)
	o.Send(context.Background(), models.Draft{Text: "two"}, models.ModeGeneral, pro)

	require.Len(t, gw.TextRequests, 2)
	assert.Equal(t, gateway.TierFast, gw.TextRequests[0].Tier)
	assert.Equal(t, gateway.TierQuality, gw.TextRequests[1].Tier)
	assert.Equal(t, gw.TextRequests[0].SystemFraming, gw.TextRequests[1].SystemFraming)
}

func TestSendImageOnlyDraftUsesFillerPrompt(t *testing.T) {
	gw := gateway.NewMock()
	o := newTestOrchestrator(gw, store.NewMemory())

	img := &models.Attachment{MIME: "image/png", Data: []byte{9}}
	_, ok := o.Send(context.Background(), models.Draft{Image: img}, models.ModeGeneral, models.DefaultProfile())

	require.True(t, ok)
	require.Len(t, gw.TextRequests, 1)
	assert.Equal(t, imageOnlyPrompt, gw.TextRequests[0].Prompt)
	assert.Equal(t, img, gw.TextRequests[0].Image)
}

func TestClearEmptiesLogAndStore(t *testing.T) {
	gw := gateway.NewMock()
	st := store.NewMemory()
	o := newTestOrchestrator(gw, st)

	o.Send(context.Background(), models.Draft{Text: "hello"}, models.ModeGeneral, models.DefaultProfile())
	require.NotEmpty(t, o.Messages())

	require.NoError(t, o.Clear())
	assert.Empty(t, o.Messages())

	raw, err := st.Load(store.KeyChatHistory)
	require.NoError(t, err)
	assert.Nil(t, raw)

	assert.Empty(t, o.Load())
}

func TestLogRoundTripsThroughStore(t *testing.T) {
	gw := gateway.NewMock()
	gw.TextResults = []*gateway.TextResult{
		{Text: "First reply."},
		{Text: "Sourced reply.", Citations: []gateway.Citation{
			{URI: "https://a.example", Title: "A", Kind: gateway.CitationWeb},
		}},
	}
	st := store.NewMemory()
	o := newTestOrchestrator(gw, st)

	o.Send(context.Background(), models.Draft{Text: "hello"}, models.ModeGeneral, models.DefaultProfile())
	o.Send(context.Background(), models.Draft{Text: "search this"}, models.ModeWeb, models.DefaultProfile())
	want := o.Messages()
	require.Len(t, want, 4)

	reloaded := newTestOrchestrator(gateway.NewMock(), st)
	got := reloaded.Load()

	assert.Equal(t, want, got)
}

func TestLoadToleratesAbsentAndCorruptRecords(t *testing.T) {
	st := store.NewMemory()
	o := newTestOrchestrator(gateway.NewMock(), st)
	assert.Empty(t, o.Load())

	require.NoError(t, st.Save(store.KeyChatHistory, []byte("{not json")))
	assert.Empty(t, o.Load())
}

func TestPersistFailureIsNonFatal(t *testing.T) {
	gw := gateway.NewMock()
	st := &failingStore{saveErr: errors.New("disk full")}
	o := newTestOrchestrator(gw, st)

	reply, ok := o.Send(context.Background(), models.Draft{Text: "hello"}, models.ModeGeneral, models.DefaultProfile())

	require.True(t, ok)
	assert.NotEmpty(t, reply.Text)
	assert.Len(t, o.Messages(), 2)
	assert.Error(t, o.PersistErr())
}

func TestConcurrentSendsKeepPairedOrder(t *testing.T) {
	gw := gateway.NewMock()
	st := store.NewMemory()
	o := newTestOrchestrator(gw, st)
	o.newID = uuidLike()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			o.Send(context.Background(), models.Draft{Text: fmt.Sprintf("turn %d", i)}, models.ModeGeneral, models.DefaultProfile())
		}(i)
	}
	wg.Wait()

	msgs := o.Messages()
	require.Len(t, msgs, 8)
	users, assistants := 0, 0
	for _, msg := range msgs {
		switch msg.Role {
		case models.RoleUser:
			users++
		case models.RoleAssistant:
			assistants++
		}
	}
	assert.Equal(t, 4, users)
	assert.Equal(t, 4, assistants)
}

func uuidLike() func() string {
	var mu sync.Mutex
	var seq int
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
}

// failingStore simulates an unwritable backing store.
type failingStore struct {
	saveErr error
}

func (f *failingStore) Load(string) ([]byte, error) { return nil, nil }
func (f *failingStore) Save(string, []byte) error   { return f.saveErr }
func (f *failingStore) Remove(string) error         { return nil }
