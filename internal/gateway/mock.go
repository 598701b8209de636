package gateway

import (
	"context"
	"sync"
)

// Mock is a scripted Client for tests and DOT_USE_MOCK runs. Responses and
// errors are queued per capability; an empty queue yields a canned reply.
type Mock struct {
	mu sync.Mutex

	TextResults  []*TextResult
	TextErrs     []error
	ImageResults []*ImageResult
	ImageErrs    []error

	TextRequests  []Request
	ImageRequests []Request

	// Block, when non-nil, is closed by the test to release in-flight calls.
	Block chan struct{}
}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) GenerateText(ctx context.Context, req Request) (*TextResult, error) {
	m.mu.Lock()
	m.TextRequests = append(m.TextRequests, req)
	block := m.Block
	var res *TextResult
	var err error
	if len(m.TextErrs) > 0 {
		err, m.TextErrs = m.TextErrs[0], m.TextErrs[1:]
	} else if len(m.TextResults) > 0 {
		res, m.TextResults = m.TextResults[0], m.TextResults[1:]
	} else {
		res = &TextResult{Text: "This is a mock reply."}
	}
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return res, err
}

func (m *Mock) GenerateImage(ctx context.Context, req Request) (*ImageResult, error) {
	m.mu.Lock()
	m.ImageRequests = append(m.ImageRequests, req)
	block := m.Block
	var res *ImageResult
	var err error
	if len(m.ImageErrs) > 0 {
		err, m.ImageErrs = m.ImageErrs[0], m.ImageErrs[1:]
	} else if len(m.ImageResults) > 0 {
		res, m.ImageResults = m.ImageResults[0], m.ImageResults[1:]
	} else {
		res = &ImageResult{Parts: []Part{{Text: "Mock image placeholder."}}}
	}
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return res, err
}
