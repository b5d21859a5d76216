package prompting

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"google.golang.org/genai"
)

// scriptedReply is one step of a scripted invoker run.
type scriptedReply struct {
	text string
	err  error
}

// scriptedInvoker replays canned replies in order. Once the script is
// exhausted the last reply repeats.
type scriptedInvoker struct {
	mu      sync.Mutex
	replies []scriptedReply
	calls   int
}

func (s *scriptedInvoker) Generate(
	ctx context.Context,
	model Model,
	messages []*Message,
	cfg *genai.GenerateContentConfig,
) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	s.calls++
	if len(s.replies) == 0 {
		return "{}", nil
	}
	if i >= len(s.replies) {
		i = len(s.replies) - 1
	}
	r := s.replies[i]
	return r.text, r.err
}

// NewForTesting creates a Client that replays the given responses without
// needing a real API client or key. Waits between retries are skipped.
func NewForTesting(responses ...string) *Client {
	replies := make([]scriptedReply, 0, len(responses))
	for _, r := range responses {
		replies = append(replies, scriptedReply{text: r})
	}
	return NewClientWithInvoker(&scriptedInvoker{replies: replies})
}

// NewClientWithInvoker builds a Client around a custom Invoker, for tests
// that need to observe the outgoing request. Waits between retries are
// skipped.
func NewClientWithInvoker(inv Invoker) *Client {
	return &Client{
		invoker: inv,
		retrier: NewRetrier(DefaultRetryConfig, withSleep(
			func(context.Context, time.Duration) error { return nil },
		)),
		model: DefaultModel,
		log:   slog.Default(),
	}
}
