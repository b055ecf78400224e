package chatbot

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/bank-crm/internal/domain"
)

// DefaultReplyDelay is how long the assistant "types" before answering.
const DefaultReplyDelay = time.Second

// WidgetOption configures a Widget.
type WidgetOption func(*Widget)

// WithReplyDelay overrides the reply delay.
func WithReplyDelay(d time.Duration) WidgetOption {
	return func(w *Widget) {
		if d >= 0 {
			w.delay = d
		}
	}
}

// WithScheduler overrides the timer source.
func WithScheduler(s Scheduler) WidgetOption {
	return func(w *Widget) {
		if s != nil {
			w.scheduler = s
		}
	}
}

// WithResponder overrides the reply rule.
func WithResponder(fn func(string) string) WidgetOption {
	return func(w *Widget) {
		if fn != nil {
			w.respond = fn
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) WidgetOption {
	return func(w *Widget) {
		if now != nil {
			w.now = now
		}
	}
}

// WithReplyHook registers a callback invoked after each bot reply is appended.
// The hook runs outside the widget lock.
func WithReplyHook(fn func(domain.ChatMessage)) WidgetOption {
	return func(w *Widget) {
		w.onReply = fn
	}
}

type pendingReply struct {
	prompt string
	ready  bool
	timer  Timer
}

// Widget is one assistant instance: an append-only transcript, a visibility
// flag, an input draft and the replies still waiting to be delivered.
type Widget struct {
	mu        sync.Mutex
	messages  []domain.ChatMessage
	open      bool
	draft     string
	pending   []*pendingReply
	destroyed bool

	delay     time.Duration
	scheduler Scheduler
	respond   func(string) string
	now       func() time.Time
	onReply   func(domain.ChatMessage)
}

// NewWidget returns a closed widget whose transcript holds the greeting.
func NewWidget(opts ...WidgetOption) *Widget {
	w := &Widget{
		delay:     DefaultReplyDelay,
		scheduler: SystemScheduler,
		respond:   ComputeReply,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.messages = append(w.messages, w.message(Greeting, domain.ChatSenderBot))
	return w
}

// Send appends a user message and schedules exactly one bot reply.
// Blank input (after trimming) is ignored and reports false.
func (w *Widget) Send(text string) (domain.ChatMessage, bool) {
	if strings.TrimSpace(text) == "" {
		return domain.ChatMessage{}, false
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.destroyed {
		return domain.ChatMessage{}, false
	}

	msg := w.message(text, domain.ChatSenderUser)
	w.messages = append(w.messages, msg)
	w.draft = ""

	p := &pendingReply{prompt: text}
	w.pending = append(w.pending, p)
	p.timer = w.scheduler.AfterFunc(w.delay, func() { w.deliver(p) })
	return msg, true
}

// deliver marks p ready and flushes every ready reply at the head of the
// queue, so replies land in send order even if their timers fire out of order.
func (w *Widget) deliver(p *pendingReply) {
	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		return
	}
	p.ready = true

	var delivered []domain.ChatMessage
	for len(w.pending) > 0 && w.pending[0].ready {
		head := w.pending[0]
		w.pending = w.pending[1:]
		reply := w.message(w.respond(head.prompt), domain.ChatSenderBot)
		w.messages = append(w.messages, reply)
		delivered = append(delivered, reply)
	}
	hook := w.onReply
	w.mu.Unlock()

	if hook != nil {
		for _, msg := range delivered {
			hook(msg)
		}
	}
}

// Destroy cancels every pending reply. No message is appended afterwards.
func (w *Widget) Destroy() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.destroyed {
		return
	}
	w.destroyed = true
	for _, p := range w.pending {
		if p.timer != nil {
			p.timer.Stop()
		}
	}
	w.pending = nil
}

// Destroyed reports whether Destroy was called.
func (w *Widget) Destroyed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.destroyed
}

// Messages returns a copy of the transcript in display order.
func (w *Widget) Messages() []domain.ChatMessage {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]domain.ChatMessage, len(w.messages))
	copy(out, w.messages)
	return out
}

// Pending returns the number of replies not yet delivered.
func (w *Widget) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

// Open shows the widget.
func (w *Widget) Open() {
	w.setOpen(true)
}

// Close hides the widget. The transcript is kept.
func (w *Widget) Close() {
	w.setOpen(false)
}

// Toggle flips visibility and returns the new state.
func (w *Widget) Toggle() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.open = !w.open
	return w.open
}

// IsOpen reports visibility.
func (w *Widget) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

// SetDraft stores the unsent input text.
func (w *Widget) SetDraft(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft = text
}

// Draft returns the unsent input text.
func (w *Widget) Draft() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// SendDraft sends the current draft.
func (w *Widget) SendDraft() (domain.ChatMessage, bool) {
	return w.Send(w.Draft())
}

func (w *Widget) setOpen(open bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.open = open
}

func (w *Widget) message(text string, sender domain.ChatSender) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: w.now(),
	}
}
