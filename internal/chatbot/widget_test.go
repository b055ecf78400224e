package chatbot

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bank-crm/internal/domain"
)

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{delay: d, fn: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) fire(i int) {
	s.mu.Lock()
	t := s.timers[i]
	run := !t.stopped && !t.fired
	t.fired = true
	s.mu.Unlock()
	if run {
		t.fn()
	}
}

func (s *fakeScheduler) fireAll() {
	s.mu.Lock()
	n := len(s.timers)
	s.mu.Unlock()
	for i := 0; i < n; i++ {
		s.fire(i)
	}
}

func newTestWidget(opts ...WidgetOption) (*Widget, *fakeScheduler) {
	sched := &fakeScheduler{}
	return NewWidget(append([]WidgetOption{WithScheduler(sched)}, opts...)...), sched
}

func TestWidget_SeededWithGreeting(t *testing.T) {
	req := require.New(t)
	w, _ := newTestWidget()
	msgs := w.Messages()
	req.Len(msgs, 1)
	req.Equal(Greeting, msgs[0].Text)
	req.Equal(domain.ChatSenderBot, msgs[0].Sender)
	req.False(w.IsOpen())
}

func TestWidget_BlankInputIgnored(t *testing.T) {
	req := require.New(t)
	w, sched := newTestWidget()
	for _, text := range []string{"", "  ", "\t\n"} {
		_, ok := w.Send(text)
		req.False(ok)
	}
	req.Len(w.Messages(), 1)
	req.Empty(sched.timers)
	req.Zero(w.Pending())
}

func TestWidget_SendThenReplyAfterDelay(t *testing.T) {
	req := require.New(t)
	w, sched := newTestWidget()
	w.SetDraft("What's my balance?")

	msg, ok := w.SendDraft()
	req.True(ok)
	req.Equal("What's my balance?", msg.Text)
	req.Equal(domain.ChatSenderUser, msg.Sender)
	req.Empty(w.Draft())

	msgs := w.Messages()
	req.Len(msgs, 2)
	req.Equal(1, w.Pending())
	req.Len(sched.timers, 1)
	req.Equal(DefaultReplyDelay, sched.timers[0].delay)

	sched.fireAll()
	msgs = w.Messages()
	req.Len(msgs, 3)
	req.Equal(domain.ChatSenderBot, msgs[2].Sender)
	req.Equal(DefaultRules[0].Reply, msgs[2].Text)
	req.Zero(w.Pending())

	sched.fireAll()
	req.Len(w.Messages(), 3)
}

func TestWidget_RawTextKept(t *testing.T) {
	req := require.New(t)
	w, _ := newTestWidget()
	msg, ok := w.Send("  help  ")
	req.True(ok)
	req.Equal("  help  ", msg.Text)
}

func TestWidget_RepliesInSendOrder(t *testing.T) {
	req := require.New(t)
	w, sched := newTestWidget()
	_, _ = w.Send("balance")
	_, _ = w.Send("loan")

	sched.fire(1)
	req.Len(w.Messages(), 3, "second reply must wait for the first")

	sched.fire(0)
	msgs := w.Messages()
	req.Len(msgs, 5)
	req.Equal(DefaultRules[0].Reply, msgs[3].Text)
	req.Equal(DefaultRules[2].Reply, msgs[4].Text)
}

func TestWidget_DestroyCancelsPendingReplies(t *testing.T) {
	req := require.New(t)
	w, sched := newTestWidget()
	_, _ = w.Send("transfer")
	w.Destroy()

	req.True(sched.timers[0].stopped)
	sched.fireAll()
	req.Len(w.Messages(), 2)
	req.True(w.Destroyed())

	_, ok := w.Send("again")
	req.False(ok)
}

func TestWidget_DestroyBeatsRealTimer(t *testing.T) {
	req := require.New(t)
	w := NewWidget(WithReplyDelay(20 * time.Millisecond))
	_, _ = w.Send("help")
	w.Destroy()
	time.Sleep(60 * time.Millisecond)
	req.Len(w.Messages(), 2)
}

func TestWidget_RealTimerDelivers(t *testing.T) {
	req := require.New(t)
	replies := make(chan domain.ChatMessage, 1)
	w := NewWidget(
		WithReplyDelay(5*time.Millisecond),
		WithReplyHook(func(m domain.ChatMessage) { replies <- m }),
	)
	_, _ = w.Send("kyc")

	select {
	case reply := <-replies:
		req.Equal(DefaultRules[4].Reply, reply.Text)
	case <-time.After(2 * time.Second):
		req.Fail("reply not delivered")
	}
	req.Len(w.Messages(), 3)
}

func TestWidget_VisibilityKeepsTranscript(t *testing.T) {
	req := require.New(t)
	w, sched := newTestWidget()
	w.Open()
	req.True(w.IsOpen())
	_, _ = w.Send("support")
	sched.fireAll()

	w.Close()
	req.False(w.IsOpen())
	req.Len(w.Messages(), 3)

	req.True(w.Toggle())
	req.Len(w.Messages(), 3)
	req.False(w.Toggle())
}

func TestWidget_TimestampsFromClock(t *testing.T) {
	req := require.New(t)
	at := time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)
	w, _ := newTestWidget(WithClock(func() time.Time { return at }))
	msg, _ := w.Send("hi")
	req.Equal(at, msg.Timestamp)
}

func TestRegistry_PerSessionWidgets(t *testing.T) {
	req := require.New(t)
	sched := &fakeScheduler{}
	reg := NewRegistry(WithScheduler(sched))

	a := reg.Get("a")
	req.Same(a, reg.Get("a"))
	b := reg.Get("b")
	req.NotSame(a, b)
	req.Equal(2, reg.Len())

	_, _ = a.Send("balance")
	reg.Destroy("a")
	sched.fireAll()
	req.Len(a.Messages(), 2)
	req.Equal(1, reg.Len())

	fresh := reg.Get("a")
	req.NotSame(a, fresh)
	req.Len(fresh.Messages(), 1)

	reg.Shutdown()
	req.Zero(reg.Len())
	req.True(b.Destroyed())
}
