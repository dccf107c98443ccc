package helpers

import (
	"sync"
	"testing"
	"time"

	"github.com/m3rciful/furnibot/core/telegram/sender"

	tele "gopkg.in/telebot.v4"
)

// recordingContext implements just enough of tele.Context for the send
// helpers: message recording plus the accessors BuildContext touches.
type recordingContext struct {
	tele.Context

	mu    sync.Mutex
	store map[string]interface{}
	sent  []string
	// firstDelay stalls the first send to expose reordering across
	// concurrent sender workers.
	firstDelay time.Duration
}

func newRecordingContext(firstDelay time.Duration) *recordingContext {
	return &recordingContext{
		store:      make(map[string]interface{}),
		firstDelay: firstDelay,
	}
}

func (r *recordingContext) Update() tele.Update { return tele.Update{} }
func (r *recordingContext) Sender() *tele.User  { return nil }
func (r *recordingContext) Chat() *tele.Chat    { return nil }

func (r *recordingContext) Get(key string) interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store[key]
}

func (r *recordingContext) Set(key string, val interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[key] = val
}

func (r *recordingContext) Send(what interface{}, _ ...interface{}) error {
	text, _ := what.(string)
	r.mu.Lock()
	first := len(r.sent) == 0
	r.mu.Unlock()
	if first && r.firstDelay > 0 {
		time.Sleep(r.firstDelay)
	}
	r.mu.Lock()
	r.sent = append(r.sent, text)
	r.mu.Unlock()
	return nil
}

func (r *recordingContext) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.sent...)
}

func TestSendTextsKeepsOrder(t *testing.T) {
	d := sender.NewDispatcher(sender.Options{Workers: 4, QueueSize: 8})
	SetDispatcher(d)
	defer SetDispatcher(nil)

	c := newRecordingContext(30 * time.Millisecond)
	if err := SendTexts(c, "header", "listing"); err != nil {
		t.Fatalf("send: %v", err)
	}
	d.Close()

	got := c.messages()
	if len(got) != 2 || got[0] != "header" || got[1] != "listing" {
		t.Fatalf("messages out of order: %v", got)
	}
}

func TestSendTextsWithoutDispatcher(t *testing.T) {
	SetDispatcher(nil)
	c := newRecordingContext(0)
	if err := SendTexts(c, "a", "b", "c"); err != nil {
		t.Fatalf("send: %v", err)
	}
	got := c.messages()
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("messages = %v", got)
	}
}

func TestSendTextsEmpty(t *testing.T) {
	SetDispatcher(nil)
	c := newRecordingContext(0)
	if err := SendTexts(c); err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(c.messages()) != 0 {
		t.Fatalf("unexpected messages: %v", c.messages())
	}
}
