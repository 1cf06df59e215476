package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// FlashLevel is the severity of a flash message.
type FlashLevel int

const (
	FlashInfo FlashLevel = iota
	FlashOK
	FlashWarn
	FlashErr
)

// flashTTL is how long each level stays on screen.
var flashTTL = map[FlashLevel]time.Duration{
	FlashInfo: 5 * time.Second,
	FlashOK:   5 * time.Second,
	FlashWarn: 8 * time.Second,
	FlashErr:  10 * time.Second,
}

// FlashMessage is one notification and its expiry.
type FlashMessage struct {
	Text    string
	Level   FlashLevel
	Expires time.Time
}

// FlashModel holds the latest notification. Each new message is
// signalled on Watch so a goroutine can schedule a redraw.
type FlashModel struct {
	mu      sync.RWMutex
	current FlashMessage
	changed chan struct{}
	now     func() time.Time
}

// NewFlashModel creates an empty flash model.
func NewFlashModel() *FlashModel {
	return &FlashModel{
		changed: make(chan struct{}, 1),
		now:     time.Now,
	}
}

func (f *FlashModel) Info(msg string) { f.Notify(FlashInfo, msg) }

// OK reports a completed action, such as a deletion.
func (f *FlashModel) OK(msg string) { f.Notify(FlashOK, msg) }

func (f *FlashModel) Warn(msg string) { f.Notify(FlashWarn, msg) }

func (f *FlashModel) Err(err error) { f.Notify(FlashErr, err.Error()) }

// Notify replaces the current message.
func (f *FlashModel) Notify(level FlashLevel, msg string) {
	f.mu.Lock()
	f.current = FlashMessage{Text: msg, Level: level, Expires: f.now().Add(flashTTL[level])}
	f.mu.Unlock()
	select {
	case f.changed <- struct{}{}:
	default:
	}
}

// Clear drops the current message.
func (f *FlashModel) Clear() {
	f.mu.Lock()
	f.current = FlashMessage{}
	f.mu.Unlock()
}

// Current returns the live message, if any.
func (f *FlashModel) Current() (FlashMessage, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.current.Text == "" || f.now().After(f.current.Expires) {
		return FlashMessage{}, false
	}
	return f.current, true
}

// Get returns the live message text, or "".
func (f *FlashModel) Get() string {
	m, _ := f.Current()
	return m.Text
}

// Watch signals each new message. Signals coalesce.
func (f *FlashModel) Watch() <-chan struct{} {
	return f.changed
}

// FlashBar draws the flash model's live message.
type FlashBar struct {
	*tview.TextView
	theme *Theme
}

// NewFlashBar creates the bar.
func NewFlashBar(theme *Theme) *FlashBar {
	tv := tview.NewTextView().SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)
	return &FlashBar{TextView: tv, theme: theme}
}

// Render redraws the bar from m.
func (fb *FlashBar) Render(m *FlashModel) {
	fb.Clear()
	msg, ok := m.Current()
	if !ok {
		return
	}
	icon := map[FlashLevel]string{FlashInfo: "ℹ", FlashOK: "✓", FlashWarn: "!", FlashErr: "✗"}[msg.Level]
	_, _ = fmt.Fprintf(fb, " [%s]%s %s[-]", Tag(fb.levelColor(msg.Level)), icon, tview.Escape(msg.Text))
}

func (fb *FlashBar) levelColor(level FlashLevel) tcell.Color {
	switch level {
	case FlashOK:
		return fb.theme.FlashOKColor
	case FlashWarn:
		return fb.theme.FlashWarnColor
	case FlashErr:
		return fb.theme.FlashErrColor
	default:
		return fb.theme.FlashInfoColor
	}
}
