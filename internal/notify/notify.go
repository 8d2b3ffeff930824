// Package notify shows transient success and error messages to the user.
package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/Areeb006/FAJR/pkg/errors"
)

// Level is the kind of notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notifier delivers user-facing messages.
type Notifier interface {
	Notify(ctx context.Context, level Level, msg string)
}

// Console writes styled notifications to w and mirrors them to the logger.
type Console struct {
	mu      sync.Mutex
	w       io.Writer
	logger  *slog.Logger
	success lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
}

// NewConsole creates a console notifier.
func NewConsole(w io.Writer, logger *slog.Logger) *Console {
	return &Console{
		w:       w,
		logger:  logger,
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("#43A047")).Bold(true),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("#E53935")).Bold(true),
		info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A")),
	}
}

// Notify prints msg.
func (c *Console) Notify(ctx context.Context, level Level, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var style lipgloss.Style
	prefix := "i"
	switch level {
	case LevelSuccess:
		style, prefix = c.success, "✓"
	case LevelError:
		style, prefix = c.failure, "✗"
	default:
		style = c.info
	}
	fmt.Fprintln(c.w, style.Render(prefix+" "+msg))

	c.logger.DebugContext(ctx, "notification shown",
		slog.String("level", string(level)),
		slog.String("message", msg),
	)
}

// Error reports err through n using its user-facing message.
func Error(ctx context.Context, n Notifier, err error) {
	if err == nil {
		return
	}
	n.Notify(ctx, LevelError, apperrors.UserMessage(err))
}

// Recorder keeps notifications in memory.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// Entry is one recorded notification.
type Entry struct {
	Level   Level
	Message string
}

// Notify records the message.
func (r *Recorder) Notify(_ context.Context, level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: msg})
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return Entry{}, false
	}
	return r.entries[len(r.entries)-1], true
}
