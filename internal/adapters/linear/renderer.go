// Package linear provides a synchronous, line-buffered progress renderer.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/reqlock/internal/core/ports"
	"go.trai.ch/reqlock/internal/ui/output"
	"go.trai.ch/reqlock/internal/ui/style"
)

// Renderer implements ports.Renderer. It writes chronological lines prefixed with
// the directory being processed.
type Renderer struct {
	w      io.Writer
	output *termenv.Output

	mu      sync.Mutex
	tasks   map[string]*taskState // spanID -> task state
	buffers map[string]*bytes.Buffer
}

type taskState struct {
	name      string
	startTime time.Time
}

var _ ports.Renderer = (*Renderer)(nil)

// NewRenderer creates a new Renderer writing to w.
func NewRenderer(w io.Writer, profileFn func() termenv.Profile) *Renderer {
	if w == nil {
		w = os.Stderr
	}

	return &Renderer{
		w:       w,
		output:  output.NewWithProfile(w, profileFn),
		tasks:   make(map[string]*taskState),
		buffers: make(map[string]*bytes.Buffer),
	}
}

// Start is a no-op for the linear renderer.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop flushes all remaining buffers.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for spanID := range r.buffers {
		r.flushBufferLocked(spanID)
	}

	return nil
}

// Wait is a no-op for the linear renderer.
func (r *Renderer) Wait() error {
	return nil
}

// OnPlanEmit prints the directories about to be processed.
func (r *Renderer) OnPlanEmit(dirs []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	noun := "directories"
	if len(dirs) == 1 {
		noun = "directory"
	}
	_, _ = fmt.Fprintf(r.w, "Processing %d %s: %s\n", len(dirs), noun, strings.Join(dirs, ", "))
}

// OnTaskStart prints the action about to run for a directory.
func (r *Renderer) OnTaskStart(spanID, name, action string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[spanID] = &taskState{
		name:      name,
		startTime: startTime,
	}
	r.buffers[spanID] = new(bytes.Buffer)

	if action == "" {
		action = "Starting"
	}
	_, _ = fmt.Fprintf(r.w, "%s %s...\n", r.prefix(name), action)
}

// OnTaskLog buffers log data and prints complete lines with the directory prefix.
func (r *Renderer) OnTaskLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	buf.Write(data)

	for {
		line, err := buf.ReadBytes('\n')
		if err != nil {
			// Incomplete line, keep it for the next write.
			if len(line) > 0 {
				newBuf := new(bytes.Buffer)
				newBuf.Write(line)
				r.buffers[spanID] = newBuf
			}
			break
		}

		r.printLineLocked(task.name, line)
	}
}

// OnTaskComplete flushes the remaining buffer and prints the completion status.
func (r *Renderer) OnTaskComplete(spanID, summary string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[spanID]
	if !ok {
		return
	}

	r.flushBufferLocked(spanID)

	duration := endTime.Sub(task.startTime).Round(time.Millisecond)
	prefix := r.prefix(task.name)

	if err != nil {
		symbol := style.Paint(r.output, style.Cross, style.Red, false)
		_, _ = fmt.Fprintf(r.w, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
	} else {
		symbol := style.Paint(r.output, style.Check, style.Green, false)
		if summary == "" {
			summary = "Completed"
		}
		_, _ = fmt.Fprintf(r.w, "%s %s %s in %v\n", prefix, symbol, summary, duration)
	}

	delete(r.tasks, spanID)
	delete(r.buffers, spanID)
}

func (r *Renderer) prefix(name string) string {
	return r.output.String("[" + name + "]").Faint().String()
}

// flushBufferLocked prints any partial line left for a task.
// Must be called with r.mu held.
func (r *Renderer) flushBufferLocked(spanID string) {
	task, ok := r.tasks[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	if buf.Len() > 0 {
		r.printLineLocked(task.name, buf.Bytes())
		buf.Reset()
	}
}

// printLineLocked prints a line with the directory prefix.
// Must be called with r.mu held.
func (r *Renderer) printLineLocked(name string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))

	if len(line) == 0 {
		return
	}

	_, _ = fmt.Fprintf(r.w, "%s %s\n", r.prefix(name), string(line))
}
