package tui

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
)

// Recorder captures TUI state changes and renders for debugging.
type Recorder struct {
	fs       afero.Fs
	logFile  afero.File
	frameDir string
	frameNum int
	mu       sync.Mutex
}

// NewRecorder creates a recorder writing into a fresh directory under dir.
func NewRecorder(fs afero.Fs, dir string) (*Recorder, error) {
	recordDir := filepath.Join(dir, fmt.Sprintf("tui-record-%d", time.Now().Unix()))
	if err := fs.MkdirAll(recordDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create recording directory: %w", err)
	}

	logFile, err := fs.Create(filepath.Join(recordDir, "tui.log"))
	if err != nil {
		return nil, fmt.Errorf("failed to create recording log: %w", err)
	}

	r := &Recorder{
		fs:       fs,
		logFile:  logFile,
		frameDir: recordDir,
	}

	r.Log("TUI Recorder started at %s", recordDir)
	return r, nil
}

// Dir returns the recording directory.
func (r *Recorder) Dir() string {
	return r.frameDir
}

// Frames returns how many frames have been captured.
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frameNum
}

// RecordState captures the current state.
func (r *Recorder) RecordState(m Model, msg tea.Msg) {
	r.mu.Lock()
	r.frameNum++
	frame := r.frameNum
	r.mu.Unlock()

	r.Log("\n=== Frame %d ===", frame)
	r.Log("Time: %s", time.Now().Format("15:04:05.000"))
	r.Log("Message Type: %T", msg)
	r.Log("Screen: %d Drawer: %v Focus: %d", m.screen, m.drawerOpen, m.focus)
	r.Log("Leagues: %d shown of %d (loading %v)",
		len(m.catalog.FilteredLeagues()), len(m.catalog.AllLeagues()), m.catalog.LoadingLeagues())
	r.Log("Transfers: %s (%s)", m.transfers.Vector, m.transfers.Phase)

	view := m.View()
	framePath := filepath.Join(r.frameDir, fmt.Sprintf("frame-%04d.txt", frame))
	if err := afero.WriteFile(r.fs, framePath, []byte(view), 0o600); err != nil {
		r.Log("Error saving frame: %v", err)
	}
}

// Log writes to the log file.
func (r *Recorder) Log(format string, args ...any) {
	if r == nil || r.logFile == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := fmt.Fprintf(r.logFile, format+"\n", args...); err != nil {
		return
	}
	_ = r.logFile.Sync()
}

// Close closes the recorder.
func (r *Recorder) Close() {
	if r == nil || r.logFile == nil {
		return
	}
	r.Log("Recording complete. %d frames captured.", r.Frames())
	r.Log("View recording at: %s", r.frameDir)
	_ = r.logFile.Close() // Best effort close
}
