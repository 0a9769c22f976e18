// Package journal records the frames a session exchanges with the game
// server as zstd-compressed JSON lines, and replays them into a fresh grid.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/cbodonnell/minesweeper/pkg/messages"
	"github.com/klauspost/compress/zstd"
)

const (
	FileExtension = ".jsonl.zst"
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

type Direction string

const (
	DirectionInbound  Direction = "in"
	DirectionOutbound Direction = "out"
)

// Header is the first line of every journal.
type Header struct {
	GameID    string    `json:"gameId"`
	SessionID string    `json:"sessionId"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	StartedAt time.Time `json:"startedAt"`
}

// Entry is a single recorded frame. Data is kept as text since inbound
// frames are not guaranteed to be valid JSON.
type Entry struct {
	Direction Direction `json:"dir"`
	At        time.Time `json:"at"`
	Data      string    `json:"data"`
}

// FileName returns the journal file name for a game and session.
func FileName(gameID, sessionID string) string {
	return unsafeFileChars.ReplaceAllString(gameID, "_") + "-" + sessionID + FileExtension
}

// Recorder appends entries to a journal file.
type Recorder struct {
	lock    sync.Mutex
	path    string
	file    *os.File
	zw      *zstd.Encoder
	encoder *json.Encoder
	closed  bool
}

type NewRecorderOptions struct {
	Dir    string
	Header Header
}

// NewRecorder creates the journal file in opts.Dir and writes its header.
func NewRecorder(opts NewRecorderOptions) (*Recorder, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %v", err)
	}

	path := filepath.Join(opts.Dir, FileName(opts.Header.GameID, opts.Header.SessionID))
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create journal file: %v", err)
	}

	zw, err := zstd.NewWriter(file, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}

	encoder := json.NewEncoder(zw)
	encoder.SetEscapeHTML(false)
	r := &Recorder{
		path:    path,
		file:    file,
		zw:      zw,
		encoder: encoder,
	}
	if err := r.encoder.Encode(&opts.Header); err != nil {
		r.Close()
		return nil, fmt.Errorf("failed to write journal header: %v", err)
	}
	return r, nil
}

// Path is the location of the journal file.
func (r *Recorder) Path() string {
	return r.path
}

func (r *Recorder) RecordInbound(frame *messages.Frame) error {
	return r.write(&Entry{Direction: DirectionInbound, At: frame.ReceivedAt, Data: string(frame.Data)})
}

func (r *Recorder) RecordOutbound(b []byte, sentAt time.Time) error {
	return r.write(&Entry{Direction: DirectionOutbound, At: sentAt, Data: string(b)})
}

func (r *Recorder) write(entry *Entry) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.closed {
		return fmt.Errorf("journal %s is closed", r.path)
	}
	if err := r.encoder.Encode(entry); err != nil {
		return fmt.Errorf("failed to write journal entry: %v", err)
	}
	return nil
}

// Close flushes the compressed stream and closes the file.
func (r *Recorder) Close() error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true

	if err := r.zw.Close(); err != nil {
		r.file.Close()
		return fmt.Errorf("failed to close zstd writer: %v", err)
	}
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("failed to close journal file: %v", err)
	}
	return nil
}

// Journal is a fully loaded recording.
type Journal struct {
	Header  Header
	Entries []Entry
}

// Open loads the journal at path.
func Open(path string) (*Journal, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %v", err)
	}
	defer file.Close()
	return Load(file)
}

// Load reads a compressed journal from r.
func Load(r io.Reader) (*Journal, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer zr.Close()

	// entries are decoded as a stream so no line length limit applies
	decoder := json.NewDecoder(zr)

	j := &Journal{}
	if err := decoder.Decode(&j.Header); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("journal is empty")
		}
		return nil, fmt.Errorf("failed to decode journal header: %v", err)
	}

	for line := 2; ; line++ {
		entry := Entry{}
		if err := decoder.Decode(&entry); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to decode journal line %d: %v", line, err)
		}
		j.Entries = append(j.Entries, entry)
	}

	return j, nil
}
