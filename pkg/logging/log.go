package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/apex/log"
)

// DefaultLevel is used when SETTINGS_LOG is unset or cannot be parsed.
const DefaultLevel = "INFO"

// InitLogger installs Handler on stdout and sets the level. An empty level
// falls back to the SETTINGS_LOG env variable and then to DefaultLevel.
func InitLogger(level string) {
	if level == "" {
		level = os.Getenv("SETTINGS_LOG")
	}
	log.SetHandler(NewHandler(os.Stdout))

	lvl, err := ParseLevel(level)
	if err != nil {
		log.SetLevel(log.InfoLevel)
		log.Warnf("invalid log level %q, using %s", level, DefaultLevel)
		return
	}
	log.SetLevel(lvl)
}

// ParseLevel accepts apex level names in any case. Empty means DefaultLevel.
func ParseLevel(level string) (log.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		level = DefaultLevel
	}
	return log.ParseLevel(strings.ToLower(level))
}

// Handler writes one line per entry: timestamp, level initial, message and
// the entry fields sorted by name.
type Handler struct {
	mu sync.Mutex
	w  io.Writer
}

// NewHandler creates a Handler writing to w.
func NewHandler(w io.Writer) *Handler {
	return &Handler{w: w}
}

// HandleLog implements the log.Handler interface
func (h *Handler) HandleLog(e *log.Entry) error {
	var b strings.Builder

	timestamp := e.Timestamp.Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())
	fmt.Fprintf(&b, "%s %.1s %s", timestamp, level, e.Message)

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields[name])
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}
