package audit

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/logger"
)

// SDID constants for structured data IDs (RFC5424). 32473 is the
// enterprise number reserved for documentation.
const (
	EnterpriseNumber = 32473
	SDIDAuth         = "auth@32473"
	SDIDSubject      = "subject@32473"
	SDIDAction       = "action@32473"
	SDIDClient       = "client@32473"
	SDIDCorrelation  = "correlation@32473"
	SDIDImport       = "import@32473"
)

const appName = "exchange"

// Syslog facilities used by exchange events
const (
	FacilityAuth     = 4  // LOG_AUTH
	FacilityAuthPriv = 10 // LOG_AUTHPRIV
)

// Severity levels matching syslog (RFC5424)
type Severity int

const (
	SeverityEmergency Severity = iota
	SeverityAlert
	SeverityCritical
	SeverityError
	SeverityWarning
	SeverityNotice
	SeverityInfo
	SeverityDebug
)

// Event is a single audit record.
type Event interface {
	MessageID() string
	Message() string
	Severity() Severity
	Facility() int
	StructuredData() map[string]map[string]string
}

// Logger writes events as RFC5424 syslog lines.
type Logger struct {
	mu       sync.Mutex
	writer   io.Writer
	hostname string
	pid      int
	now      func() time.Time
}

// NewLogger returns a Logger writing to stdout.
func NewLogger() *Logger {
	hostname, _ := os.Hostname()
	return &Logger{
		writer:   os.Stdout,
		hostname: hostname,
		pid:      os.Getpid(),
		now:      time.Now,
	}
}

// SetWriter redirects the syslog lines.
func (l *Logger) SetWriter(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer = w
}

// Log writes one line: <PRI>1 TIMESTAMP HOSTNAME APP-NAME PROCID MSGID SD MSG
func (l *Logger) Log(event Event) {
	line := l.format(event)

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.writer, line)
}

func (l *Logger) format(event Event) string {
	pri := event.Facility()*8 + int(event.Severity())

	sd := formatStructuredData(event.StructuredData())
	if sd == "" {
		sd = "-"
	}
	hostname := l.hostname
	if hostname == "" {
		hostname = "-"
	}

	return fmt.Sprintf("<%d>1 %s %s %s %d %s %s %s\n",
		pri,
		l.now().UTC().Format("2006-01-02T15:04:05.000Z"),
		hostname,
		appName,
		l.pid,
		event.MessageID(),
		sd,
		event.Message(),
	)
}

// formatStructuredData renders [sdid k="v" ...] elements, sorted so that
// the same event always produces the same line.
func formatStructuredData(sd map[string]map[string]string) string {
	if len(sd) == 0 {
		return ""
	}

	var b strings.Builder
	for _, sdid := range sortedKeys(sd) {
		params := sd[sdid]
		b.WriteString("[")
		b.WriteString(sdid)
		for _, key := range sortedKeys(params) {
			fmt.Fprintf(&b, " %s=%s", key, escapeSDValue(params[key]))
		}
		b.WriteString("]")
	}
	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// escapeSDValue quotes a PARAM-VALUE per RFC5424 section 6.3.3.
func escapeSDValue(value string) string {
	value = strings.ReplaceAll(value, "\\", "\\\\")
	value = strings.ReplaceAll(value, "\"", "\\\"")
	value = strings.ReplaceAll(value, "]", "\\]")
	return "\"" + value + "\""
}

// DefaultLogger receives every event passed to Log.
var DefaultLogger = NewLogger()

var (
	auditEnabled     = true
	auditEnabledOnce sync.Once

	storeMu      sync.RWMutex
	defaultStore *Store
)

// IsEnabled reports whether Log records anything. EXCHANGE_AUDIT_ENABLED
// set to false, 0 or no turns auditing off.
func IsEnabled() bool {
	auditEnabledOnce.Do(func() {
		if env := os.Getenv("EXCHANGE_AUDIT_ENABLED"); env != "" {
			auditEnabled = env != "false" && env != "0" && env != "no"
		}
	})
	return auditEnabled
}

// SetEnabled overrides the environment. Call it before the first Log.
func SetEnabled(enabled bool) {
	auditEnabledOnce.Do(func() {})
	auditEnabled = enabled
}

// SetStore makes Log persist events to s as well. A nil store stops
// persistence.
func SetStore(s *Store) {
	storeMu.Lock()
	defer storeMu.Unlock()
	defaultStore = s
}

// Log records event on the default logger and, when one is set, the store.
// A store failure is reported on the application log and never returned.
func Log(event Event) {
	if !IsEnabled() {
		return
	}
	DefaultLogger.Log(event)

	storeMu.RLock()
	s := defaultStore
	storeMu.RUnlock()
	if s == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Save(ctx, event); err != nil {
		logger.Named("audit").Warnf("failed to persist %s event: %v", event.MessageID(), err)
	}
}
