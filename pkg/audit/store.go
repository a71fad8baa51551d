package audit

import (
	"context"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/metadata-exchange/pkg/model"
)

// Message is a persisted audit event.
type Message struct {
	ID        int64            `gorm:"primaryKey" json:"id"`
	Facility  int              `json:"facility"`
	Severity  int              `json:"severity"`
	Timestamp time.Time        `json:"timestamp"`
	Hostname  string           `json:"hostname"`
	Appname   string           `json:"appname"`
	Procid    string           `json:"procid"`
	Msgid     string           `json:"msgid"`
	Sdata     model.Properties `gorm:"type:jsonb" json:"sdata"`
	Message   string           `json:"message"`
}

func (Message) TableName() string {
	return "messages"
}

// Store persists audit events in the messages table of the repository
// database.
type Store struct {
	db       *gorm.DB
	hostname string
	pid      string
	now      func() time.Time
}

// NewStore returns a Store on db. A nil db yields a store that drops
// everything.
func NewStore(db *gorm.DB) *Store {
	hostname, _ := os.Hostname()
	return &Store{
		db:       db,
		hostname: hostname,
		pid:      strconv.Itoa(os.Getpid()),
		now:      time.Now,
	}
}

// Save persists event.
func (s *Store) Save(ctx context.Context, event Event) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(s.message(event)).Error
}

func (s *Store) message(event Event) *Message {
	sdata := model.Properties{}
	for sdid, params := range event.StructuredData() {
		values := make(map[string]any, len(params))
		for k, v := range params {
			values[k] = v
		}
		sdata[sdid] = values
	}

	return &Message{
		Facility:  event.Facility(),
		Severity:  int(event.Severity()),
		Timestamp: s.now().UTC(),
		Hostname:  s.hostname,
		Appname:   appName,
		Procid:    s.pid,
		Msgid:     event.MessageID(),
		Sdata:     sdata,
		Message:   event.Message(),
	}
}

// Recent returns up to limit messages, newest first. A non-empty msgid
// restricts the result to one kind of event.
func (s *Store) Recent(ctx context.Context, msgid string, limit int) ([]Message, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	q := s.db.WithContext(ctx).Order("timestamp DESC").Order("id DESC")
	if msgid != "" {
		q = q.Where("msgid = ?", msgid)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var messages []Message
	if err := q.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
