// Package session keeps per-conversation chat history in memory.
//
// Sessions live for the life of the process: there is no eviction, TTL or
// persistence. Every operation takes the store mutex, so concurrent /ask
// calls on one session never lose an append.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const GuestUser = "guest"

type Sender string

const (
	SenderUser   Sender = "user"
	SenderSystem Sender = "system"
)

type Entry struct {
	Sender    Sender    `json:"sender"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type Session struct {
	ID      string  `json:"session_id"`
	User    string  `json:"user"`
	History []Entry `json:"history"`
}

type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session), now: time.Now}
}

// NewID returns a fresh random session identifier.
func NewID() string {
	return uuid.NewString()
}

// Start makes sure a session exists and returns its id. A blank id gets a
// freshly generated one.
func (s *Store) Start(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		id = NewID()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreate(id)
	return id
}

// Bind marks the session as belonging to user, creating it if needed.
// Existing history is kept.
func (s *Store) Bind(id, user string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreate(id).User = user
}

// Append adds a message to the session history, creating a guest session
// for unknown ids.
func (s *Store) Append(id string, sender Sender, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.getOrCreate(id)
	sess.History = append(sess.History, Entry{Sender: sender, Message: message, CreatedAt: s.now()})
}

// Get returns a snapshot of the session; the history slice is a copy.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	out := *sess
	out.History = append([]Entry{}, sess.History...)
	return out, true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// callers hold s.mu
func (s *Store) getOrCreate(id string) *Session {
	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{ID: id, User: GuestUser, History: []Entry{}}
		s.sessions[id] = sess
	}
	return sess
}
