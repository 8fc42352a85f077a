package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kirubha-07/elix-career-advisor/internal/auth"
	"github.com/kirubha-07/elix-career-advisor/internal/dataset"
	"github.com/kirubha-07/elix-career-advisor/internal/session"
)

const (
	AnswerEmptyQuery = "Please send a Student ID, Name, or skill."
	AnswerNoMatch    = "I couldn’t find your profile. Please tell me your Student ID, Name, or Skills."
)

const (
	LoginOK    = "ok"
	LoginGuest = "guest"
	LoginError = "error"
)

type LoginResult struct {
	Status    string `json:"status"`
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message"`
	Token     string `json:"token,omitempty"`
}

// AskResult carries insights and the session id only when a profile matched.
type AskResult struct {
	Answer    string    `json:"answer"`
	Insights  *Insights `json:"insights,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
}

type Service struct {
	data      *dataset.Dataset
	sessions  *session.Store
	creds     *auth.Credentials
	jwtSecret string
	jwtTTL    time.Duration
}

func NewService(data *dataset.Dataset, sessions *session.Store, creds *auth.Credentials, jwtSecret string, jwtTTL time.Duration) *Service {
	if jwtTTL <= 0 {
		jwtTTL = 24 * time.Hour
	}
	return &Service{data: data, sessions: sessions, creds: creds, jwtSecret: jwtSecret, jwtTTL: jwtTTL}
}

// Login starts a guest session when either field is blank. Valid
// credentials reuse the username as session id, so repeated logins share
// one history.
func (s *Service) Login(ctx context.Context, username, password string) (LoginResult, error) {
	if username == "" || password == "" {
		sid := s.sessions.Start("")
		slog.InfoContext(ctx, "guest session started", "session_id", sid)
		return LoginResult{Status: LoginGuest, SessionID: sid, Message: "Guest session started"}, nil
	}

	if !s.creds.Verify(username, password) {
		slog.InfoContext(ctx, "login rejected", "username", username)
		return LoginResult{Status: LoginError, Message: "Invalid credentials"}, nil
	}

	token, err := auth.SignJWT(username, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return LoginResult{}, fmt.Errorf("sign token: %w", err)
	}
	s.sessions.Bind(username, username)
	slog.InfoContext(ctx, "user logged in", "username", username)
	return LoginResult{
		Status:    LoginOK,
		SessionID: username,
		Message:   "Welcome " + username,
		Token:     token,
	}, nil
}

// Ask records the query in the session, resolves a student and answers
// with derived insights.
func (s *Service) Ask(ctx context.Context, query, sessionID string) AskResult {
	query = strings.TrimSpace(query)
	sessionID = s.sessions.Start(sessionID)
	s.sessions.Append(sessionID, session.SenderUser, query)

	if query == "" {
		return AskResult{Answer: AnswerEmptyQuery}
	}

	rec, ok := Resolve(s.data.Records(), query)
	if !ok {
		slog.DebugContext(ctx, "no profile matched", "session_id", sessionID, "query", query)
		s.sessions.Append(sessionID, session.SenderSystem, AnswerNoMatch)
		return AskResult{Answer: AnswerNoMatch}
	}

	ins := BuildInsights(*rec)
	s.sessions.Append(sessionID, session.SenderSystem, ins.SummaryText)
	slog.DebugContext(ctx, "profile matched", "session_id", sessionID, "student_id", rec.ID)
	return AskResult{Answer: ins.SummaryText, Insights: &ins, SessionID: sessionID}
}

// Student looks a student up by exact id.
func (s *Service) Student(id string) (dataset.StudentRecord, error) {
	return s.data.ByID(id)
}

func (s *Service) History(sessionID string) (session.Session, bool) {
	return s.sessions.Get(sessionID)
}
