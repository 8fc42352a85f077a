package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kirubha-07/elix-career-advisor/internal/dataset"
)

// Cache stores rendered documents. Implementations report a miss with
// ok=false and a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

type Document struct {
	Filename    string
	Path        string
	ContentType string
	Data        []byte
}

// Service renders career plans and writes them under dir. The file name
// comes from the student's name only, so two students sharing a name
// overwrite each other's file.
type Service struct {
	registry *Registry
	cache    Cache
	cacheTTL time.Duration
	dir      string
}

// NewService builds a report service. cache may be nil.
func NewService(registry *Registry, cache Cache, cacheTTL time.Duration, dir string) *Service {
	if dir == "" {
		dir = "."
	}
	return &Service{registry: registry, cache: cache, cacheTTL: cacheTTL, dir: dir}
}

// Filename is "<name with underscores>_career_plan<ext>".
func Filename(rec dataset.StudentRecord, ext string) string {
	return strings.ReplaceAll(displayName(rec), " ", "_") + "_career_plan" + ext
}

func cacheKey(format, studentID string) string {
	return "report:" + format + ":" + studentID
}

// Generate renders rec in format (pdf when blank), writes the file and
// returns its bytes.
func (s *Service) Generate(ctx context.Context, rec dataset.StudentRecord, format string) (*Document, error) {
	rd, err := s.registry.Get(format)
	if err != nil {
		return nil, err
	}
	format = strings.TrimPrefix(rd.Ext(), ".")

	data, err := s.render(ctx, rd, rec, format)
	if err != nil {
		return nil, err
	}

	name := Filename(rec, rd.Ext())
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	return &Document{Filename: name, Path: path, ContentType: rd.ContentType(), Data: data}, nil
}

func (s *Service) render(ctx context.Context, rd Renderer, rec dataset.StudentRecord, format string) ([]byte, error) {
	key := cacheKey(format, rec.ID)
	if s.cache != nil {
		data, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			slog.WarnContext(ctx, "report cache get failed", "key", key, "error", err)
		} else if ok {
			return data, nil
		}
	}

	var buf bytes.Buffer
	if err := rd.Render(&buf, rec); err != nil {
		return nil, fmt.Errorf("render %s for %s: %w", format, rec.ID, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, buf.Bytes(), s.cacheTTL); err != nil {
			slog.WarnContext(ctx, "report cache set failed", "key", key, "error", err)
		}
	}
	return buf.Bytes(), nil
}
