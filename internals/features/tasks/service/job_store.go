package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound = errors.New("job not found")
	ErrUnknownJob  = errors.New("unknown job name")
)

// JobStatus adalah snapshot best-effort dari job di queue
type JobStatus struct {
	Progress int  `json:"progress"`
	Done     bool `json:"done"`
}

// JobStore mengabstraksi queue eksternal. Core hanya butuh enqueue
// (fire-and-forget, langsung balik job id) dan poll status.
// Teknologi broker konkret bisa ditukar tanpa menyentuh core.
type JobStore interface {
	Enqueue(name string, kwargs map[string]any) (string, error)
	FetchStatus(jobID string) (JobStatus, error)
}

// JobFunc adalah badan job. report dipanggil utk update progress 0..100.
type JobFunc func(ctx context.Context, report func(int), kwargs map[string]any) error

type jobState struct {
	progress int
	done     bool
}

// InProcessJobStore menjalankan job sebagai goroutine di proses ini.
// Implementasi default JobStore; state progress hanya di memori.
type InProcessJobStore struct {
	mu         sync.RWMutex
	registry   map[string]JobFunc
	jobs       map[string]*jobState
	onComplete func(jobID string)
}

func NewInProcessJobStore() *InProcessJobStore {
	return &InProcessJobStore{
		registry: make(map[string]JobFunc),
		jobs:     make(map[string]*jobState),
	}
}

// Register mendaftarkan job berdasarkan nama
func (s *InProcessJobStore) Register(name string, fn JobFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry[name] = fn
}

// OnComplete dipanggil setiap job selesai (dipakai utk menandai
// record tasks complete=true).
func (s *InProcessJobStore) OnComplete(fn func(jobID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onComplete = fn
}

func (s *InProcessJobStore) Enqueue(name string, kwargs map[string]any) (string, error) {
	s.mu.Lock()
	fn, ok := s.registry[name]
	if !ok {
		s.mu.Unlock()
		return "", ErrUnknownJob
	}
	jobID := uuid.NewString()
	state := &jobState{}
	s.jobs[jobID] = state
	done := s.onComplete
	s.mu.Unlock()

	go func() {
		report := func(p int) {
			if p < 0 {
				p = 0
			}
			if p > 100 {
				p = 100
			}
			s.mu.Lock()
			state.progress = p
			s.mu.Unlock()
		}
		// error job tidak diangkat ke caller; enqueue itu fire-and-forget
		_ = fn(context.Background(), report, kwargs)
		s.mu.Lock()
		state.progress = 100
		state.done = true
		s.mu.Unlock()
		if done != nil {
			done(jobID)
		}
	}()

	return jobID, nil
}

func (s *InProcessJobStore) FetchStatus(jobID string) (JobStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.jobs[jobID]
	if !ok {
		return JobStatus{}, ErrJobNotFound
	}
	return JobStatus{Progress: state.progress, Done: state.done}, nil
}
