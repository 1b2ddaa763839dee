// Package progress owns the learner's progress record. A Store applies each
// named mutation to the last committed record and persists the result before
// the new state becomes visible.
package progress

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"vedaverse/backend/metrics"
	"vedaverse/backend/models"
	"vedaverse/backend/storage"
)

const (
	DefaultKey           = "vedaverse-progress"
	DefaultLessonMinutes = 15

	// DateLayout is the calendar-date form of lastStudyDate.
	DateLayout = "2006-01-02"
)

var (
	ErrNegativePoints = errors.New("points must not be negative")
	ErrNegativeScore  = errors.New("quiz score must not be negative")
	ErrNegativeValue  = errors.New("progress counters must not be negative")

	// ErrQuizHistoryRewrite is returned when an update would drop or change
	// recorded quiz scores. Histories may only grow.
	ErrQuizHistoryRewrite = errors.New("quiz history may only be appended to")
)

type Store struct {
	mu            sync.Mutex
	storage       storage.Storage
	key           string
	now           func() time.Time
	lessonMinutes int
	logger        *zap.Logger

	record models.ProgressRecord
}

type Option func(*Store)

// WithKey sets the storage key the record is kept under.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithClock replaces time.Now. The clock's location decides what "today" is.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithLessonMinutes sets the study time credited per newly completed lesson.
func WithLessonMinutes(minutes int) Option {
	return func(s *Store) { s.lessonMinutes = minutes }
}

// New loads the record stored under the key. When nothing is stored the
// default record is written; when the stored blob cannot be decoded the
// default record is used in memory and the blob is left until the next
// mutation replaces it. Only storage failures are returned.
func New(ctx context.Context, st storage.Storage, opts ...Option) (*Store, error) {
	s := &Store{
		storage:       st,
		key:           DefaultKey,
		now:           time.Now,
		lessonMinutes: DefaultLessonMinutes,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	raw, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("load progress %q: %w", s.key, err)
	}

	if !ok {
		s.record = models.DefaultProgress()
		data, err := Encode(s.record)
		if err != nil {
			return err
		}
		if err := s.storage.Set(ctx, s.key, data); err != nil {
			return fmt.Errorf("write default progress %q: %w", s.key, err)
		}
		s.logger.Info("created default progress", zap.String("key", s.key))
	} else if record, err := Decode(raw); err != nil {
		s.logger.Warn("stored progress is malformed, falling back to defaults",
			zap.String("key", s.key), zap.Error(err))
		s.record = models.DefaultProgress()
	} else {
		s.record = record
	}

	metrics.ObserveRecord(s.record.TotalScore, s.record.LearningStreak)
	return nil
}

// Progress returns a copy of the committed record.
func (s *Store) Progress() models.ProgressRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.Clone()
}

// Overview returns statistics derived from the committed record.
func (s *Store) Overview() models.ProgressOverview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summarize(s.record, s.now())
}

// mutate applies fn to a copy of the committed record, persists the copy and
// only then commits it. A rejected or unpersisted mutation leaves the
// committed record unchanged.
func (s *Store) mutate(ctx context.Context, op string, fn func(p *models.ProgressRecord) error) (models.ProgressRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.record.Clone()
	if err := fn(&next); err != nil {
		metrics.ObserveMutation(op, metrics.StatusRejected)
		return models.ProgressRecord{}, err
	}

	data, err := Encode(next)
	if err != nil {
		metrics.ObserveMutation(op, metrics.StatusFailure)
		return models.ProgressRecord{}, err
	}
	if err := s.storage.Set(ctx, s.key, data); err != nil {
		metrics.ObserveMutation(op, metrics.StatusFailure)
		s.logger.Error("failed to persist progress", zap.String("op", op), zap.Error(err))
		return models.ProgressRecord{}, fmt.Errorf("persist progress after %s: %w", op, err)
	}

	s.record = next
	metrics.ObserveMutation(op, metrics.StatusSuccess)
	metrics.ObserveRecord(next.TotalScore, next.LearningStreak)
	s.logger.Debug("progress updated", zap.String("op", op))
	return next.Clone(), nil
}

// AddScore adds points to the total score.
func (s *Store) AddScore(ctx context.Context, points int) (models.ProgressRecord, error) {
	return s.mutate(ctx, "add_score", func(p *models.ProgressRecord) error {
		if points < 0 {
			return fmt.Errorf("%w: %d", ErrNegativePoints, points)
		}
		p.TotalScore = saturatingAdd(p.TotalScore, points)
		return nil
	})
}

// CompleteLesson marks lessonID as completed. Study time is credited only the
// first time a lesson is completed.
func (s *Store) CompleteLesson(ctx context.Context, lessonID string) (models.ProgressRecord, error) {
	return s.mutate(ctx, "complete_lesson", func(p *models.ProgressRecord) error {
		if p.HasLesson(lessonID) {
			return nil
		}
		p.CompletedLessons = append(p.CompletedLessons, lessonID)
		p.StudyTime = saturatingAdd(p.StudyTime, s.lessonMinutes)
		return nil
	})
}

// UpdateQuizScore appends score to the category's history and adds it to the
// total score.
func (s *Store) UpdateQuizScore(ctx context.Context, category string, score int) (models.ProgressRecord, error) {
	return s.mutate(ctx, "update_quiz_score", func(p *models.ProgressRecord) error {
		return recordQuizScore(p, category, score)
	})
}

// CompleteQuiz records a finished quiz and today's study activity as one
// mutation, so either both are persisted or neither is.
func (s *Store) CompleteQuiz(ctx context.Context, category string, score int) (models.ProgressRecord, error) {
	now := s.now()
	return s.mutate(ctx, "complete_quiz", func(p *models.ProgressRecord) error {
		if err := recordQuizScore(p, category, score); err != nil {
			return err
		}
		advanceStreak(p, now)
		return nil
	})
}

func recordQuizScore(p *models.ProgressRecord, category string, score int) error {
	if score < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeScore, score)
	}
	p.QuizScores[category] = append(p.QuizScores[category], score)
	p.TotalScore = saturatingAdd(p.TotalScore, score)
	return nil
}

// saturatingAdd adds two non-negative values, stopping at math.MaxInt.
func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// UpdateStreak records study activity for today.
func (s *Store) UpdateStreak(ctx context.Context) (models.ProgressRecord, error) {
	now := s.now()
	return s.mutate(ctx, "update_streak", func(p *models.ProgressRecord) error {
		advanceStreak(p, now)
		return nil
	})
}

// advanceStreak is a no-op when p was already studied on now's date. A study
// day directly after the previous one extends the streak; any gap, or no
// previous day at all, restarts it at 1.
func advanceStreak(p *models.ProgressRecord, now time.Time) {
	today := now.Format(DateLayout)
	if p.LastStudyDate != nil && *p.LastStudyDate == today {
		return
	}
	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)
	if p.LastStudyDate != nil && *p.LastStudyDate == yesterday {
		p.LearningStreak++
	} else {
		p.LearningStreak = 1
	}
	p.LastStudyDate = &today
}

// SetRoadmap makes roadmapID current, starting its progress at 0 unless it
// already has some.
func (s *Store) SetRoadmap(ctx context.Context, roadmapID string) (models.ProgressRecord, error) {
	return s.mutate(ctx, "set_roadmap", func(p *models.ProgressRecord) error {
		p.CurrentRoadmap = &roadmapID
		if _, ok := p.RoadmapProgress[roadmapID]; !ok {
			p.RoadmapProgress[roadmapID] = 0
		}
		return nil
	})
}

// UpdateRoadmapProgress overwrites the roadmap's percentage, clamped to [0,100].
func (s *Store) UpdateRoadmapProgress(ctx context.Context, roadmapID string, percent int) (models.ProgressRecord, error) {
	return s.mutate(ctx, "update_roadmap_progress", func(p *models.ProgressRecord) error {
		p.RoadmapProgress[roadmapID] = models.ClampPercent(percent)
		return nil
	})
}

func (s *Store) AddAchievement(ctx context.Context, achievementID string) (models.ProgressRecord, error) {
	return s.mutate(ctx, "add_achievement", func(p *models.ProgressRecord) error {
		if !slices.Contains(p.Achievements, achievementID) {
			p.Achievements = append(p.Achievements, achievementID)
		}
		return nil
	})
}

// UpdateProgress merges the supplied fields into the record. Counters may not
// be set below zero, and a supplied quizScores map must keep every recorded
// score of every category as a prefix. Set and percentage fields are
// normalized after the merge.
func (s *Store) UpdateProgress(ctx context.Context, update models.ProgressUpdate) (models.ProgressRecord, error) {
	return s.mutate(ctx, "update_progress", func(p *models.ProgressRecord) error {
		if update.HasNegativeCounter() {
			return ErrNegativeValue
		}
		if update.QuizScores != nil {
			if !update.ExtendsQuizHistory(p.QuizScores) {
				return ErrQuizHistoryRewrite
			}
			if update.HasNegativeQuizScore() {
				return ErrNegativeScore
			}
		}
		update.Apply(p)
		p.Normalize()
		return nil
	})
}

// ReadText counts one more text explored and records today's study activity
// in a single mutation.
func (s *Store) ReadText(ctx context.Context) (models.ProgressRecord, error) {
	now := s.now()
	return s.mutate(ctx, "read_text", func(p *models.ProgressRecord) error {
		advanceStreak(p, now)
		p.TextsExplored = saturatingAdd(p.TextsExplored, 1)
		return nil
	})
}

// ExploreText counts one more text explored.
func (s *Store) ExploreText(ctx context.Context) (models.ProgressRecord, error) {
	return s.mutate(ctx, "explore_text", func(p *models.ProgressRecord) error {
		p.TextsExplored = saturatingAdd(p.TextsExplored, 1)
		return nil
	})
}

func (s *Store) AddBookmark(ctx context.Context, bookmarkID string) (models.ProgressRecord, error) {
	return s.mutate(ctx, "add_bookmark", func(p *models.ProgressRecord) error {
		if !slices.Contains(p.Bookmarks, bookmarkID) {
			p.Bookmarks = append(p.Bookmarks, bookmarkID)
		}
		return nil
	})
}

func (s *Store) RemoveBookmark(ctx context.Context, bookmarkID string) (models.ProgressRecord, error) {
	return s.mutate(ctx, "remove_bookmark", func(p *models.ProgressRecord) error {
		p.Bookmarks = slices.DeleteFunc(p.Bookmarks, func(id string) bool { return id == bookmarkID })
		return nil
	})
}

// SaveNote stores the note for textID. An empty note removes it.
func (s *Store) SaveNote(ctx context.Context, textID, note string) (models.ProgressRecord, error) {
	return s.mutate(ctx, "save_note", func(p *models.ProgressRecord) error {
		if note == "" {
			delete(p.Notes, textID)
			return nil
		}
		p.Notes[textID] = note
		return nil
	})
}

// Reset replaces the record with the default one.
func (s *Store) Reset(ctx context.Context) (models.ProgressRecord, error) {
	return s.mutate(ctx, "reset", func(p *models.ProgressRecord) error {
		*p = models.DefaultProgress()
		return nil
	})
}
