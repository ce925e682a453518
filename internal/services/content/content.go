// Package services содержит логику бизнес-уровня для выдачи учебных
// материалов с учётом ограничений бесплатного уровня.
package services

import (
	"errors"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/examprep-backend/internal/config"
	"github.com/magabrotheeeer/examprep-backend/internal/content"
	"github.com/magabrotheeeer/examprep-backend/internal/models"
)

// ErrUnknownSubject возвращается при запросе несуществующего предмета.
var ErrUnknownSubject = errors.New("unknown subject")

// ContentService выдает дневные материалы. Бесплатные пользователи
// получают усечённые наборы, платные видят всё целиком.
type ContentService struct {
	limits config.FreeTier
	log    *slog.Logger
}

// NewContentService создает новый экземпляр ContentService.
func NewContentService(limits config.FreeTier, log *slog.Logger) *ContentService {
	return &ContentService{
		limits: limits,
		log:    log,
	}
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func capQuestions(qs []models.Question, limit int, isPaid bool) (visible []models.Question, locked int) {
	if isPaid || len(qs) <= limit {
		return qs, 0
	}
	return qs[:limit], len(qs) - limit
}

// DailyQNA возвращает дневной набор вопросов по предмету. Бесплатный
// уровень видит не больше limits.QNALimit вопросов, остальные считаются
// заблокированными.
func (s *ContentService) DailyQNA(subject string, isPaid bool) (*models.QNASet, error) {
	title, ok := content.SubjectTitle(subject)
	if !ok {
		return nil, ErrUnknownSubject
	}

	qs, _ := content.QuestionsForSubject(subject)
	visible, locked := capQuestions(qs, s.limits.QNALimit, isPaid)

	return &models.QNASet{
		Date:      today(),
		Subject:   title,
		Total:     len(qs),
		Locked:    locked,
		Questions: visible,
	}, nil
}

// DailyTest возвращает дневной пробный тест.
func (s *ContentService) DailyTest(isPaid bool) *models.TestPaper {
	qs := content.TestQuestions()
	visible, locked := capQuestions(qs, s.limits.TestLimit, isPaid)

	return &models.TestPaper{
		Date:             today(),
		Title:            "Daily Mock Test",
		TimeLimitMinutes: 30,
		Total:            len(qs),
		Locked:           locked,
		Questions:        visible,
	}
}

// DailyGK возвращает дневной дайджест общих знаний. Каждый раздел
// дайджеста усечён до своего лимита бесплатного уровня.
func (s *ContentService) DailyGK(isPaid bool) *models.GKDigest {
	points := content.GKPoints()
	mcqs := content.GKMCQs()
	facts := content.QuickFacts()

	locked := 0
	if !isPaid {
		if len(points) > s.limits.GKPointLimit {
			locked += len(points) - s.limits.GKPointLimit
			points = points[:s.limits.GKPointLimit]
		}
		if len(mcqs) > s.limits.GKMCQLimit {
			locked += len(mcqs) - s.limits.GKMCQLimit
			mcqs = mcqs[:s.limits.GKMCQLimit]
		}
		if len(facts) > s.limits.GKFactLimit {
			locked += len(facts) - s.limits.GKFactLimit
			facts = facts[:s.limits.GKFactLimit]
		}
	}

	return &models.GKDigest{
		Date:       today(),
		Points:     points,
		MCQs:       mcqs,
		QuickFacts: facts,
		Locked:     locked,
	}
}

// Notices возвращает только активные объявления. Объявления видны всем
// авторизованным пользователям без ограничений уровня.
func (s *ContentService) Notices() []models.Notice {
	all := content.Notices()
	active := make([]models.Notice, 0, len(all))
	for _, n := range all {
		if n.IsActive {
			active = append(active, n)
		}
	}
	return active
}
