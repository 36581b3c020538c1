package service

import (
	"net/http"

	"github.com/bulletin-dev/bulletin/shared/domain"
	"github.com/bulletin-dev/bulletin/shared/errors"
)

type BulletinService interface {
	Create(data domain.BulletinCreationData) (*domain.Bulletin, []domain.ValidationIssue, error)
	Get(id domain.BulletinId) (*domain.Bulletin, error)
	GetAll() ([]domain.BulletinMetadata, error)
	Update(b *domain.Bulletin) ([]domain.ValidationIssue, error)
	Delete(id domain.BulletinId) error
	Check(b *domain.Bulletin) []domain.ValidationIssue
}

type Bulletin struct {
	storage   BulletinStorage
	validator DraftValidator
	sanitizer Sanitizer
}

type BulletinStorage interface {
	CreateBulletin(b *domain.Bulletin) (domain.BulletinId, error)
	GetBulletin(id domain.BulletinId) (*domain.Bulletin, error)
	GetAllBulletins() ([]domain.BulletinMetadata, error)
	UpdateBulletin(b *domain.Bulletin) error
	DeleteBulletin(id domain.BulletinId) error
}

// DraftValidator is the rules engine seam; rules.Validator satisfies it.
type DraftValidator interface {
	Validate(b *domain.Bulletin) []domain.ValidationIssue
}

type Sanitizer interface {
	Sanitize(b *domain.Bulletin)
}

func NewBulletin(storage BulletinStorage, validator DraftValidator, sanitizer Sanitizer) BulletinService {
	return &Bulletin{storage, validator, sanitizer}
}

// Create validates a new draft and persists it when no error-severity
// issues remain. The rules engine itself never blocks; the save-gating
// policy lives here. Warnings are returned alongside the saved bulletin.
func (s *Bulletin) Create(data domain.BulletinCreationData) (*domain.Bulletin, []domain.ValidationIssue, error) {
	b := &domain.Bulletin{
		BulletinMetadata: domain.BulletinMetadata{
			Date:       data.Date,
			ChurchName: data.ChurchName,
		},
		ChurchAddress:   data.ChurchAddress,
		WelcomeMessage:  data.WelcomeMessage,
		Services:        data.Services,
		Announcements:   data.Announcements,
		DutySchedule:    data.DutySchedule,
		FaithPrinciples: data.FaithPrinciples,
		Contacts:        data.Contacts,
	}
	s.sanitizer.Sanitize(b)

	issues := s.validator.Validate(b)
	if domain.HasErrors(issues) {
		return nil, issues, &errors.ErrorWithStatusCode{Message: "Bulletin has validation errors", StatusCode: http.StatusUnprocessableEntity}
	}

	id, err := s.storage.CreateBulletin(b)
	if err != nil {
		return nil, nil, err
	}
	b.Id = id
	return b, issues, nil
}

func (s *Bulletin) Get(id domain.BulletinId) (*domain.Bulletin, error) {
	return s.storage.GetBulletin(id)
}

func (s *Bulletin) GetAll() ([]domain.BulletinMetadata, error) {
	return s.storage.GetAllBulletins()
}

func (s *Bulletin) Update(b *domain.Bulletin) ([]domain.ValidationIssue, error) {
	s.sanitizer.Sanitize(b)

	issues := s.validator.Validate(b)
	if domain.HasErrors(issues) {
		return issues, &errors.ErrorWithStatusCode{Message: "Bulletin has validation errors", StatusCode: http.StatusUnprocessableEntity}
	}

	if err := s.storage.UpdateBulletin(b); err != nil {
		return nil, err
	}
	return issues, nil
}

func (s *Bulletin) Delete(id domain.BulletinId) error {
	return s.storage.DeleteBulletin(id)
}

// Check runs the rules engine without touching storage, for the editor's
// on-demand validation pass.
func (s *Bulletin) Check(b *domain.Bulletin) []domain.ValidationIssue {
	return s.validator.Validate(b)
}
