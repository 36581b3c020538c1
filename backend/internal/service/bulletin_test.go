package service

import (
	"errors"
	"testing"
	"time"

	shared_errors "github.com/bulletin-dev/bulletin/shared/errors"

	"github.com/bulletin-dev/bulletin/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockBulletinStorage mocks the BulletinStorage interface.
type MockBulletinStorage struct {
	createFunc func(b *domain.Bulletin) (domain.BulletinId, error)
	getFunc    func(id domain.BulletinId) (*domain.Bulletin, error)
	getAllFunc func() ([]domain.BulletinMetadata, error)
	updateFunc func(b *domain.Bulletin) error
	deleteFunc func(id domain.BulletinId) error
}

func (m *MockBulletinStorage) CreateBulletin(b *domain.Bulletin) (domain.BulletinId, error) {
	if m.createFunc != nil {
		return m.createFunc(b)
	}
	return 1, nil
}

func (m *MockBulletinStorage) GetBulletin(id domain.BulletinId) (*domain.Bulletin, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return nil, nil
}

func (m *MockBulletinStorage) GetAllBulletins() ([]domain.BulletinMetadata, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc()
	}
	return nil, nil
}

func (m *MockBulletinStorage) UpdateBulletin(b *domain.Bulletin) error {
	if m.updateFunc != nil {
		return m.updateFunc(b)
	}
	return nil
}

func (m *MockBulletinStorage) DeleteBulletin(id domain.BulletinId) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

// MockValidator mocks the DraftValidator interface.
type MockValidator struct {
	issues []domain.ValidationIssue
}

func (m *MockValidator) Validate(b *domain.Bulletin) []domain.ValidationIssue {
	return m.issues
}

// noopSanitizer keeps service tests independent of bluemonday behavior.
type noopSanitizer struct{}

func (noopSanitizer) Sanitize(b *domain.Bulletin) {}

func creationData() domain.BulletinCreationData {
	return domain.BulletinCreationData{
		Date:           time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC),
		ChurchName:     "Hope Church",
		WelcomeMessage: "Welcome",
	}
}

func TestBulletinCreate(t *testing.T) {
	t.Run("CleanDraftIsSaved", func(t *testing.T) {
		var stored *domain.Bulletin
		storage := &MockBulletinStorage{
			createFunc: func(b *domain.Bulletin) (domain.BulletinId, error) {
				stored = b
				return 42, nil
			},
		}
		s := NewBulletin(storage, &MockValidator{}, noopSanitizer{})

		b, issues, err := s.Create(creationData())
		require.NoError(t, err)
		assert.Empty(t, issues)
		assert.Equal(t, domain.BulletinId(42), b.Id)
		assert.Equal(t, "Hope Church", stored.ChurchName)
	})

	t.Run("WarningsDoNotBlockSave", func(t *testing.T) {
		warnings := []domain.ValidationIssue{
			{Field: "date", Message: "Bulletin date is in the past", Severity: domain.SeverityWarning},
		}
		s := NewBulletin(&MockBulletinStorage{}, &MockValidator{issues: warnings}, noopSanitizer{})

		b, issues, err := s.Create(creationData())
		require.NoError(t, err)
		assert.NotNil(t, b)
		assert.Equal(t, warnings, issues)
	})

	t.Run("ErrorsBlockSave", func(t *testing.T) {
		issues := []domain.ValidationIssue{
			{Field: "church_name", Message: "Church name is required", Severity: domain.SeverityError},
		}
		called := false
		storage := &MockBulletinStorage{
			createFunc: func(b *domain.Bulletin) (domain.BulletinId, error) {
				called = true
				return 1, nil
			},
		}
		s := NewBulletin(storage, &MockValidator{issues: issues}, noopSanitizer{})

		b, got, err := s.Create(creationData())
		require.Error(t, err)
		assert.Nil(t, b)
		assert.Equal(t, issues, got)
		assert.False(t, called, "storage must not be touched when errors block the save")

		e, ok := err.(*shared_errors.ErrorWithStatusCode)
		require.True(t, ok)
		assert.Equal(t, 422, e.StatusCode)
	})

	t.Run("StorageError", func(t *testing.T) {
		storage := &MockBulletinStorage{
			createFunc: func(b *domain.Bulletin) (domain.BulletinId, error) {
				return 0, errors.New("db down")
			},
		}
		s := NewBulletin(storage, &MockValidator{}, noopSanitizer{})

		_, _, err := s.Create(creationData())
		assert.Error(t, err)
	})
}

func TestBulletinUpdate(t *testing.T) {
	t.Run("ErrorsBlockUpdate", func(t *testing.T) {
		issues := []domain.ValidationIssue{
			{Field: "services", Message: "Missing required service: first service", Severity: domain.SeverityError},
		}
		s := NewBulletin(&MockBulletinStorage{}, &MockValidator{issues: issues}, noopSanitizer{})

		got, err := s.Update(&domain.Bulletin{})
		require.Error(t, err)
		assert.Equal(t, issues, got)
	})

	t.Run("CleanUpdatePersists", func(t *testing.T) {
		updated := false
		storage := &MockBulletinStorage{
			updateFunc: func(b *domain.Bulletin) error {
				updated = true
				return nil
			},
		}
		s := NewBulletin(storage, &MockValidator{}, noopSanitizer{})

		issues, err := s.Update(&domain.Bulletin{})
		require.NoError(t, err)
		assert.Empty(t, issues)
		assert.True(t, updated)
	})
}

func TestBulletinCheckDoesNotTouchStorage(t *testing.T) {
	issues := []domain.ValidationIssue{
		{Field: "welcome_message", Message: "Welcome message is required", Severity: domain.SeverityError},
	}
	storage := &MockBulletinStorage{
		createFunc: func(b *domain.Bulletin) (domain.BulletinId, error) {
			t.Fatal("Check must not write")
			return 0, nil
		},
	}
	s := NewBulletin(storage, &MockValidator{issues: issues}, noopSanitizer{})

	assert.Equal(t, issues, s.Check(&domain.Bulletin{}))
}

func TestBulletinGetDelete(t *testing.T) {
	storage := &MockBulletinStorage{
		getFunc: func(id domain.BulletinId) (*domain.Bulletin, error) {
			if id == 404 {
				return nil, errors.New("not found")
			}
			return &domain.Bulletin{BulletinMetadata: domain.BulletinMetadata{Id: id}}, nil
		},
		deleteFunc: func(id domain.BulletinId) error {
			if id == 404 {
				return errors.New("not found")
			}
			return nil
		},
	}
	s := NewBulletin(storage, &MockValidator{}, noopSanitizer{})

	b, err := s.Get(7)
	require.NoError(t, err)
	assert.Equal(t, domain.BulletinId(7), b.Id)

	_, err = s.Get(404)
	assert.Error(t, err)

	assert.NoError(t, s.Delete(7))
	assert.Error(t, s.Delete(404))
}
