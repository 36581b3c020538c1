package pg

import (
	"database/sql"
	"encoding/json"
	"errors"

	internal_errors "github.com/bulletin-dev/bulletin/shared/errors"

	"github.com/bulletin-dev/bulletin/shared/domain"
)

// Bulletins are stored as a jsonb document plus the metadata columns the
// list view needs. The document keeps its own copy of the metadata; reads
// overwrite it from the columns so the columns stay authoritative.

func (s *Storage) CreateBulletin(b *domain.Bulletin) (domain.BulletinId, error) {
	document, err := json.Marshal(b)
	if err != nil {
		return 0, err
	}

	var id domain.BulletinId
	err = s.db.QueryRow(
		"INSERT INTO bulletins(bulletin_date, church_name, document) VALUES($1, $2, $3) RETURNING id",
		b.Date, b.ChurchName, document,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Storage) GetBulletin(id domain.BulletinId) (*domain.Bulletin, error) {
	var document []byte
	var meta domain.BulletinMetadata
	err := s.db.QueryRow(
		"SELECT id, bulletin_date, church_name, document, created, updated FROM bulletins WHERE id = $1",
		id,
	).Scan(&meta.Id, &meta.Date, &meta.ChurchName, &document, &meta.CreatedAt, &meta.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &internal_errors.ErrorWithStatusCode{Message: "Bulletin not found", StatusCode: 404}
		}
		return nil, err
	}

	var b domain.Bulletin
	if err := json.Unmarshal(document, &b); err != nil {
		return nil, err
	}
	b.BulletinMetadata = meta
	return &b, nil
}

func (s *Storage) GetAllBulletins() ([]domain.BulletinMetadata, error) {
	rows, err := s.db.Query(
		"SELECT id, bulletin_date, church_name, created, updated FROM bulletins ORDER BY bulletin_date DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bulletins := []domain.BulletinMetadata{}
	for rows.Next() {
		var m domain.BulletinMetadata
		if err := rows.Scan(&m.Id, &m.Date, &m.ChurchName, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		bulletins = append(bulletins, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bulletins, nil
}

func (s *Storage) UpdateBulletin(b *domain.Bulletin) error {
	document, err := json.Marshal(b)
	if err != nil {
		return err
	}

	result, err := s.db.Exec(
		"UPDATE bulletins SET bulletin_date = $1, church_name = $2, document = $3, updated = now() WHERE id = $4",
		b.Date, b.ChurchName, document, b.Id,
	)
	if err != nil {
		return err
	}
	updated, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if updated == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "Bulletin not found", StatusCode: 404}
	}
	return nil
}

func (s *Storage) DeleteBulletin(id domain.BulletinId) error {
	result, err := s.db.Exec("DELETE FROM bulletins WHERE id = $1", id)
	if err != nil {
		return err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "Bulletin not found", StatusCode: 404}
	}
	return nil
}
