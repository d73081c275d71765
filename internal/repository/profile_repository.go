package repository

import (
	"database/sql"
	"time"

	"github.com/carpetland/crm-backend/internal/model"
)

// ProfileRepositoryInterface defines methods used by services
type ProfileRepositoryInterface interface {
	GetByID(id int) (*model.Profile, error)
	GetByEmail(email string) (*model.Profile, error)
	Create(p *model.Profile) error
}

type ProfileRepository struct {
	DB *sql.DB
}

func (r *ProfileRepository) GetByID(id int) (*model.Profile, error) {
	query := `
        SELECT id, name, email, password_hash, created_at
        FROM profiles
        WHERE id = $1
    `
	var p model.Profile
	err := r.DB.QueryRow(query, id).Scan(&p.ID, &p.Name, &p.Email, &p.PasswordHash, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) GetByEmail(email string) (*model.Profile, error) {
	query := `
        SELECT id, name, email, password_hash, created_at
        FROM profiles
        WHERE email = $1
    `
	var p model.Profile
	err := r.DB.QueryRow(query, email).Scan(&p.ID, &p.Name, &p.Email, &p.PasswordHash, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) Create(p *model.Profile) error {
	p.CreatedAt = time.Now()
	query := `
        INSERT INTO profiles (name, email, password_hash, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	return r.DB.QueryRow(query, p.Name, p.Email, p.PasswordHash, p.CreatedAt).Scan(&p.ID)
}

var _ ProfileRepositoryInterface = (*ProfileRepository)(nil)
