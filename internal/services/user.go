package services

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/thais-adelino/projeto-skin-track/internal/models"
	"github.com/thais-adelino/projeto-skin-track/internal/quiz"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// SaveUser stores one quiz result as a single insert. characteristics is kept
// as JSON text, matching the users table schema.
func (s *UserService) SaveUser(name, skinType string, characteristics quiz.WeightVector) (*models.User, error) {
	if name == "" || skinType == "" || len(characteristics) == 0 {
		return nil, errors.New("name, skin type, and characteristics are required")
	}

	encoded, err := json.Marshal(characteristics)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:            name,
		SkinType:        skinType,
		Characteristics: string(encoded),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SaveResult adapts SaveUser to the session's result sink, for callers living
// in the same process as the database.
func (s *UserService) SaveResult(ctx context.Context, name string, analysis quiz.Analysis) error {
	_, err := s.SaveUser(name, string(analysis.SkinType), analysis.Characteristics)
	return err
}

// GetStatistics aggregates stored results per skin type. Percentages are
// computed here rather than in SQL so sqlite and postgres round identically.
func (s *UserService) GetStatistics() (*Statistics, error) {
	var rows []SkinTypeStatistic
	err := s.db.Model(&models.User{}).
		Select("skin_type, COUNT(*) as count").
		Group("skin_type").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	var total int64
	for _, r := range rows {
		total += r.Count
	}

	for i := range rows {
		rows[i].Percentage = math.Round(float64(rows[i].Count)*100*100/float64(max(total, 1))) / 100
	}

	if rows == nil {
		rows = []SkinTypeStatistic{}
	}

	return &Statistics{Statistics: rows, Total: total}, nil
}

// ListUsers returns stored results newest first.
func (s *UserService) ListUsers() ([]UserSummary, error) {
	var users []UserSummary
	err := s.db.Model(&models.User{}).
		Select("id, name, skin_type, created_at").
		Order("created_at DESC, id DESC").
		Scan(&users).Error
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []UserSummary{}
	}
	return users, nil
}

type SkinTypeStatistic struct {
	SkinType   string  `json:"skin_type"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type Statistics struct {
	Statistics []SkinTypeStatistic `json:"statistics"`
	Total      int64               `json:"total"`
}

type UserSummary struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	SkinType  string    `json:"skin_type"`
	CreatedAt time.Time `json:"created_at"`
}
