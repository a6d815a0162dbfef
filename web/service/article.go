package service

import (
	"github.com/gopress-cms/gopress/database/model"

	"gorm.io/gorm"
)

type ArticleService struct {
	db *gorm.DB
}

func NewArticleService(db *gorm.DB) *ArticleService {
	return &ArticleService{db: db}
}

// GetAll returns every article in storage order. An empty store yields
// an empty slice, not an error.
func (s *ArticleService) GetAll() ([]model.Article, error) {
	var articles []model.Article
	err := s.db.Find(&articles).Error
	return articles, err
}

// GetByID looks one article up by primary key. A missing id surfaces
// through database.IsNotFound.
func (s *ArticleService) GetByID(id int) (*model.Article, error) {
	var article model.Article
	if err := s.db.First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// Create persists a new article authored by the given username. The
// caller is responsible for validating title and body first.
func (s *ArticleService) Create(title, body, author string) (*model.Article, error) {
	article := &model.Article{
		Title:  title,
		Body:   body,
		Author: author,
	}
	if err := s.db.Create(article).Error; err != nil {
		return nil, err
	}
	return article, nil
}

// Update overwrites title and body in place. Author and id never change.
func (s *ArticleService) Update(id int, title, body string) error {
	return s.db.Model(model.Article{}).
		Where("id = ?", id).
		Updates(map[string]any{"title": title, "body": body}).
		Error
}

// Delete removes the article by id. Deleting a missing id is not an
// error.
func (s *ArticleService) Delete(id int) error {
	return s.db.Delete(&model.Article{}, id).Error
}
