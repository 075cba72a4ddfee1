package repository

import (
	"context"
	"strings"

	"github.com/pathiram/backend/internal/model"
	"gorm.io/gorm"
)

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, rec *model.DocumentRecord) error {
	return translate(r.db.WithContext(ctx).Create(rec).Error)
}

func (r *documentRepository) Get(ctx context.Context, id uint) (*model.DocumentRecord, error) {
	var rec model.DocumentRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

func (r *documentRepository) GetByNumber(ctx context.Context, number string) (*model.DocumentRecord, error) {
	var rec model.DocumentRecord
	if err := r.db.WithContext(ctx).Where("doc_number = ?", number).First(&rec).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

func (r *documentRepository) List(ctx context.Context, filter ListFilter) ([]model.DocumentRecord, int64, error) {
	filtered := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&model.DocumentRecord{})
		if filter.Type != "" {
			query = query.Where("type = ?", filter.Type)
		}
		if filter.Query != "" {
			like := "%" + escapeLike(filter.Query) + "%"
			query = query.Where("doc_number LIKE ? ESCAPE '!' OR title LIKE ? ESCAPE '!' OR party_a LIKE ? ESCAPE '!' OR party_b LIKE ? ESCAPE '!'", like, like, like, like)
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var recs []model.DocumentRecord
	page := filtered().Order("created_at DESC").Order("id DESC").Offset(filter.Offset)
	if filter.Limit > 0 {
		page = page.Limit(filter.Limit)
	}
	if err := page.Find(&recs).Error; err != nil {
		return nil, 0, translate(err)
	}
	return recs, total, nil
}

func (r *documentRepository) Save(ctx context.Context, rec *model.DocumentRecord) error {
	return translate(r.db.WithContext(ctx).Save(rec).Error)
}

func (r *documentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.DocumentRecord{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// escapeLike makes % and _ in a search term match literally. The escape is
// '!': backslash is itself an escape in MySQL string literals.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
