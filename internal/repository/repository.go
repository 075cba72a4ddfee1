package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/pathiram/backend/internal/model"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no row matches.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique column already holds the value.
	ErrDuplicate = errors.New("duplicate record")
	// ErrMissingTable is returned when the backing table has not been created.
	ErrMissingTable = errors.New("table does not exist")
)

// ListFilter narrows a document listing. Query matches the number, the
// title and both party names.
type ListFilter struct {
	Type   model.DocumentType
	Query  string
	Offset int
	Limit  int
}

// DocumentRepository stores saved documents.
type DocumentRepository interface {
	Create(ctx context.Context, rec *model.DocumentRecord) error
	Get(ctx context.Context, id uint) (*model.DocumentRecord, error)
	GetByNumber(ctx context.Context, number string) (*model.DocumentRecord, error)
	// List returns one page of matches plus the total match count.
	List(ctx context.Context, filter ListFilter) ([]model.DocumentRecord, int64, error)
	Save(ctx context.Context, rec *model.DocumentRecord) error
	Delete(ctx context.Context, id uint) error
}

// LocationRepository serves the state, district, taluk and village tables.
type LocationRepository interface {
	CountStates(ctx context.Context) (int64, error)
	// CreateStates inserts states together with their nested districts,
	// taluks and villages.
	CreateStates(ctx context.Context, states []model.State) error
	States(ctx context.Context) ([]model.State, error)
	Districts(ctx context.Context, stateID uint) ([]model.District, error)
	Taluks(ctx context.Context, districtID uint) ([]model.Taluk, error)
	Villages(ctx context.Context, talukID uint) ([]model.Village, error)
}

// translate maps driver errors onto the package sentinels. Matching on the
// message covers sqlite, MySQL and PostgreSQL without error translation
// being enabled on the connection.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	msg := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(msg, "unique constraint"),
		strings.Contains(msg, "duplicate entry"),
		strings.Contains(msg, "duplicate key"):
		return errors.Join(ErrDuplicate, err)
	case IsMissingTable(err):
		return errors.Join(ErrMissingTable, err)
	}
	return err
}

// IsMissingTable reports whether err says the queried table does not exist.
func IsMissingTable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrMissingTable) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no such table") ||
		strings.Contains(msg, "doesn't exist") ||
		(strings.Contains(msg, "relation") && strings.Contains(msg, "does not exist"))
}
