package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// ErrUnknownDocumentType is returned for a type key outside DocumentTypes.
var ErrUnknownDocumentType = errors.New("unknown document type")

// DocumentType identifies one legal document template.
type DocumentType string

const (
	TypeReceipt   DocumentType = "receipt"   // mortgage loan receipt
	TypeAgreement DocumentType = "agreement" // sale agreement
	TypeRelease   DocumentType = "release"   // partition release deed
	TypeSale      DocumentType = "sale"      // sale deed
)

// DocumentTypes definition
var DocumentTypes = []struct {
	Type   DocumentType `json:"type"`
	Title  string       `json:"title"`
	Prefix string       `json:"prefix"`
}{
	{TypeReceipt, "அடமானக் கடன் ரசீது", "MLR"},
	{TypeAgreement, "கிரைய ஒப்பந்தப் பத்திரம்", "SAG"},
	{TypeRelease, "பாகப்பிரிவினை விடுதலைப் பத்திரம்", "PRD"},
	{TypeSale, "கிரையப் பத்திரம்", "SLD"},
}

// ParseDocumentType resolves a type key from a URL or request body.
func ParseDocumentType(s string) (DocumentType, error) {
	key := DocumentType(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range DocumentTypes {
		if t.Type == key {
			return key, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDocumentType, s)
}

// Title returns the Tamil heading printed at the top of the document.
func (t DocumentType) Title() string {
	for _, dt := range DocumentTypes {
		if dt.Type == t {
			return dt.Title
		}
	}
	return ""
}

// Prefix returns the document number prefix, e.g. MLR.
func (t DocumentType) Prefix() string {
	for _, dt := range DocumentTypes {
		if dt.Type == t {
			return dt.Prefix
		}
	}
	return "DOC"
}

// DocumentRecord is a saved field record plus its generated number.
type DocumentRecord struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	DocNumber string         `json:"doc_number" gorm:"size:32;uniqueIndex;not null"`
	Type      DocumentType   `json:"type" gorm:"size:20;index;not null"`
	Title     string         `json:"title" gorm:"size:255"`
	PartyA    string         `json:"party_a" gorm:"size:255;index"`
	PartyB    string         `json:"party_b" gorm:"size:255;index"`
	Fields    datatypes.JSON `json:"fields"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TableName pins the table name.
func (DocumentRecord) TableName() string {
	return "document_records"
}
