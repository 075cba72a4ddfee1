package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pathiram/backend/config"
	"github.com/pathiram/backend/internal/eventbus"
	"github.com/pathiram/backend/internal/model"
	"github.com/pathiram/backend/internal/pkg/docnumber"
	"github.com/pathiram/backend/internal/repository"
	"github.com/pathiram/backend/internal/service/composer"
	"github.com/pathiram/backend/internal/service/exporter"
	"gorm.io/datatypes"
	"k8s.io/klog/v2"
)

// numberAttempts bounds retries when a generated number is already taken.
const numberAttempts = 3

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// MissingTableMessage is shown instead of an error when the documents table
// has not been created yet.
const MissingTableMessage = "document storage is not set up yet; no saved documents to show"

// DocumentExporter renders a composed document in one format.
type DocumentExporter interface {
	Export(ctx context.Context, doc *composer.Document, format exporter.Format) (*exporter.Result, error)
}

type DocumentService struct {
	cfg      *config.Config
	docRepo  repository.DocumentRepository
	exporter DocumentExporter
	numbers  *docnumber.Generator
	bus      *eventbus.DocEventBus
}

func NewDocumentService(cfg *config.Config, docRepo repository.DocumentRepository, exp DocumentExporter, numbers *docnumber.Generator, bus *eventbus.DocEventBus) *DocumentService {
	return &DocumentService{
		cfg:      cfg,
		docRepo:  docRepo,
		exporter: exp,
		numbers:  numbers,
		bus:      bus,
	}
}

// Create validates record before anything is written, derives computed
// fields and stores it under a fresh document number.
func (s *DocumentService) Create(ctx context.Context, docType model.DocumentType, record model.FieldRecord) (*model.DocumentRecord, error) {
	fields, err := decodeValid(docType, record)
	if err != nil {
		return nil, err
	}
	rec, err := newDocumentRecord(fields)
	if err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		rec.DocNumber = s.numbers.Next(docType.Prefix())
		err = s.docRepo.Create(ctx, rec)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicate) || attempt >= numberAttempts {
			return nil, fmt.Errorf("save document: %w", err)
		}
		klog.Warningf("document number %s already taken, retrying (%d/%d)", rec.DocNumber, attempt, numberAttempts)
	}

	s.publish(ctx, eventbus.DocEvent{Type: eventbus.DocEventSaved, DocID: rec.ID, DocNumber: rec.DocNumber, DocType: string(docType)})
	return rec, nil
}

func (s *DocumentService) Get(ctx context.Context, id uint) (*model.DocumentRecord, error) {
	return s.docRepo.Get(ctx, id)
}

func (s *DocumentService) GetByNumber(ctx context.Context, number string) (*model.DocumentRecord, error) {
	return s.docRepo.GetByNumber(ctx, number)
}

// Update replaces the fields of a saved document. The type and number never
// change.
func (s *DocumentService) Update(ctx context.Context, id uint, record model.FieldRecord) (*model.DocumentRecord, error) {
	rec, err := s.docRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	fields, err := decodeValid(rec.Type, record)
	if err != nil {
		return nil, err
	}
	updated, err := newDocumentRecord(fields)
	if err != nil {
		return nil, err
	}
	rec.Title = updated.Title
	rec.PartyA = updated.PartyA
	rec.PartyB = updated.PartyB
	rec.Fields = updated.Fields
	rec.UpdatedAt = time.Now()
	if err := s.docRepo.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}

	s.publish(ctx, eventbus.DocEvent{Type: eventbus.DocEventUpdated, DocID: rec.ID, DocNumber: rec.DocNumber, DocType: string(rec.Type)})
	return rec, nil
}

func (s *DocumentService) Delete(ctx context.Context, id uint) error {
	if err := s.docRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, eventbus.DocEvent{Type: eventbus.DocEventDeleted, DocID: id})
	return nil
}

type ListFilter struct {
	Type     model.DocumentType
	Query    string
	Page     int
	PageSize int
}

type ListResult struct {
	Items    []model.DocumentRecord `json:"items"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
	Message  string                 `json:"message,omitempty"`
}

// List searches saved documents. A missing table is not an error: the
// result is empty and carries MissingTableMessage.
func (s *DocumentService) List(ctx context.Context, filter ListFilter) (*ListResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}
	result := &ListResult{Items: []model.DocumentRecord{}, Page: filter.Page, PageSize: filter.PageSize}

	items, total, err := s.docRepo.List(ctx, repository.ListFilter{
		Type:   filter.Type,
		Query:  filter.Query,
		Offset: (filter.Page - 1) * filter.PageSize,
		Limit:  filter.PageSize,
	})
	if err != nil {
		if repository.IsMissingTable(err) {
			klog.Warningf("list documents: %v", err)
			result.Message = MissingTableMessage
			return result, nil
		}
		return nil, fmt.Errorf("list documents: %w", err)
	}
	if items != nil {
		result.Items = items
	}
	result.Total = total
	return result, nil
}

// ExportFile is a finished export ready to be sent as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Export renders a saved document; the file is named after its number.
func (s *DocumentService) Export(ctx context.Context, id uint, format exporter.Format) (*ExportFile, error) {
	rec, err := s.docRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	record := model.FieldRecord{}
	if len(rec.Fields) > 0 {
		if err := json.Unmarshal(rec.Fields, &record); err != nil {
			return nil, fmt.Errorf("%w: stored fields of %s: %v", model.ErrInvalidFields, rec.DocNumber, err)
		}
	}
	_, doc, err := composeRecord(rec.Type, record)
	if err != nil {
		return nil, err
	}
	return s.export(ctx, doc, format, rec.ID, rec.DocNumber)
}

// ExportFields renders an unsaved record. It is not validated, so a draft
// can be printed.
func (s *DocumentService) ExportFields(ctx context.Context, docType model.DocumentType, record model.FieldRecord, format exporter.Format) (*ExportFile, error) {
	_, doc, err := composeRecord(docType, record)
	if err != nil {
		return nil, err
	}
	return s.export(ctx, doc, format, 0, string(docType))
}

func (s *DocumentService) export(ctx context.Context, doc *composer.Document, format exporter.Format, id uint, base string) (*ExportFile, error) {
	event := eventbus.DocEvent{
		RunID:     uuid.NewString(),
		DocID:     id,
		DocNumber: base,
		Format:    string(format),
	}
	if doc != nil {
		event.DocType = string(doc.Type)
	}

	res, err := s.exporter.Export(ctx, doc, format)
	if err != nil {
		event.Type = eventbus.DocEventExportFailed
		event.Err = err
		s.publish(ctx, event)
		return nil, err
	}

	event.Type = eventbus.DocEventExported
	event.Size = len(res.Data)
	s.publish(ctx, event)
	return &ExportFile{
		Filename:    res.Filename(base),
		ContentType: res.ContentType,
		Data:        res.Data,
	}, nil
}

func (s *DocumentService) publish(ctx context.Context, event eventbus.DocEvent) {
	if err := s.bus.Publish(ctx, event.Type, event); err != nil {
		klog.Errorf("publish %s event: %v", event.Type, err)
	}
}

func decodeValid(docType model.DocumentType, record model.FieldRecord) (model.Fields, error) {
	fields, err := model.DecodeFields(docType, record)
	if err != nil {
		return nil, err
	}
	if err := fields.Validate(); err != nil {
		return nil, err
	}
	return fields.Derive(), nil
}

func newDocumentRecord(fields model.Fields) (*model.DocumentRecord, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}
	partyA, partyB := fields.PartyLabels()
	return &model.DocumentRecord{
		Type:   fields.DocumentType(),
		Title:  fields.DocumentType().Title(),
		PartyA: partyA,
		PartyB: partyB,
		Fields: datatypes.JSON(data),
	}, nil
}
