package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidFields is returned when a field record cannot be mapped onto the
// typed record of its document type.
var ErrInvalidFields = errors.New("invalid field record")

// FieldRecord is the flat key/value shape exchanged with clients.
type FieldRecord map[string]any

// ValidationError lists required fields that are empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// requireFields takes key/value pairs and reports every empty value.
func requireFields(pairs ...string) error {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			missing = append(missing, pairs[i])
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Missing: missing}
}

// NewFields returns the zero record for a document type.
func NewFields(t DocumentType) (Fields, error) {
	switch t {
	case TypeReceipt:
		return ReceiptFields{}, nil
	case TypeAgreement:
		return AgreementFields{}, nil
	case TypeRelease:
		return ReleaseFields{}, nil
	case TypeSale:
		return SaleFields{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDocumentType, t)
}

// DecodeFields normalises a record and maps it onto the typed record of t.
// Unknown keys are rejected so that a renamed field cannot silently vanish.
func DecodeFields(t DocumentType, record FieldRecord) (Fields, error) {
	clean, err := NormalizeRecord(record)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(clean)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFields, err)
	}

	switch t {
	case TypeReceipt:
		var f ReceiptFields
		if err := decodeStrict(data, &f); err != nil {
			return nil, err
		}
		return f, nil
	case TypeAgreement:
		var f AgreementFields
		if err := decodeStrict(data, &f); err != nil {
			return nil, err
		}
		return f, nil
	case TypeRelease:
		var f ReleaseFields
		if err := decodeStrict(data, &f); err != nil {
			return nil, err
		}
		return f, nil
	case TypeSale:
		var f SaleFields
		if err := decodeStrict(data, &f); err != nil {
			return nil, err
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDocumentType, t)
}

func decodeStrict(data []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFields, err)
	}
	return nil
}

// ToRecord flattens a typed record back into a FieldRecord.
func ToRecord(f Fields) FieldRecord {
	record := FieldRecord{}
	if f == nil {
		return record
	}
	data, err := json.Marshal(f)
	if err != nil {
		return record
	}
	_ = json.Unmarshal(data, &record)
	return record
}

// Keys returns the sorted keys of a record.
func (r FieldRecord) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NormalizeRecord converts every value to a clean string: markup stripped,
// NFC normalised, trimmed. nil values are dropped; nested values are rejected.
func NormalizeRecord(record FieldRecord) (map[string]string, error) {
	out := make(map[string]string, len(record))
	for key, value := range record {
		var s string
		switch v := value.(type) {
		case nil:
			continue
		case string:
			s = v
		case json.Number:
			s = v.String()
		case float64:
			s = strconv.FormatFloat(v, 'f', -1, 64)
		case float32:
			s = strconv.FormatFloat(float64(v), 'f', -1, 32)
		case int:
			s = strconv.Itoa(v)
		case int64:
			s = strconv.FormatInt(v, 10)
		case bool:
			s = strconv.FormatBool(v)
		default:
			return nil, fmt.Errorf("%w: field %q must be a scalar, got %T", ErrInvalidFields, key, value)
		}
		out[key] = CleanValue(s)
	}
	return out, nil
}

var (
	valuePolicyOnce sync.Once
	valuePolicy     *bluemonday.Policy
)

// CleanValue strips markup and normalises a single entered value.
func CleanValue(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	valuePolicyOnce.Do(func() {
		valuePolicy = bluemonday.StrictPolicy()
	})
	// StrictPolicy escapes entities in text; templates escape again on output.
	cleaned := html.UnescapeString(valuePolicy.Sanitize(trimmed))
	return strings.TrimSpace(norm.NFC.String(cleaned))
}
