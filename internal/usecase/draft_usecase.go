package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"smeta/internal/domain/entities"
	"smeta/internal/domain/pricing"
	"smeta/internal/usecase/interfaces"
	"smeta/pkg/numeric"
)

var (
	ErrInvalidSlot             = errors.New("invalid draft slot")
	ErrItemNotFound            = errors.New("line item not found")
	ErrInvalidItemField        = errors.New("invalid line item field")
	ErrInvalidCustomFieldKey   = errors.New("invalid custom field key")
	ErrCustomFieldNotFound     = errors.New("custom field not found")
	ErrInvalidDocument         = errors.New("invalid document")
	ErrRendererNotConfigured   = errors.New("document renderer not configured")
	ErrRepositoryNotConfigured = errors.New("document repository not configured")
)

var slotPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

const (
	ContentTypeJSON = "application/json"
	ContentTypePDF  = "application/pdf"
)

// Item fields that hold numbers; edits to them go through numeric parsing.
const (
	FieldName            = "name"
	FieldDescription     = "description"
	FieldUnit            = "unit"
	FieldQuantity        = "quantity"
	FieldUnitPrice       = "unitPrice"
	FieldDiscountPercent = "discountPercent"
	FieldDiscountAmount  = "discountAmount"
	FieldVATPercent      = "vatPercent"
)

// DocumentFile is a named download.
type DocumentFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// IDraftUseCase exposes the estimate drafting workflow. Each operation works
// on the in-memory document of one slot and mirrors it to storage:
//   - field edits, items and custom fields => Update*/Add*/Remove*
//   - "new" => Reset, "save" => Save
//   - JSON download/upload => Export/Import, printable copy => RenderPDF

type IDraftUseCase interface {
	Get(ctx context.Context, slot string) (entities.Document, error)
	Quote(ctx context.Context, slot string) (entities.Document, pricing.Quote, error)
	UpdateCompany(ctx context.Context, slot string, company entities.Company) (entities.Document, error)
	UpdateClient(ctx context.Context, slot string, client entities.Client) (entities.Document, error)
	UpdateDetails(ctx context.Context, slot string, details entities.EstimateDetails) (entities.Document, error)
	UpdateNotes(ctx context.Context, slot string, notes, terms *string) (entities.Document, error)
	AddItem(ctx context.Context, slot string) (entities.Document, error)
	UpdateItemField(ctx context.Context, slot, itemID, field, value string) (entities.Document, error)
	RemoveItem(ctx context.Context, slot, itemID string) (entities.Document, error)
	ClearItems(ctx context.Context, slot string) (entities.Document, error)
	AddCustomField(ctx context.Context, slot, key, value string) (entities.Document, error)
	UpdateCustomField(ctx context.Context, slot string, index int, value string) (entities.Document, error)
	RemoveCustomField(ctx context.Context, slot string, index int) (entities.Document, error)
	Reset(ctx context.Context, slot string) (entities.Document, error)
	Save(ctx context.Context, slot string) error
	Export(ctx context.Context, slot string) (DocumentFile, error)
	Import(ctx context.Context, slot string, raw []byte) (entities.Document, error)
	RenderPDF(ctx context.Context, slot string) (DocumentFile, error)
}

// DraftUseCase keeps one document per slot in memory. Storage is a mirror:
// it is read once per slot and written after every change, and a failed
// write never fails the change.
type DraftUseCase struct {
	repo     interfaces.IDocumentRepository
	renderer interfaces.IDocumentRenderer
	now      func() time.Time

	mu     sync.Mutex
	drafts map[string]*entities.Document
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(repo interfaces.IDocumentRepository, renderer interfaces.IDocumentRenderer) *DraftUseCase {
	return &DraftUseCase{
		repo:     repo,
		renderer: renderer,
		now:      time.Now,
		drafts:   make(map[string]*entities.Document),
	}
}

// WithClock replaces the clock used for default dates and export names.
func (u *DraftUseCase) WithClock(now func() time.Time) *DraftUseCase {
	u.now = now
	return u
}

func (u *DraftUseCase) Get(ctx context.Context, slot string) (entities.Document, error) {
	slot, err := normalizeSlot(slot)
	if err != nil {
		return entities.Document{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	return u.load(ctx, slot).Clone(), nil
}

// Quote returns the document together with its prices.
func (u *DraftUseCase) Quote(ctx context.Context, slot string) (entities.Document, pricing.Quote, error) {
	doc, err := u.Get(ctx, slot)
	if err != nil {
		return entities.Document{}, pricing.Quote{}, err
	}
	return doc, pricing.Price(doc.Items, pricing.ConfigFrom(doc.Estimate)), nil
}

func (u *DraftUseCase) UpdateCompany(ctx context.Context, slot string, company entities.Company) (entities.Document, error) {
	return u.mutate(ctx, slot, func(d *entities.Document) error {
		d.Company = company
		return nil
	})
}

func (u *DraftUseCase) UpdateClient(ctx context.Context, slot string, client entities.Client) (entities.Document, error) {
	return u.mutate(ctx, slot, func(d *entities.Document) error {
		d.Client = client
		return nil
	})
}

func (u *DraftUseCase) UpdateDetails(ctx context.Context, slot string, details entities.EstimateDetails) (entities.Document, error) {
	return u.mutate(ctx, slot, func(d *entities.Document) error {
		d.Estimate = details
		return nil
	})
}

// UpdateNotes changes only the texts that are given.
func (u *DraftUseCase) UpdateNotes(ctx context.Context, slot string, notes, terms *string) (entities.Document, error) {
	return u.mutate(ctx, slot, func(d *entities.Document) error {
		if notes != nil {
			d.Notes = *notes
		}
		if terms != nil {
			d.Terms = *terms
		}
		return nil
	})
}

// AddItem appends a default item priced at the current document VAT rate.
func (u *DraftUseCase) AddItem(ctx context.Context, slot string) (entities.Document, error) {
	return u.mutate(ctx, slot, func(d *entities.Document) error {
		d.Items = append(d.Items, entities.NewLineItem(d.Estimate.VATRate))
		return nil
	})
}

func (u *DraftUseCase) UpdateItemField(ctx context.Context, slot, itemID, field, value string) (entities.Document, error) {
	return u.mutate(ctx, slot, func(d *entities.Document) error {
		i := d.FindItem(strings.TrimSpace(itemID))
		if i < 0 {
			return ErrItemNotFound
		}
		return setItemField(&d.Items[i], field, value)
	})
}

func setItemField(item *entities.LineItem, field, value string) error {
	number := func() entities.Number {
		return entities.NewNumber(numeric.ParseOrZero(value))
	}

	switch field {
	case FieldName:
		item.Name = value
	case FieldDescription:
		item.Description = value
	case FieldUnit:
		item.Unit = value
	case FieldQuantity:
		item.Quantity = number()
	case FieldUnitPrice:
		item.UnitPrice = number()
	case FieldDiscountPercent:
		item.DiscountPercent = number()
	case FieldDiscountAmount:
		item.DiscountAmount = number()
	case FieldVATPercent:
		item.VATPercent = number()
	default:
		return ErrInvalidItemField
	}
	return nil
}

func (u *DraftUseCase) RemoveItem(ctx context.Context, slot, itemID string) (entities.Document, error) {
	return u.mutate(ctx, slot, func(d *entities.Document) error {
		i := d.FindItem(strings.TrimSpace(itemID))
		if i < 0 {
			return ErrItemNotFound
		}
		d.Items = append(d.Items[:i], d.Items[i+1:]...)
		return nil
	})
}

func (u *DraftUseCase) ClearItems(ctx context.Context, slot string) (entities.Document, error) {
	return u.mutate(ctx, slot, func(d *entities.Document) error {
		d.Items = []entities.LineItem{}
		return nil
	})
}

func (u *DraftUseCase) AddCustomField(ctx context.Context, slot, key, value string) (entities.Document, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.Document{}, ErrInvalidCustomFieldKey
	}
	return u.mutate(ctx, slot, func(d *entities.Document) error {
		d.CustomFields = append(d.CustomFields, entities.CustomField{Key: key, Value: strings.TrimSpace(value)})
		return nil
	})
}

func (u *DraftUseCase) UpdateCustomField(ctx context.Context, slot string, index int, value string) (entities.Document, error) {
	return u.mutate(ctx, slot, func(d *entities.Document) error {
		if index < 0 || index >= len(d.CustomFields) {
			return ErrCustomFieldNotFound
		}
		d.CustomFields[index].Value = value
		return nil
	})
}

func (u *DraftUseCase) RemoveCustomField(ctx context.Context, slot string, index int) (entities.Document, error) {
	return u.mutate(ctx, slot, func(d *entities.Document) error {
		if index < 0 || index >= len(d.CustomFields) {
			return ErrCustomFieldNotFound
		}
		d.CustomFields = append(d.CustomFields[:index], d.CustomFields[index+1:]...)
		return nil
	})
}

func (u *DraftUseCase) Reset(ctx context.Context, slot string) (entities.Document, error) {
	return u.mutate(ctx, slot, func(d *entities.Document) error {
		d.Reset()
		return nil
	})
}

// Save writes the slot now and, unlike the mirroring done after each
// change, reports a failed write.
func (u *DraftUseCase) Save(ctx context.Context, slot string) error {
	slot, err := normalizeSlot(slot)
	if err != nil {
		return err
	}
	if u.repo == nil {
		return ErrRepositoryNotConfigured
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	raw, err := json.Marshal(u.load(ctx, slot))
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := u.repo.Save(ctx, slot, raw); err != nil {
		log.Error().Err(err).Str("slot", slot).Msg("[draft][usecase] save failed")
		return err
	}
	log.Info().Str("slot", slot).Int("bytes", len(raw)).Msg("[draft][usecase] saved")
	return nil
}

// Export returns the whole document as indented JSON, named after the
// estimate number.
func (u *DraftUseCase) Export(ctx context.Context, slot string) (DocumentFile, error) {
	doc, err := u.Get(ctx, slot)
	if err != nil {
		return DocumentFile{}, err
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return DocumentFile{}, fmt.Errorf("encode document: %w", err)
	}
	return DocumentFile{
		Name:        doc.ExportBaseName(u.now()) + ".json",
		ContentType: ContentTypeJSON,
		Content:     raw,
	}, nil
}

// Import shallow-merges raw onto the current document. A file that is not a
// JSON object leaves the document untouched.
func (u *DraftUseCase) Import(ctx context.Context, slot string, raw []byte) (entities.Document, error) {
	return u.mutate(ctx, slot, func(d *entities.Document) error {
		merged, err := entities.MergeDocument(*d, raw)
		if err != nil {
			log.Warn().Err(err).Str("slot", slot).Msg("[draft][usecase] import rejected")
			return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		*d = merged
		return nil
	})
}

func (u *DraftUseCase) RenderPDF(ctx context.Context, slot string) (DocumentFile, error) {
	if u.renderer == nil {
		return DocumentFile{}, ErrRendererNotConfigured
	}
	doc, quote, err := u.Quote(ctx, slot)
	if err != nil {
		return DocumentFile{}, err
	}

	content, err := u.renderer.Render(ctx, doc, quote)
	if err != nil {
		return DocumentFile{}, fmt.Errorf("render pdf: %w", err)
	}
	return DocumentFile{
		Name:        doc.ExportBaseName(u.now()) + ".pdf",
		ContentType: ContentTypePDF,
		Content:     content,
	}, nil
}

// mutate applies fn to a copy of the slot document and keeps the copy only
// when fn succeeds.
func (u *DraftUseCase) mutate(ctx context.Context, slot string, fn func(d *entities.Document) error) (entities.Document, error) {
	slot, err := normalizeSlot(slot)
	if err != nil {
		return entities.Document{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	next := u.load(ctx, slot).Clone()
	if err := fn(&next); err != nil {
		return entities.Document{}, err
	}
	u.drafts[slot] = &next
	u.mirror(ctx, slot, next)
	return next.Clone(), nil
}

// load returns the cached document, reading the slot on first use. Any
// problem with the stored copy falls back to a fresh document. Callers hold
// u.mu.
func (u *DraftUseCase) load(ctx context.Context, slot string) *entities.Document {
	if d, ok := u.drafts[slot]; ok {
		return d
	}

	doc := entities.NewDocument(u.now())
	// a stored copy that could not be read stays untouched until the next change
	readable := false
	if u.repo != nil {
		raw, err := u.repo.Load(ctx, slot)
		switch {
		case err != nil:
			log.Error().Err(err).Str("slot", slot).Msg("[draft][usecase] load failed; starting from defaults")
		case raw == nil:
			log.Debug().Str("slot", slot).Msg("[draft][usecase] empty slot; starting from defaults")
			readable = true
		default:
			merged, mErr := entities.MergeDocument(doc, raw)
			if mErr != nil {
				log.Warn().Err(mErr).Str("slot", slot).Msg("[draft][usecase] stored document is corrupt; starting from defaults")
			} else {
				doc = merged
				readable = true
			}
		}
	}

	u.drafts[slot] = &doc
	if len(doc.Items) == 0 {
		doc.Items = append(doc.Items, entities.NewLineItem(doc.Estimate.VATRate))
		if readable {
			u.mirror(ctx, slot, doc)
		}
	}
	return &doc
}

func (u *DraftUseCase) mirror(ctx context.Context, slot string, doc entities.Document) {
	if u.repo == nil {
		return
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		log.Error().Err(err).Str("slot", slot).Msg("[draft][usecase] encode failed; slot not mirrored")
		return
	}
	if err := u.repo.Save(ctx, slot, raw); err != nil {
		log.Error().Err(err).Str("slot", slot).Msg("[draft][usecase] mirror failed")
	}
}

func normalizeSlot(slot string) (string, error) {
	slot = strings.TrimSpace(slot)
	if !slotPattern.MatchString(slot) {
		return "", ErrInvalidSlot
	}
	return slot, nil
}
