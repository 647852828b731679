package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	request "smeta/internal/adapter/http/dto/request"
	response "smeta/internal/adapter/http/dto/response"
	"smeta/internal/domain/entities"
	"smeta/internal/usecase"
	"smeta/pkg"
	"smeta/pkg/money"
)

// maxImportBytes bounds an uploaded document.
const maxImportBytes = 5 << 20

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)
	errImportTooLarge      = pkg.NewDomainErrorSimple("DOCUMENT_TOO_LARGE", "Document is too large", http.StatusRequestEntityTooLarge)
)

// DraftHandler serves the estimate draft of a slot. Routes without a :slot
// parameter use the configured default slot.

type DraftHandler struct {
	usecase     usecase.IDraftUseCase
	formatter   *money.Formatter
	defaultSlot string
}

func NewDraftHandler(uc usecase.IDraftUseCase, formatter *money.Formatter, defaultSlot string) *DraftHandler {
	return &DraftHandler{usecase: uc, formatter: formatter, defaultSlot: defaultSlot}
}

func (h *DraftHandler) slot(c *gin.Context) string {
	if s := c.Param("slot"); s != "" {
		return s
	}
	return h.defaultSlot
}

func (h *DraftHandler) respondDraft(c *gin.Context, status int, slot string, doc entities.Document, err error) {
	if err != nil {
		log.Warn().Err(err).Str("slot", slot).Str("path", c.FullPath()).Msg("[draft][handler] request failed")
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(status, response.FromDraft(slot, doc, h.formatter))
}

func (h *DraftHandler) respondError(c *gin.Context, err error) {
	appErr := mapDraftError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// GetDraft godoc
// @Summary  Current draft with prices
// @Tags     drafts
// @Produce  json
// @Param    slot path string true "Draft slot"
// @Success  200 {object} response.DraftResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /drafts/{slot} [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	slot := h.slot(c)
	doc, quote, err := h.usecase.Quote(c.Request.Context(), slot)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DraftResponse{
		Slot:     slot,
		Document: doc,
		Quote:    response.FromQuote(quote, doc.Estimate.Currency, h.formatter),
	})
}

// UpdateCompany godoc
// @Summary  Replace the company section
// @Tags     drafts
// @Accept   json
// @Produce  json
// @Param    slot path string true "Draft slot"
// @Param    body body request.CompanyRequest true "Company"
// @Success  200 {object} response.DraftResponse
// @Router   /drafts/{slot}/company [put]
func (h *DraftHandler) UpdateCompany(c *gin.Context) {
	var payload request.CompanyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}
	slot := h.slot(c)
	doc, err := h.usecase.UpdateCompany(c.Request.Context(), slot, payload.ToEntity())
	h.respondDraft(c, http.StatusOK, slot, doc, err)
}

func (h *DraftHandler) UpdateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}
	slot := h.slot(c)
	doc, err := h.usecase.UpdateClient(c.Request.Context(), slot, payload.ToEntity())
	h.respondDraft(c, http.StatusOK, slot, doc, err)
}

// UpdateDetails godoc
// @Summary  Replace the estimate header (number, date, project, currency, VAT)
// @Tags     drafts
// @Accept   json
// @Produce  json
// @Param    slot path string true "Draft slot"
// @Param    body body request.EstimateDetailsRequest true "Estimate header"
// @Success  200 {object} response.DraftResponse
// @Router   /drafts/{slot}/estimate [put]
func (h *DraftHandler) UpdateDetails(c *gin.Context) {
	var payload request.EstimateDetailsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}
	slot := h.slot(c)
	doc, err := h.usecase.UpdateDetails(c.Request.Context(), slot, payload.ToEntity())
	h.respondDraft(c, http.StatusOK, slot, doc, err)
}

func (h *DraftHandler) UpdateNotes(c *gin.Context) {
	var payload request.NotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}
	slot := h.slot(c)
	doc, err := h.usecase.UpdateNotes(c.Request.Context(), slot, payload.Notes, payload.Terms)
	h.respondDraft(c, http.StatusOK, slot, doc, err)
}

// Reset godoc
// @Summary  Start a new estimate; company, client and header are kept
// @Tags     drafts
// @Produce  json
// @Param    slot path string true "Draft slot"
// @Success  200 {object} response.DraftResponse
// @Router   /drafts/{slot}/reset [post]
func (h *DraftHandler) Reset(c *gin.Context) {
	slot := h.slot(c)
	doc, err := h.usecase.Reset(c.Request.Context(), slot)
	h.respondDraft(c, http.StatusOK, slot, doc, err)
}

// Save godoc
// @Summary  Write the draft to storage now
// @Tags     drafts
// @Produce  json
// @Param    slot path string true "Draft slot"
// @Success  200 {object} response.SaveResponse
// @Failure  500 {object} pkg.HTTPError
// @Router   /drafts/{slot}/save [post]
func (h *DraftHandler) Save(c *gin.Context) {
	slot := h.slot(c)
	if err := h.usecase.Save(c.Request.Context(), slot); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SaveResponse{Slot: slot, Status: "saved"})
}

// Export godoc
// @Summary  Download the draft as JSON
// @Tags     transfer
// @Produce  json
// @Param    slot path string true "Draft slot"
// @Success  200 {file} file
// @Router   /drafts/{slot}/export [get]
func (h *DraftHandler) Export(c *gin.Context) {
	file, err := h.usecase.Export(c.Request.Context(), h.slot(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	sendFile(c, file)
}

// Import godoc
// @Summary  Merge an exported JSON document into the draft
// @Tags     transfer
// @Accept   json
// @Produce  json
// @Param    slot path string true "Draft slot"
// @Param    body body entities.Document true "Exported document; missing sections are kept"
// @Success  200 {object} response.DraftResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /drafts/{slot}/import [post]
func (h *DraftHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(errImportTooLarge.HTTPStatus, errImportTooLarge.ToHTTPError())
			return
		}
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	slot := h.slot(c)
	doc, err := h.usecase.Import(c.Request.Context(), slot, raw)
	h.respondDraft(c, http.StatusOK, slot, doc, err)
}

// PDF godoc
// @Summary  Download the printable estimate
// @Tags     transfer
// @Produce  application/pdf
// @Param    slot path string true "Draft slot"
// @Success  200 {file} file
// @Router   /drafts/{slot}/pdf [get]
func (h *DraftHandler) PDF(c *gin.Context) {
	file, err := h.usecase.RenderPDF(c.Request.Context(), h.slot(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	sendFile(c, file)
}

func sendFile(c *gin.Context, file usecase.DocumentFile) {
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": file.Name})
	c.Header("Content-Disposition", disposition)
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSlot):
		return pkg.NewDomainErrorSimple("INVALID_SLOT", "Invalid draft slot", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidItemField):
		return pkg.NewDomainErrorSimple("INVALID_ITEM_FIELD", "Unknown line item field", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCustomFieldKey):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOM_FIELD", "Custom field key is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDocument):
		return pkg.NewDomainError("INVALID_DOCUMENT", "Invalid file format", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomFieldNotFound):
		return pkg.NewDomainErrorSimple("CUSTOM_FIELD_NOT_FOUND", "Custom field not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
