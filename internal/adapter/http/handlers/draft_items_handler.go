package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "smeta/internal/adapter/http/dto/request"
	"smeta/pkg"
)

var errInvalidIndex = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid custom field index", http.StatusBadRequest)

// AddItem godoc
// @Summary  Append a default line item
// @Tags     items
// @Produce  json
// @Param    slot path string true "Draft slot"
// @Success  201 {object} response.DraftResponse
// @Router   /drafts/{slot}/items [post]
func (h *DraftHandler) AddItem(c *gin.Context) {
	slot := h.slot(c)
	doc, err := h.usecase.AddItem(c.Request.Context(), slot)
	h.respondDraft(c, http.StatusCreated, slot, doc, err)
}

func (h *DraftHandler) ClearItems(c *gin.Context) {
	slot := h.slot(c)
	doc, err := h.usecase.ClearItems(c.Request.Context(), slot)
	h.respondDraft(c, http.StatusOK, slot, doc, err)
}

// UpdateItem godoc
// @Summary  Edit one field of a line item
// @Description Numeric fields accept text; unparseable input counts as 0.
// @Tags     items
// @Accept   json
// @Produce  json
// @Param    slot    path string true "Draft slot"
// @Param    item_id path string true "Item id"
// @Param    body    body request.ItemFieldRequest true "Field and value"
// @Success  200 {object} response.DraftResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /drafts/{slot}/items/{item_id} [patch]
func (h *DraftHandler) UpdateItem(c *gin.Context) {
	var payload request.ItemFieldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}
	slot := h.slot(c)
	doc, err := h.usecase.UpdateItemField(c.Request.Context(), slot, c.Param("item_id"), payload.ResolveField(), payload.ResolveValue())
	h.respondDraft(c, http.StatusOK, slot, doc, err)
}

func (h *DraftHandler) RemoveItem(c *gin.Context) {
	slot := h.slot(c)
	doc, err := h.usecase.RemoveItem(c.Request.Context(), slot, c.Param("item_id"))
	h.respondDraft(c, http.StatusOK, slot, doc, err)
}

// AddCustomField godoc
// @Summary  Append a custom key/value field
// @Tags     custom-fields
// @Accept   json
// @Produce  json
// @Param    slot path string true "Draft slot"
// @Param    body body request.CustomFieldRequest true "Field"
// @Success  201 {object} response.DraftResponse
// @Router   /drafts/{slot}/custom-fields [post]
func (h *DraftHandler) AddCustomField(c *gin.Context) {
	var payload request.CustomFieldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}
	slot := h.slot(c)
	doc, err := h.usecase.AddCustomField(c.Request.Context(), slot, payload.Key, payload.Value)
	h.respondDraft(c, http.StatusCreated, slot, doc, err)
}

func (h *DraftHandler) UpdateCustomField(c *gin.Context) {
	index, ok := customFieldIndex(c)
	if !ok {
		return
	}
	var payload request.CustomFieldValueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}
	slot := h.slot(c)
	doc, err := h.usecase.UpdateCustomField(c.Request.Context(), slot, index, payload.Value)
	h.respondDraft(c, http.StatusOK, slot, doc, err)
}

func (h *DraftHandler) RemoveCustomField(c *gin.Context) {
	index, ok := customFieldIndex(c)
	if !ok {
		return
	}
	slot := h.slot(c)
	doc, err := h.usecase.RemoveCustomField(c.Request.Context(), slot, index)
	h.respondDraft(c, http.StatusOK, slot, doc, err)
}

func customFieldIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidIndex.HTTPStatus, errInvalidIndex.ToHTTPError())
		return 0, false
	}
	return index, true
}
