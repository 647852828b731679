package routes

import (
	"github.com/gin-gonic/gin"

	"smeta/internal/adapter/http/handlers"
)

const (
	PathDrafts       = "/drafts/:slot"
	PathDefaultDraft = "/draft"
	PathPricing      = "/pricing"
	PathSchema       = "/schema"
)

func addPricingRoutes(rg *gin.RouterGroup, h *handlers.PricingHandler) {
	rg.POST(PathPricing+"/quote", h.Quote)
	rg.GET(PathSchema+"/document", h.DocumentSchema)
}

// addDraftRoutes mounts the draft API twice: per slot, and on /draft for
// the configured default slot.
func addDraftRoutes(rg *gin.RouterGroup, h *handlers.DraftHandler) {
	for _, path := range []string{PathDrafts, PathDefaultDraft} {
		drafts := rg.Group(path)
		{
			drafts.GET("", h.GetDraft)
			drafts.PUT("/company", h.UpdateCompany)
			drafts.PUT("/client", h.UpdateClient)
			drafts.PUT("/estimate", h.UpdateDetails)
			drafts.PUT("/notes", h.UpdateNotes)

			drafts.POST("/items", h.AddItem)
			drafts.DELETE("/items", h.ClearItems)
			drafts.PATCH("/items/:item_id", h.UpdateItem)
			drafts.DELETE("/items/:item_id", h.RemoveItem)

			drafts.POST("/custom-fields", h.AddCustomField)
			drafts.PATCH("/custom-fields/:index", h.UpdateCustomField)
			drafts.DELETE("/custom-fields/:index", h.RemoveCustomField)

			drafts.POST("/reset", h.Reset)
			drafts.POST("/save", h.Save)
			drafts.GET("/export", h.Export)
			drafts.POST("/import", h.Import)
			drafts.GET("/pdf", h.PDF)
		}
	}
}
