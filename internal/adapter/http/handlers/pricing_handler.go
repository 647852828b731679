package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/invopop/jsonschema"

	request "smeta/internal/adapter/http/dto/request"
	response "smeta/internal/adapter/http/dto/response"
	"smeta/internal/domain/entities"
	"smeta/internal/domain/pricing"
	"smeta/pkg"
	"smeta/pkg/money"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// PricingHandler exposes the pricing engine and the document format without
// any draft state.

type PricingHandler struct {
	formatter *money.Formatter
	schema    *jsonschema.Schema
}

func NewPricingHandler(formatter *money.Formatter) *PricingHandler {
	reflector := jsonschema.Reflector{DoNotReference: true}
	schema := reflector.Reflect(&entities.Document{})
	schema.Title = "Estimate document"
	return &PricingHandler{formatter: formatter, schema: schema}
}

// Quote godoc
// @Summary  Price line items
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Param    body body request.QuoteRequest true "VAT setup and items"
// @Success  200 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	quote := pricing.Price(payload.Items, payload.ToConfig())
	c.JSON(http.StatusOK, response.FromQuote(quote, payload.ResolveCurrency(), h.formatter))
}

// DocumentSchema godoc
// @Summary  JSON Schema of an exported document
// @Tags     pricing
// @Produce  json
// @Success  200 {object} map[string]interface{}
// @Router   /schema/document [get]
func (h *PricingHandler) DocumentSchema(c *gin.Context) {
	c.JSON(http.StatusOK, h.schema)
}
