package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/app"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// CreateQuote handles POST /api/quotes.
// Accepts {text, author?, tags?, template?} and returns the assigned id.
//
// @Summary Create a quote
// @Accept json
// @Produce json
// @Success 200 {object} dto.CreateQuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		if dto.IsValidationError(err) {
			dto.HandleValidationErrors(c, dto.ValidationErrors(err))
			return
		}

		dto.HandleErrorCode(c, dto.ErrorCodeBadRequest, "invalid request body")

		return
	}

	id, err := h.service.CreateQuote(c.Request.Context(), app.CreateQuoteInput{
		Text:     req.TextValue(),
		Author:   req.AuthorValue(),
		Tags:     req.Tags,
		Template: req.Template,
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateQuoteResponse{ID: id})
}

// ListQuotes handles GET /api/quotes.
// Supports an optional exact-match tag filter and a limit (1-200,
// default 50). Ordering is the storage layer's natural retrieval order.
//
// @Summary List quotes
// @Produce json
// @Param tag query string false "Filter by tag"
// @Param limit query int false "Maximum results (1-200, default 50)"
// @Success 200 {array} object
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	var query dto.ListQuotesQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		if dto.IsValidationError(err) {
			dto.HandleValidationErrors(c, dto.ValidationErrors(err))
			return
		}

		dto.HandleErrorCode(c, dto.ErrorCodeBadRequest, "invalid query parameters")

		return
	}

	docs, err := h.service.ListQuotes(c.Request.Context(), query.Tag, query.GetLimit())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SerializeDocuments(docs))
}

// RandomQuote handles GET /api/quotes/random.
// Seeds the collection when empty for the given filter, then returns one
// uniformly-sampled matching quote.
//
// @Summary Get a random quote
// @Produce json
// @Param tag query string false "Filter by tag"
// @Success 200 {object} object
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/quotes/random [get]
func (h *QuoteHandler) RandomQuote(c *gin.Context) {
	var query dto.RandomQuoteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.HandleErrorCode(c, dto.ErrorCodeBadRequest, "invalid query parameters")
		return
	}

	doc, err := h.service.RandomQuote(c.Request.Context(), query.Tag)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SerializeDocument(*doc))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.POST("", h.CreateQuote)
	quotes.GET("", h.ListQuotes)
	quotes.GET("/random", h.RandomQuote)
}
