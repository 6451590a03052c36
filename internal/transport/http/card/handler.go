package card

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/murkotick/shoe-card-service/internal/app/card/domain"
	"github.com/murkotick/shoe-card-service/internal/app/card/dto"
	"github.com/murkotick/shoe-card-service/internal/app/card/queries/render_card"
	"github.com/murkotick/shoe-card-service/internal/app/card/queries/render_cards"
)

const maxBatchSize = render_cards.MaxBatchSize

// Queries groups the card read handlers.
type Queries struct {
	Render *render_card.Handler
	Batch  *render_cards.Handler
}

// Handler is a thin HTTP adapter: it binds JSON, delegates to the card
// queries and maps errors to status codes.
type Handler struct {
	queries Queries
}

func NewHandler(q Queries) *Handler {
	return &Handler{queries: q}
}

// BatchRequest is the body of POST /v1/cards/batch.
type BatchRequest struct {
	Products []dto.ProductDTO `json:"products"`
}

// BatchResponse is returned by POST /v1/cards/batch.
type BatchResponse struct {
	Cards []*dto.CardDTO `json:"cards"`
}

// Register mounts the card routes on r.
func (h *Handler) Register(r gin.IRouter) {
	v1 := r.Group("/v1")
	v1.POST("/cards/render", h.RenderCard)
	v1.POST("/cards/batch", h.RenderCards)
	v1.GET("/badges/:variant", h.GetBadge)
}

func (h *Handler) RenderCard(c *gin.Context) {
	var in dto.ProductDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, HTTPError{Error: "invalid JSON body: " + err.Error()})
		return
	}

	out, err := h.queries.Render.Execute(c.Request.Context(), in)
	if err != nil {
		c.JSON(mapError(err))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) RenderCards(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, HTTPError{Error: "invalid JSON body: " + err.Error()})
		return
	}
	if len(req.Products) > maxBatchSize {
		c.JSON(http.StatusBadRequest, HTTPError{Error: "too many products in batch", Field: "products"})
		return
	}

	cards, err := h.queries.Batch.Execute(c.Request.Context(), req.Products)
	if err != nil {
		c.JSON(mapError(err))
		return
	}
	c.JSON(http.StatusOK, BatchResponse{Cards: cards})
}

func (h *Handler) GetBadge(c *gin.Context) {
	v, err := domain.ParseVariant(c.Param("variant"))
	if err != nil {
		c.JSON(mapError(err))
		return
	}

	badge, ok := domain.BadgeFor(v)
	if !ok {
		c.JSON(http.StatusNotFound, HTTPError{Error: "variant " + v.String() + " has no badge"})
		return
	}
	c.JSON(http.StatusOK, badge)
}
