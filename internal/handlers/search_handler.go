package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"creditflow/internal/services"
)

// SearchHandler handles federated search requests.
type SearchHandler struct {
	searchService services.SearchServicer
	userService   services.UserServicer
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService services.SearchServicer, userService services.UserServicer) *SearchHandler {
	return &SearchHandler{searchService: searchService, userService: userService}
}

// Search handles a federated search across sales, debts, and customers.
// Queries shorter than two characters return empty buckets.
// @Summary     Federated search
// @Description Search sales, debts, and customers within the caller's visibility scope
// @Tags        search
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       q query string true "Search query (min 2 characters)"
// @Success     200 {object} services.SearchResults "Grouped search hits"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	viewer, err := currentUser(c, h.userService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	results, err := h.searchService.Global(viewer, c.Query("q"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
