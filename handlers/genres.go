package handlers

import (
	"net/http"
	"strings"

	"github.com/knixan/b-movies/repository"
	"github.com/knixan/b-movies/types"

	"github.com/gin-gonic/gin"
)

type GenresHandler struct {
	repo *repository.GenresRepository
}

func NewGenresHandler(repo *repository.GenresRepository) *GenresHandler {
	return &GenresHandler{repo: repo}
}

// GetGenres returns all genres for the catalog filter dropdown.
func (h *GenresHandler) GetGenres(c *gin.Context) {
	genres, err := h.repo.ListGenres()
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.JSON(http.StatusOK, types.NewSuccessResponse(genres))
}

func (h *GenresHandler) CreateGenre(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "Name cannot be blank"))
		return
	}
	genre, err := h.repo.CreateGenre(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, types.NewSuccessResponse(genre))
}
