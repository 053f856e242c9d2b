package handlers

import (
	"net/http"
	"strconv"

	"github.com/knixan/b-movies/models"
	"github.com/knixan/b-movies/repository"
	"github.com/knixan/b-movies/types"

	"github.com/gin-gonic/gin"
)

type MoviesHandler struct {
	repo *repository.MoviesRepository
}

func NewMoviesHandler(repo *repository.MoviesRepository) *MoviesHandler {
	return &MoviesHandler{repo: repo}
}

// GetMovies serves the catalog listing. Raw query parameters are
// canonicalized by the listing builder; malformed input falls back to
// page 1, default sort, unfiltered results rather than an error.
func (h *MoviesHandler) GetMovies(c *gin.Context) {
	descriptor := types.BuildListingQuery(types.ParseListingParams(c), repository.MovieSortMap())
	movies, total, err := h.repo.ListMovies(descriptor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.JSON(http.StatusOK, types.NewSuccessResponse(types.NewListResponse(movies, total, descriptor)))
}

func (h *MoviesHandler) GetMovie(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "Invalid ID"))
		return
	}
	movie, err := h.repo.GetMovieByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	if movie == nil || movie.IsDeleted {
		c.JSON(http.StatusNotFound, types.NewErrorResponse(types.ErrorCodeNotFound, "Movie not found"))
		return
	}
	c.JSON(http.StatusOK, types.NewSuccessResponse(movie))
}

func (h *MoviesHandler) CreateMovie(c *gin.Context) {
	var req struct {
		Title          string   `json:"title" binding:"required"`
		Description    string   `json:"description"`
		PriceCents     int      `json:"priceCents"`
		ReleaseYear    int      `json:"releaseYear"`
		RuntimeMinutes int      `json:"runtimeMinutes"`
		Genres         []string `json:"genres"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}
	if req.PriceCents < 0 {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "Price cannot be negative"))
		return
	}
	movie, err := h.repo.CreateMovie(req.Title, req.Description, req.PriceCents, req.ReleaseYear, req.RuntimeMinutes, req.Genres)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, types.NewSuccessResponse(movie))
}

func (h *MoviesHandler) UpdateMovie(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "Invalid ID"))
		return
	}
	existing, err := h.repo.GetMovieByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	if existing == nil || existing.IsDeleted {
		c.JSON(http.StatusNotFound, types.NewErrorResponse(types.ErrorCodeNotFound, "Movie not found"))
		return
	}
	var req struct {
		Title          *string  `json:"title"`
		Description    *string  `json:"description"`
		PriceCents     *int     `json:"priceCents"`
		ReleaseYear    *int     `json:"releaseYear"`
		RuntimeMinutes *int     `json:"runtimeMinutes"`
		Genres         []string `json:"genres"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}
	if req.PriceCents != nil && *req.PriceCents < 0 {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "Price cannot be negative"))
		return
	}
	if err := h.repo.UpdateMovie(id, req.Title, req.Description, req.PriceCents, req.ReleaseYear, req.RuntimeMinutes, req.Genres); err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	updated, err := h.repo.GetMovieByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.JSON(http.StatusOK, types.NewSuccessResponse(updated))
}

func (h *MoviesHandler) DeleteMovie(c *gin.Context) {
	h.setDeleted(c, true)
}

func (h *MoviesHandler) RestoreMovie(c *gin.Context) {
	h.setDeleted(c, false)
}

func (h *MoviesHandler) setDeleted(c *gin.Context, deleted bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "Invalid ID"))
		return
	}
	movie, err := h.repo.GetMovieByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	if movie == nil {
		c.JSON(http.StatusNotFound, types.NewErrorResponse(types.ErrorCodeNotFound, "Movie not found"))
		return
	}
	if err := h.repo.UpdateMovieDeleted(id, deleted); err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// SetCredit links a person to a movie in a role (actor or director).
func (h *MoviesHandler) SetCredit(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "Invalid ID"))
		return
	}
	var req struct {
		PersonID      int     `json:"personId" binding:"required"`
		Role          string  `json:"role" binding:"required"`
		CharacterName *string `json:"characterName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}
	if !models.ValidCreditRole(req.Role) {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "Role must be actor or director"))
		return
	}
	movie, err := h.repo.GetMovieByID(movieID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	if movie == nil || movie.IsDeleted {
		c.JSON(http.StatusNotFound, types.NewErrorResponse(types.ErrorCodeNotFound, "Movie not found"))
		return
	}
	if err := h.repo.SetCredit(movieID, req.PersonID, req.Role, req.CharacterName); err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.JSON(http.StatusOK, types.NewSuccessResponse(gin.H{"message": "Credit saved"}))
}

func (h *MoviesHandler) RemoveCredit(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "Invalid ID"))
		return
	}
	personID, err := strconv.Atoi(c.Param("personId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "Invalid person ID"))
		return
	}
	role := c.Query("role")
	if !models.ValidCreditRole(role) {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "Role must be actor or director"))
		return
	}
	if err := h.repo.RemoveCredit(movieID, personID, role); err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
