package handlers

import (
	"net/http"
	"strconv"

	"github.com/knixan/b-movies/repository"
	"github.com/knixan/b-movies/types"

	"github.com/gin-gonic/gin"
)

type PeopleHandler struct {
	repo *repository.PeopleRepository
}

func NewPeopleHandler(repo *repository.PeopleRepository) *PeopleHandler {
	return &PeopleHandler{repo: repo}
}

// GetPeople lists people through the same canonical listing pipeline as the
// catalog, with the people-specific sort whitelist.
func (h *PeopleHandler) GetPeople(c *gin.Context) {
	descriptor := types.BuildListingQuery(types.ParseListingParams(c), repository.PersonSortMap())
	people, total, err := h.repo.ListPeople(descriptor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.JSON(http.StatusOK, types.NewSuccessResponse(types.NewListResponse(people, total, descriptor)))
}

func (h *PeopleHandler) GetPerson(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "Invalid ID"))
		return
	}
	person, err := h.repo.GetPersonByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	if person == nil || person.IsDeleted {
		c.JSON(http.StatusNotFound, types.NewErrorResponse(types.ErrorCodeNotFound, "Person not found"))
		return
	}
	c.JSON(http.StatusOK, types.NewSuccessResponse(person))
}

func (h *PeopleHandler) CreatePerson(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}
	person, err := h.repo.CreatePerson(req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, types.NewSuccessResponse(person))
}

func (h *PeopleHandler) UpdatePerson(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "Invalid ID"))
		return
	}
	existing, err := h.repo.GetPersonByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	if existing == nil || existing.IsDeleted {
		c.JSON(http.StatusNotFound, types.NewErrorResponse(types.ErrorCodeNotFound, "Person not found"))
		return
	}
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}
	if err := h.repo.UpdatePersonName(id, req.Name); err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.JSON(http.StatusOK, types.NewSuccessResponse(gin.H{"message": "Person updated"}))
}

func (h *PeopleHandler) DeletePerson(c *gin.Context) {
	h.setDeleted(c, true)
}

func (h *PeopleHandler) RestorePerson(c *gin.Context) {
	h.setDeleted(c, false)
}

func (h *PeopleHandler) setDeleted(c *gin.Context, deleted bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "Invalid ID"))
		return
	}
	person, err := h.repo.GetPersonByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	if person == nil {
		c.JSON(http.StatusNotFound, types.NewErrorResponse(types.ErrorCodeNotFound, "Person not found"))
		return
	}
	if err := h.repo.UpdatePersonDeleted(id, deleted); err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
