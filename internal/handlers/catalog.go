// internal/handlers/catalog.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/comicden/comics-backend/internal/services"
	"github.com/comicden/comics-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

type nameRequest struct {
	Name string `json:"name" binding:"required"`
}

type titleRequest struct {
	Title string `json:"title" binding:"required"`
}

type amountPatchRequest struct {
	Title  string `json:"title" binding:"required"`
	Amount int    `json:"amount"`
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// POST /create/comic
func (h *CatalogHandler) CreateComic(c *gin.Context) {
	var req services.CreateComicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailedResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationFailedResponse(c, "", validationErrors)
		return
	}

	comic, err := h.catalogService.CreateComic(&req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"msg":   "Successfully added comic",
		"comic": comic,
	})
}

// POST /create/writer
func (h *CatalogHandler) CreateWriter(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailedResponse(c, "Invalid input", err.Error())
		return
	}

	writer, err := h.catalogService.CreateWriter(req.Name)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"msg":    "Successfully added writer",
		"writer": writer,
	})
}

// POST /create/artist
func (h *CatalogHandler) CreateArtist(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailedResponse(c, "Invalid input", err.Error())
		return
	}

	artist, err := h.catalogService.CreateArtist(req.Name)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"msg":    "Successfully added artist",
		"artist": artist,
	})
}

// POST /create/pub
func (h *CatalogHandler) CreatePublisher(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailedResponse(c, "Invalid input", err.Error())
		return
	}

	publisher, err := h.catalogService.CreatePublisher(req.Name)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"msg":       "Successfully added publisher",
		"publisher": publisher,
	})
}

// GET /view/comics
func (h *CatalogHandler) GetComics(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	comics, total, err := h.catalogService.ListComics(params)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(comics, total, params))
}

// GET /view/publishers
func (h *CatalogHandler) GetPublishers(c *gin.Context) {
	publishers, err := h.catalogService.ListPublishers()
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"publishers": publishers})
}

// GET /view/writers
func (h *CatalogHandler) GetWriters(c *gin.Context) {
	writers, err := h.catalogService.ListWriters()
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"writers": writers})
}

// GET /view/artists
func (h *CatalogHandler) GetArtists(c *gin.Context) {
	artists, err := h.catalogService.ListArtists()
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"artists": artists})
}

// DELETE /delete/comic
func (h *CatalogHandler) DeleteComic(c *gin.Context) {
	var req titleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailedResponse(c, "Invalid input", err.Error())
		return
	}

	if err := h.catalogService.DeleteComicByTitle(req.Title); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"msg": "Successfully deleted comic"})
}

// DELETE /delete/publisher
func (h *CatalogHandler) DeletePublisher(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailedResponse(c, "Invalid input", err.Error())
		return
	}

	if err := h.catalogService.DeletePublisherByName(req.Name); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"msg": "Successfully deleted publisher"})
}

// DELETE /delete/writer
func (h *CatalogHandler) DeleteWriter(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailedResponse(c, "Invalid input", err.Error())
		return
	}

	if err := h.catalogService.DeleteWriterByName(req.Name); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"msg": "Successfully deleted writer"})
}

// DELETE /delete/artist
func (h *CatalogHandler) DeleteArtist(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailedResponse(c, "Invalid input", err.Error())
		return
	}

	if err := h.catalogService.DeleteArtistByName(req.Name); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"msg": "Successfully deleted artist"})
}

// PATCH /patch/comicamount
func (h *CatalogHandler) UpdateComicAmount(c *gin.Context) {
	var req amountPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailedResponse(c, "Invalid input", err.Error())
		return
	}

	if err := h.catalogService.UpdateComicAmount(req.Title, req.Amount); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"msg": "Successfully changed amount"})
}
