// File: /controllers/bookmark_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"motolinks-api/middleware"
	"motolinks-api/models"
	"motolinks-api/repositories"
	"motolinks-api/services"
	"motolinks-api/utils"
)

const defaultBookmarksPerPage = 5

type BookmarkController struct {
	bookmarks repositories.BookmarkRepository
	codes     *services.ShortCodeGenerator
	log       *zap.Logger
}

func NewBookmarkController(bookmarks repositories.BookmarkRepository, codes *services.ShortCodeGenerator, log *zap.Logger) *BookmarkController {
	return &BookmarkController{
		bookmarks: bookmarks,
		codes:     codes,
		log:       log,
	}
}

type BookmarkRequest struct {
	Body string `json:"body"`
	URL  string `json:"url"`
}

func (bc *BookmarkController) CreateBookmark(c *gin.Context) {
	var req BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !utils.IsValidURL(req.URL) {
		utils.SendError(c, http.StatusBadRequest, "Invalid URL")
		return
	}

	if taken, err := bc.bookmarks.URLTaken(req.URL, 0); err != nil {
		bc.internalError(c, "url uniqueness check failed", err)
		return
	} else if taken {
		utils.SendError(c, http.StatusConflict, "URL already exists")
		return
	}

	shortURL, err := bc.codes.Generate()
	if err != nil {
		bc.internalError(c, "short code generation failed", err)
		return
	}

	bookmark := models.Bookmark{
		Body:     req.Body,
		URL:      req.URL,
		ShortURL: shortURL,
		Visits:   0,
		UserID:   middleware.UserID(c),
	}

	if err := bc.bookmarks.Create(&bookmark); err != nil {
		if err == repositories.ErrDuplicateKey {
			utils.SendError(c, http.StatusConflict, "URL already exists")
			return
		}
		bc.internalError(c, "bookmark create failed", err)
		return
	}

	c.JSON(http.StatusCreated, bookmarkBody("Bookmark created successfully", &bookmark))
}

func (bc *BookmarkController) GetBookmarks(c *gin.Context) {
	page := intQuery(c, "page", 1)
	perPage := intQuery(c, "per_page", defaultBookmarksPerPage)

	items, meta, err := bc.bookmarks.ListByOwner(middleware.UserID(c), page, perPage)
	if err != nil {
		bc.internalError(c, "bookmark list failed", err)
		return
	}

	data := make([]gin.H, 0, len(items))
	for i := range items {
		data = append(data, bookmarkData(&items[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Bookmarks retrieved successfully",
		"data":    data,
		"meta":    meta,
	})
}

func (bc *BookmarkController) GetBookmark(c *gin.Context) {
	bookmark := bc.findOwned(c)
	if bookmark == nil {
		return
	}
	c.JSON(http.StatusOK, bookmarkBody("Bookmark retrieved successfully", bookmark))
}

// UpdateBookmark replaces both fields of the record; url must be present and
// valid on every call.
func (bc *BookmarkController) UpdateBookmark(c *gin.Context) {
	bookmark := bc.findOwned(c)
	if bookmark == nil {
		return
	}

	var req BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !utils.IsValidURL(req.URL) {
		utils.SendError(c, http.StatusBadRequest, "Invalid URL")
		return
	}

	if taken, err := bc.bookmarks.URLTaken(req.URL, bookmark.ID); err != nil {
		bc.internalError(c, "url uniqueness check failed", err)
		return
	} else if taken {
		utils.SendError(c, http.StatusConflict, "URL already exists")
		return
	}

	bookmark.Body = req.Body
	bookmark.URL = req.URL
	fields := map[string]interface{}{"body": req.Body, "url": req.URL}
	if err := bc.bookmarks.Update(bookmark, fields); err != nil {
		if err == repositories.ErrDuplicateKey {
			utils.SendError(c, http.StatusConflict, "URL already exists")
			return
		}
		bc.internalError(c, "bookmark update failed", err)
		return
	}

	updated, err := bc.bookmarks.FindByID(bookmark.ID, bookmark.UserID)
	if err != nil || updated == nil {
		bc.internalError(c, "bookmark reload failed", err)
		return
	}

	c.JSON(http.StatusOK, bookmarkBody("Bookmark updated successfully", updated))
}

func (bc *BookmarkController) DeleteBookmark(c *gin.Context) {
	id, ok := bookmarkID(c)
	if !ok {
		return
	}
	if err := bc.bookmarks.Delete(id, middleware.UserID(c)); err != nil {
		if repositories.IsNotFound(err) {
			utils.SendError(c, http.StatusNotFound, "Bookmark not found")
			return
		}
		bc.internalError(c, "bookmark delete failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetStats lists the authenticated user's bookmarks with visit counters.
func (bc *BookmarkController) GetStats(c *gin.Context) {
	items, err := bc.bookmarks.ByOwner(middleware.UserID(c))
	if err != nil {
		bc.internalError(c, "stats query failed", err)
		return
	}

	data := make([]gin.H, 0, len(items))
	for _, b := range items {
		data = append(data, gin.H{
			"visits":    b.Visits,
			"url":       b.URL,
			"id":        b.ID,
			"short_url": b.ShortURL,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Bookmarks retrieved successfully",
		"data":    data,
	})
}

// findOwned resolves the path id to a bookmark owned by the caller, writing
// the error response itself when there is none.
func (bc *BookmarkController) findOwned(c *gin.Context) *models.Bookmark {
	id, ok := bookmarkID(c)
	if !ok {
		return nil
	}
	bookmark, err := bc.bookmarks.FindByID(id, middleware.UserID(c))
	if err != nil {
		bc.internalError(c, "bookmark lookup failed", err)
		return nil
	}
	if bookmark == nil {
		utils.SendError(c, http.StatusNotFound, "Bookmark not found")
		return nil
	}
	return bookmark
}

func bookmarkID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Bookmark not found")
		return 0, false
	}
	return uint(id), true
}

func (bc *BookmarkController) internalError(c *gin.Context, msg string, err error) {
	bc.log.Error(msg, zap.Error(err))
	utils.SendError(c, http.StatusInternalServerError, "Internal server error")
}

func bookmarkData(b *models.Bookmark) gin.H {
	return gin.H{
		"id":          b.ID,
		"url":         b.URL,
		"short_url":   b.ShortURL,
		"visit_count": b.Visits,
		"body":        b.Body,
		"created_at":  b.CreatedAt,
		"updated_at":  b.UpdatedAt,
	}
}

func bookmarkBody(message string, b *models.Bookmark) gin.H {
	body := bookmarkData(b)
	body["message"] = message
	return body
}
