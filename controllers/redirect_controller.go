// File: /controllers/redirect_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"motolinks-api/repositories"
	"motolinks-api/utils"
)

// RedirectController serves the short links. Motorcycle and bookmark codes
// share one namespace, so a code is looked up in both stores.
type RedirectController struct {
	motorcycles repositories.MotorcycleRepository
	bookmarks   repositories.BookmarkRepository
	log         *zap.Logger
}

func NewRedirectController(motorcycles repositories.MotorcycleRepository, bookmarks repositories.BookmarkRepository, log *zap.Logger) *RedirectController {
	return &RedirectController{
		motorcycles: motorcycles,
		bookmarks:   bookmarks,
		log:         log,
	}
}

// Redirect resolves a short code, counts the visit and sends the client to
// the stored target.
func (rc *RedirectController) Redirect(c *gin.Context) {
	code := c.Param("code")

	motorcycle, err := rc.motorcycles.Resolve(code)
	if err == nil {
		c.Redirect(http.StatusFound, motorcycle.URL)
		return
	}
	if !repositories.IsNotFound(err) {
		rc.log.Error("short link resolve failed", zap.Error(err))
		utils.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	bookmark, err := rc.bookmarks.Resolve(code)
	if err == nil {
		c.Redirect(http.StatusFound, bookmark.URL)
		return
	}
	if !repositories.IsNotFound(err) {
		rc.log.Error("short link resolve failed", zap.Error(err))
		utils.SendError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.SendError(c, http.StatusNotFound, "Page not found")
}
