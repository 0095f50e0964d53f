package user

import (
	"errors"
	"net/http"

	"contacts-api/internal"
	"contacts-api/internal/model"
	"contacts-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Avatar stores a new avatar image for the authenticated user and
// returns the hosted URL.
func Avatar(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	me := c.MustGet("user").(*model.User)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Multipart form must contain a 'file' field",
			"requestID": requestID,
		})
		return
	}
	defer file.Close()

	url, err := d.Users.UpdateAvatar(
		c.Request.Context(),
		me,
		file,
		header.Size,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedAvatar) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update avatar", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"avatar_url": url,
	})
}
