package contact

import (
	"errors"
	"net/http"

	"contacts-api/internal"
	"contacts-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Fetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	id, ok := contactID(c, requestID)
	if !ok {
		return
	}

	contact, err := d.Contacts.Get(userID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Contact not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch contact", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, contact)
}
