package contact

import (
	"errors"
	"net/http"

	"contacts-api/internal"
	"contacts-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Create(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	contact := bindBody(c, requestID)
	if contact == nil {
		return
	}
	contact.UserID = userID

	created, err := d.Contacts.Create(contact)
	if err != nil {
		if errors.Is(err, service.ErrDuplicate) {
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

		zap.L().Error("Failed to create contact", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, created)
}
