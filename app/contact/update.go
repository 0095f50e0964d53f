package contact

import (
	"errors"
	"net/http"

	"contacts-api/internal"
	"contacts-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Update replaces every mutable field of the contact.
func Update(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	id, ok := contactID(c, requestID)
	if !ok {
		return
	}

	body := bindBody(c, requestID)
	if body == nil {
		return
	}

	updated, err := d.Contacts.Update(userID, id, body)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Contact not found",
				"requestID": requestID,
			})
			return
		}

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

		zap.L().Error("Failed to update contact", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, updated)
}
