package contact

import (
	"net/http"
	"strconv"

	"contacts-api/internal"
	"contacts-api/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxLimit = 250

func List(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	skipStr := c.DefaultQuery("skip", "0")
	skip, err := strconv.Atoi(skipStr)
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Skip must be a non-negative number",
			"requestID": requestID,
		})
		return
	}

	limitStr := c.DefaultQuery("limit", "100")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > maxLimit {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Limit must be between 1 and 250",
			"requestID": requestID,
		})
		return
	}

	filters := store.Filters{
		Name:    c.Query("name"),
		Surname: c.Query("surname"),
		Email:   c.Query("email"),
	}

	contacts, err := d.Contacts.List(userID, filters, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list contacts", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, contacts)
}
