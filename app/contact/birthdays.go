package contact

import (
	"net/http"
	"strconv"

	"contacts-api/internal"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Birthdays returns the owner's contacts whose birthday falls within
// the next N days, matching on month and day only so the year of
// birth is irrelevant.
func Birthdays(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	daysStr := c.DefaultQuery("days", "7")
	days, err := strconv.Atoi(daysStr)
	if err != nil || days < 0 || days > 366 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Days must be a number between 0 and 366",
			"requestID": requestID,
		})
		return
	}

	contacts, err := d.Contacts.UpcomingBirthdays(userID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up upcoming birthdays", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, contacts)
}
