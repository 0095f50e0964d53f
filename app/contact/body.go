// Package contact contains the owner-scoped contact CRUD endpoints
package contact

import (
	"net/http"
	"strconv"

	"contacts-api/internal/model"
	"contacts-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

// bindBody reads and validates a contact payload. On failure it writes
// the 400 response itself and returns nil.
func bindBody(c *gin.Context, requestID string) *model.Contact {
	var body validators.ContactBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return nil
	}

	birthday, err := validators.ContactValidator(&body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return nil
	}

	return &model.Contact{
		Name:     body.Name,
		Surname:  body.Surname,
		Email:    body.Email,
		Phone:    body.Phone,
		Birthday: birthday,
		Info:     body.Info,
	}
}

// contactID parses the :id path param. On failure it writes the 400
// response itself and returns false.
func contactID(c *gin.Context, requestID string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Contact ID must be a number",
			"requestID": requestID,
		})
		return 0, false
	}

	return uint(id), true
}
