// Package user contains the endpoints operating on the current user
package user

import (
	"net/http"

	"contacts-api/internal"
	"contacts-api/internal/model"

	"github.com/gin-gonic/gin"
)

// Fetch returns the authenticated user, never including the password
// hash.
func Fetch(c *gin.Context, _ *internal.Deps) {
	c.JSON(http.StatusOK, c.MustGet("user").(*model.User))
}
