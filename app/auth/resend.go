package auth

import (
	"net/http"

	"contacts-api/internal"
	"contacts-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type resendBody struct {
	Email string `json:"email"`
}

// Resend responds the same way whether or not the email belongs to an
// account, so it can't be used to probe for registered addresses.
func Resend(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data resendBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := d.Users.ResendVerification(data.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to resend verification email", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Check your email for verification",
		"requestID": requestID,
	})
}
