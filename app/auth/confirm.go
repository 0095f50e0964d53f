package auth

import (
	"errors"
	"net/http"

	"contacts-api/internal"
	"contacts-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Confirm flips a user to verified. Confirming an already verified
// user is reported idempotently.
func Confirm(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No verification token provided",
			"requestID": requestID,
		})
		return
	}

	already, err := d.Users.ConfirmEmail(token)
	if err != nil {
		if errors.Is(err, security.ErrInvalidToken) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Verification error",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to confirm email", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if already {
		c.JSON(http.StatusOK, gin.H{
			"message":   "Your email is already verified",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Email verified successfully",
		"requestID": requestID,
	})
}
