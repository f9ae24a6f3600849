package response

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manantri/campusfest/pkg/apperror"
)

// Identity retrieves the authenticated identity reference from the context.
// It is set by the auth middleware from the verified token subject.
func Identity(c *gin.Context) (string, error) {
	identity, exists := c.Get("identity")
	if !exists {
		return "", apperror.ErrUnauthorized
	}

	id, ok := identity.(string)
	if !ok || id == "" {
		return "", apperror.ErrUnauthorized
	}

	return id, nil
}

// Email retrieves the email claim set by the auth middleware, if any.
func Email(c *gin.Context) string {
	email, _ := c.Get("email")
	if s, ok := email.(string); ok {
		return s
	}
	return ""
}

// OK writes the success envelope with the given payload fields.
func OK(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Fail writes the standardized error envelope.
func Fail(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, gin.H{"success": false, "message": err.Error()})
}

// FailWith writes the error envelope with extra payload fields (e.g. the signed
// day count returned by ticket verification).
func FailWith(c *gin.Context, err error, payload gin.H) {
	code := apperror.MapErrorToStatus(err)

	body := gin.H{"success": false, "message": err.Error()}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(code, body)
}
