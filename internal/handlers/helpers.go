package handlers

import (
	"net/http"

	"inspectpro/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func badReq(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

func forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"error": msg})
}

// serverErr surfaces the raw store error so the client can display it
// and retry; local state on the client is expected to be unchanged.
func serverErr(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// sessionIdentity reads the acting user's id and role off the session.
func sessionIdentity(c *gin.Context) (uint, models.UserRole) {
	sess := sessions.Default(c)
	var uid uint
	if v, ok := sess.Get("user_id").(uint); ok {
		uid = v
	}
	roleStr, _ := sess.Get("role").(string)
	return uid, models.UserRole(roleStr)
}
