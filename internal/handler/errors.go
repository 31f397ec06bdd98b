package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// internalError records err for the access log and answers 500.
func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, "internal server error")
}

// MethodNotAllowed answers protected routes hit with the wrong verb once the
// login guard has let the request through.
func MethodNotAllowed(c *gin.Context) {
	c.AbortWithStatus(http.StatusMethodNotAllowed)
}

// parsePostID accepts ids up to MaxInt64; SQL drivers reject larger uint64s.
func parsePostID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return 0, false
	}
	return id, true
}
