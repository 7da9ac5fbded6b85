package helper_util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetLimitParam reads ?limit=, defaulting to def. Non-numeric values are an
// error; range clamping is left to the caller.
func GetLimitParam(c *gin.Context, def int) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
