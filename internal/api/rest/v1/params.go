package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// queryPage reads the "page" query parameter, 1 when absent or invalid.
func queryPage(ctx *gin.Context) int {
	page, err := strconv.Atoi(ctx.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// sendFile writes a download with its attachment file name.
func sendFile(ctx *gin.Context, fileName, contentType string, content []byte) {
	ctx.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	ctx.Data(http.StatusOK, contentType, content)
}
