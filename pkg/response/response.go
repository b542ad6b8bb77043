package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with the given payload as-is.
// The chat API returns domain payloads directly, without an envelope,
// to stay wire-compatible with existing clients.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// BadRequest sends 400 with an error body.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrResp{Error: err.Error()})
}

// InternalError sends 500 with the error message.
// Store and model failures never reach this path — they degrade inside the
// use case; only unanticipated errors surface here.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrResp{Error: err.Error()})
}
