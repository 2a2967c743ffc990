// Package handler contains the gin HTTP handlers. Handlers bind and hand off
// to the services; every foreseeable rule violation arrives as an apperr and
// is mapped to its status code here, while unexpected failures are logged and
// surface as a generic 500.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleetflow/fleetflow-go/internal/apperr"
	"github.com/fleetflow/fleetflow-go/pkg/response"
)

func respondError(c *gin.Context, log *zap.SugaredLogger, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Errorw("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		response.InternalError(c)
		return
	}
	response.Error(c, status, err.Error())
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}
