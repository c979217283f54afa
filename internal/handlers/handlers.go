package handlers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	apierrors "github.com/yukikurage/marketplace-api/internal/errors"
	"github.com/yukikurage/marketplace-api/internal/middleware"
	"github.com/yukikurage/marketplace-api/internal/validation"
	"go.uber.org/zap"
)

// parseID reads the :id path parameter. Ids are bound as signed 64-bit
// integers by every driver, so a number above that range cannot name a row
// and is answered with 404. On failure the response is already written.
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			apierrors.NotFound(c, "")
			return 0, false
		}
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

// bindCreate decodes a create payload into dst, rejecting keys outside
// allowed first when validate is set.
func bindCreate(c *gin.Context, allowed validation.FieldSet, validate bool, dst interface{}) bool {
	body, err := c.GetRawData()
	if err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return false
	}

	if validate {
		var payload map[string]json.RawMessage
		if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
			apierrors.BadRequest(c, "Invalid request body")
			return false
		}
		if err := validation.CheckFields(payload, allowed); err != nil {
			var unknown *apierrors.UnknownFieldError
			if errors.As(err, &unknown) {
				apierrors.UnknownFields(c, unknown.Fields)
				return false
			}
			apierrors.BadRequest(c, err.Error())
			return false
		}
	}

	return bindBody(c, body, dst)
}

// bindUpdate decodes a partial update payload into dst
func bindUpdate(c *gin.Context, dst interface{}) bool {
	body, err := c.GetRawData()
	if err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return false
	}
	return bindBody(c, body, dst)
}

func bindBody(c *gin.Context, body []byte, dst interface{}) bool {
	if err := binding.JSON.BindBody(body, dst); err != nil {
		if errors.Is(err, apierrors.ErrFormat) {
			apierrors.InvalidFormat(c, err.Error())
			return false
		}
		apierrors.BadRequest(c, "Invalid request body")
		return false
	}
	return true
}

// respondError maps an error kind onto its HTTP response. Anything
// unclassified is a store fault and gets logged.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	var unknown *apierrors.UnknownFieldError
	switch {
	case errors.As(err, &unknown):
		apierrors.UnknownFields(c, unknown.Fields)
	case errors.Is(err, apierrors.ErrNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, apierrors.ErrFormat):
		apierrors.InvalidFormat(c, err.Error())
	case errors.Is(err, apierrors.ErrConstraintViolation):
		apierrors.Conflict(c, err.Error())
	default:
		log.Error("request failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", middleware.GetRequestID(c)),
		)
		apierrors.InternalError(c, "")
	}
}
