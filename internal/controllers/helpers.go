package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/middleware"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report validation failures with the JSON field names clients send
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

// parseID reads the :id path parameter, answering 400 when it is not a
// non-negative integer
func parseID(ctx *gin.Context, entity string) (uint, bool) {
	id, existId := ctx.Params.Get("id")
	if !existId {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("Invalid %s ID", entity)})
		return 0, false
	}

	parsed, err := strconv.ParseUint(id, 10, 0)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("Invalid %s ID format", entity)})
		return 0, false
	}
	return uint(parsed), true
}

// bindJSON decodes the request body, turning every decoding or binding
// failure into a ValidationError
func bindJSON(ctx *gin.Context, dst interface{}) error {
	if err := ctx.ShouldBindJSON(dst); err != nil {
		return bindingError(err)
	}
	return nil
}

func bindingError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		problems := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			if fe.Tag() == "required" {
				problems = append(problems, fmt.Sprintf("%s is required", fe.Field()))
			} else {
				problems = append(problems, fmt.Sprintf("%s is invalid", fe.Field()))
			}
		}
		return models.NewValidationError(problems...)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "price" {
			return models.NewValidationError(models.ErrPriceOutOfRange)
		}
		return models.NewValidationError(fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type))
	}

	return models.NewValidationError("invalid request body")
}

// respondError maps an error onto the status code and body clients expect
func respondError(ctx *gin.Context, err error) {
	var notFound *models.NotFoundError
	var invalid *models.ValidationError

	switch {
	case errors.As(err, &notFound):
		ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: notFound.Error()})
	case errors.As(err, &invalid):
		ctx.JSON(http.StatusBadRequest, models.ValidationErrorResponse{Errors: invalid.Messages()})
	default:
		_ = ctx.Error(err)
		middleware.LoggerFrom(ctx).WithError(err).Error("Request failed")
		ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
}
