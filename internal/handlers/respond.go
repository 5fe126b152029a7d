package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"unicode"

	"github.com/SscSPs/videotube_backend/internal/apperrors"
	"github.com/SscSPs/videotube_backend/internal/core/domain"
	"github.com/SscSPs/videotube_backend/internal/dto"
	"github.com/SscSPs/videotube_backend/internal/middleware"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// respondOK writes the success envelope.
func respondOK(c *gin.Context, status int, data any, message string) {
	c.JSON(status, dto.NewAPIResponse(status, data, message))
}

// respondError is the single boundary translator from errors to the failure envelope.
// 5xx errors are logged with their full chain and reported to Sentry; the client only sees the
// mapped message.
func respondError(c *gin.Context, err error) {
	status, message := apperrors.StatusFor(err)
	logger := middleware.GetLoggerFromContext(c)

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.Int("status", status), slog.String("error", err.Error()))
		if hub := sentry.GetHubFromContext(c.Request.Context()); hub != nil {
			hub.CaptureException(err)
		} else {
			sentry.CaptureException(err)
		}
	} else {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("reason", err.Error()))
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(status, message))
}

// bindError turns a gin binding failure into a validation AppError with a readable message.
func bindError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return apperrors.NewAppError(http.StatusRequestEntityTooLarge, "Request body too large", err)
	}
	if errors.Is(err, io.EOF) {
		return apperrors.NewValidationError("Request body is required")
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewAppError(http.StatusBadRequest, "Invalid request body", fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, field+" must be a valid email")
		case "oneof":
			msgs = append(msgs, field+" must be one of: "+strings.ReplaceAll(fe.Param(), " ", ", "))
		case "max":
			msgs = append(msgs, field+" must be at most "+fe.Param()+" characters")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return apperrors.NewValidationError(strings.Join(msgs, "; "))
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// pathID reads a UUID path parameter. On failure the 400 envelope is already written.
func pathID(c *gin.Context, name string) (string, bool) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(c, apperrors.NewValidationError("invalid id"))
		return "", false
	}
	return id.String(), true
}

// currentUserID returns the id attached by the auth gate. On failure the 401 envelope is already written.
func currentUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError("Unauthorized request"))
		return "", false
	}
	return userID, true
}

// viewerID returns the optional identity attached by OptionalAuthMiddleware, or "".
func viewerID(c *gin.Context) string {
	userID, _ := middleware.GetUserIDFromContext(c)
	return userID
}

// formFile opens an uploaded multipart file. A missing file yields (nil, nil). The returned
// close func is always safe to call.
func formFile(c *gin.Context, field string, kind domain.MediaKind) (*domain.UploadFile, func(), error) {
	noop := func() {}
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) || errors.Is(err, multipart.ErrMessageTooLarge) {
			return nil, noop, apperrors.NewAppError(http.StatusRequestEntityTooLarge, "Uploaded file too large", err)
		}
		return nil, noop, apperrors.NewAppError(http.StatusBadRequest, "Invalid "+field+" upload",
			fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
	}

	f, err := fh.Open()
	if err != nil {
		return nil, noop, fmt.Errorf("failed to open uploaded %s: %w", field, err)
	}
	return &domain.UploadFile{
		FieldName:   field,
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Kind:        kind,
		Content:     f,
	}, func() { _ = f.Close() }, nil
}

// requiredFormFile is formFile with a 400 for a missing file.
func requiredFormFile(c *gin.Context, field string, kind domain.MediaKind) (*domain.UploadFile, func(), error) {
	file, closeFn, err := formFile(c, field, kind)
	if err != nil {
		return nil, closeFn, err
	}
	if file == nil {
		return nil, closeFn, apperrors.NewValidationError(field + " file is required")
	}
	return file, closeFn, nil
}
