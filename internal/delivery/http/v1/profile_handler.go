package v1

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"job-use-backend/internal/delivery/http/response"
	"job-use-backend/internal/domain"
	"job-use-backend/pkg/apperror"
	"job-use-backend/pkg/upload"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
	maxBytes  int64
}

func NewProfileHandler(write *gin.RouterGroup, profileUC domain.ProfileUsecase, maxBytes int64) {
	handler := &ProfileHandler{profileUC: profileUC, maxBytes: maxBytes}

	write.POST("/profiles/upload", handler.Upload)
}

// UploadProfile godoc
// @Summary      Ingest a candidate profile file
// @Description  Accepts a JSON profile either as multipart field "file" or as the raw request body.
// @Description  The candidate is upserted by email; work experience and questions are replaced when present.
// @Tags         profiles
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Param        file  formData  file  false  "Profile JSON file"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      413   {object}  response.Response
// @Failure      415   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /profiles/upload [post]
func (h *ProfileHandler) Upload(c *gin.Context) {
	raw, filename, err := h.readUpload(c)
	if err != nil {
		c.Error(err)
		return
	}
	if _, err := upload.ValidateProfileFile(filename, raw); err != nil {
		c.Error(unsupportedFile(err))
		return
	}

	result, err := h.profileUC.IngestProfile(c.Request.Context(), raw)
	if err != nil {
		if result != nil {
			respondPartial(c, err, result)
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Profile uploaded", result)
}

// readUpload returns the upload bytes and, for multipart requests, the
// client's filename.
func (h *ProfileHandler) readUpload(c *gin.Context) ([]byte, string, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)

	var src io.Reader = c.Request.Body
	var filename string
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("file")
		if err != nil {
			if tooLarge(err) {
				return nil, "", h.tooLargeError()
			}
			return nil, "", apperror.BadRequest("Missing profile file in field \"file\"")
		}
		f, err := fh.Open()
		if err != nil {
			return nil, "", apperror.Internal(err)
		}
		defer f.Close()
		src = io.LimitReader(f, h.maxBytes+1)
		filename = fh.Filename
	}

	raw, err := io.ReadAll(src)
	if err != nil {
		if tooLarge(err) {
			return nil, "", h.tooLargeError()
		}
		return nil, "", apperror.BadRequest("Could not read profile upload")
	}
	if int64(len(raw)) > h.maxBytes {
		return nil, "", h.tooLargeError()
	}
	return raw, filename, nil
}

func unsupportedFile(err error) error {
	msg := "Profile upload must be a JSON text file"
	if errors.Is(err, upload.ErrExtension) {
		msg += " (" + strings.Join(upload.AllowedExtensions(), ", ") + ")"
	}
	return apperror.New(http.StatusUnsupportedMediaType, msg, err)
}

func (h *ProfileHandler) tooLargeError() error {
	return apperror.New(http.StatusRequestEntityTooLarge, "Profile upload is too large", nil)
}

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
