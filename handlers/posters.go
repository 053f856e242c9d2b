package handlers

import (
	"context"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/knixan/b-movies/initializers"
	"github.com/knixan/b-movies/repository"
	"github.com/knixan/b-movies/types"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
)

type PostersHandler struct {
	postersRepo *repository.PostersRepository
	moviesRepo  *repository.MoviesRepository
}

func NewPostersHandler(p *repository.PostersRepository, m *repository.MoviesRepository) *PostersHandler {
	return &PostersHandler{postersRepo: p, moviesRepo: m}
}

// UploadPoster stores a poster image for a movie. The MIME type is detected
// from the file content, never trusted from the client, and validated
// against the configured allow-list. The uploaded poster replaces any
// previous one on the movie.
func (h *PostersHandler) UploadPoster(c *gin.Context) {
	movieIDStr := c.PostForm("movie_id")
	if movieIDStr == "" {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "movie_id is required"))
		return
	}
	movieID, err := strconv.Atoi(movieIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "invalid movie_id"))
		return
	}

	movie, err := h.moviesRepo.GetMovieByID(movieID)
	if err != nil || movie == nil || movie.IsDeleted {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeInvalidRequest, "invalid movie"))
		return
	}

	// Limit request body size before reading multipart data
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, initializers.Conf.MaxSize)

	file, err := c.FormFile("file")
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "request body too large") {
			c.JSON(http.StatusRequestEntityTooLarge, types.NewErrorResponse(types.ErrorCodeValidation, "file size exceeds the limit"))
			return
		}
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "file is required"))
		return
	}

	// Detect real MIME type from file content, not from client header
	sniff, openErr := file.Open()
	if openErr != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "cannot open uploaded file"))
		return
	}
	mt, detectErr := mimetype.DetectReader(sniff)
	_ = sniff.Close()
	if detectErr != nil || mt == nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "failed to detect file type"))
		return
	}
	detectedCT := strings.Split(mt.String(), ";")[0]

	if err := initializers.CheckPosterAllowed(file.Size, detectedCT); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}

	posterID, err := h.uploadPosterToMinIO(file, movieID, detectedCT)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}

	if err := h.moviesRepo.SetPoster(movieID, &posterID); err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, types.NewSuccessResponse(map[string]interface{}{
		"poster_id": posterID,
		"filename":  file.Filename,
		"size":      file.Size,
	}))
}

func (h *PostersHandler) uploadPosterToMinIO(file *multipart.FileHeader, movieID int, contentType string) (string, error) {
	posterID, err := h.postersRepo.CreatePoster(movieID, file.Filename, contentType, file.Size)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	_, err = initializers.MinioClient.PutObject(
		context.Background(),
		initializers.Conf.Bucket,
		posterID,
		src,
		file.Size,
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", err
	}

	return posterID, nil
}

// GetPoster resolves a poster id to a presigned URL. Posters are public
// catalog assets, so no authentication is required here.
func (h *PostersHandler) GetPoster(c *gin.Context) {
	posterID := c.Param("id")
	if posterID == "" {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "poster id is required"))
		return
	}

	poster, err := h.postersRepo.GetPosterByID(posterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	if poster == nil {
		c.JSON(http.StatusNotFound, types.NewErrorResponse(types.ErrorCodeNotFound, "poster not found"))
		return
	}

	movie, err := h.moviesRepo.GetMovieByID(poster.MovieID)
	if err != nil || movie == nil || movie.IsDeleted {
		c.JSON(http.StatusNotFound, types.NewErrorResponse(types.ErrorCodeNotFound, "poster not found"))
		return
	}

	url, err := initializers.GeneratePosterURL(poster.ID, poster.FileName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, "failed to create presigned url"))
		return
	}

	c.JSON(http.StatusOK, types.NewSuccessResponse(gin.H{
		"url": url,
	}))
}
