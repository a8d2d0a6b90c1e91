package handlers

import (
	"net/http"

	"github.com/daniilsm/sickday-go/internal/response"
	"github.com/daniilsm/sickday-go/internal/storage"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct{}

func NewUploadHandler() *UploadHandler {
	return &UploadHandler{}
}

type uploadedFile struct {
	Path         string `json:"path"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
}

// POST /upload stores one proof document and returns the path a ticket's
// proof list should reference.
func (h *UploadHandler) UploadProof(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file was not uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to read uploaded file"})
		return
	}
	defer file.Close()

	path, err := storage.UploadProof(
		c.Request.Context(),
		file,
		fileHeader.Size,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to store uploaded file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "File uploaded successfully",
		"file": uploadedFile{
			Path:         path,
			OriginalName: fileHeader.Filename,
			Size:         fileHeader.Size,
		},
	})
}
