package bills

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"billscan-backend/internal/shared/metrics"
	"billscan-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the scanning and extraction services.
type Handler struct {
	Svc     *Service
	Scanner *Scanner
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, scanner *Scanner) *Handler {
	return &Handler{Svc: svc, Scanner: scanner}
}

// RegisterRoutes attaches bill routes to the engine root.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/upload", h.upload)
	r.POST("/analyze", h.analyze)
	r.GET("/bills", h.list)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "No image uploaded")
		return
	}
	if strings.TrimSpace(fileHeader.Filename) == "" {
		respond.Error(c, http.StatusBadRequest, "Empty filename")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "unable to read file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "unable to read file")
		return
	}

	text, err := h.Scanner.Text(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.IncUpload()
	respond.JSON(c, http.StatusOK, gin.H{
		"filename":       fileHeader.Filename,
		"extracted_text": text,
	})
}

type analyzeRequest struct {
	Text string `json:"text"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		respond.Error(c, http.StatusBadRequest, "No extracted text provided")
		return
	}

	rec, csvPath, err := h.Svc.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingInput):
			respond.Error(c, http.StatusBadRequest, "No extracted text provided")
		default:
			respond.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"message":  "Bill processed and stored successfully.",
		"data":     rec,
		"csv_path": csvPath,
	})
}

func (h *Handler) list(c *gin.Context) {
	recs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	respond.JSON(c, http.StatusOK, recs)
}
