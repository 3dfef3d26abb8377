package handlers

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"employee-admin/internal/employee"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

// MaxPhotoBytes caps uploaded photos; the data URL lives inside the snapshot.
const MaxPhotoBytes = 2 << 20

// POST /employees/:id/photo (multipart field "image")
func (h *EmployeeHandler) UploadPhoto(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required", "details": err.Error()})
		return
	}
	if fh.Size > MaxPhotoBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read image", "details": err.Error()})
		return
	}
	defer f.Close()

	b, err := io.ReadAll(io.LimitReader(f, MaxPhotoBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read image", "details": err.Error()})
		return
	}
	if len(b) > MaxPhotoBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
		return
	}

	dataURL, err := ImageDataURL(b)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image", "details": err.Error()})
		return
	}

	e, err := h.store.Update(c.Request.Context(), id, employee.Patch{Image: &dataURL})
	if !h.saved(c, err) {
		return
	}
	h.respond(c, http.StatusOK, gin.H{"data": e, "message": "photo updated"}, err)
}

// DELETE /employees/:id/photo
func (h *EmployeeHandler) DeletePhoto(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	empty := ""
	e, err := h.store.Update(c.Request.Context(), id, employee.Patch{Image: &empty})
	if !h.saved(c, err) {
		return
	}
	h.respond(c, http.StatusOK, gin.H{"data": e, "message": "photo removed"}, err)
}

// ImageDataURL sniffs b and encodes it as a base64 data URL. Only image
// types are accepted.
func ImageDataURL(b []byte) (string, error) {
	if len(b) == 0 {
		return "", fmt.Errorf("empty file")
	}
	mt := mimetype.Detect(b)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("not an image: %s", mt.String())
	}
	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}
