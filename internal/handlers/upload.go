package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadDir is set from config at startup; uploaded files are served
// back under /uploads.
var UploadDir = "uploads"

var allowedUploadExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".pdf":  true,
}

// Upload stores a multipart file and returns its durable URL in the
// {"secure_url": ...} shape the report editors store as photoRef.
func Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		badReq(c, "file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedUploadExt[ext] {
		badReq(c, "unsupported file type")
		return
	}

	name := fmt.Sprintf("%s%s", uuid.NewString(), ext)
	dst := filepath.Join(UploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		serverErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"secure_url": "/uploads/" + name,
	})
}
