package upload

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soley/admin-cli/internal/utils"
)

// DefaultMaxBytes is the image size limit.
const DefaultMaxBytes = utils.MaxImageBytes

// multipart framing allowance on top of the file itself
const formOverhead = 1 << 20

// Result is the success body.
type Result struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

func errorBody(msg string) gin.H {
	return gin.H{"error": msg}
}

func (srv *Server) handleUpload(c *gin.Context) {
	ctx := c.Request.Context()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, srv.maxBytes+formOverhead)

	fh, err := c.FormFile(FormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusBadRequest, errorBody(utils.ValidateImage("image/", srv.maxBytes+1, srv.maxBytes).Error()))
			return
		}
		c.JSON(http.StatusBadRequest, errorBody("No file uploaded"))
		return
	}

	contentType := fh.Header.Get("Content-Type")
	if err := utils.ValidateImage(contentType, fh.Size, srv.maxBytes); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	f, err := fh.Open()
	if err != nil {
		srv.l.Errorf(ctx, "upload: open %s: %v", fh.Filename, err)
		c.JSON(http.StatusInternalServerError, errorBody("Upload failed"))
		return
	}
	defer f.Close()

	name := Filename(fh.Filename, srv.now())
	url, err := srv.storage.Put(ctx, name, contentType, f)
	if err != nil {
		srv.l.Errorf(ctx, "upload: store %s: %v", name, err)
		c.JSON(http.StatusInternalServerError, errorBody("Upload failed"))
		return
	}

	srv.l.Infof(ctx, "upload: stored %s (%d bytes)", name, fh.Size)
	c.JSON(http.StatusOK, Result{URL: url, Filename: name})
}
