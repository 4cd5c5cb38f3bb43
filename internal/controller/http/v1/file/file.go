package file

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	mediaDir string
}

func NewController(mediaDir string) *Controller {
	return &Controller{mediaDir}
}

// File serves an uploaded photo from the media directory. Directory
// listings are refused, only plain files are served.
func (cf Controller) File(c *gin.Context) {
	fs := gin.Dir(cf.mediaDir, false)

	name := c.Param("filepath")

	f, err := fs.Open(name)
	if err != nil {
		c.JSON(http.StatusNotFound, map[string]any{
			"message": "file not found",
		})
		return
	}
	f.Close()

	http.ServeFile(c.Writer, c.Request, filepath.Join(cf.mediaDir, filepath.Clean(name)))
}
