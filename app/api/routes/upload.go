package routes

import (
	"github.com/folio/pkg/constant"
	"github.com/folio/pkg/domains/upload"
	"github.com/gin-gonic/gin"
)

func UploadRoutes(r *gin.RouterGroup, s upload.Service, auth gin.HandlerFunc) {
	r.POST("/upload", auth, uploadFile(s))
}

func uploadFile(s upload.Service) func(c *gin.Context) {
	return func(c *gin.Context) {
		file, header, err := c.Request.FormFile("file")
		if err != nil {
			c.JSON(400, gin.H{"error": constant.UPLOAD_NO_FILE})
			return
		}
		defer file.Close()

		result, err := s.Upload(c, file, header.Filename)
		if err != nil {
			if err.Error() == constant.UPLOAD_CONFIG_MISSING {
				c.JSON(500, gin.H{"error": constant.UPLOAD_CONFIG_MISSING})
				return
			}
			c.JSON(502, gin.H{"error": constant.UPLOAD_FAILED})
			return
		}

		c.JSON(200, result)
	}
}
