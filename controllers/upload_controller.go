package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/services"
	"github.com/kalyani-jewellers/jewellers-api/utils"
)

// UploadImage handles POST /api/v1/uploads - stores a catalogue or
// custom-design image and returns the key plus a presigned URL. The
// returned URL is what clients write into product_images.url or
// custom_designs.image_url.
func UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "An image file is required in the 'image' form field")
		return
	}

	imageService := services.GetImageService()
	if imageService == nil {
		respondError(c, http.StatusServiceUnavailable, "UPLOADS_UNAVAILABLE", "Image storage is not configured")
		return
	}

	key, err := imageService.UploadImage(fileHeader)
	if err != nil {
		if uploadErr, ok := err.(*utils.FileUploadError); ok {
			respondError(c, http.StatusBadRequest, uploadErr.Code, uploadErr.Message)
			return
		}
		respondError(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to store image")
		return
	}

	url, err := imageService.GetImageURL(key)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to generate image URL")
		return
	}

	respondData(c, http.StatusCreated, gin.H{
		"key": key,
		"url": url,
	})
}
