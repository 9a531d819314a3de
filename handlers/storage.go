package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"lumea/services/catalog"
	"lumea/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles gallery image uploads for catalog services.
type StorageHandler struct {
	StorageSvc storage.StorageService
	Catalog    catalog.CatalogService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService, cs catalog.CatalogService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc, Catalog: cs}
}

// UploadServiceImageHandler uploads a gallery image and attaches its URL to
// the service.
func (h *StorageHandler) UploadServiceImageHandler(c *gin.Context) {
	serviceID := c.Param("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "services/gallery")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL", "detail": err.Error()})
		return
	}

	if err := h.Catalog.AddServiceImage(serviceID, downloadURL); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": downloadURL, "publicId": publicID})
}
