package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hlifeacademy/dna-backend/internal/services"
)

// Avatar uploads are capped at 8 MiB.
const maxAvatarUploadBytes = 8 << 20

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (uh *UserHandler) GetMe(c *gin.Context) {
	user, err := uh.userService.GetMe(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	RespondOK(c, gin.H{"user": user})
}

func (uh *UserHandler) UpdateProfile(c *gin.Context) {
	var req services.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	user, err := uh.userService.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	RespondOK(c, gin.H{"user": user})
}

func (uh *UserHandler) UploadAvatar(c *gin.Context) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar file is required"})
		return
	}
	if fileHeader.Size > maxAvatarUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "avatar file too large"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read avatar file"})
		return
	}
	defer file.Close()
	raw, err := io.ReadAll(io.LimitReader(file, maxAvatarUploadBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read avatar file"})
		return
	}

	user, err := uh.userService.UploadAvatarImage(c.Request.Context(), raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	RespondOK(c, gin.H{"user": user})
}
