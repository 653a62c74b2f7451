package controllers

import (
	"github.com/gin-gonic/gin"
)

// Every response carries the {success, ...} envelope the frontend expects.
// Errors are {success:false, message} with the raw store error attached under
// "error" when a 500 needs diagnostics.

func respondError(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

func respondStoreError(ctx *gin.Context, status int, message string, err error) {
	ctx.JSON(status, gin.H{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}
