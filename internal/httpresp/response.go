package httpresp

import "github.com/gin-gonic/gin"

// Every success response carries "status": true so clients can branch
// without parsing message text.

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, Response{Status: true, Data: data})
}

func Message(c *gin.Context, message string) {
	c.JSON(200, Response{Status: true, Message: message})
}

func MessageData(c *gin.Context, message string, data any) {
	c.JSON(200, Response{Status: true, Message: message, Data: data})
}
