package main

import (
	"github.com/zachary-salyers1/customer-management-app/connection"

	"github.com/gin-gonic/gin"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	connection.StartServer()
}
