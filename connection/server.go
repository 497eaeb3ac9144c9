package connection

import (
	"log"

	authcontroller "github.com/zachary-salyers1/customer-management-app/controller/auth"
	"github.com/zachary-salyers1/customer-management-app/controller/customer"
	"github.com/zachary-salyers1/customer-management-app/controller/dashboard"
	"github.com/zachary-salyers1/customer-management-app/controller/project"
	"github.com/zachary-salyers1/customer-management-app/controller/task"
	"github.com/zachary-salyers1/customer-management-app/store"
	"github.com/zachary-salyers1/customer-management-app/viewmodel"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	router := gin.Default()

	firestoreClient, authClient, err := FBConnection()
	if err != nil {
		log.Fatalf("Failed to initialize Firebase clients: %v", err)
	}

	recordStore := store.NewFirestoreStore(firestoreClient)
	states := viewmodel.NewManager(recordStore)

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	authcontroller.SignInController(router, authClient, firestoreClient)
	authcontroller.RefreshTokenController(router, firestoreClient)
	authcontroller.SignOutController(router, firestoreClient, states)

	customer.GetCustomersController(router, states)
	customer.CreateCustomerController(router, states)
	customer.UpdateCustomerController(router, states)

	project.CreateProjectController(router, states)

	task.CreateTaskController(router, states)
	task.UpdateTaskController(router, states)
	task.CompleteTaskController(router, states)
	task.DeleteTaskController(router, states)

	dashboard.DashboardController(router, states)

	router.Run()
}
