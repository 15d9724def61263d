package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-api/config"
	"github.com/yeremiapane/restaurant-api/controllers"
	"github.com/yeremiapane/restaurant-api/kds"
	"github.com/yeremiapane/restaurant-api/middlewares"
	"github.com/yeremiapane/restaurant-api/services"
	"github.com/yeremiapane/restaurant-api/utils"
	"gorm.io/gorm"
)

// Options carries the collaborators the routes need besides the database.
// Hub and Publisher may be nil.
type Options struct {
	Config    *config.Config
	Hub       *kds.Hub
	Publisher kds.Publisher
}

func SetupRouter(db *gorm.DB, opts Options) *gin.Engine {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	secret := []byte(cfg.JWTSecret)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders(cfg.AppEnv == "production"))
	r.Use(middlewares.CORSMiddlewares())
	if cfg.RateLimit > 0 {
		r.Use(middlewares.NewRateLimiter(cfg.RateLimit, cfg.RateInterval).RateLimit())
	}

	customerCtrl := controllers.NewCustomerController(db)
	waiterCtrl := controllers.NewWaiterController(db)
	foodCtrl := controllers.NewFoodController(db)
	tableCtrl := controllers.NewDiningTableController(db, services.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL})
	billCtrl := controllers.NewBillController(db, opts.Publisher)

	r.GET("/ping", func(c *gin.Context) {
		utils.RespondJSON(c, http.StatusOK, "pong", nil)
	})

	api := r.Group("/api/v1")

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	api.GET("/customers", customerCtrl.GetCustomers)
	api.GET("/customers/spend", customerCtrl.GetCustomerSpend)
	api.GET("/waiters", waiterCtrl.GetWaiters)
	api.GET("/waiters/sales", waiterCtrl.GetWaiterSales)
	api.GET("/foods", foodCtrl.GetFoods)
	api.GET("/foods/sales", foodCtrl.GetSalesFood)
	api.GET("/dining-tables", tableCtrl.GetDiningTables)
	api.GET("/dining-tables/:table_id/qrcode", tableCtrl.GetDiningTableQRCode)
	api.GET("/bills", billCtrl.GetBillsWithDetails)

	// ----------------------------------------------------------------
	//                      WRITE ROUTES
	// ----------------------------------------------------------------
	write := api.Group("/")
	if cfg.AuthEnabled() {
		write.Use(middlewares.AuthMiddleware(secret), middlewares.RoleCheck(middlewares.RoleStaff))
	}

	write.POST("/customers", customerCtrl.CreateCustomer)
	write.PUT("/customers", customerCtrl.UpdateCustomer)
	write.DELETE("/customers/:customer_id", customerCtrl.DeleteCustomer)

	write.POST("/waiters", waiterCtrl.CreateWaiter)
	write.PUT("/waiters", waiterCtrl.UpdateWaiter)
	write.DELETE("/waiters/:waiter_id", waiterCtrl.DeleteWaiter)

	write.POST("/foods", foodCtrl.CreateFood)
	write.PUT("/foods", foodCtrl.UpdateFood)
	write.DELETE("/foods/:food_id", foodCtrl.DeleteFood)

	write.POST("/dining-tables", tableCtrl.CreateDiningTable)
	write.PUT("/dining-tables", tableCtrl.UpdateDiningTable)
	write.DELETE("/dining-tables/:table_id", tableCtrl.DeleteDiningTable)

	write.POST("/bills", billCtrl.CreateBill)

	// Kitchen display feed
	if opts.Hub != nil {
		kdsCtrl := controllers.NewKDSController(opts.Hub, cfg.AuthEnabled())
		if cfg.AuthEnabled() {
			api.GET("/ws/kds", middlewares.WebSocketAuthMiddleware(secret), kdsCtrl.KDSHandler)
		} else {
			api.GET("/ws/kds", kdsCtrl.KDSHandler)
		}
	}

	return r
}
