package routes

import (
	"net/http"

	"parts-store/controllers"
	"parts-store/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Controllers struct {
	Users    *controllers.UserController
	Products *controllers.ProductController
	Carts    *controllers.CartController
}

func SetupRoutes(router *gin.Engine, ctrl Controllers, tokens middleware.TokenValidator) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.POST("/auth/register", ctrl.Users.Register)
	router.POST("/auth/login", ctrl.Users.Login)
	router.GET("/products/:id", ctrl.Products.GetProductByID)

	carts := router.Group("/carts/:cartId")
	{
		carts.GET("/items", ctrl.Carts.ListItems)
		carts.POST("/items", ctrl.Carts.AddItem)
		carts.GET("/items/:itemId", ctrl.Carts.GetItem)
		carts.GET("/items/:itemId/product", ctrl.Carts.GetItemProduct)
		carts.PATCH("/items/:itemId", ctrl.Carts.UpdateItem)
		carts.DELETE("/items/:itemId", ctrl.Carts.RemoveItem)
		carts.GET("/count", ctrl.Carts.CountItems)
		carts.DELETE("", ctrl.Carts.ClearCart)
	}

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(tokens))
	{
		auth.GET("/me", ctrl.Users.GetAccount)
		auth.PATCH("/me", ctrl.Users.UpdateAccount)
		auth.DELETE("/me", ctrl.Users.DeleteAccount)
	}

	myCart := router.Group("/me/cart")
	myCart.Use(middleware.AuthMiddleware(tokens))
	{
		myCart.GET("", ctrl.Carts.ListItems)
		myCart.POST("/items", ctrl.Carts.AddItem)
		myCart.GET("/items/:itemId", ctrl.Carts.GetItem)
		myCart.GET("/items/:itemId/product", ctrl.Carts.GetItemProduct)
		myCart.PATCH("/items/:itemId", ctrl.Carts.UpdateItem)
		myCart.DELETE("/items/:itemId", ctrl.Carts.RemoveItem)
		myCart.GET("/count", ctrl.Carts.CountItems)
		myCart.DELETE("", ctrl.Carts.ClearCart)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(tokens), middleware.AdminMiddleware())
	{
		admin.POST("/products", ctrl.Products.CreateProduct)
	}
}
