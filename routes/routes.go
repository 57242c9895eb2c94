package routes

import (
	"admin-service/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every dashboard endpoint onto the engine.
func RegisterRoutes(
	r *gin.Engine,
	customer *controllers.CustomerController,
	product *controllers.ProductController,
	category *controllers.CategoryController,
	tag *controllers.TagController,
	order *controllers.OrderController,
	address *controllers.AddressController,
) {
	customerRoutes := r.Group("/customers")
	{
		customerRoutes.GET("/", customer.GetCustomers)
		customerRoutes.GET("/:id", customer.GetCustomerByID)
		customerRoutes.GET("/:id/addresses", customer.GetCustomerAddresses)
		customerRoutes.PATCH("/:id", customer.UpdateCustomer)
		customerRoutes.DELETE("/:id", customer.DeleteCustomer)
	}

	productRoutes := r.Group("/products")
	{
		productRoutes.GET("/", product.GetProducts)
		productRoutes.GET("/:id", product.GetProductByID)
		productRoutes.POST("/", product.CreateProduct)
		productRoutes.PATCH("/:id", product.UpdateProduct)
		productRoutes.DELETE("/:id", product.DeleteProduct)
	}

	categoryRoutes := r.Group("/category")
	{
		categoryRoutes.GET("/", category.GetCategories)
		categoryRoutes.GET("/:id", category.GetCategoryByID)
		categoryRoutes.POST("/", category.CreateCategory)
		categoryRoutes.PUT("/:id", category.UpdateCategory)
		categoryRoutes.DELETE("/:id", category.DeleteCategory)
	}

	tagRoutes := r.Group("/tags")
	{
		tagRoutes.GET("/", tag.GetTags)
		tagRoutes.POST("/", tag.CreateTag)
		tagRoutes.DELETE("/:id", tag.DeleteTag)
	}

	orderRoutes := r.Group("/orders")
	{
		orderRoutes.GET("/", order.GetOrders)
		orderRoutes.GET("/:id", order.GetOrderByID)
		orderRoutes.PATCH("/:id", order.UpdateOrder)
		orderRoutes.DELETE("/:id", order.DeleteOrder)
	}

	addressRoutes := r.Group("/addresses")
	{
		addressRoutes.GET("/", address.GetAddresses)
		addressRoutes.POST("/", address.CreateAddress)
		addressRoutes.PATCH("/:id", address.UpdateAddress)
		addressRoutes.DELETE("/:id", address.DeleteAddress)
	}

	r.GET("/uploads/presign", product.GetPresignUpload)
}
