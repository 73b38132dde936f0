package routers

import (
	"net/http"

	"github.com/Meenakshi-Adapa/CraftHub/handlers"
	"github.com/Meenakshi-Adapa/CraftHub/middleware"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRouters(db *gorm.DB, rdb *redis.Client) *gin.Engine {
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Authorization")
		c.Next()
	})
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil
	}

	router.Static("/uploads", "./uploads")

	router.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.Use(middleware.AuthMiddleware(db))
	{
		// Public catalog and account creation.
		router.POST("/api/users/register", func(c *gin.Context) {
			handlers.RegisterHandler(c, db)
		})
		router.POST("/api/artists/register", func(c *gin.Context) {
			handlers.RegisterArtistHandler(c, db)
		})
		router.POST("/api/users/login", func(c *gin.Context) {
			handlers.LoginHandler(c, db)
		})
		router.GET("/api/products", func(c *gin.Context) {
			handlers.GetProductListHandler(c, db, rdb)
		})
		router.GET("/api/products/:productId", func(c *gin.Context) {
			handlers.GetProductDataHandler(c, db)
		})
		router.GET("/api/category/:categoryName", func(c *gin.Context) {
			handlers.GetCategoryProductsHandler(c, db)
		})

		// Routes that need an authenticated caller.
		loginRequired := router.Group("/api")
		loginRequired.Use(middleware.CheckLoginMiddleware())
		{
			loginRequired.GET("/users/profile", func(c *gin.Context) {
				handlers.GetUserProfileHandler(c, db)
			})
			loginRequired.PATCH("/users/profile", func(c *gin.Context) {
				handlers.UpdateUserProfileHandler(c, db)
			})
			loginRequired.POST("/users/logout", func(c *gin.Context) {
				handlers.LogOutHandler(c, db)
			})

			loginRequired.GET("/users/addresses", func(c *gin.Context) {
				handlers.GetAddressesHandler(c, db)
			})
			loginRequired.POST("/users/address", func(c *gin.Context) {
				handlers.AddAddressHandler(c, db)
			})
			loginRequired.PUT("/users/address/:addressId", func(c *gin.Context) {
				handlers.UpdateAddressHandler(c, db)
			})
			loginRequired.DELETE("/users/address/:addressId", func(c *gin.Context) {
				handlers.DeleteAddressHandler(c, db)
			})

			loginRequired.POST("/cart", func(c *gin.Context) {
				handlers.AddToCartHandler(c, db)
			})
			loginRequired.POST("/cart/add", func(c *gin.Context) {
				handlers.AddToCartHandler(c, db)
			})
			loginRequired.GET("/cart", func(c *gin.Context) {
				handlers.GetCartHandler(c, db)
			})
			loginRequired.PUT("/cart/:productId", func(c *gin.Context) {
				handlers.UpdateCartItemQuantityHandler(c, db)
			})
			loginRequired.DELETE("/cart/:productId", func(c *gin.Context) {
				handlers.DeleteCartItemHandler(c, db)
			})
			loginRequired.DELETE("/cart", func(c *gin.Context) {
				handlers.ClearCartHandler(c, db)
			})

			loginRequired.POST("/wishlist/toggle", func(c *gin.Context) {
				handlers.ToggleWishlistHandler(c, db)
			})
			loginRequired.GET("/wishlist", func(c *gin.Context) {
				handlers.GetWishlistHandler(c, db)
			})
			loginRequired.GET("/wishlist/check/:productId", func(c *gin.Context) {
				handlers.CheckWishlistHandler(c, db)
			})
			loginRequired.DELETE("/wishlist/:productId", func(c *gin.Context) {
				handlers.RemoveFromWishlistHandler(c, db)
			})
			loginRequired.POST("/wishlist/folders", func(c *gin.Context) {
				handlers.CreateWishlistFolderHandler(c, db)
			})
			loginRequired.GET("/wishlist/folders", func(c *gin.Context) {
				handlers.GetWishlistFoldersHandler(c, db)
			})
			loginRequired.PUT("/wishlist/folders/:folderId", func(c *gin.Context) {
				handlers.RenameWishlistFolderHandler(c, db)
			})
			loginRequired.DELETE("/wishlist/folders/:folderId", func(c *gin.Context) {
				handlers.DeleteWishlistFolderHandler(c, db)
			})
			loginRequired.PUT("/wishlist/move-to-folder", func(c *gin.Context) {
				handlers.MoveToFolderHandler(c, db)
			})

			loginRequired.POST("/orders", func(c *gin.Context) {
				handlers.PlaceOrderHandler(c, db)
			})
			loginRequired.GET("/orders", func(c *gin.Context) {
				handlers.GetOrderListHandler(c, db)
			})
			loginRequired.GET("/orders/:orderId", func(c *gin.Context) {
				handlers.GetOrderDataHandler(c, db)
			})
			loginRequired.PATCH("/orders/:orderId/status", func(c *gin.Context) {
				handlers.UpdateOrderStatusHandler(c, db)
			})

			loginRequired.GET("/sales", func(c *gin.Context) {
				handlers.GetSalesHandler(c, db)
			})
			loginRequired.GET("/sales/seller", func(c *gin.Context) {
				handlers.GetSellerSalesHandler(c, db)
			})
			loginRequired.POST("/sales", func(c *gin.Context) {
				handlers.CreateSaleHandler(c, db)
			})
		}

		// Seller-side routes.
		artistRequired := router.Group("/api")
		artistRequired.Use(middleware.CheckLoginMiddleware(), middleware.CheckArtistPermissionMiddleware())
		{
			artistRequired.POST("/products", func(c *gin.Context) {
				handlers.CreateProductHandler(c, db, rdb)
			})
			artistRequired.PUT("/products/:productId", func(c *gin.Context) {
				handlers.UpdateProductHandler(c, db, rdb)
			})
			artistRequired.DELETE("/products/:productId", func(c *gin.Context) {
				handlers.DeleteProductHandler(c, db, rdb)
			})
			artistRequired.GET("/products/artist", func(c *gin.Context) {
				handlers.GetArtistProductsHandler(c, db)
			})
			artistRequired.POST("/products/image", func(c *gin.Context) {
				handlers.UploadImageHandler(c)
			})

			artistRequired.GET("/shop/check", func(c *gin.Context) {
				handlers.CheckShopHandler(c, db)
			})
			artistRequired.POST("/shop/check-name", func(c *gin.Context) {
				handlers.CheckShopNameHandler(c, db)
			})
			artistRequired.POST("/shop/create", func(c *gin.Context) {
				handlers.CreateShopHandler(c, db)
			})
			artistRequired.GET("/shop/details", func(c *gin.Context) {
				handlers.GetShopDetailsHandler(c, db)
			})
			artistRequired.GET("/shop/sales", func(c *gin.Context) {
				handlers.GetShopSalesHandler(c, db)
			})
			artistRequired.GET("/shop/products", func(c *gin.Context) {
				handlers.GetShopProductsHandler(c, db)
			})

			artistRequired.GET("/analytics/performance", func(c *gin.Context) {
				handlers.GetPerformanceHandler(c, db)
			})
		}

		// Product comments need a logged-in buyer, not an artist.
		loginRequired.POST("/products/:productId/comments", func(c *gin.Context) {
			handlers.AddCommentHandler(c, db)
		})
	}

	return router
}
