package app

import (
	authHandler "taxi-fleet-service/internal/handlers/auth"
	carHandler "taxi-fleet-service/internal/handlers/car"
	driverHandler "taxi-fleet-service/internal/handlers/driver"
	manufacturerHandler "taxi-fleet-service/internal/handlers/manufacturer"
	"taxi-fleet-service/internal/middleware"
)

type Handlers struct {
	Auth         *authHandler.AuthHandler
	Manufacturer *manufacturerHandler.ManufacturerHandler
	Driver       *driverHandler.DriverHandler
	Car          *carHandler.CarHandler
}

func (s *Server) registerRoutes(h *Handlers, authMW *middleware.AuthMiddleware) {
	// Public. Driver creation doubles as sign-up.
	s.engine.POST("/auth/login", h.Auth.Login)
	s.engine.POST("/drivers", h.Driver.Create)

	// Authenticated
	api := s.engine.Group("/", authMW.Auth())

	api.POST("/auth/logout", h.Auth.Logout)

	manufacturers := api.Group("/manufacturers")
	{
		manufacturers.POST("", h.Manufacturer.Create)
		manufacturers.GET("", h.Manufacturer.List)
		manufacturers.GET("/:id", h.Manufacturer.Get)
		manufacturers.PUT("/:id", h.Manufacturer.Update)
		manufacturers.DELETE("/:id", h.Manufacturer.Delete)
	}

	drivers := api.Group("/drivers")
	{
		drivers.GET("", h.Driver.List)
		drivers.GET("/me/cars", h.Driver.MyCars)
		drivers.GET("/:id", h.Driver.Get)
		drivers.PUT("/:id", h.Driver.Update)
		drivers.DELETE("/:id", h.Driver.Delete)
	}

	cars := api.Group("/cars")
	{
		cars.POST("", h.Car.Create)
		cars.GET("", h.Car.List)
		cars.GET("/by-driver/:id", h.Car.ListByDriver)
		cars.GET("/:id", h.Car.Get)
		cars.PUT("/:id", h.Car.Update)
		cars.DELETE("/:id", h.Car.Delete)
	}
}
