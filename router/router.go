package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Kouaj/Notations-sub000/pkg/middleware"
	userRepo "github.com/Kouaj/Notations-sub000/pkg/user/repository"
)

func New(
	e *echo.Echo,
	users userRepo.UserRepository,
	authCtrl interface {
		Register(echo.Context) error
		Login(echo.Context) error
		Logout(echo.Context) error
		WhoAmI(echo.Context) error
		Reset(echo.Context) error
	},
	reseauCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
		Create(echo.Context) error
		Delete(echo.Context) error
		Select(echo.Context) error
		Selected(echo.Context) error
	},
	parcelleCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
		Create(echo.Context) error
		Delete(echo.Context) error
		Select(echo.Context) error
		Selected(echo.Context) error
		AddPlacette(echo.Context) error
		DeletePlacette(echo.Context) error
	},
	historyCtrl interface {
		Finish(echo.Context) error
		List(echo.Context) error
		Delete(echo.Context) error
		Export(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)
	e.POST("/register", authCtrl.Register)
	e.POST("/login", authCtrl.Login)
	e.POST("/reset", authCtrl.Reset)

	api := e.Group("", middleware.Session(users))

	api.POST("/logout", authCtrl.Logout)
	api.GET("/whoami", authCtrl.WhoAmI)

	api.GET("/reseaux", reseauCtrl.List)
	api.GET("/reseaux/:id", reseauCtrl.Get)
	api.POST("/reseaux", reseauCtrl.Create)
	api.DELETE("/reseaux/:id", reseauCtrl.Delete)
	api.POST("/reseaux/select", reseauCtrl.Select)
	api.GET("/reseaux/selected", reseauCtrl.Selected)

	api.GET("/parcelles", parcelleCtrl.List)
	api.GET("/parcelles/:id", parcelleCtrl.Get)
	api.POST("/parcelles", parcelleCtrl.Create)
	api.DELETE("/parcelles/:id", parcelleCtrl.Delete)
	api.POST("/parcelles/select", parcelleCtrl.Select)
	api.GET("/parcelles/selected", parcelleCtrl.Selected)
	api.POST("/parcelles/:id/placettes", parcelleCtrl.AddPlacette)
	api.DELETE("/placettes/:placette_id", parcelleCtrl.DeletePlacette)

	api.POST("/notations", historyCtrl.Finish)
	api.GET("/notations", historyCtrl.List)
	api.DELETE("/notations/:id", historyCtrl.Delete)
	api.GET("/notations/:id/export", historyCtrl.Export)

	return e
}
