package controller

import "github.com/labstack/echo/v4"

type ParcelleController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Delete(c echo.Context) error
	Select(c echo.Context) error
	Selected(c echo.Context) error
	AddPlacette(c echo.Context) error
	DeletePlacette(c echo.Context) error
}
