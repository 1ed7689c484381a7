package controller

import "github.com/labstack/echo/v4"

type ReseauController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Delete(c echo.Context) error
	Select(c echo.Context) error
	Selected(c echo.Context) error
}
