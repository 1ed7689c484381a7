package controller

import "github.com/labstack/echo/v4"

type AuthController interface {
	Register(c echo.Context) error
	Login(c echo.Context) error
	Logout(c echo.Context) error
	WhoAmI(c echo.Context) error
	// Reset wipes users, session and credentials. Dev tooling, explicit only.
	Reset(c echo.Context) error
}
