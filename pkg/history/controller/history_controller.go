package controller

import "github.com/labstack/echo/v4"

type HistoryController interface {
	// Finish turns an in-progress batch into a stored history record.
	Finish(c echo.Context) error
	List(c echo.Context) error
	Delete(c echo.Context) error
	// Export streams the two-sheet workbook for one record.
	Export(c echo.Context) error
}
