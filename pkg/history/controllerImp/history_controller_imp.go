package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Kouaj/Notations-sub000/pkg/export"
	"github.com/Kouaj/Notations-sub000/pkg/history/controller"
	"github.com/Kouaj/Notations-sub000/pkg/history/repository"
	mw "github.com/Kouaj/Notations-sub000/pkg/middleware"
	"github.com/Kouaj/Notations-sub000/pkg/notation/service"
)

type HistoryCtrl struct {
	repo repository.HistoryRepository
	svc  service.NotationService
}

func New(repo repository.HistoryRepository, svc service.NotationService) controller.HistoryController {
	return &HistoryCtrl{repo: repo, svc: svc}
}

func (h *HistoryCtrl) Finish(c echo.Context) error {
	uid := c.Get("uid").(string)
	var b service.Batch
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	b.UserID = uid
	rec, err := h.svc.Finish(c.Request().Context(), b)
	if err != nil {
		return mw.Fail(c, err)
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *HistoryCtrl) List(c echo.Context) error {
	ctx := c.Request().Context()
	if q := c.QueryParam("parcelle_id"); q != "" {
		id, _ := strconv.Atoi(q)
		out, err := h.repo.GetByParcelle(ctx, uint(id))
		if err != nil {
			return mw.Fail(c, err)
		}
		return c.JSON(http.StatusOK, out)
	}
	uid := c.Get("uid").(string)
	out, err := h.repo.GetByUser(ctx, uid)
	if err != nil {
		return mw.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *HistoryCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(c.Request().Context(), uint(id)); err != nil {
		return mw.Fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *HistoryCtrl) Export(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	rec, err := h.repo.GetByID(c.Request().Context(), uint(id))
	if err != nil {
		return mw.Fail(c, err)
	}
	f, err := export.Workbook(rec)
	if err != nil {
		return mw.Fail(c, err)
	}
	defer f.Close()
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, export.Filename(rec)))
	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
