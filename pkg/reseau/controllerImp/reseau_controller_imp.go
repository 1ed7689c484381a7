package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Kouaj/Notations-sub000/entities"
	mw "github.com/Kouaj/Notations-sub000/pkg/middleware"
	"github.com/Kouaj/Notations-sub000/pkg/reseau/controller"
	"github.com/Kouaj/Notations-sub000/pkg/reseau/repository"
)

type ReseauCtrl struct{ repo repository.ReseauRepository }

func New(repo repository.ReseauRepository) controller.ReseauController {
	return &ReseauCtrl{repo}
}

func (h *ReseauCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.GetByUser(c.Request().Context(), uid)
	if err != nil {
		return mw.Fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReseauCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	rs, err := h.repo.GetByID(c.Request().Context(), uint(id))
	if err != nil {
		return mw.Fail(c, err)
	}
	return c.JSON(http.StatusOK, rs)
}

type createReq struct {
	Name string `json:"name"`
}

func (h *ReseauCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	rs := &entities.Reseau{Name: req.Name, UserID: uid}
	if err := h.repo.Save(c.Request().Context(), rs); err != nil {
		return mw.Fail(c, err)
	}
	return c.JSON(http.StatusCreated, rs)
}

func (h *ReseauCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(c.Request().Context(), uint(id)); err != nil {
		return mw.Fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type selectReq struct {
	ID *uint `json:"id"` // null clears the selection
}

func (h *ReseauCtrl) Select(c echo.Context) error {
	var req selectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	ctx := c.Request().Context()
	if req.ID == nil {
		if err := h.repo.SetSelected(ctx, nil); err != nil {
			return mw.Fail(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
	rs, err := h.repo.GetByID(ctx, *req.ID)
	if err != nil {
		return mw.Fail(c, err)
	}
	if err := h.repo.SetSelected(ctx, rs); err != nil {
		return mw.Fail(c, err)
	}
	return c.JSON(http.StatusOK, rs)
}

func (h *ReseauCtrl) Selected(c echo.Context) error {
	rs, err := h.repo.Selected(c.Request().Context())
	if err != nil {
		return mw.Fail(c, err)
	}
	if rs == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, rs)
}
