package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Kouaj/Notations-sub000/database"
	"github.com/Kouaj/Notations-sub000/entities"
	mw "github.com/Kouaj/Notations-sub000/pkg/middleware"
	"github.com/Kouaj/Notations-sub000/pkg/parcelle/controller"
	"github.com/Kouaj/Notations-sub000/pkg/parcelle/repository"
	reseauRepo "github.com/Kouaj/Notations-sub000/pkg/reseau/repository"
)

type ParcelleCtrl struct {
	repo    repository.ParcelleRepository
	reseaux reseauRepo.ReseauRepository
}

func New(repo repository.ParcelleRepository, reseaux reseauRepo.ReseauRepository) controller.ParcelleController {
	return &ParcelleCtrl{repo: repo, reseaux: reseaux}
}

func (h *ParcelleCtrl) List(c echo.Context) error {
	ctx := c.Request().Context()
	if q := c.QueryParam("reseau_id"); q != "" {
		id, _ := strconv.Atoi(q)
		out, err := h.repo.GetByReseau(ctx, uint(id))
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

func (h *ParcelleCtrl) Get(c echo.Context) error {
	ctx := c.Request().Context()
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.repo.GetByID(ctx, uint(id))
	if err != nil {
		return mw.Fail(c, err)
	}
	if p.Placettes, err = h.repo.GetPlacettes(ctx, p.ID); err != nil {
		return mw.Fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

type createReq struct {
	Name      string   `json:"name"`
	ReseauID  uint     `json:"reseau_id"`
	Placettes []string `json:"placettes"`
}

// Create resolves the parent reseau and denormalizes its name onto the
// record before handing it to the repository, which does no cross-entity
// work itself.
func (h *ParcelleCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	ctx := c.Request().Context()
	rs, err := h.reseaux.GetByID(ctx, req.ReseauID)
	if err != nil {
		if database.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "reseau not found"})
		}
		return mw.Fail(c, err)
	}
	p := &entities.Parcelle{Name: req.Name, ReseauID: rs.ID, ReseauName: rs.Name, UserID: uid}
	if err := h.repo.Save(ctx, p); err != nil {
		return mw.Fail(c, err)
	}
	for _, name := range req.Placettes {
		pl := &entities.Placette{Name: name, ParcelleID: p.ID}
		if err := h.repo.SavePlacette(ctx, pl); err != nil {
			return mw.Fail(c, err)
		}
		p.Placettes = append(p.Placettes, *pl)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ParcelleCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(c.Request().Context(), uint(id)); err != nil {
		return mw.Fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type selectReq struct {
	ID *uint `json:"id"` // null clears the selection
}

func (h *ParcelleCtrl) Select(c echo.Context) error {
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
	p, err := h.repo.GetByID(ctx, *req.ID)
	if err != nil {
		return mw.Fail(c, err)
	}
	if err := h.repo.SetSelected(ctx, p); err != nil {
		return mw.Fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ParcelleCtrl) Selected(c echo.Context) error {
	p, err := h.repo.Selected(c.Request().Context())
	if err != nil {
		return mw.Fail(c, err)
	}
	if p == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, p)
}

type placetteReq struct {
	Name string `json:"name"`
}

func (h *ParcelleCtrl) AddPlacette(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req placetteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	pl := &entities.Placette{Name: req.Name, ParcelleID: uint(id)}
	if err := h.repo.SavePlacette(c.Request().Context(), pl); err != nil {
		return mw.Fail(c, err)
	}
	return c.JSON(http.StatusCreated, pl)
}

func (h *ParcelleCtrl) DeletePlacette(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("placette_id"))
	if err := h.repo.DeletePlacette(c.Request().Context(), uint(id)); err != nil {
		return mw.Fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
