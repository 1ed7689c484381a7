package controllerImp

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Kouaj/Notations-sub000/database"
	"github.com/Kouaj/Notations-sub000/entities"
	"github.com/Kouaj/Notations-sub000/pkg/auth/controller"
	"github.com/Kouaj/Notations-sub000/pkg/auth/credstore"
	mw "github.com/Kouaj/Notations-sub000/pkg/middleware"
	"github.com/Kouaj/Notations-sub000/pkg/selection"
	userRepo "github.com/Kouaj/Notations-sub000/pkg/user/repository"
)

type authCtrl struct {
	users userRepo.UserRepository
	creds *credstore.Store
	sel   *selection.Store
}

func New(users userRepo.UserRepository, creds *credstore.Store, sel *selection.Store) controller.AuthController {
	return &authCtrl{users: users, creds: creds, sel: sel}
}

type registerReq struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (h *authCtrl) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	ctx := c.Request().Context()
	u := &entities.User{ID: uuid.NewString(), Email: req.Email, Name: req.Name}
	if err := h.users.Save(ctx, u); err != nil {
		return mw.Fail(c, err)
	}
	if err := h.creds.Set(ctx, u.ID, req.Password); err != nil {
		return mw.Fail(c, err)
	}
	if err := h.users.SetCurrent(ctx, u); err != nil {
		return mw.Fail(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	ctx := c.Request().Context()
	u, err := h.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if database.IsNotFound(err) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "bad credentials"})
		}
		return mw.Fail(c, err)
	}
	ok, err := h.creds.Verify(ctx, u.ID, req.Password)
	if err != nil {
		return mw.Fail(c, err)
	}
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "bad credentials"})
	}
	if err := h.users.SetCurrent(ctx, u); err != nil {
		return mw.Fail(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// Logout clears the session singleton and both selection slots.
func (h *authCtrl) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.users.SetCurrent(ctx, nil); err != nil {
		return mw.Fail(c, err)
	}
	if err := h.sel.Clear(ctx, selection.KindSelectedReseau); err != nil {
		return mw.Fail(c, err)
	}
	if err := h.sel.Clear(ctx, selection.KindSelectedParcelle); err != nil {
		return mw.Fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	return c.JSON(http.StatusOK, c.Get("user"))
}

func (h *authCtrl) Reset(c echo.Context) error {
	ok, err := h.users.ResetAll(c.Request().Context())
	if err != nil {
		return mw.Fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": ok})
}
