package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/Kouaj/Notations-sub000/config"
	"github.com/Kouaj/Notations-sub000/database"
	"github.com/Kouaj/Notations-sub000/router"

	authCtrlImp "github.com/Kouaj/Notations-sub000/pkg/auth/controllerImp"
	"github.com/Kouaj/Notations-sub000/pkg/auth/credstore"

	healthCtrlImp "github.com/Kouaj/Notations-sub000/pkg/health/controllerImp"
	"github.com/Kouaj/Notations-sub000/pkg/selection"

	userRepoImp "github.com/Kouaj/Notations-sub000/pkg/user/repositoryImp"

	reseauCtrlImp "github.com/Kouaj/Notations-sub000/pkg/reseau/controllerImp"
	reseauRepoImp "github.com/Kouaj/Notations-sub000/pkg/reseau/repositoryImp"

	parcelleCtrlImp "github.com/Kouaj/Notations-sub000/pkg/parcelle/controllerImp"
	parcelleRepoImp "github.com/Kouaj/Notations-sub000/pkg/parcelle/repositoryImp"

	histCtrlImp "github.com/Kouaj/Notations-sub000/pkg/history/controllerImp"
	histRepoImp "github.com/Kouaj/Notations-sub000/pkg/history/repositoryImp"
	notationSvcImp "github.com/Kouaj/Notations-sub000/pkg/notation/serviceImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB manager (lazy open; the first repository call migrates)
	m := database.NewManager(cfg.DBPath)

	// 3) Shared stores
	sel := selection.New(m)
	creds := credstore.New(m, cfg.BcryptCost)

	// 4) Repositories
	users := userRepoImp.New(m, sel, creds)
	reseaux := reseauRepoImp.New(m, sel)
	parcelles := parcelleRepoImp.New(m, sel)
	history := histRepoImp.New(m)

	// 5) Services + controllers
	notationSvc := notationSvcImp.New(history)
	authCtrl := authCtrlImp.New(users, creds, sel)
	reseauCtrl := reseauCtrlImp.New(reseaux)
	parcelleCtrl := parcelleCtrlImp.New(parcelles, reseaux)
	histCtrl := histCtrlImp.New(history, notationSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(m)

	// 6) Echo + static UI
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Static("/static", cfg.StaticDir)
	e.File("/", filepath.Join(cfg.StaticDir, "index.html"))
	if _, err := os.Stat(filepath.Join(cfg.StaticDir, "index.html")); err != nil {
		log.Printf("WARN: %s/index.html not found: %v", cfg.StaticDir, err)
	}

	// 7) Router
	r := router.New(e, users, authCtrl, reseauCtrl, parcelleCtrl, histCtrl, hCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
