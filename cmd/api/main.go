package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/MrJamesThe3rd/verhuizer/internal/config"
	"github.com/MrJamesThe3rd/verhuizer/internal/cost"
	costStore "github.com/MrJamesThe3rd/verhuizer/internal/cost/store"
	"github.com/MrJamesThe3rd/verhuizer/internal/database"
	"github.com/MrJamesThe3rd/verhuizer/internal/export"
	verhuizerHttp "github.com/MrJamesThe3rd/verhuizer/internal/http"
	costHandler "github.com/MrJamesThe3rd/verhuizer/internal/http/cost"
	exportHandler "github.com/MrJamesThe3rd/verhuizer/internal/http/export"
	importHandler "github.com/MrJamesThe3rd/verhuizer/internal/http/importcsv"
	packingHandler "github.com/MrJamesThe3rd/verhuizer/internal/http/packing"
	playbookHandler "github.com/MrJamesThe3rd/verhuizer/internal/http/playbook"
	projectHandler "github.com/MrJamesThe3rd/verhuizer/internal/http/project"
	shareHandler "github.com/MrJamesThe3rd/verhuizer/internal/http/share"
	shoppingHandler "github.com/MrJamesThe3rd/verhuizer/internal/http/shopping"
	taskHandler "github.com/MrJamesThe3rd/verhuizer/internal/http/task"
	"github.com/MrJamesThe3rd/verhuizer/internal/importer"
	"github.com/MrJamesThe3rd/verhuizer/internal/packing"
	packingStore "github.com/MrJamesThe3rd/verhuizer/internal/packing/store"
	"github.com/MrJamesThe3rd/verhuizer/internal/playbook"
	playbookStore "github.com/MrJamesThe3rd/verhuizer/internal/playbook/store"
	"github.com/MrJamesThe3rd/verhuizer/internal/project"
	projectStore "github.com/MrJamesThe3rd/verhuizer/internal/project/store"
	"github.com/MrJamesThe3rd/verhuizer/internal/share"
	"github.com/MrJamesThe3rd/verhuizer/internal/shopping"
	shoppingStore "github.com/MrJamesThe3rd/verhuizer/internal/shopping/store"
	"github.com/MrJamesThe3rd/verhuizer/internal/task"
	taskStore "github.com/MrJamesThe3rd/verhuizer/internal/task/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	shareTTL := cfg.Share.TTL

	var (
		projectService  = project.NewService(projectStore.New(db), project.NewPostcodeClient(cfg.Postcode.APIKey))
		costService     = cost.NewService(costStore.New(db))
		taskService     = task.NewService(taskStore.New(db))
		shoppingService = shopping.NewService(shoppingStore.New(db))
		packingService  = packing.NewService(packingStore.New(db))
		playbookService = playbook.NewService(playbookStore.New(db))
		importService   = importer.NewService()
		exportService   = export.NewService(projectService, taskService, costService)
		shareService    = share.NewService(cfg.Share.Secret, shareTTL)
	)

	var (
		projectH  = projectHandler.NewHandler(projectService)
		costH     = costHandler.NewHandler(costService, projectService, packingService, playbookService)
		taskH     = taskHandler.NewHandler(taskService, playbookService)
		shoppingH = shoppingHandler.NewHandler(shoppingService, playbookService)
		packingH  = packingHandler.NewHandler(packingService, playbookService)
		playbookH = playbookHandler.NewHandler(playbookService)
		importH   = importHandler.NewHandler(importService, costService, projectService)
		exportH   = exportHandler.NewHandler(exportService)
		shareH    = shareHandler.NewHandler(shareService, projectService, costService)
	)

	router := verhuizerHttp.New(projectH, costH, taskH, shoppingH, packingH, playbookH, importH, exportH, shareH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
