package main

import (
	"context"
	"embed"
	"runtime"

	"jobsdb/app"
	"jobsdb/app/settings"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	wruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	// Create an instance of the app structure
	appInstance := app.NewApp()
	settingsService := settings.NewSettingsService()

	AppMenu := menu.NewMenu()
	if runtime.GOOS == "darwin" {
		AppMenu.Append(menu.AppMenu())
	}

	FileMenu := AppMenu.AddSubmenu("File")
	FileMenu.AddText("Open Database", keys.CmdOrCtrl("o"), func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:openDatabase")
		}
	})
	FileMenu.AddText("Import Scrape Dumps", keys.CmdOrCtrl("i"), func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:importDumps")
		}
	})
	FileMenu.AddText("Reload Database", keys.CmdOrCtrl("r"), func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:reload")
		}
	})
	FileMenu.AddSeparator()
	FileMenu.AddText("Copy Selected Rows", keys.CmdOrCtrl("c"), func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:copySelected")
		}
	})
	FileMenu.AddText("Export Filtered Jobs", keys.CmdOrCtrl("e"), func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:export")
		}
	})
	FileMenu.AddSeparator()
	FileMenu.AddText("Settings", keys.CmdOrCtrl(","), func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:settings")
		}
	})

	ViewMenu := AppMenu.AddSubmenu("View")
	cardViewMenuItem := ViewMenu.AddText("Card View", keys.CmdOrCtrl("1"), nil)
	cardViewMenuItem.OnClick(func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:viewCards")
		}
	})
	tableViewMenuItem := ViewMenu.AddText("Table View", keys.CmdOrCtrl("2"), nil)
	tableViewMenuItem.OnClick(func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:viewTable")
		}
	})
	randomViewMenuItem := ViewMenu.AddText("Random Jobs", keys.CmdOrCtrl("3"), nil)
	randomViewMenuItem.OnClick(func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:viewRandom")
		}
	})
	ViewMenu.AddSeparator()
	histogramMenuItem := ViewMenu.AddText("Toggle Year Histogram", keys.CmdOrCtrl("h"), nil)
	histogramMenuItem.OnClick(func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:toggleHistogram")
		}
	})
	cacheIndicatorMenuItem := ViewMenu.AddText("Toggle Cache Indicator", nil, nil)
	cacheIndicatorMenuItem.OnClick(func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:toggleCacheIndicator")
		}
	})

	HelpMenu := AppMenu.AddSubmenu("Help")
	HelpMenu.AddText("Shortcuts", nil, func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:shortcuts")
		}
	})
	HelpMenu.AddSeparator()
	HelpMenu.AddText("About", nil, func(_ *menu.CallbackData) {
		if appInstance != nil {
			wruntime.EventsEmit(appInstance.Ctx(), "menu:about")
		}
	})

	// Get saved window size or use defaults
	width, height, err := appInstance.GetSavedWindowSize()
	if err != nil {
		println("Warning: Failed to get saved window size, using defaults:", err.Error())
		width, height = 1024, 768
	}

	// Create application with options
	err = wails.Run(&options.App{
		Title:     "Rockstar Jobs Database",
		Width:     width,
		Height:    height,
		Menu:      AppMenu,
		MinWidth:  400,
		MinHeight: 300,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 24, G: 26, B: 32, A: 1},
		OnStartup: func(ctx context.Context) {
			appInstance.Startup(ctx)
			settingsService.Startup(ctx)
			// Ensure instance ID is generated on first startup
			if err := settingsService.EnsureInstanceID(); err != nil {
				println("Warning: Failed to generate instance ID:", err.Error())
			}
		},
		Bind: []interface{}{
			appInstance,
			settingsService,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
