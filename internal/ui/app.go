package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"CoordinatePlane/internal/config"
	"CoordinatePlane/internal/state"
)

func RunApp(cfg config.Config, model *state.PlaneModel) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Title)

	planeSize := fyne.NewSize(float32(cfg.PlaneWidth), float32(cfg.PlaneHeight))
	plane := NewPlaneWidget(model, planeSize)
	ctrl := NewController(model, plane, cfg.GenerateCount)

	bottom := container.NewVBox(NewControls(ctrl), plane.StatusBar())
	content := container.NewBorder(NewToolbar(ctrl, myWindow), bottom, nil, nil, plane)

	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(planeSize.Width+100, planeSize.Height+100))
	myWindow.ShowAndRun()
}
