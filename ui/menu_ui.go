package ui

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuItem is a button whose caption can change while the menu is open
type MenuItem struct {
	Label   func() string
	OnClick func()
}

// Static returns an item with a fixed caption
func Static(label string, onClick func()) MenuItem {
	return MenuItem{Label: func() string { return label }, OnClick: onClick}
}

// MenuUI holds the ebitenui interface for the main menu
type MenuUI struct {
	UI *ebitenui.UI

	Items    []MenuItem
	Settings []MenuItem
	// Read on every refresh
	BestSeconds func() float64

	bestLabel *widget.Label
	buttons   []*widget.Button
	labels    []func() string

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewMenuUI creates the main menu. Items are stacked large in the middle,
// settings in a smaller row beneath them.
func NewMenuUI(items, settings []MenuItem, best func() float64) (*MenuUI, error) {
	mui := &MenuUI{
		Items:       items,
		Settings:    settings,
		BestSeconds: best,
	}

	if err := mui.loadFonts(); err != nil {
		return nil, err
	}
	mui.buildUI()

	return mui, nil
}

func (mui *MenuUI) loadFonts() error {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load menu font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fmt.Errorf("load menu font: %w", err)
	}

	// Sized to fit the 640x360 screen
	mui.titleFace = &text.GoTextFace{Source: bold, Size: 30}
	mui.normalFace = &text.GoTextFace{Source: regular, Size: 14}
	mui.smallFace = &text.GoTextFace{Source: regular, Size: 10}
	return nil
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &mui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	mui.bestLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.smallFace, &widget.LabelColor{
			Idle: cfg.Menu.TextColor,
		}),
	)
	contentContainer.AddChild(mui.bestLabel)

	for _, item := range mui.Items {
		contentContainer.AddChild(mui.button(item, &mui.normalFace, 160, 24))
	}

	settingsRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	for _, item := range mui.Settings {
		settingsRow.AddChild(mui.button(item, &mui.smallFace, 90, 18))
	}
	contentContainer.AddChild(settingsRow)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("A/D move   W gust   G reset   T twah   hold Q to fly", &mui.smallFace, &widget.LabelColor{
			Idle: cfg.HUD.HintColor,
		}),
	))

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Note: Don't call UpdateUI() here - widgets aren't validated yet
}

func (mui *MenuUI) button(item MenuItem, face *text.Face, w, h int) *widget.Button {
	b := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(w, h),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(item.Label(), face, &widget.ButtonTextColor{
			Idle:    cfg.Menu.TextColor,
			Hover:   cfg.Yellow,
			Pressed: cfg.Menu.TextColor,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			item.OnClick()
		}),
	)
	mui.buttons = append(mui.buttons, b)
	mui.labels = append(mui.labels, item.Label)
	return b
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Menu.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Menu.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		Disabled: image.NewNineSliceColor(cfg.Menu.ButtonPressed),
	}
}

// UpdateUI refreshes every caption that depends on saved state
func (mui *MenuUI) UpdateUI() {
	if best := mui.BestSeconds(); best > 0 {
		mui.bestLabel.Label = fmt.Sprintf("Best: %.1fs", best)
	} else {
		mui.bestLabel.Label = "No rounds yet"
	}
	for i, b := range mui.buttons {
		if textWidget := b.Text(); textWidget != nil {
			textWidget.Label = mui.labels[i]()
		}
	}
}

func (mui *MenuUI) Update() {
	mui.UI.Update()
	// Widgets are validated on the first update; settings can also change
	// from the keyboard, so captions are refreshed every frame after that
	if !mui.initialized {
		mui.initialized = true
	}
	mui.UpdateUI()
}
