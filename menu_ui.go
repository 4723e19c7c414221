package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/gravitywell/input"
	"github.com/milk9111/gravitywell/mode"
	"golang.org/x/image/font/basicfont"
)

// menuUI holds the clickable menus. Clicks are turned into the same logical
// actions as the keyboard and merged into the next input frame.
type menuUI struct {
	main    *ebitenui.UI
	over    *ebitenui.UI
	pending input.Frame
}

type menuButton struct {
	label   string
	onClick func(f *input.Frame)
}

func newMenuUI() *menuUI {
	m := &menuUI{}
	m.main = m.build([]menuButton{
		{"Start", func(f *input.Frame) { f.Start = true }},
		{"Quit", func(f *input.Frame) { f.Quit = true }},
	})
	m.over = m.build([]menuButton{
		{"Main Menu", func(f *input.Frame) { f.Confirm = true }},
		{"Quit", func(f *input.Frame) { f.Quit = true }},
	})
	return m
}

func (m *menuUI) build(buttons []menuButton) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	hoverImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 20, Right: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				Padding:            &widget.Insets{Bottom: 40},
			}),
		),
	)
	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: hoverImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.TextPadding(&widget.Insets{Top: 6, Bottom: 6, Left: 16, Right: 16}),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				onClick(&m.pending)
			}),
		))
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

// active is the menu shown in mode m, or nil.
func (m *menuUI) active(md mode.Mode) *ebitenui.UI {
	switch md {
	case mode.ModeMainMenu:
		return m.main
	case mode.ModeGameOver:
		return m.over
	}
	return nil
}

// take returns the actions clicked since the last call.
func (m *menuUI) take() input.Frame {
	f := m.pending
	m.pending = input.Frame{}
	return f
}
