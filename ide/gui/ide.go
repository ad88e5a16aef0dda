package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/nexlify/nexlify-smoke/ide/ai"
	"github.com/nexlify/nexlify-smoke/ide/asset"
)

// WindowTitle is the IDE's main window title.
const WindowTitle = "Nexlify Game Design IDE"

// IDE composes the main window: header on top, scene hierarchy on the
// left, viewport with the asset browser below it in the center, the AI
// chat panel on the right, a status bar at the bottom. The asset manager
// is injected through the constructor.
type IDE struct {
	Header  *Header
	Browser *AssetBrowser
	Chat    *ChatPanel

	hierarchy *widget.Tree
	status    *widget.Label
	content   fyne.CanvasObject

	selectedObject string
}

// NewIDE builds the main window content from its collaborators.
func NewIDE(manager *asset.Manager, assistant *ai.Assistant) *IDE {
	ide := &IDE{
		Header:  NewHeader(),
		Browser: NewAssetBrowser(manager),
		Chat:    NewChatPanel(assistant),
	}

	ide.hierarchy = sceneHierarchy()
	ide.hierarchy.OnSelected = func(uid widget.TreeNodeID) {
		ide.selectedObject = uid
		ide.setStatus("Selected: " + uid)
	}

	ide.status = widget.NewLabel("Ready")

	// Center column: viewport placeholder above, asset browser below.
	viewport := viewportPlaceholder()
	center := container.NewVSplit(viewport, ide.Browser.Content())
	center.SetOffset(0.6)

	body := container.NewBorder(
		nil, nil,
		container.NewBorder(widget.NewLabelWithStyle("Hierarchy", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}), nil, nil, nil, ide.hierarchy),
		ide.Chat.Content(),
		center,
	)

	ide.content = container.NewBorder(
		ide.Header.Content(),
		ide.status,
		nil, nil,
		body,
	)

	ide.Header.OnPlayChanged(func(playing bool) {
		if playing {
			ide.setStatus("Playing scene")
		} else {
			ide.setStatus("Stopped")
		}
	})
	ide.Browser.OnAssetSelected(func(a asset.Info) {
		ide.setStatus("Asset: " + a.Path)
	})

	return ide
}

// Content returns the composed window content.
func (ide *IDE) Content() fyne.CanvasObject {
	return ide.content
}

// MinWindowSize is the initial size for the main window.
func (ide *IDE) MinWindowSize() fyne.Size {
	return fyne.NewSize(1280, 720)
}

// SelectedObject returns the hierarchy selection.
func (ide *IDE) SelectedObject() string {
	return ide.selectedObject
}

// StatusText returns the status bar text.
func (ide *IDE) StatusText() string {
	return ide.status.Text
}

func (ide *IDE) setStatus(msg string) {
	ide.status.SetText(msg)
}

// sceneHierarchy builds a tree with a small sample scene.
func sceneHierarchy() *widget.Tree {
	nodes := map[string][]string{
		"":            {"Scene"},
		"Scene":       {"Camera", "Light", "Player", "Environment"},
		"Environment": {"Terrain", "Skybox"},
	}
	return widget.NewTree(
		func(uid widget.TreeNodeID) []widget.TreeNodeID {
			return nodes[uid]
		},
		func(uid widget.TreeNodeID) bool {
			_, ok := nodes[uid]
			return ok
		},
		func(branch bool) fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(uid widget.TreeNodeID, branch bool, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(uid)
		},
	)
}

// viewportPlaceholder stands in for the 3D viewport, which is out of scope.
func viewportPlaceholder() fyne.CanvasObject {
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	label := widget.NewLabelWithStyle("3D Viewport", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	return container.NewStack(bg, container.NewCenter(label))
}
