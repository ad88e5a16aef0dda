package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/nexlify/nexlify-smoke/ide/asset"
)

// AssetBrowser is the category/search browser below the viewport. It is a
// thin view over asset.Manager: categories on the left, a search entry on
// top, matching assets in the list.
type AssetBrowser struct {
	manager *asset.Manager

	category asset.Type
	results  []asset.Info
	lastErr  error

	categories *widget.List
	search     *widget.Entry
	assetList  *widget.List
	status     *widget.Label
	content    fyne.CanvasObject
	onSelect   func(a asset.Info)
}

// NewAssetBrowser builds the browser over an initialized asset manager and
// shows the first category.
func NewAssetBrowser(manager *asset.Manager) *AssetBrowser {
	b := &AssetBrowser{manager: manager}

	cats := asset.Categories()
	b.categories = widget.NewList(
		func() int { return len(cats) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(string(cats[i]))
		},
	)
	b.categories.OnSelected = func(i widget.ListItemID) {
		b.SelectCategory(cats[i])
	}

	b.search = widget.NewEntry()
	b.search.SetPlaceHolder("Search assets...")
	b.search.OnChanged = func(term string) { b.Search(term) }

	b.assetList = widget.NewList(
		func() int { return len(b.results) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			if i < len(b.results) {
				a := b.results[i]
				o.(*widget.Label).SetText(fmt.Sprintf("%s  (%d bytes)", a.Name, a.Size))
			}
		},
	)
	b.assetList.OnSelected = func(i widget.ListItemID) {
		if b.onSelect != nil && i < len(b.results) {
			b.onSelect(b.results[i])
		}
	}

	b.status = widget.NewLabel("")

	right := container.NewBorder(b.search, b.status, nil, nil, b.assetList)
	split := container.NewHSplit(b.categories, right)
	split.SetOffset(0.25)
	b.content = split

	b.categories.Select(0)
	return b
}

// Content returns the browser's canvas object.
func (b *AssetBrowser) Content() fyne.CanvasObject {
	return b.content
}

// SelectCategory switches the listing to one asset category.
func (b *AssetBrowser) SelectCategory(t asset.Type) {
	b.category = t
	assets, err := b.manager.List(t)
	b.setResults(assets, err)
}

// Search lists assets matching term within the selected category. An empty
// term falls back to the category listing.
func (b *AssetBrowser) Search(term string) {
	if term == "" {
		b.SelectCategory(b.category)
		return
	}
	assets, err := b.manager.Search(term,
		asset.Filter{Field: "type", Condition: asset.ConditionEqual, Value: string(b.category)})
	b.setResults(assets, err)
}

// Results returns the currently listed assets.
func (b *AssetBrowser) Results() []asset.Info {
	return b.results
}

// Category returns the selected category.
func (b *AssetBrowser) Category() asset.Type {
	return b.category
}

// Err returns the last listing error, if any.
func (b *AssetBrowser) Err() error {
	return b.lastErr
}

// OnAssetSelected registers a callback for asset selection.
func (b *AssetBrowser) OnAssetSelected(fn func(a asset.Info)) {
	b.onSelect = fn
}

func (b *AssetBrowser) setResults(assets []asset.Info, err error) {
	b.lastErr = err
	if err != nil {
		b.results = nil
		b.status.SetText(fmt.Sprintf("error: %v", err))
	} else {
		b.results = assets
		b.status.SetText(fmt.Sprintf("%d assets in %s", len(assets), b.category))
	}
	b.assetList.Refresh()
}
