package app

// sidePanelMinWidth is the narrowest window that still shows the side panel.
const sidePanelMinWidth = 90

// layoutDims holds computed layout dimensions for the UI.
type layoutDims struct {
	width        int
	height       int
	headerHeight int
	footerHeight int
	filterHeight int
	bodyHeight   int
	gapX         int

	listWidth       int
	listInnerWidth  int
	listInnerHeight int

	showSide       bool
	sideWidth      int
	sideInnerWidth int
}

// computeLayout calculates the layout dimensions based on window size and UI state.
func (m *Model) computeLayout() layoutDims {
	width := m.windowWidth
	height := m.windowHeight
	if width <= 0 {
		width = 120
	}
	if height <= 0 {
		height = 40
	}

	headerHeight := 1
	footerHeight := 1
	filterHeight := 0
	if m.showingFilter || m.filterQuery != "" {
		filterHeight = 1
	}
	bodyHeight := maxInt(height-headerHeight-footerHeight-filterHeight, 5)

	l := layoutDims{
		width:        width,
		height:       height,
		headerHeight: headerHeight,
		footerHeight: footerHeight,
		filterHeight: filterHeight,
		bodyHeight:   bodyHeight,
		listWidth:    width,
	}

	if width >= sidePanelMinWidth {
		l.showSide = true
		l.gapX = 1
		l.sideWidth = maxInt(width*3/10, 30)
		l.listWidth = width - l.sideWidth - l.gapX
	}

	paneFrameX := m.basePaneStyle().GetHorizontalFrameSize()
	paneFrameY := m.basePaneStyle().GetVerticalFrameSize()

	// The list pane spends one row on its title.
	l.listInnerWidth = maxInt(1, l.listWidth-paneFrameX)
	l.listInnerHeight = maxInt(1, bodyHeight-paneFrameY-1)
	if l.showSide {
		l.sideInnerWidth = maxInt(1, l.sideWidth-paneFrameX)
	}
	return l
}
