// Package export renders a category hierarchy to a standalone SVG
// diagram: one box per category, indented by depth, with the breadcrumb
// as a hover title.
package export

import (
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/Dicklesworthstone/prefnav/pkg/model"
)

// Layout constants, in SVG user units.
const (
	boxWidth   = 220
	boxHeight  = 34
	rowGap     = 12
	indentStep = 36
	marginX    = 24
	marginY    = 24
	cornerR    = 6
)

// row is one category positioned in the diagram.
type row struct {
	category *model.Category
	depth    int
	index    int // vertical slot
	parent   int // parent's vertical slot, -1 for top level
}

// WriteSVG renders the category forest to w.
func WriteSVG(w io.Writer, categories []*model.Category) error {
	rows := layoutRows(categories)

	maxDepth := 0
	for _, r := range rows {
		if r.depth > maxDepth {
			maxDepth = r.depth
		}
	}
	width := marginX*2 + indentStep*maxDepth + boxWidth
	height := marginY*2 + len(rows)*(boxHeight+rowGap)
	if len(rows) == 0 {
		height = marginY * 2
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title("Preference categories")

	for _, r := range rows {
		x := marginX + r.depth*indentStep
		y := marginY + r.index*(boxHeight+rowGap)

		if r.parent >= 0 {
			// Connector from the parent box's left edge down to this box.
			px := marginX + (r.depth-1)*indentStep + indentStep/2
			py := marginY + r.parent*(boxHeight+rowGap) + boxHeight
			midY := y + boxHeight/2
			canvas.Line(px, py, px, midY, "stroke:#6272a4;stroke-width:1")
			canvas.Line(px, midY, x, midY, "stroke:#6272a4;stroke-width:1")
		}

		canvas.Roundrect(x, y, boxWidth, boxHeight, cornerR, cornerR,
			"fill:#282a36;stroke:#bd93f9;stroke-width:1")

		label := r.category.Description()
		if icon := r.category.ItemIcon(); icon != "" {
			label = icon + " " + label
		}
		canvas.Text(x+10, y+boxHeight/2+5, label,
			"font-family:monospace;font-size:13px;fill:#f8f8f2")

		if crumb := r.category.Breadcrumb(); crumb != "" && crumb != r.category.Description() {
			canvas.Text(x+boxWidth-8, y+boxHeight/2+5, groupCountLabel(r.category),
				"font-family:monospace;font-size:10px;fill:#6272a4;text-anchor:end")
		}
	}

	canvas.End()
	return nil
}

// WriteSVGFile renders the category forest to a file at path.
func WriteSVGFile(path string, categories []*model.Category) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	defer f.Close()
	if err := WriteSVG(f, categories); err != nil {
		return err
	}
	return f.Close()
}

// layoutRows flattens the forest in pre-order, assigning each category a
// vertical slot and remembering its parent's slot for connector lines.
func layoutRows(categories []*model.Category) []row {
	var rows []row
	var walk func(cats []*model.Category, depth, parent int)
	walk = func(cats []*model.Category, depth, parent int) {
		for _, c := range cats {
			idx := len(rows)
			rows = append(rows, row{category: c, depth: depth, index: idx, parent: parent})
			if c.Children() != nil {
				walk(c.Children(), depth+1, idx)
			}
		}
	}
	walk(categories, 0, -1)
	return rows
}

func groupCountLabel(c *model.Category) string {
	n := len(model.GroupsToSettings(c.Groups()))
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d settings", n)
}
