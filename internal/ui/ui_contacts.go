package ui

import (
	"log/slog"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-toolbox/internal/config"
	"github.com/tartampluch/go-toolbox/internal/engine"
	"github.com/tartampluch/go-toolbox/internal/present"
)

// sortEntries orders entries by a table column. Ties on the date column
// fall back to the name. Unknown years sort after known ones when
// ascending.
func sortEntries(entries []engine.AnniversaryEntry, col int, asc bool) {
	less := func(a, b engine.AnniversaryEntry) bool {
		switch col {
		case config.ColIDName:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case config.ColIDKind:
			return a.Kind < b.Kind
		case config.ColIDAge:
			if a.YearKnown != b.YearKnown {
				return a.YearKnown
			}
			return a.AgeNext < b.AgeNext
		default:
			if a.NextOccurrence.Equal(b.NextOccurrence) {
				return a.Name < b.Name
			}
			return a.NextOccurrence.Before(b.NextOccurrence)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if asc {
			return less(entries[i], entries[j])
		}
		return less(entries[j], entries[i])
	})

	slog.Debug(config.LogMsgSorted,
		config.LogKeyComponent, config.CompUI,
		config.LogKeySortCol, col,
		config.LogKeySortAsc, asc)
}

// cellText renders one table cell.
func cellText(p *present.Presenter, e engine.AnniversaryEntry, col int) string {
	switch col {
	case config.ColIDName:
		return e.Name
	case config.ColIDKind:
		return p.Kind(e.Kind)
	case config.ColIDDate:
		return p.Date(e.NextOccurrence)
	case config.ColIDAge:
		return p.AgeTransition(e)
	}
	return ""
}

var columnTitles = map[int]string{
	config.ColIDName: config.TKeyColName,
	config.ColIDKind: config.TKeyColKind,
	config.ColIDDate: config.TKeyColDate,
	config.ColIDAge:  config.TKeyColAge,
}

// ShowContactsWindow lists the entries of the last sync, next occurrence
// first. Tapping a header sorts by that column.
func (app *ToolboxApp) ShowContactsWindow() {
	if app.contactsWindow != nil {
		app.contactsWindow.RequestFocus()
		return
	}

	p := app.Presenter()
	w := app.App.NewWindow(p.Msg(config.TKeyWinContacts))
	w.Resize(fyne.NewSize(config.ContactsWinWidth, config.ContactsWinHeight))
	app.contactsWindow = w

	entries := app.snapshotContacts()
	slog.Info(config.LogMsgOpenWin,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyWindow, config.TKeyWinContacts,
		config.LogKeyCount, len(entries))

	sortCol, sortAsc := config.ColIDDate, true
	sortEntries(entries, sortCol, sortAsc)

	table := widget.NewTable(
		func() (int, int) { return len(entries), config.ColCount },
		func() fyne.CanvasObject { return widget.NewLabel(config.TablePlaceholder) },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			if id.Row < len(entries) {
				o.(*widget.Label).SetText(cellText(p, entries[id.Row], id.Col))
			}
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewButton(config.HeaderPlaceholder, nil)
	}
	table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		btn := o.(*widget.Button)
		text := p.Msg(columnTitles[id.Col])
		if id.Col == sortCol {
			if sortAsc {
				text += config.SortIconAsc
			} else {
				text += config.SortIconDesc
			}
		}
		btn.SetText(text)
		btn.OnTapped = func() {
			if sortCol == id.Col {
				sortAsc = !sortAsc
			} else {
				sortCol, sortAsc = id.Col, true
			}
			sortEntries(entries, sortCol, sortAsc)
			table.Refresh()
		}
	}

	table.SetColumnWidth(config.ColIDName, config.ColWidthName)
	table.SetColumnWidth(config.ColIDKind, config.ColWidthKind)
	table.SetColumnWidth(config.ColIDDate, config.ColWidthDate)
	table.SetColumnWidth(config.ColIDAge, config.ColWidthAge)

	w.SetContent(container.NewBorder(nil, nil, nil, nil, table))
	w.SetOnClosed(func() { app.contactsWindow = nil })
	w.Show()
}
