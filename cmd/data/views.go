package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/rxtech-lab/argo-data/internal/types"
	"github.com/rxtech-lab/argo-data/pkg/marketdata/storage"
)

const timeLayout = "2006-01-02 15:04:05"

// datasetItem implements list.Item for a stored dataset.
type datasetItem struct {
	dataset storage.Dataset
}

func (i datasetItem) Title() string { return i.dataset.Name() }

func (i datasetItem) Description() string {
	if i.dataset.Start.IsNone() {
		return fmt.Sprintf("%d rows", i.dataset.Rows)
	}

	return fmt.Sprintf("%d rows, %s to %s", i.dataset.Rows,
		i.dataset.Start.Unwrap().Format(timeLayout), i.dataset.End.TakeOr(time.Time{}).Format(timeLayout))
}

func (i datasetItem) FilterValue() string { return i.dataset.Name() }

func datasetItems(datasets []storage.Dataset) []list.Item {
	items := make([]list.Item, 0, len(datasets))
	for _, d := range datasets {
		items = append(items, datasetItem{dataset: d})
	}

	return items
}

// NewDatasetList creates a new list for dataset selection.
func NewDatasetList(datasets []storage.Dataset) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true

	l := list.New(datasetItems(datasets), delegate, 0, 0)
	l.Title = "Select Dataset"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return l
}

func newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	t.SetStyles(s)

	return t
}

// NewCandleTable creates a new table for displaying candles.
func NewCandleTable() table.Model {
	return newTable([]table.Column{
		{Title: "Time", Width: 20},
		{Title: "Open", Width: 14},
		{Title: "High", Width: 14},
		{Title: "Low", Width: 14},
		{Title: "Close", Width: 18},
		{Title: "Volume", Width: 16},
	})
}

// NewTradeTable creates a new table for displaying trades.
func NewTradeTable() table.Model {
	return newTable([]table.Column{
		{Title: "Time", Width: 24},
		{Title: "Id", Width: 14},
		{Title: "Side", Width: 6},
		{Title: "Price", Width: 18},
		{Title: "Amount", Width: 14},
		{Title: "Cost", Width: 16},
	})
}

// UpdateCandleRows fills the table with candles, oldest first.
func UpdateCandleRows(t table.Model, candles []types.MarketData) table.Model {
	rows := make([]table.Row, 0, len(candles))

	prev := 0.0
	for _, c := range candles {
		rows = append(rows, table.Row{
			c.Time.UTC().Format(timeLayout),
			fmt.Sprintf("%.4f", c.Open),
			fmt.Sprintf("%.4f", c.High),
			fmt.Sprintf("%.4f", c.Low),
			FormatPriceWithColor(c.Close, prev),
			fmt.Sprintf("%.2f", c.Volume),
		})
		prev = c.Close
	}

	t.SetRows(rows)

	return t
}

// UpdateTradeRows fills the table with trades, oldest first.
func UpdateTradeRows(t table.Model, trades []types.Trade) table.Model {
	rows := make([]table.Row, 0, len(trades))

	prev := 0.0
	for _, tr := range trades {
		side := string(tr.Side)
		if side == "" {
			side = "-"
		}

		rows = append(rows, table.Row{
			tr.Time.UTC().Format("2006-01-02 15:04:05.000"),
			tr.Id,
			side,
			FormatPriceWithColor(tr.Price, prev),
			fmt.Sprintf("%.6f", tr.Amount),
			fmt.Sprintf("%.2f", tr.Cost()),
		})
		prev = tr.Price
	}

	t.SetRows(rows)

	return t
}
