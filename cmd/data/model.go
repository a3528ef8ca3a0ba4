package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rxtech-lab/argo-data/pkg/marketdata"
	"github.com/rxtech-lab/argo-data/pkg/marketdata/storage"
)

// Application states.
const (
	StateLoading = iota
	StateDatasetSelect
	StateRecordDisplay
)

// maxRows is the number of most recent rows shown for a dataset.
const maxRows = 500

// Model is the main Bubble Tea model for the dataset browser.
type Model struct {
	state       int
	store       storage.Store
	dataDir     string
	datasetList list.Model
	dataTable   table.Model
	datasets    []storage.Dataset
	selected    storage.Dataset
	total       int
	err         error
	width       int
	height      int
}

// NewModel creates a Model reading from store.
func NewModel(store storage.Store, dataDir string) Model {
	return Model{
		state:       StateLoading,
		store:       store,
		dataDir:     dataDir,
		datasetList: NewDatasetList(nil),
		dataTable:   NewCandleTable(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return loadDatasets(m.store)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			return m.handleEsc()
		case "r":
			m.err = nil
			if m.state == StateRecordDisplay {
				return m, loadRecords(m.store, m.selected)
			}

			return m, loadDatasets(m.store)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.datasetList.SetSize(msg.Width, msg.Height-4)
		m.dataTable.SetWidth(msg.Width)
		m.dataTable.SetHeight(msg.Height - 6)

		return m, nil

	case DatasetsLoadedMsg:
		m.datasets = msg.Datasets
		m.datasetList.SetItems(datasetItems(msg.Datasets))
		if m.state == StateLoading {
			m.state = StateDatasetSelect
		}

		return m, nil

	case RecordsLoadedMsg:
		m.selected = msg.Dataset
		if msg.Dataset.Kind == storage.DatasetTrades {
			m.total = len(msg.Trades)
			m.dataTable = UpdateTradeRows(NewTradeTable(), tail(msg.Trades, maxRows))
		} else {
			m.total = len(msg.Candles)
			m.dataTable = UpdateCandleRows(NewCandleTable(), tail(msg.Candles, maxRows))
		}

		m.resizeTable()
		m.state = StateRecordDisplay

		return m, nil

	case LoadErrorMsg:
		m.err = msg.Err
		if m.state == StateLoading {
			m.state = StateDatasetSelect
		}

		return m, nil
	}

	switch m.state {
	case StateDatasetSelect:
		return m.updateDatasetSelect(msg)
	case StateRecordDisplay:
		return m.updateRecordDisplay(msg)
	}

	return m, nil
}

func (m *Model) resizeTable() {
	if m.width > 0 {
		m.dataTable.SetWidth(m.width)
		m.dataTable.SetHeight(m.height - 6)
	}
}

func (m Model) handleEsc() (tea.Model, tea.Cmd) {
	if m.state == StateRecordDisplay {
		m.state = StateDatasetSelect
		m.selected = storage.Dataset{}
		m.total = 0
		m.err = nil
		m.dataTable.SetRows(nil)
	}

	return m, nil
}

func (m Model) updateDatasetSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		if item, ok := m.datasetList.SelectedItem().(datasetItem); ok {
			m.err = nil

			return m, loadRecords(m.store, item.dataset)
		}
	}

	var cmd tea.Cmd
	m.datasetList, cmd = m.datasetList.Update(msg)

	return m, cmd
}

func (m Model) updateRecordDisplay(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.dataTable, cmd = m.dataTable.Update(msg)

	return m, cmd
}

// loadDatasets returns a command listing the stored datasets.
func loadDatasets(store storage.Store) tea.Cmd {
	return func() tea.Msg {
		datasets, err := store.ListDatasets(context.Background())
		if err != nil {
			return LoadErrorMsg{Err: err}
		}

		return DatasetsLoadedMsg{Datasets: datasets}
	}
}

// loadRecords returns a command reading every row of dataset.
func loadRecords(store storage.Store, dataset storage.Dataset) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		if dataset.Kind == storage.DatasetTrades {
			trades, err := store.LoadTrades(ctx, dataset.Pair, marketdata.UnboundedTimeRange())
			if err != nil {
				return LoadErrorMsg{Err: err}
			}

			return RecordsLoadedMsg{Dataset: dataset, Candles: nil, Trades: trades}
		}

		candles, err := store.LoadCandles(ctx, dataset.Pair, dataset.Timeframe.Unwrap(), marketdata.UnboundedTimeRange())
		if err != nil {
			return LoadErrorMsg{Err: err}
		}

		return RecordsLoadedMsg{Dataset: dataset, Candles: candles, Trades: nil}
	}
}

func tail[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}

	return items[len(items)-n:]
}

// View implements tea.Model.
func (m Model) View() string {
	var s strings.Builder

	switch m.state {
	case StateLoading:
		s.WriteString(TitleStyle.Render("Argo Data"))
		s.WriteString("\n\n")
		s.WriteString(fmt.Sprintf("Reading %s ...\n", m.dataDir))

	case StateDatasetSelect:
		s.WriteString(TitleStyle.Render(fmt.Sprintf("Argo Data - %s", m.dataDir)))
		s.WriteString("\n\n")

		if m.err != nil {
			s.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			s.WriteString("\n\n")
		}

		if len(m.datasets) == 0 {
			s.WriteString("No data found. Run the download command first.\n")
		} else {
			s.WriteString(m.datasetList.View())
		}

		s.WriteString("\n")
		s.WriteString(HelpStyle.Render("Enter: open | r: reload | q: quit"))

	case StateRecordDisplay:
		s.WriteString(TitleStyle.Render(fmt.Sprintf("%s (%d rows)", m.selected.Name(), m.total)))
		s.WriteString("\n\n")

		if m.err != nil {
			s.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			s.WriteString("\n\n")
		}

		if m.total == 0 {
			s.WriteString("No rows stored.\n")
		} else {
			s.WriteString(m.dataTable.View())
		}

		s.WriteString("\n")
		help := "q: quit | Esc: back | r: reload"
		if m.total > maxRows {
			help += fmt.Sprintf(" | showing last %d", maxRows)
		}

		s.WriteString(HelpStyle.Render(help))
	}

	return s.String()
}
