package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/jrwynneiii/bluetuner/config"
	"github.com/jrwynneiii/bluetuner/scan"
	"github.com/navidys/tvxwidgets"
	"github.com/rivo/tview"
)

// Powers below this are drawn as zero in the spectrum plot
const plotFloorDB = -120.0

type ChannelTableData struct {
	tview.TableContentReadOnly
	summary *scan.Summary
}

type StatusTableData struct {
	tview.TableContentReadOnly
	summary *scan.Summary
}

var channelHeaders = []string{
	"[lightskyblue]Channel ",
	"[white]Freq (MHz) ",
	"[green]Bursts ",
	"[white]Symbols ",
	"[red]Squelched ",
	"[yellow]Low SNR ",
	"[white]Last SNR (dB)",
}

func (d *ChannelTableData) GetRowCount() int {
	return len(d.summary.Channels) + 1
}

func (d *ChannelTableData) GetColumnCount() int {
	return len(channelHeaders)
}

func (d *ChannelTableData) GetCell(row, column int) *tview.TableCell {
	if column < 0 || column >= len(channelHeaders) {
		return tview.NewTableCell("ERROR")
	}
	if row == 0 {
		return tview.NewTableCell(channelHeaders[column])
	}
	if row > len(d.summary.Channels) {
		return tview.NewTableCell("ERROR")
	}

	st := d.summary.Channels[row-1]
	switch column {
	case 0:
		return tview.NewTableCell(fmt.Sprintf("[lightskyblue]%d", st.Channel))
	case 1:
		return tview.NewTableCell(fmt.Sprintf("[white]%.0f", st.Freq/1e6))
	case 2:
		if st.Bursts == 0 {
			return tview.NewTableCell(fmt.Sprintf("[red]%d", st.Bursts))
		}
		return tview.NewTableCell(fmt.Sprintf("[green]%d", st.Bursts))
	case 3:
		return tview.NewTableCell(fmt.Sprintf("[white]%d", st.Symbols))
	case 4:
		return tview.NewTableCell(fmt.Sprintf("[red]%d", st.Squelched))
	case 5:
		return tview.NewTableCell(fmt.Sprintf("[yellow]%d", st.LowSNR))
	default:
		if st.Bursts == 0 && st.LowSNR == 0 {
			return tview.NewTableCell("[white]-")
		}
		return tview.NewTableCell(fmt.Sprintf("[white]%.1f", st.LastSNR))
	}
}

func (l *StatusTableData) GetRowCount() int {
	return 3
}

func (l *StatusTableData) GetColumnCount() int {
	return 2
}

func (l *StatusTableData) GetCell(row, column int) *tview.TableCell {
	switch row {
	case 0:
		if column == 0 {
			return tview.NewTableCell("Blocks scanned:")
		}
		return tview.NewTableCell(fmt.Sprintf("%d", l.summary.Blocks))
	case 1:
		if column == 0 {
			return tview.NewTableCell("Blocks squelched:")
		}
		color := tcell.ColorGreen
		if l.summary.Blocks > 0 && l.summary.SquelchedBlocks == l.summary.Blocks {
			color = tcell.ColorRed
		}
		return tview.NewTableCell(fmt.Sprintf("%d", l.summary.SquelchedBlocks)).SetTextColor(color)
	case 2:
		if column == 0 {
			return tview.NewTableCell("Bursts decoded:")
		}
		return tview.NewTableCell(fmt.Sprintf("%d", l.summary.Bursts))
	}
	return tview.NewTableCell("ERROR")
}

// rates returns the share of blocks passing squelch and the share of
// squelch passes rejected for SNR, both in percent.
func rates(sum scan.Summary) (float64, float64) {
	var open float64
	if sum.Blocks > 0 {
		open = 100 * float64(sum.Blocks-sum.SquelchedBlocks) / float64(sum.Blocks)
	}
	var lowSNR, attempts int
	for _, st := range sum.Channels {
		lowSNR += st.LowSNR
		attempts += st.LowSNR + st.Bursts
	}
	var rejected float64
	if attempts > 0 {
		rejected = 100 * float64(lowSNR) / float64(attempts)
	}
	return open, rejected
}

func spectrumData(sum scan.Summary) []float64 {
	data := make([]float64, len(sum.Spectrum))
	for i, p := range sum.Spectrum {
		data[i] = max(0, p.PowerDB-plotFloorDB)
	}
	return data
}

var LogOut *tview.TextView

// StartUI blocks until the user quits the application.
func StartUI(scanner *scan.Scanner, tuiConf config.TuiConf) error {
	app := tview.NewApplication()
	summary := scanner.Snapshot()

	LogOut = tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetWordWrap(true)

	channelStats := tview.NewTable().SetContent(&ChannelTableData{summary: &summary})
	statusTable := tview.NewTable().SetContent(&StatusTableData{summary: &summary})

	spectrumPlot := tvxwidgets.NewPlot()
	spectrumPlot.SetLineColor([]tcell.Color{tcell.ColorLightSkyBlue})
	spectrumPlot.SetMarker(tvxwidgets.PlotMarkerBraille)

	squelchGauge := tvxwidgets.NewUtilModeGauge()
	squelchGauge.SetLabel("Blocks passing squelch:      ")
	squelchGauge.SetLabelColor(tcell.ColorLightSkyBlue)
	squelchGauge.SetWarnPercentage(99)
	squelchGauge.SetCritPercentage(100)
	squelchGauge.SetEmptyColor(tcell.ColorBlack)
	squelchGauge.SetBorder(false)

	snrGauge := tvxwidgets.NewUtilModeGauge()
	snrGauge.SetLabel("Attempts rejected for SNR:   ")
	snrGauge.SetLabelColor(tcell.ColorLightSkyBlue)
	snrGauge.SetWarnPercentage(tuiConf.SNRWarnPct)
	snrGauge.SetCritPercentage(tuiConf.SNRCritPct)
	snrGauge.SetEmptyColor(tcell.ColorBlack)
	snrGauge.SetBorder(false)

	gaugeBox := tview.NewFlex()
	gaugeBox.SetDirection(tview.FlexRow)
	gaugeBox.AddItem(squelchGauge, 0, 1, false)
	gaugeBox.AddItem(snrGauge, 0, 1, false)
	gaugeBox.SetTitle("Signal Stats")
	gaugeBox.SetBorder(true)

	LogOut.SetChangedFunc(func() {
		LogOut.ScrollToEnd()
		app.Draw()
	})

	LogOut.SetBorder(true).SetTitle("Log Output")
	if tuiConf.EnableLogOutput {
		log.SetOutput(LogOut)
	}
	channelStats.SetSelectable(false, false).SetBorder(true).SetTitle("Per-Channel Stats")
	statusTable.SetSelectable(false, false).SetBorder(false)

	scanStatus := tview.NewFlex().SetDirection(tview.FlexRow)
	scanStatus.AddItem(tview.NewBox(), 0, 1, false)
	scanStatus.AddItem(statusTable, 0, 1, false)
	scanStatus.AddItem(tview.NewBox(), 0, 1, false)
	scanStatus.SetBorder(true)
	scanStatus.SetTitle("Scanner Status")

	spectrumPlot.SetBorder(true)
	spectrumPlot.SetTitle(fmt.Sprintf("Channel power (dB above %.0f)", plotFloorDB))

	page := tview.NewFlex().SetDirection(tview.FlexColumn)

	leftCol := tview.NewFlex().SetDirection(tview.FlexRow)
	leftCol.AddItem(channelStats, 0, 3, false)
	leftCol.AddItem(scanStatus, 0, 1, false)

	rightCol := tview.NewFlex().SetDirection(tview.FlexRow)
	rightCol.AddItem(gaugeBox, 0, 2, false)
	rightCol.AddItem(spectrumPlot, 0, 3, false)
	if tuiConf.EnableLogOutput {
		rightCol.AddItem(LogOut, 0, 3, false)
	}

	page.AddItem(leftCol, 0, 3, false)
	page.AddItem(rightCol, 0, 4, false)

	done := make(chan struct{})
	defer close(done)
	refresh := time.Duration(max(tuiConf.RefreshMs, 50)) * time.Millisecond

	go func() {
		ticker := time.NewTicker(refresh)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
			}
			latest := scanner.Snapshot()
			open, rejected := rates(latest)
			plot := spectrumData(latest)

			app.QueueUpdateDraw(func() {
				summary = latest
				squelchGauge.SetValue(open)
				snrGauge.SetValue(rejected)
				if len(plot) > 1 {
					spectrumPlot.SetData([][]float64{plot})
				}
			})
		}
	}()

	if err := app.SetRoot(page, true).EnableMouse(true).Run(); err != nil {
		return fmt.Errorf("could not start UI: %w", err)
	}
	return nil
}
