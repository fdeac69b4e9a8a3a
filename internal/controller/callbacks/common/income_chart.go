package common

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/Freeeeeet/mathtutor_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/mathtutor_bot/internal/service"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontStyle стиль шрифта графика
type FontStyle string

const (
	FontStyleDefault FontStyle = ""
	FontStyleBold    FontStyle = "bold"
)

// Размеры и отступы
const (
	chartWidth      = 1000
	chartHeight     = 600
	chartPadLeft    = 110
	chartPadRight   = 40
	chartPadTop     = 110
	chartPadBottom  = 90
	barGapRatio     = 0.35
	barRadius       = 8.0
	gridLines       = 4
	minChartMaximum = 100.0
)

// Шрифты
const (
	chartTitleFontSize = 30.0
	chartTotalFontSize = 20.0
	axisFontSize       = 16.0
	barValueFontSize   = 15.0
	dayLabelFontSize   = 18.0
)

// Цвета
var (
	chartBgColor    = color.RGBA{248, 250, 252, 255}
	chartTextColor  = color.RGBA{30, 41, 59, 255}
	chartMutedColor = color.RGBA{100, 116, 139, 255}
	chartGridColor  = color.RGBA{226, 232, 240, 255}
	barColor        = color.RGBA{79, 70, 229, 255}
	barTodayColor   = color.RGBA{16, 185, 129, 255}
	barEmptyColor   = color.RGBA{203, 213, 225, 255}
)

var (
	fontsMu     sync.Mutex
	cachedFonts = make(map[FontStyle]*opentype.Font)
)

// loadFont выставляет шрифт указанного стиля или basicfont как fallback
func loadFont(dc *gg.Context, size float64, style ...FontStyle) {
	fontStyle := FontStyleDefault
	if len(style) > 0 {
		fontStyle = style[0]
	}

	fontData := goregular.TTF
	if fontStyle == FontStyleBold {
		fontData = gobold.TTF
	}

	fontsMu.Lock()
	parsed, ok := cachedFonts[fontStyle]
	if !ok {
		var err error
		parsed, err = opentype.Parse(fontData)
		if err != nil {
			fontsMu.Unlock()
			dc.SetFontFace(basicfont.Face7x13)
			return
		}
		cachedFonts[fontStyle] = parsed
	}
	fontsMu.Unlock()

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		dc.SetFontFace(basicfont.Face7x13)
		return
	}
	dc.SetFontFace(face)
}

// GenerateIncomeChart рисует столбчатый график дохода за 7 дней.
// Последний день считается сегодняшним и выделяется цветом.
func GenerateIncomeChart(days []service.DayIncome) ([]byte, error) {
	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetColor(chartBgColor)
	dc.Clear()

	maximum := chartMaximum(days)

	drawChartHeader(dc, service.TotalIncome(days))
	drawChartGrid(dc, maximum)
	drawBars(dc, days, maximum)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode chart: %w", err)
	}
	return buf.Bytes(), nil
}

// chartMaximum верхняя граница оси, округлённая вверх до сотни
func chartMaximum(days []service.DayIncome) float64 {
	maximum := minChartMaximum
	for _, d := range days {
		if d.Income > maximum {
			maximum = d.Income
		}
	}
	return math.Ceil(maximum/100) * 100
}

func drawChartHeader(dc *gg.Context, total float64) {
	loadFont(dc, chartTitleFontSize, FontStyleBold)
	dc.SetColor(chartTextColor)
	dc.DrawStringAnchored("Haftalık Gelir Özeti", chartPadLeft, 45, 0, 0.5)

	loadFont(dc, chartTotalFontSize)
	dc.SetColor(chartMutedColor)
	dc.DrawStringAnchored("Toplam: "+chartAmount(total), chartPadLeft, 80, 0, 0.5)
}

func drawChartGrid(dc *gg.Context, maximum float64) {
	plotHeight := float64(chartHeight - chartPadTop - chartPadBottom)
	loadFont(dc, axisFontSize)
	dc.SetLineWidth(1)

	for i := 0; i <= gridLines; i++ {
		value := maximum * float64(i) / gridLines
		y := float64(chartHeight-chartPadBottom) - plotHeight*float64(i)/gridLines

		dc.SetColor(chartGridColor)
		dc.DrawLine(chartPadLeft, y, chartWidth-chartPadRight, y)
		dc.Stroke()

		dc.SetColor(chartMutedColor)
		dc.DrawStringAnchored(formatting.FormatAmount(value), chartPadLeft-12, y, 1, 0.35)
	}
}

func drawBars(dc *gg.Context, days []service.DayIncome, maximum float64) {
	if len(days) == 0 {
		return
	}

	plotWidth := float64(chartWidth - chartPadLeft - chartPadRight)
	plotHeight := float64(chartHeight - chartPadTop - chartPadBottom)
	baseline := float64(chartHeight - chartPadBottom)
	slot := plotWidth / float64(len(days))
	barWidth := slot * (1 - barGapRatio)

	for i, d := range days {
		x := chartPadLeft + slot*float64(i) + (slot-barWidth)/2
		centerX := x + barWidth/2
		height := plotHeight * d.Income / maximum

		switch {
		case d.Income == 0:
			dc.SetColor(barEmptyColor)
			dc.DrawRectangle(x, baseline-3, barWidth, 3)
		case i == len(days)-1:
			dc.SetColor(barTodayColor)
			dc.DrawRoundedRectangle(x, baseline-height, barWidth, height, barRadius)
		default:
			dc.SetColor(barColor)
			dc.DrawRoundedRectangle(x, baseline-height, barWidth, height, barRadius)
		}
		dc.Fill()

		if d.Income > 0 {
			loadFont(dc, barValueFontSize, FontStyleBold)
			dc.SetColor(chartTextColor)
			dc.DrawStringAnchored(formatting.FormatAmount(d.Income), centerX, baseline-height-12, 0.5, 0)
		}

		loadFont(dc, dayLabelFontSize, FontStyleBold)
		dc.SetColor(chartTextColor)
		dc.DrawStringAnchored(d.DayName, centerX, baseline+28, 0.5, 0.5)

		loadFont(dc, axisFontSize)
		dc.SetColor(chartMutedColor)
		dc.DrawStringAnchored(d.Date.Format("02.01"), centerX, baseline+54, 0.5, 0.5)
	}
}

// Go-шрифты не содержат знак лиры
func chartAmount(amount float64) string {
	return formatting.FormatAmount(amount) + " TL"
}
