package services

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"os"
	"sort"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/hlifeacademy/dna-backend/internal/logger"
	"github.com/hlifeacademy/dna-backend/internal/types"
)

// Bar colors for the behavioral factors, D through C.
var discBarColors = map[string]color.NRGBA{
	"D": {R: 0xEF, G: 0x44, B: 0x44, A: 0xFF},
	"I": {R: 0xF9, G: 0x73, B: 0x16, A: 0xFF},
	"S": {R: 0x22, G: 0xC5, B: 0x5E, A: 0xFF},
	"C": {R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF},
}

var valuesBarColor = color.NRGBA{R: 0x8B, G: 0x5C, B: 0xF6, A: 0xFF}

type ReportService interface {
	RenderPNG(ctx context.Context, user *types.User, view *AssessmentView) ([]byte, error)
	Export(ctx context.Context, user *types.User, view *AssessmentView) (string, error)
}

type reportService struct {
	log           *logger.Logger
	bucketService BucketService

	titleFace   font.Face
	headingFace font.Face
	bodyFace    font.Face
	smallFace   font.Face
}

// NewReportService loads the report typeface from REPORT_FONT, falling back
// to AVATAR_FONT so a single TTF can serve both renderers.
func NewReportService(log *logger.Logger, bucketService BucketService) (ReportService, error) {
	serviceLog := log.With("service", "ReportService")

	fontPath := strings.TrimSpace(os.Getenv("REPORT_FONT"))
	if fontPath == "" {
		fontPath = strings.TrimSpace(os.Getenv("AVATAR_FONT"))
	}
	if fontPath == "" {
		return nil, fmt.Errorf("Env vars REPORT_FONT and AVATAR_FONT are both empty")
	}
	serviceLog.Info("Loading report font", "font", fontPath)

	titleFace, err := loadFontFace(fontPath, 44)
	if err != nil {
		return nil, fmt.Errorf("could not load report font: %w", err)
	}
	headingFace, err := loadFontFace(fontPath, 28)
	if err != nil {
		return nil, fmt.Errorf("could not load report font: %w", err)
	}
	bodyFace, err := loadFontFace(fontPath, 20)
	if err != nil {
		return nil, fmt.Errorf("could not load report font: %w", err)
	}
	smallFace, err := loadFontFace(fontPath, 16)
	if err != nil {
		return nil, fmt.Errorf("could not load report font: %w", err)
	}

	return &reportService{
		log:           serviceLog,
		bucketService: bucketService,
		titleFace:     titleFace,
		headingFace:   headingFace,
		bodyFace:      bodyFace,
		smallFace:     smallFace,
	}, nil
}

const (
	reportWidth  = 1200
	reportHeight = 1700
	reportMargin = 60.0
)

func (rs *reportService) RenderPNG(ctx context.Context, user *types.User, view *AssessmentView) ([]byte, error) {
	if view == nil {
		return nil, fmt.Errorf("no assessment to render")
	}

	dc := gg.NewContext(reportWidth, reportHeight)
	dc.SetColor(color.White)
	dc.Clear()

	y := reportMargin

	// Header
	dc.SetColor(color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xFF})
	dc.SetFontFace(rs.titleFace)
	dc.DrawString("Relatório DNA Comportamental", reportMargin, y+40)
	y += 70

	dc.SetFontFace(rs.bodyFace)
	dc.SetColor(color.NRGBA{R: 0x6B, G: 0x72, B: 0x80, A: 0xFF})
	subject := view.CreatedAt.Format("02/01/2006")
	if user != nil && user.FullName != "" {
		subject = user.FullName + "  ·  " + subject
	}
	dc.DrawString(subject, reportMargin, y+20)
	y += 60

	// Profile badge
	rs.drawProfileBadge(dc, view, reportMargin, y)
	y += 130

	// Behavioral chart
	dc.SetFontFace(rs.headingFace)
	dc.SetColor(color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xFF})
	dc.DrawString("Perfil Comportamental", reportMargin, y+28)
	y += 50
	for _, fs := range view.Disc {
		barColor, ok := discBarColors[fs.Factor]
		if !ok {
			barColor = valuesBarColor
		}
		rs.drawScoreBar(dc, fs, barColor, y)
		y += 70
	}
	y += 30

	// Values chart, strongest motivator first.
	dc.SetFontFace(rs.headingFace)
	dc.SetColor(color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xFF})
	dc.DrawString("Motivadores e Valores", reportMargin, y+28)
	y += 50

	sortedValues := make([]FactorScore, len(view.Values))
	copy(sortedValues, view.Values)
	sort.SliceStable(sortedValues, func(i, j int) bool {
		return sortedValues[i].Score > sortedValues[j].Score
	})
	chartTop := y
	for _, fs := range sortedValues {
		rs.drawScoreBar(dc, fs, valuesBarColor, y)
		y += 70
	}
	rs.drawReferenceLines(dc, chartTop, y)
	y += 30

	// Narrative
	dc.SetFontFace(rs.headingFace)
	dc.SetColor(color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xFF})
	dc.DrawString("Perfil: "+view.Profile.Name, reportMargin, y+28)
	y += 44
	y = rs.drawWrapped(dc, view.Profile.Description, y)
	y += 16

	dc.SetFontFace(rs.headingFace)
	dc.SetColor(color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xFF})
	dc.DrawString("Motivador Principal: "+view.Motivator.Name, reportMargin, y+28)
	y += 44
	rs.drawWrapped(dc, view.Motivator.Description, y)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode report PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func (rs *reportService) drawProfileBadge(dc *gg.Context, view *AssessmentView, x, y float64) {
	const badgeW, badgeH = 280.0, 100.0
	dc.SetColor(color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xFF})
	dc.DrawRoundedRectangle(x, y, badgeW, badgeH, 16)
	dc.Fill()

	dc.SetColor(color.White)
	dc.SetFontFace(rs.titleFace)
	tw, th := dc.MeasureString(view.Profile.Code)
	dc.DrawString(view.Profile.Code, x+(badgeW-tw)/2, y+(badgeH+th)/2-8)

	dc.SetFontFace(rs.bodyFace)
	dc.SetColor(color.NRGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xFF})
	dc.DrawString(view.Profile.Name, x+badgeW+24, y+badgeH/2+8)
}

func (rs *reportService) drawScoreBar(dc *gg.Context, fs FactorScore, barColor color.NRGBA, y float64) {
	const barH = 32.0
	maxW := float64(reportWidth) - 2*reportMargin - 200

	dc.SetFontFace(rs.bodyFace)
	dc.SetColor(color.NRGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xFF})
	dc.DrawString(fs.Name, reportMargin, y+16)

	barY := y + 24
	// Track
	dc.SetColor(color.NRGBA{R: 0xE5, G: 0xE7, B: 0xEB, A: 0xFF})
	dc.DrawRoundedRectangle(reportMargin, barY, maxW, barH, 8)
	dc.Fill()
	// Fill
	w := maxW * float64(fs.Score) / 100
	if w > maxW {
		w = maxW
	}
	if w > 0 {
		dc.SetColor(barColor)
		dc.DrawRoundedRectangle(reportMargin, barY, w, barH, 8)
		dc.Fill()
	}
	// Score and band chip
	dc.SetColor(color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xFF})
	dc.DrawString(fmt.Sprintf("%d", fs.Score), reportMargin+maxW+16, barY+barH-8)
	dc.SetFontFace(rs.smallFace)
	dc.SetColor(color.NRGBA{R: 0x6B, G: 0x72, B: 0x80, A: 0xFF})
	dc.DrawString(fs.Band, reportMargin+maxW+64, barY+barH-8)
}

// drawReferenceLines marks the 34 and 67 thirds over the values chart.
func (rs *reportService) drawReferenceLines(dc *gg.Context, top, bottom float64) {
	maxW := float64(reportWidth) - 2*reportMargin - 200
	dc.SetColor(color.NRGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 0xFF})
	dc.SetLineWidth(1)
	dc.SetDash(6, 6)
	for _, mark := range []int{34, 67} {
		x := reportMargin + maxW*float64(mark)/100
		dc.DrawLine(x, top, x, bottom-20)
		dc.Stroke()
		dc.SetFontFace(rs.smallFace)
		dc.DrawString(fmt.Sprintf("%d", mark), x-10, bottom-4)
	}
	dc.SetDash()
}

func (rs *reportService) drawWrapped(dc *gg.Context, text string, y float64) float64 {
	dc.SetFontFace(rs.bodyFace)
	dc.SetColor(color.NRGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xFF})
	maxW := float64(reportWidth) - 2*reportMargin
	lines := dc.WordWrap(text, maxW)
	for _, line := range lines {
		dc.DrawString(line, reportMargin, y+20)
		y += 28
	}
	return y
}

// Export renders the report and stores it under a stable per-assessment key,
// returning the public URL. Assessments are immutable, so re-exports replace
// the object in place and keep the same URL.
func (rs *reportService) Export(ctx context.Context, user *types.User, view *AssessmentView) (string, error) {
	if rs.bucketService == nil {
		return "", fmt.Errorf("report export requires bucket storage")
	}
	png, err := rs.RenderPNG(ctx, user, view)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s/report.png", view.ID.String())
	if err := rs.bucketService.ReplaceFile(ctx, nil, BucketCategoryReport, key, bytes.NewReader(png)); err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}
	return rs.bucketService.GetPublicURL(BucketCategoryReport, key), nil
}
