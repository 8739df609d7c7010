package report_generator

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/damage_assessor/internal/domain"
)

var (
	titleProps   = props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center}
	subtleProps  = props.Text{Size: 9, Align: align.Center}
	headingProps = props.Text{Size: 12, Style: fontstyle.Bold, Top: 2}
	bodyProps    = props.Text{Size: 10, Top: 1}
	labelProps   = props.Text{Size: 10, Style: fontstyle.Bold, Top: 1}
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// GenerateReport renders the damage report of one upload as a PDF document.
func (g *Generator) GenerateReport(record *domain.UploadRecord) ([]byte, error) {
	m := maroto.New(config.NewBuilder().
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		Build())

	m.AddRows(
		text.NewRow(12, "Damage Assessment", titleProps),
		text.NewRow(6, fmt.Sprintf("%s - uploaded %s", record.Filename, record.UploadedAt.Format(time.RFC1123)), subtleProps),
		text.NewRow(6, "Upload "+record.UploadID, subtleProps),
	)

	assessed, ok := record.Outcome.(domain.Assessed)
	if !ok {
		m.AddRows(text.NewRow(10, domain.AssessmentMessage(record.Outcome), headingProps))
	} else {
		a := assessed.Assessment

		m.AddRows(text.NewRow(10, "Vehicle Details", headingProps))
		m.AddRow(7,
			text.NewCol(4, "Make", labelProps),
			text.NewCol(4, "Model", labelProps),
			text.NewCol(4, "Color", labelProps),
		)
		m.AddRow(7,
			text.NewCol(4, a.Vehicle.Make, bodyProps),
			text.NewCol(4, a.Vehicle.Model, bodyProps),
			text.NewCol(4, a.Vehicle.Color, bodyProps),
		)

		m.AddRows(
			text.NewRow(10, "Damage Summary", headingProps),
			text.NewRow(30, a.DamageSummary, bodyProps),
			text.NewRow(10, "Estimated Repair Cost", headingProps),
			text.NewRow(8, a.CostEstimate.Range(), bodyProps),
			text.NewRow(6, "Assessed "+assessed.AssessedAt.Format(time.RFC1123), subtleProps),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}

	return doc.GetBytes(), nil
}
