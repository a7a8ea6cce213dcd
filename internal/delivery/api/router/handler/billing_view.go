package handler

import (
	"servicedesk/internal/domain/entity"
	"servicedesk/internal/usecase"

	"github.com/shopspring/decimal"
)

// materialView adds the computed line total to a material row.
type materialView struct {
	entity.Material
	LineTotal decimal.Decimal `json:"line_total"`
}

// billingView adds the computed total to a billing record.
type billingView struct {
	*entity.BillingRecord
	Materials []materialView  `json:"materials"`
	Total     decimal.Decimal `json:"total"`
}

type billingPageView struct {
	Items []*billingView `json:"items"`
	usecase.PageInfo
}

func newBillingView(record *entity.BillingRecord) *billingView {
	materials := make([]materialView, 0, len(record.Materials))
	for _, m := range record.Materials {
		materials = append(materials, materialView{Material: m, LineTotal: m.LineTotal()})
	}

	return &billingView{
		BillingRecord: record,
		Materials:     materials,
		Total:         record.Total(),
	}
}
