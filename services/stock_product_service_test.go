package services

import (
	"errors"
	"testing"

	"backoffice-backend/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestStockProductCreate_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		product models.StockProduct
		wantErr bool
	}{
		{
			name: "all fields present",
			product: models.StockProduct{
				StockCategory: "Dry Goods",
				Quantity:      "25 Kg",
				ProductName:   "Rice",
				OpeningStock:  floatPtr(25),
			},
		},
		{
			name: "zero opening stock is still a value",
			product: models.StockProduct{
				StockCategory: "Dry Goods",
				Quantity:      "0 Kg",
				ProductName:   "Flour",
				OpeningStock:  floatPtr(0),
			},
		},
		{
			name: "missing product name",
			product: models.StockProduct{
				StockCategory: "Dry Goods",
				Quantity:      "25 Kg",
				OpeningStock:  floatPtr(25),
			},
			wantErr: true,
		},
		{
			name: "missing opening stock",
			product: models.StockProduct{
				StockCategory: "Dry Goods",
				Quantity:      "25 Kg",
				ProductName:   "Rice",
			},
			wantErr: true,
		},
		{
			name: "missing stock category",
			product: models.StockProduct{
				Quantity:     "25 Kg",
				ProductName:  "Rice",
				OpeningStock: floatPtr(25),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			svc := NewStockProductService(db)

			err := svc.Create(&tt.product)
			if tt.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("expected ValidationError, got %v", err)
				}
				var count int64
				db.Model(&models.StockProduct{}).Count(&count)
				if count != 0 {
					t.Errorf("expected no record persisted, found %d", count)
				}
				return
			}
			if err != nil {
				t.Errorf("Create() unexpected error: %v", err)
			}
		})
	}
}
