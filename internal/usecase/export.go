package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/quickserve/quickserve/internal/domain/model"
	"github.com/quickserve/quickserve/internal/domain/repository"
)

// ExportUseCase renders role-scoped order listings as CSV.
type ExportUseCase struct {
	restaurants repository.RestaurantRepository
}

// NewExportUseCase constructs ExportUseCase.
func NewExportUseCase(restaurants repository.RestaurantRepository) *ExportUseCase {
	return &ExportUseCase{restaurants: restaurants}
}

// WriteCSV streams the orders as a CSV document: ID, vendor, timestamp,
// status, item summary, total.
func (u *ExportUseCase) WriteCSV(ctx context.Context, w io.Writer, orders []model.Order) error {
	names := make(map[int64]string)
	for _, order := range orders {
		if _, ok := names[order.RestaurantID]; ok {
			continue
		}
		restaurant, err := u.restaurants.GetByID(ctx, order.RestaurantID)
		if err != nil {
			names[order.RestaurantID] = ""
			continue
		}
		names[order.RestaurantID] = restaurant.Name
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"order_id", "vendor", "timestamp", "status", "items", "total"}); err != nil {
		return err
	}
	for _, order := range orders {
		record := []string{
			order.ID,
			names[order.RestaurantID],
			time.UnixMilli(order.CreatedAt).UTC().Format(time.RFC3339),
			string(order.Status),
			summarizeItems(order.Items),
			fmt.Sprintf("%.2f", order.Total),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// summarizeItems renders lines like "2x Latte (L/hot); 1x Scone".
func summarizeItems(items []model.OrderLine) string {
	parts := make([]string, 0, len(items))
	for _, line := range items {
		entry := fmt.Sprintf("%dx %s", line.Quantity, line.Name)
		var selection []string
		for _, s := range []string{line.Size, line.Temperature, line.Variant} {
			if s != "" {
				selection = append(selection, s)
			}
		}
		if len(selection) > 0 {
			entry += " (" + strings.Join(selection, "/") + ")"
		}
		parts = append(parts, entry)
	}
	return strings.Join(parts, "; ")
}
