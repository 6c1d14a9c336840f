package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/johnper68/twilio-bot-occipedido/internal/domain/entities"
	"github.com/johnper68/twilio-bot-occipedido/internal/infrastructure/appsheet"
	"github.com/johnper68/twilio-bot-occipedido/internal/usecase/interfaces"
)

const (
	defaultProductsTableName = "productos"

	// maxSearchResults caps how many catalog matches a single search returns.
	maxSearchResults = 5
)

// Column names of the AppSheet products table.
const (
	productColName  = "Nombre"
	productColPrice = "Precio"
)

// ProductAppSheetRepository reads the product catalog from the AppSheet
// products table. The store API has no server-side filtering for this app, so
// the repository lists all rows and filters locally.
type ProductAppSheetRepository struct {
	api       *appsheet.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductAppSheetRepository)(nil)

func NewProductAppSheetRepository(api *appsheet.Client) *ProductAppSheetRepository {
	return &ProductAppSheetRepository{
		api:       api,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductAppSheetRepository) SearchByName(ctx context.Context, term string) ([]entities.Product, error) {
	rows, err := r.api.Find(ctx, r.tableName)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	var matches []entities.Product
	for _, row := range rows {
		p := productFromRow(row)
		if p.Name == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		matches = append(matches, p)
		if len(matches) == maxSearchResults {
			break
		}
	}
	return matches, nil
}

func productFromRow(row map[string]any) entities.Product {
	return entities.Product{
		Name:      stringCell(row[productColName]),
		UnitPrice: numericCell(row[productColPrice]),
	}
}

func stringCell(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// numericCell tolerates the cell representations AppSheet actually returns:
// JSON numbers, numeric strings, and strings with a currency prefix.
func numericCell(v any) float64 {
	switch cell := v.(type) {
	case float64:
		return cell
	case json.Number:
		f, _ := cell.Float64()
		return f
	case string:
		cleaned := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(cell), "$"))
		cleaned = strings.ReplaceAll(cleaned, ",", "")
		f, _ := strconv.ParseFloat(cleaned, 64)
		return f
	default:
		return 0
	}
}
