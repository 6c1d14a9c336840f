package entities

// Product is a catalog row sourced from the external record store. The bot
// never writes products; rows are read-only and possibly stale between
// searches.
type Product struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}
