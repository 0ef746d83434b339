package baserow

import "github.com/goresan/goresan/internal/domain"

// MapDoa converts a Baserow row to a domain record
func MapDoa(row Row) domain.Doa {
	return domain.Doa{
		ID:          row.ID,
		Title:       row.Title,
		Body:        row.Body,
		Translation: row.Translation,
	}
}

// MapDoas converts rows in order
func MapDoas(rows []Row) []domain.Doa {
	records := make([]domain.Doa, 0, len(rows))
	for _, row := range rows {
		records = append(records, MapDoa(row))
	}
	return records
}
