package storage

import "deal-formatter/models"

// ResultWriter is the interface any output backend must satisfy. Rows and
// results are parallel slices: results[i] belongs to rows[i].
type ResultWriter interface {
	WriteResults(rows []*models.DealRow, results []models.GenerationResult) error
	Close() error
}
