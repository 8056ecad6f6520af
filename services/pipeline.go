package services

import (
	"context"

	"deal-formatter/models"
	"deal-formatter/utils"
)

// Pipeline drives the batch: normalize then generate, row by row.
type Pipeline struct {
	normalizer *Normalizer
	generator  *Generator
	logger     *utils.Logger
}

// NewPipeline wires a Pipeline from its two stages.
func NewPipeline(normalizer *Normalizer, generator *Generator, logger *utils.Logger) *Pipeline {
	return &Pipeline{normalizer: normalizer, generator: generator, logger: logger}
}

// Run processes rows sequentially in input order. Every input row yields
// exactly one result at the same index, and a row's failure never affects
// its neighbours. Each remote call blocks before the next row starts.
func (p *Pipeline) Run(ctx context.Context, rows []*models.DealRow) []models.GenerationResult {
	results := make([]models.GenerationResult, len(rows))

	for i, row := range rows {
		p.normalizer.Normalize(row)
		results[i] = p.generator.Generate(ctx, row)

		if results[i].Err == "" {
			p.logger.Debug("[pipeline] Row %d/%d generated: %q", i+1, len(rows), results[i].Title)
		}
	}

	p.logger.Info("[pipeline] Processed %d rows", len(rows))
	return results
}
