package sources

import (
	"context"

	"github.com/marie/subvention-scroller/internal/models"
)

// Adapter is the uniform search contract every funding source honors: filter
// by keywords and region, cap at limit, and never fail past the boundary.
// A transport problem yields fallback or empty data, not an error.
type Adapter interface {
	Name() string
	Search(ctx context.Context, keywords, region string, limit int) []models.Opportunity
}
