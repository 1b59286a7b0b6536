package postgres

import (
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/mostafa-saad-gad/odoo17-service-tracking-for-storable-products/internal/types"
)

// The bulk backfill must flag exactly the rows the live predicate would:
// the SQL IN-list is derived from IsServiceLike, never maintained by hand.
func TestServiceLikeTypeStringsMatchPredicate(t *testing.T) {
	allTypes := []types.ProductType{
		types.ProductTypeService,
		types.ProductTypeStorable,
		types.ProductTypeConsumable,
		types.ProductTypeCombo,
	}

	inClause := serviceLikeTypeStrings()

	for _, pt := range allTypes {
		assert.Equal(t, pt.IsServiceLike(), lo.Contains(inClause, pt.String()),
			"backfill IN-list and predicate disagree on %s", pt)
	}

	assert.ElementsMatch(t, []string{"service", "storable"}, inClause)
}

func TestServiceLikeInClauseExpansion(t *testing.T) {
	query, args, err := serviceLikeInClause(`SELECT 1 WHERE type IN (?)`)
	assert.NoError(t, err)
	assert.Len(t, args, len(serviceLikeTypeStrings()))
	assert.Equal(t, len(args), strings.Count(query, "?"))
}
