package queries_test

import (
	"testing"

	"netondemand/internal/core/application/usecases/queries"
	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCompanyInstancesQuery(t *testing.T) {
	t.Run("constructed query is valid", func(t *testing.T) {
		companyID := kernel.NewUUID()
		query, err := queries.NewGetCompanyInstancesQuery(companyID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.CompanyID().IsEqual(companyID))
	})

	t.Run("empty company id is rejected", func(t *testing.T) {
		_, err := queries.NewGetCompanyInstancesQuery(kernel.UUID{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.GetCompanyInstancesQuery
		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetCompanyInstancesQueryIsNotConstructed)
	})
}
