package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openheads/headstore/internal/database/postgres"
	"github.com/openheads/headstore/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Ownership repository.Ownership
	Favorites repository.Favorite
	Catalog   repository.Catalog
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Ownership: postgres.NewOwnershipRepository(dbPool),
		Favorites: postgres.NewFavoriteRepository(dbPool),
		Catalog:   postgres.NewCatalogRepository(dbPool),
	}
}
