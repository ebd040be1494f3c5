package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spaceatlas/atlas-backend/internal/model"
)

// Storage-level outcomes surfaced to the service layer.
var (
	ErrNotFound      = errors.New("celestial body not found")
	ErrDuplicateName = errors.New("celestial body with this name already exists")
)

const bodyColumns = `id, name, type, description, image_url, discovered_by, discovery_date, fun_fact, created_at, updated_at`

// BodyRepository handles celestial body data access.
type BodyRepository struct {
	pool *pgxpool.Pool
}

// NewBodyRepository creates a new BodyRepository.
func NewBodyRepository(pool *pgxpool.Pool) *BodyRepository {
	return &BodyRepository{pool: pool}
}

func scanBody(row pgx.Row) (*model.CelestialBody, error) {
	b := &model.CelestialBody{}
	err := row.Scan(&b.ID, &b.Name, &b.Type, &b.Description, &b.ImageURL,
		&b.DiscoveredBy, &b.DiscoveryDate, &b.FunFact, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// List retrieves bodies matching the query along with the total match count.
// The count ignores limit/offset so callers can derive page numbers.
func (r *BodyRepository) List(ctx context.Context, q ListQuery) ([]model.CelestialBody, int, error) {
	where, whereArgs := q.Filter.whereClause(1)

	// 1. Total count for the filter
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM celestial_bodies`+where, whereArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	// 2. Paginated data
	argIdx := len(whereArgs) + 1
	query := `SELECT ` + bodyColumns + ` FROM celestial_bodies` + where +
		q.Sort.orderClause() +
		` LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args := append(whereArgs, q.Limit, q.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bodies []model.CelestialBody
	for rows.Next() {
		var b model.CelestialBody
		if err := rows.Scan(&b.ID, &b.Name, &b.Type, &b.Description, &b.ImageURL,
			&b.DiscoveredBy, &b.DiscoveryDate, &b.FunFact, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, 0, err
		}
		bodies = append(bodies, b)
	}
	return bodies, total, rows.Err()
}

// GetByID retrieves a body by its identifier.
func (r *BodyRepository) GetByID(ctx context.Context, id string) (*model.CelestialBody, error) {
	return scanBody(r.pool.QueryRow(ctx,
		`SELECT `+bodyColumns+` FROM celestial_bodies WHERE id = $1`, id))
}

// GetByName retrieves a body by exact name, used for uniqueness pre-checks.
// A non-empty excludeID skips that record so an update does not collide
// with itself.
func (r *BodyRepository) GetByName(ctx context.Context, name, excludeID string) (*model.CelestialBody, error) {
	if excludeID != "" {
		return scanBody(r.pool.QueryRow(ctx,
			`SELECT `+bodyColumns+` FROM celestial_bodies WHERE name = $1 AND id <> $2`, name, excludeID))
	}
	return scanBody(r.pool.QueryRow(ctx,
		`SELECT `+bodyColumns+` FROM celestial_bodies WHERE name = $1`, name))
}

// Create inserts a new body, assigning its identifier. The unique constraint
// on name is the final arbiter against concurrent creates; a violation is
// reported as ErrDuplicateName.
func (r *BodyRepository) Create(ctx context.Context, b *model.CelestialBody) error {
	b.ID = model.NewID()
	err := r.pool.QueryRow(ctx,
		`INSERT INTO celestial_bodies (id, name, type, description, image_url, discovered_by, discovery_date, fun_fact)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at`,
		b.ID, b.Name, b.Type, b.Description, b.ImageURL, b.DiscoveredBy, b.DiscoveryDate, b.FunFact,
	).Scan(&b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateName
		}
		return err
	}
	return nil
}

// Update applies the present fields of req to the body with the given id and
// returns the updated record. ErrNotFound when no such record exists.
func (r *BodyRepository) Update(ctx context.Context, id string, req *model.UpdateBodyRequest) (*model.CelestialBody, error) {
	set, args := buildUpdateSet(req)
	if len(args) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := `UPDATE celestial_bodies SET ` + set +
		`, updated_at = NOW() WHERE id = $` + strconv.Itoa(len(args)) +
		` RETURNING ` + bodyColumns

	b, err := scanBody(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return b, nil
}

// buildUpdateSet renders the SET clause for the fields present in req.
func buildUpdateSet(req *model.UpdateBodyRequest) (string, []interface{}) {
	var parts []string
	var args []interface{}

	add := func(column string, val *string) {
		if val == nil {
			return
		}
		args = append(args, *val)
		parts = append(parts, column+" = $"+strconv.Itoa(len(args)))
	}

	add("name", req.Name)
	add("type", req.Type)
	add("description", req.Description)
	add("image_url", req.ImageURL)
	add("discovered_by", req.DiscoveredBy)
	add("discovery_date", req.DiscoveryDate)
	add("fun_fact", req.FunFact)

	if len(parts) == 0 {
		return "", nil
	}
	return strings.Join(parts, ", "), args
}

// Delete removes a body by id. ErrNotFound when no record was removed.
func (r *BodyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM celestial_bodies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByType returns the number of bodies per type, used by the seeder's
// summary output.
func (r *BodyRepository) CountByType(ctx context.Context) (map[model.BodyType]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT type, COUNT(*) FROM celestial_bodies GROUP BY type ORDER BY type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.BodyType]int)
	for rows.Next() {
		var t model.BodyType
		var n int
		if err := rows.Scan(&t, &n); err != nil {
			return nil, err
		}
		counts[t] = n
	}
	return counts, rows.Err()
}

// DeleteAll clears the catalog. Used by the seeder.
func (r *BodyRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM celestial_bodies`)
	return err
}
