package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"estate/internal/model"
	"estate/internal/utils"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

//go:embed schema.sql
var schemaSQL string

// PropertyRepository is the listing storage used by the listing service
type PropertyRepository interface {
	SearchProperties(ctx context.Context, q *model.PropertyQuery, maxImages int) ([]model.Property, int, error)
	GetPropertyBySlug(ctx context.Context, slug string) (*model.Property, error)
	CreateProperty(ctx context.Context, p *model.Property) error
	FindSimilar(ctx context.Context, base *model.Property, limit int) ([]model.Property, error)
}

// InquiryRepository is the inquiry storage used by the inquiry service
type InquiryRepository interface {
	GetPropertyRef(ctx context.Context, id string) (*model.PropertyRef, error)
	CreateInquiry(ctx context.Context, inq *model.Inquiry) error
	ListInquiries(ctx context.Context, filter model.InquiryFilter) ([]model.InquiryWithProperty, error)
}

// propertyColumns are the selected columns of a property row
const propertyColumns = `
	id, slug, title, title_he, description, description_he,
	listing_type, property_type, status, neighborhood, address, address_he,
	price, rooms, bedrooms, bathrooms, size_sqm, floor, total_floors,
	balconies, parking, storage, elevator, air_conditioning, sukka, mamad,
	garden, rooftop, shabbat_elevator, kosher_kitchen, separate_sink,
	accessible_building, renovated, furnished, building_type, year_built,
	arnona, vaad_bayit, contact_name, contact_phone, contact_email,
	is_owner_listing, available_from, created_at, updated_at`

// insertColumns are written by CreateProperty, in named-parameter form
var insertColumns = []string{
	"id", "slug", "title", "title_he", "description", "description_he",
	"listing_type", "property_type", "status", "neighborhood", "address", "address_he",
	"price", "rooms", "bedrooms", "bathrooms", "size_sqm", "floor", "total_floors",
	"balconies", "parking", "storage", "elevator", "air_conditioning", "sukka", "mamad",
	"garden", "rooftop", "shabbat_elevator", "kosher_kitchen", "separate_sink",
	"accessible_building", "renovated", "furnished", "building_type", "year_built",
	"arnona", "vaad_bayit", "contact_name", "contact_phone", "contact_email",
	"is_owner_listing", "available_from", "feature_vector", "created_at", "updated_at",
}

// PostgresRepository handles database operations
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// NewPostgresRepositoryFromDB wraps an existing connection
func NewPostgresRepositoryFromDB(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// Ping checks the database connection
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Migrate creates the tables and indexes if they do not exist
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// buildSearchWhere builds the WHERE clause and args of a listing search
func buildSearchWhere(q *model.PropertyQuery) (string, []interface{}) {
	whereClauses := []string{"status = $1"}
	args := []interface{}{string(model.StatusActive)}
	argIndex := 2

	add := func(cond string, arg interface{}) {
		whereClauses = append(whereClauses, fmt.Sprintf(cond, argIndex))
		args = append(args, arg)
		argIndex++
	}

	if q.ListingType != "" {
		add("listing_type = $%d", string(q.ListingType))
	}
	if q.PropertyType != "" {
		add("property_type = $%d", string(q.PropertyType))
	}
	if q.Neighborhood != "" {
		add("neighborhood = $%d", q.Neighborhood)
	}
	if q.MinPrice != nil {
		add("price >= $%d", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		add("price <= $%d", *q.MaxPrice)
	}
	if q.MinRooms != nil {
		add("rooms >= $%d", *q.MinRooms)
	}
	if q.MaxRooms != nil {
		add("rooms <= $%d", *q.MaxRooms)
	}
	if q.MinSize != nil {
		add("size_sqm >= $%d", *q.MinSize)
	}
	if q.MaxSize != nil {
		add("size_sqm <= $%d", *q.MaxSize)
	}
	whereClauses = append(whereClauses, utils.BuildFeatureConditions(q.Features)...)

	return strings.Join(whereClauses, " AND "), args
}

// SearchProperties returns one page of active listings and the total match count
func (r *PostgresRepository) SearchProperties(ctx context.Context, q *model.PropertyQuery, maxImages int) ([]model.Property, int, error) {
	whereClause, args := buildSearchWhere(q)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM properties WHERE %s", whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	direction := "DESC"
	if q.SortOrder == "asc" {
		direction = "ASC"
	}
	argIndex := len(args) + 1
	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM properties
		WHERE %s
		ORDER BY %s %s, id
		LIMIT $%d OFFSET $%d
	`, propertyColumns, whereClause, q.SortColumn(), direction, argIndex, argIndex+1)
	args = append(args, q.Limit, q.Offset())

	properties := []model.Property{}
	if err := r.db.SelectContext(ctx, &properties, selectQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to fetch properties: %w", err)
	}

	if err := r.attachImages(ctx, properties, maxImages); err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}

// attachImages loads up to perProperty images for each property, ordered.
// A non-positive perProperty loads all images.
func (r *PostgresRepository) attachImages(ctx context.Context, properties []model.Property, perProperty int) error {
	if len(properties) == 0 {
		return nil
	}

	ids := make([]string, len(properties))
	for i := range properties {
		ids[i] = properties[i].ID
		properties[i].Images = []model.PropertyImage{}
	}

	query := `
		SELECT id, property_id, url, caption, sort_order, is_primary
		FROM (
			SELECT id, property_id, url, caption, sort_order, is_primary,
				ROW_NUMBER() OVER (PARTITION BY property_id ORDER BY sort_order, id) AS rn
			FROM property_images
			WHERE property_id = ANY($1::uuid[])
		) ranked
		WHERE $2 <= 0 OR rn <= $2
		ORDER BY property_id, sort_order, id
	`
	var images []model.PropertyImage
	if err := r.db.SelectContext(ctx, &images, query, pq.Array(ids), perProperty); err != nil {
		return fmt.Errorf("failed to fetch property images: %w", err)
	}

	byProperty := make(map[string][]model.PropertyImage, len(properties))
	for _, img := range images {
		byProperty[img.PropertyID] = append(byProperty[img.PropertyID], img)
	}
	for i := range properties {
		if imgs, ok := byProperty[properties[i].ID]; ok {
			properties[i].Images = imgs
		}
	}
	return nil
}

// GetPropertyBySlug retrieves a property with all its images.
// Returns nil when no property has the slug.
func (r *PostgresRepository) GetPropertyBySlug(ctx context.Context, slug string) (*model.Property, error) {
	var property model.Property
	query := fmt.Sprintf(`SELECT %s FROM properties WHERE slug = $1`, propertyColumns)
	err := r.db.GetContext(ctx, &property, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	properties := []model.Property{property}
	if err := r.attachImages(ctx, properties, 0); err != nil {
		return nil, err
	}
	return &properties[0], nil
}

// GetPropertyRef retrieves the short reference of a property by id.
// Returns nil when the property does not exist.
func (r *PostgresRepository) GetPropertyRef(ctx context.Context, id string) (*model.PropertyRef, error) {
	var ref model.PropertyRef
	query := `SELECT id, title, slug, contact_email FROM properties WHERE id = $1`
	err := r.db.GetContext(ctx, &ref, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return &ref, nil
}

// CreateProperty inserts a property and its images in one transaction
func (r *PostgresRepository) CreateProperty(ctx context.Context, p *model.Property) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := fmt.Sprintf(
		"INSERT INTO properties (%s) VALUES (:%s)",
		strings.Join(insertColumns, ", "),
		strings.Join(insertColumns, ", :"),
	)
	if _, err := tx.NamedExecContext(ctx, insertQuery, p); err != nil {
		return fmt.Errorf("failed to insert property: %w", err)
	}

	if len(p.Images) > 0 {
		stmt, err := tx.PreparexContext(ctx, `
			INSERT INTO property_images (id, property_id, url, caption, sort_order, is_primary)
			VALUES ($1, $2, $3, $4, $5, $6)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare image insert: %w", err)
		}
		defer stmt.Close()

		for _, img := range p.Images {
			if _, err := stmt.ExecContext(ctx, img.ID, p.ID, img.URL, img.Caption, img.SortOrder, img.IsPrimary); err != nil {
				return fmt.Errorf("failed to insert image %s: %w", img.URL, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// FindSimilar returns the active listings of the same listing type nearest
// to base by feature-vector L2 distance, base itself excluded
func (r *PostgresRepository) FindSimilar(ctx context.Context, base *model.Property, limit int) ([]model.Property, error) {
	query := fmt.Sprintf(`
		SELECT %s,
			feature_vector <-> (SELECT feature_vector FROM properties WHERE id = $1) AS distance
		FROM properties
		WHERE status = $2
			AND listing_type = $3
			AND id <> $1
			AND feature_vector IS NOT NULL
		ORDER BY distance ASC NULLS LAST, created_at DESC
		LIMIT $4
	`, propertyColumns)

	properties := []model.Property{}
	err := r.db.SelectContext(ctx, &properties, query, base.ID, string(model.StatusActive), string(base.ListingType), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find similar properties: %w", err)
	}

	if err := r.attachImages(ctx, properties, 1); err != nil {
		return nil, err
	}
	return properties, nil
}

// CreateInquiry stores a new inquiry
func (r *PostgresRepository) CreateInquiry(ctx context.Context, inq *model.Inquiry) error {
	query := `
		INSERT INTO inquiries (id, property_id, name, email, phone, message, status, created_at)
		VALUES (:id, :property_id, :name, :email, :phone, :message, :status, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, inq); err != nil {
		return fmt.Errorf("failed to insert inquiry: %w", err)
	}
	return nil
}

// inquiryRow is an inquiry joined with its property columns
type inquiryRow struct {
	model.Inquiry
	PropertyTitle string `db:"property_title"`
	PropertySlug  string `db:"property_slug"`
}

// ListInquiries returns inquiries newest first, optionally filtered
func (r *PostgresRepository) ListInquiries(ctx context.Context, filter model.InquiryFilter) ([]model.InquiryWithProperty, error) {
	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIndex := 1

	if filter.PropertyID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("i.property_id = $%d", argIndex))
		args = append(args, filter.PropertyID)
		argIndex++
	}
	if filter.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("i.status = $%d", argIndex))
		args = append(args, string(filter.Status))
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT i.id, i.property_id, i.name, i.email, i.phone, i.message, i.status, i.created_at,
			p.title AS property_title, p.slug AS property_slug
		FROM inquiries i
		JOIN properties p ON p.id = i.property_id
		WHERE %s
		ORDER BY i.created_at DESC
	`, strings.Join(whereClauses, " AND "))

	var rows []inquiryRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}

	inquiries := make([]model.InquiryWithProperty, 0, len(rows))
	for _, row := range rows {
		inquiries = append(inquiries, model.InquiryWithProperty{
			Inquiry: row.Inquiry,
			Property: model.PropertyRef{
				ID:    row.PropertyID,
				Title: row.PropertyTitle,
				Slug:  row.PropertySlug,
			},
		})
	}
	return inquiries, nil
}
