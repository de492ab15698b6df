package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/peoplemetrics/kpi-engine/pkg/extraction"
	"github.com/peoplemetrics/kpi-engine/pkg/models"
)

// Querier is the subset of the pgx pool the repository needs. It is satisfied
// by *pgxpool.Pool and by fakes in tests.
type Querier interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// WriteStats reports how many rows one WriteRecord call committed.
type WriteStats struct {
	Categories     int `json:"categories"`
	KPIs           int `json:"kpis"`
	StandardValues int `json:"standard_values"`
}

// KPIDataSet is everything the pipeline has persisted, for the data view.
type KPIDataSet struct {
	MainCategories []models.MainCategory  `json:"main_categories"`
	Categories     []models.Category      `json:"kpi_categories"`
	KPIs           []models.KPI           `json:"kpis"`
	StandardValues []models.StandardValue `json:"standard_values"`
}

// KPIRepository provides data access for extracted KPI data.
type KPIRepository interface {
	// WriteRecord persists one category record once per selected category, in
	// a single all-or-nothing transaction.
	WriteRecord(ctx context.Context, record *extraction.CategoryRecord, selectedCategories []string) (*WriteStats, error)
	// ListMainCategories returns the pre-seeded top-level categories.
	ListMainCategories(ctx context.Context) ([]models.MainCategory, error)
	// FetchAll returns all persisted KPI data.
	FetchAll(ctx context.Context) (*KPIDataSet, error)
}

type kpiRepository struct {
	db     Querier
	logger *zap.Logger
}

// NewKPIRepository creates a new KPIRepository.
func NewKPIRepository(db Querier, logger *zap.Logger) KPIRepository {
	return &kpiRepository{db: db, logger: logger.Named("kpi-repository")}
}

var _ KPIRepository = (*kpiRepository)(nil)

const (
	insertCategoryQuery = `
		INSERT INTO kpis_category (cat_name, cat_description, maincat_id)
		VALUES ($1, $2, $3)
		RETURNING cat_id`

	insertKPIQuery = `
		INSERT INTO kpis (category_id, kpi_name, unit, kpi_source, kpi_description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING kpi_id`

	insertStandardValueQuery = `
		INSERT INTO standard_values (
			kpi_id, geographical_loc, country, industry, gender,
			age_group, experience_level, value_avg, value_min,
			value_max, source_val
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
)

// WriteRecord inserts the full category/KPI/standard-value subtree once per
// selected category that maps to a known main category; unknown names are
// skipped. Generated ids come back from the insert itself (RETURNING), so the
// chaining holds regardless of what else the pool is doing. Any failure rolls
// the whole call back; no partial category is ever left committed.
func (r *kpiRepository) WriteRecord(ctx context.Context, record *extraction.CategoryRecord, selectedCategories []string) (*WriteStats, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	stats := &WriteStats{}

	for _, selected := range selectedCategories {
		maincatID, ok := models.MainCategoryIDs[selected]
		if !ok {
			r.logger.Warn("skipping unknown category selection", zap.String("category", selected))
			continue
		}

		r.logger.Debug("inserting category",
			zap.String("cat_name", record.CategoryName),
			zap.Int("maincat_id", int(maincatID)))

		var categoryID int64
		err = tx.QueryRow(ctx, insertCategoryQuery,
			record.CategoryName,
			record.CategoryDescription,
			int(maincatID),
		).Scan(&categoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert category: %w", err)
		}
		stats.Categories++

		for _, kpi := range record.KPIs {
			var kpiID int64
			err = tx.QueryRow(ctx, insertKPIQuery,
				categoryID,
				kpi.KPIName,
				kpi.Unit,
				kpi.KPISource,
				kpi.KPIDescription,
			).Scan(&kpiID)
			if err != nil {
				return nil, fmt.Errorf("failed to insert kpi %q: %w", kpi.KPIName, err)
			}
			stats.KPIs++

			for _, sv := range kpi.StandardValues {
				_, err = tx.Exec(ctx, insertStandardValueQuery,
					kpiID,
					sv.GeographicalLoc,
					sv.Country,
					sv.Industry,
					sv.Gender,
					sv.AgeGroup,
					sv.ExperienceLevel,
					models.ParseNumeric(sv.ValueAvg.String()),
					models.ParseNumeric(sv.ValueMin.String()),
					models.ParseNumeric(sv.ValueMax.String()),
					sv.SourceVal,
				)
				if err != nil {
					return nil, fmt.Errorf("failed to insert standard value for kpi %q: %w", kpi.KPIName, err)
				}
				stats.StandardValues++
			}
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit record write: %w", err)
	}

	r.logger.Info("record written",
		zap.String("cat_name", record.CategoryName),
		zap.Int("categories", stats.Categories),
		zap.Int("kpis", stats.KPIs),
		zap.Int("standard_values", stats.StandardValues))

	return stats, nil
}

// ListMainCategories returns the pre-seeded main categories in id order.
func (r *kpiRepository) ListMainCategories(ctx context.Context) ([]models.MainCategory, error) {
	rows, err := r.db.Query(ctx, `SELECT maincat_id, maincat_name FROM main_category ORDER BY maincat_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query main categories: %w", err)
	}
	defer rows.Close()

	var cats []models.MainCategory
	for rows.Next() {
		var mc models.MainCategory
		if err := rows.Scan(&mc.ID, &mc.Name); err != nil {
			return nil, fmt.Errorf("failed to scan main category: %w", err)
		}
		cats = append(cats, mc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating main categories: %w", err)
	}
	return cats, nil
}

// FetchAll returns the full contents of all four tables.
func (r *kpiRepository) FetchAll(ctx context.Context) (*KPIDataSet, error) {
	set := &KPIDataSet{}

	var err error
	if set.MainCategories, err = r.ListMainCategories(ctx); err != nil {
		return nil, err
	}
	if set.Categories, err = r.fetchCategories(ctx); err != nil {
		return nil, err
	}
	if set.KPIs, err = r.fetchKPIs(ctx); err != nil {
		return nil, err
	}
	if set.StandardValues, err = r.fetchStandardValues(ctx); err != nil {
		return nil, err
	}
	return set, nil
}

func (r *kpiRepository) fetchCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT cat_id, cat_name, cat_description, maincat_id, created_at
		FROM kpis_category
		ORDER BY cat_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var cats []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.MainCategoryID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return cats, nil
}

func (r *kpiRepository) fetchKPIs(ctx context.Context) ([]models.KPI, error) {
	rows, err := r.db.Query(ctx, `
		SELECT kpi_id, category_id, kpi_name, unit, kpi_source, kpi_description
		FROM kpis
		ORDER BY kpi_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query kpis: %w", err)
	}
	defer rows.Close()

	var kpis []models.KPI
	for rows.Next() {
		var k models.KPI
		if err := rows.Scan(&k.ID, &k.CategoryID, &k.Name, &k.Unit, &k.Source, &k.Description); err != nil {
			return nil, fmt.Errorf("failed to scan kpi: %w", err)
		}
		kpis = append(kpis, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating kpis: %w", err)
	}
	return kpis, nil
}

func (r *kpiRepository) fetchStandardValues(ctx context.Context) ([]models.StandardValue, error) {
	rows, err := r.db.Query(ctx, `
		SELECT value_id, kpi_id, geographical_loc, country, industry, gender,
		       age_group, experience_level, value_avg, value_min, value_max, source_val
		FROM standard_values
		ORDER BY value_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query standard values: %w", err)
	}
	defer rows.Close()

	var values []models.StandardValue
	for rows.Next() {
		var v models.StandardValue
		if err := rows.Scan(&v.ID, &v.KPIID, &v.GeographicalLoc, &v.Country, &v.Industry,
			&v.Gender, &v.AgeGroup, &v.ExperienceLevel, &v.ValueAvg, &v.ValueMin, &v.ValueMax,
			&v.SourceVal); err != nil {
			return nil, fmt.Errorf("failed to scan standard value: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating standard values: %w", err)
	}
	return values, nil
}
