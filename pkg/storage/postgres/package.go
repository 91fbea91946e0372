package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"metashare/pkg/domain"
	"metashare/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	packagesTable = "packages"
)

// StorePackages inserts the given packages. Versions are assigned inside the
// insert so that each package gets one more than the highest existing version
// within its group.
func (p *PgSQL) StorePackages(ctx context.Context, pkgs ...domain.Package) ([]domain.Package, error) {
	if len(pkgs) == 0 {
		return nil, nil
	}

	rows := make([]goqu.Record, 0, len(pkgs))
	for i := range pkgs {
		var pg PgPackage
		if err := pg.FromDomain(pkgs[i]); err != nil {
			return nil, err
		}

		rows = append(rows, goqu.Record{
			"group_uuid":  pg.GroupUUID,
			"name":        pg.Name,
			"description": pg.Description,
			"items":       []byte(pg.Items),
			"status":      pg.Status,
			"version": goqu.L(
				"(SELECT COALESCE(MAX(version), 0) + 1 FROM packages p WHERE p.group_uuid = ?)",
				pg.GroupUUID),
		})
	}

	var result []PgPackage
	if err := p.Builder.Insert(packagesTable).
		Rows(rows).
		Returning(&PgPackage{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store packages into pg: %w", err)
	}

	return pgPackagesToDomain(result)
}

// UpdatePackageByID updates a single package identified by its ID and returns
// the updated row. Attempts is incremented by 1 and updated_at is set
// automatically. Only provided fields are changed; a Failed status with
// MaxAttempts > 0 is applied only once the attempts after increment would
// exceed that threshold.
func (p *PgSQL) UpdatePackageByID(ctx context.Context,
	id domain.PackageID,
	updates storage.PackageUpdates) (*domain.Package, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
	}
	if updates.Status != "" {
		if updates.Status == domain.ExportStatusFailed && updates.MaxAttempts > 0 {
			rec["status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
				updates.MaxAttempts, string(domain.ExportStatusFailed))
		} else {
			rec["status"] = string(updates.Status)
		}
	}
	if updates.Serialized != nil {
		chunks, err := json.Marshal(updates.Serialized.Chunks)
		if err != nil {
			return nil, fmt.Errorf("could not marshal chunks: %w", err)
		}

		rec["header"] = updates.Serialized.Header
		rec["chunks"] = chunks
		rec["serialized"] = true
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgPackage
	found, err := p.Builder.Update(packagesTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgPackage{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update package in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// PackageByID fetches a package by its ID, excluding soft-deleted records.
func (p *PgSQL) PackageByID(ctx context.Context, id domain.PackageID) (*domain.Package, error) {
	var row PgPackage
	found, err := p.Builder.From(packagesTable).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get package from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// LatestPackageByGroup returns the highest-version package within a group.
func (p *PgSQL) LatestPackageByGroup(ctx context.Context, groupUUID uuid.UUID) (*domain.Package, error) {
	var row PgPackage
	found, err := p.Builder.From(packagesTable).Where(
		goqu.I("group_uuid").Eq(groupUUID),
		goqu.I("deleted_at").IsNull(),
	).Order(goqu.I("version").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get latest package from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// Packages returns a page of packages created before the optional cursor,
// newest first, optionally filtered by status.
func (p *PgSQL) Packages(ctx context.Context,
	status domain.ExportStatus,
	cursor time.Time,
	limit uint) (storage.PackagePage, error) {
	w := []goqu.Expression{
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(packagesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgPackage
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.PackagePage{}, fmt.Errorf("could not get packages from pg: %w", err)
	}

	page := storage.PackagePage{}
	if uint(len(rows)) == fetch {
		rows = rows[:limit]
		next := rows[len(rows)-1].CreatedAt
		page.NextCursor = &next
	}

	pkgs, err := pgPackagesToDomain(rows)
	if err != nil {
		return storage.PackagePage{}, err
	}
	page.Packages = pkgs

	return page, nil
}

// DeletePackage performs a soft delete by setting deleted_at for the given
// package ID, returning the deleted record.
func (p *PgSQL) DeletePackage(ctx context.Context, id domain.PackageID) (*domain.Package, error) {
	var row PgPackage
	found, err := p.Builder.Update(packagesTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgPackage{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete package in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
