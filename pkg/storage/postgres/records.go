package postgres

import (
	"context"
	"fmt"
	"metashare/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	recordsTable = "metadata_records"
)

// StoreRecords upserts records by (type, uuid) identity and returns the
// number of affected rows.
func (p *PgSQL) StoreRecords(ctx context.Context, records ...*domain.GenericRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	rows := make([]PgRecord, len(records))
	for i, record := range records {
		if err := rows[i].FromDomain(record); err != nil {
			return 0, err
		}
	}

	res, err := p.Builder.Insert(recordsTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("type, uuid", goqu.Record{
			"name":       goqu.L("EXCLUDED.name"),
			"retired":    goqu.L("EXCLUDED.retired"),
			"properties": goqu.L("EXCLUDED.properties"),
			"refs":       goqu.L("EXCLUDED.refs"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not store records into pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected, nil
}

// RecordByTypeAndUUID fetches a single record by identity, or nil when not found.
func (p *PgSQL) RecordByTypeAndUUID(ctx context.Context,
	recordType string,
	id uuid.UUID) (*domain.GenericRecord, error) {
	var row PgRecord
	found, err := p.Builder.From(recordsTable).Where(
		goqu.I("type").Eq(recordType),
		goqu.I("uuid").Eq(id),
	).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get record from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// RecordCount returns the total number of stored records.
func (p *PgSQL) RecordCount(ctx context.Context) (int64, error) {
	count, err := p.Builder.From(recordsTable).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count records in pg: %w", err)
	}

	return count, nil
}
