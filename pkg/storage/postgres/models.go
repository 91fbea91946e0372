package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"metashare/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgPackage struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	GroupUUID uuid.UUID `db:"group_uuid"`

	Name        string `db:"name"`
	Description string `db:"description"`
	Version     uint   `db:"version"    goqu:"skipinsert"`

	Items      json.RawMessage `db:"items"`
	Status     string          `db:"status"`
	Header     sql.NullString  `db:"header"     goqu:"skipinsert"`
	Chunks     json.RawMessage `db:"chunks"     goqu:"skipinsert"`
	Serialized bool            `db:"serialized" goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgPackage) ToDomain() (*domain.Package, error) {
	var items []domain.Item
	if len(p.Items) > 0 {
		if err := json.Unmarshal(p.Items, &items); err != nil {
			return nil, fmt.Errorf("could not unmarshal package items: %w", err)
		}
	}

	var serialized *domain.SerializedPackage
	if p.Serialized {
		var chunks []string
		if len(p.Chunks) > 0 {
			if err := json.Unmarshal(p.Chunks, &chunks); err != nil {
				return nil, fmt.Errorf("could not unmarshal package chunks: %w", err)
			}
		}
		serialized = &domain.SerializedPackage{Header: p.Header.String, Chunks: chunks}
	}

	return &domain.Package{
		ID:          domain.PackageID(p.ID),
		GroupUUID:   p.GroupUUID,
		Name:        p.Name,
		Description: p.Description,
		Version:     p.Version,
		Items:       items,
		Status:      domain.ExportStatus(p.Status),
		Serialized:  serialized,
		Attempts:    p.Attempts,
		LastError:   p.LastError.String,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
		DeletedAt:   p.DeletedAt.Time,
	}, nil
}

func (p *PgPackage) FromDomain(pkg domain.Package) error {
	items, err := json.Marshal(pkg.Items)
	if err != nil {
		return fmt.Errorf("could not marshal package items: %w", err)
	}

	*p = PgPackage{
		ID:          uuid.UUID(pkg.ID),
		GroupUUID:   pkg.GroupUUID,
		Name:        pkg.Name,
		Description: pkg.Description,
		Version:     pkg.Version,
		Items:       items,
		Status:      string(pkg.Status),
		Attempts:    pkg.Attempts,
		LastError: sql.NullString{
			String: pkg.LastError,
			Valid:  pkg.LastError != "",
		},
		CreatedAt: pkg.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  pkg.UpdatedAt,
			Valid: !pkg.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  pkg.DeletedAt,
			Valid: !pkg.DeletedAt.IsZero(),
		},
	}

	if pkg.Serialized != nil {
		chunks, err := json.Marshal(pkg.Serialized.Chunks)
		if err != nil {
			return fmt.Errorf("could not marshal package chunks: %w", err)
		}
		p.Header = sql.NullString{String: pkg.Serialized.Header, Valid: true}
		p.Chunks = chunks
		p.Serialized = true
	}

	return nil
}

func pgPackagesToDomain(pkgs []PgPackage) ([]domain.Package, error) {
	out := make([]domain.Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		d, err := pkg.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgRecord struct {
	Type       string          `db:"type"`
	UUID       uuid.UUID       `db:"uuid"`
	Name       string          `db:"name"`
	Retired    bool            `db:"retired"`
	Properties json.RawMessage `db:"properties"`
	Refs       json.RawMessage `db:"refs"`
}

func (r *PgRecord) ToDomain() (*domain.GenericRecord, error) {
	out := &domain.GenericRecord{
		Kind:    r.Type,
		ID:      r.UUID,
		Name:    r.Name,
		Retired: r.Retired,
	}
	if len(r.Properties) > 0 {
		if err := json.Unmarshal(r.Properties, &out.Properties); err != nil {
			return nil, fmt.Errorf("could not unmarshal record properties: %w", err)
		}
	}
	if len(r.Refs) > 0 {
		if err := json.Unmarshal(r.Refs, &out.Refs); err != nil {
			return nil, fmt.Errorf("could not unmarshal record refs: %w", err)
		}
	}

	return out, nil
}

func (r *PgRecord) FromDomain(record *domain.GenericRecord) error {
	properties, err := json.Marshal(record.Properties)
	if err != nil {
		return fmt.Errorf("could not marshal record properties: %w", err)
	}
	refs, err := json.Marshal(record.Refs)
	if err != nil {
		return fmt.Errorf("could not marshal record refs: %w", err)
	}

	*r = PgRecord{
		Type:       record.Kind,
		UUID:       record.ID,
		Name:       record.Name,
		Retired:    record.Retired,
		Properties: properties,
		Refs:       refs,
	}

	return nil
}
