// Package xmlcodec implements the metadata.Serializer contract using
// encoding/xml. Output is deterministic: record properties and references are
// emitted in a stable order so the same input always produces the same bytes.
package xmlcodec

import (
	"encoding/xml"
	"fmt"
	"metashare/pkg/domain"
	"sort"
	"time"
)

// Serializer renders chunk bodies and package headers as indented XML,
// without the format prologue (the pipeline adds it).
type Serializer struct{}

// New creates a Serializer.
func New() *Serializer {
	return &Serializer{}
}

// Serialize implements metadata.Serializer. Supported values are record
// slices (chunk bodies), single records and *domain.Package (header).
func (s *Serializer) Serialize(v any) (string, error) {
	switch value := v.(type) {
	case []domain.Record:
		doc := xmlMetadata{Records: make([]xmlRecord, 0, len(value))}
		for _, record := range value {
			doc.Records = append(doc.Records, toXMLRecord(record))
		}

		return marshal(doc)
	case domain.Record:
		return marshal(toXMLRecord(value))
	case *domain.Package:
		return marshal(toXMLPackage(value))
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}

func marshal(v any) (string, error) {
	out, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("could not marshal xml: %w", err)
	}

	return string(out), nil
}

type xmlMetadata struct {
	XMLName xml.Name    `xml:"metadata"`
	Records []xmlRecord `xml:"record"`
}

type xmlRecord struct {
	XMLName    xml.Name      `xml:"record"`
	Type       string        `xml:"type,attr"`
	UUID       string        `xml:"uuid,attr"`
	Name       string        `xml:"name,omitempty"`
	Retired    bool          `xml:"retired,omitempty"`
	Properties []xmlProperty `xml:"property"`
	Refs       []xmlItem     `xml:"ref"`
}

type xmlProperty struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

type xmlItem struct {
	Type string `xml:"type,attr"`
	UUID string `xml:"uuid,attr"`
}

type xmlPackage struct {
	XMLName      xml.Name  `xml:"package"`
	GroupUUID    string    `xml:"groupUuid"`
	Name         string    `xml:"name"`
	Description  string    `xml:"description"`
	Version      uint      `xml:"version"`
	DateCreated  string    `xml:"dateCreated,omitempty"`
	Items        []xmlItem `xml:"items>item"`
	RelatedItems []xmlItem `xml:"relatedItems>item"`
}

func toXMLRecord(record domain.Record) xmlRecord {
	out := xmlRecord{
		Type: record.RecordType(),
		UUID: record.RecordUUID().String(),
		Refs: toXMLItems(record.References()),
	}

	if generic, ok := record.(*domain.GenericRecord); ok {
		out.Name = generic.Name
		out.Retired = generic.Retired

		keys := make([]string, 0, len(generic.Properties))
		for key := range generic.Properties {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			out.Properties = append(out.Properties, xmlProperty{Key: key, Value: generic.Properties[key]})
		}
	}

	return out
}

func toXMLPackage(pkg *domain.Package) xmlPackage {
	out := xmlPackage{
		GroupUUID:    pkg.GroupUUID.String(),
		Name:         pkg.Name,
		Description:  pkg.Description,
		Version:      pkg.Version,
		Items:        toXMLItems(pkg.Items),
		RelatedItems: toXMLItems(pkg.RelatedItems.Items()),
	}
	if !pkg.CreatedAt.IsZero() {
		out.DateCreated = pkg.CreatedAt.UTC().Format(time.RFC3339)
	}

	return out
}

func toXMLItems(items []domain.Item) []xmlItem {
	out := make([]xmlItem, 0, len(items))
	for _, item := range items {
		out = append(out, xmlItem{Type: item.Type, UUID: item.UUID.String()})
	}

	return out
}
