package odata

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// EntitySet identifies one of the record collections the catalog service
// exposes. The enumeration is closed: names outside it are rejected instead
// of falling through to a formatted error string.
type EntitySet string

const (
	EntitySetCatalogs    EntitySet = "CatalogCollection"
	EntitySetServices    EntitySet = "ServiceCollection"
	EntitySetTags        EntitySet = "TagCollection"
	EntitySetEntitySets  EntitySet = "EntitySetCollection"
	EntitySetAnnotations EntitySet = "Annotations"
)

var ErrUnknownEntitySet = errors.New("unknown entity set")

var entitySets = map[string]EntitySet{
	string(EntitySetCatalogs):    EntitySetCatalogs,
	string(EntitySetServices):    EntitySetServices,
	string(EntitySetTags):        EntitySetTags,
	string(EntitySetEntitySets):  EntitySetEntitySets,
	string(EntitySetAnnotations): EntitySetAnnotations,
}

// EntitySetFor resolves an entity set name advertised by the service.
func EntitySetFor(name string) (EntitySet, error) {
	if es, ok := entitySets[name]; ok {
		return es, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEntitySet, name)
}

// DecodeFeed decodes an OData Atom feed of the given record type.
func DecodeFeed[T any](data []byte) (*Feed[T], error) {
	var feed Feed[T]
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	return &feed, nil
}

// DecodeServiceDocument decodes the APP service document at the service root.
func DecodeServiceDocument(data []byte) (*ServiceDocument, error) {
	var doc ServiceDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode service document: %w", err)
	}

	return &doc, nil
}

// DecodeError decodes the structured error envelope of a 500 response.
func DecodeError(data []byte) (*ODataError, error) {
	var odataErr ODataError
	if err := xml.Unmarshal(data, &odataErr); err != nil {
		return nil, fmt.Errorf("decode error envelope: %w", err)
	}

	return &odataErr, nil
}
