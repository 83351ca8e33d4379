package browse

// CatalogInfo is one catalog advertised by the catalog service.
type CatalogInfo struct {
	Title       string
	Description string
}

// ServiceInfo is one OData service inside a catalog.
type ServiceInfo struct {
	ID          string
	Title       string
	Description string
	MetadataURL string
	ServiceURL  string
}
