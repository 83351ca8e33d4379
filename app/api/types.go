package api

import (
	"context"

	"github.com/odatools/catalog-browser/app/browse"
)

// BrowserInterface covers the pipeline operations the handlers need.
type BrowserInterface interface {
	Catalogs(ctx context.Context) ([]browse.CatalogInfo, error)
	CatalogServices(ctx context.Context, catalogName string) ([]browse.ServiceInfo, error)
	Metadata(ctx context.Context, rawURL string) ([]byte, error)
}

var _ BrowserInterface = (*browse.Browser)(nil)

type Handler struct {
	browser BrowserInterface
	host    string
	version string
}

// viewModel is built fresh for every request; no handler state is shared
// between requests.
type viewModel struct {
	HostName        string
	Version         string
	CatalogList     []browse.CatalogInfo
	ServiceList     []browse.ServiceInfo
	SelectedCatalog string
	LastSrv         string
	ErrMsg          string
}
