package browse

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"github.com/odatools/catalog-browser/app/client"
	"github.com/odatools/catalog-browser/app/odata"
)

const (
	servicePath = "/sap/opu/odata/iwfnd"
	serviceName = "catalogservice;v=2"
)

// Browser runs the staged browsing pipeline against one backend host. Each
// call is an independent, stateless pipeline run; the first failure
// terminates it and no partial result is ever returned alongside an error.
type Browser struct {
	fetcher *client.Fetcher
	host    string
}

func NewBrowser(fetcher *client.Fetcher, host string) *Browser {
	return &Browser{fetcher: fetcher, host: host}
}

// ServiceDocURL is the root of the catalog service. The host always comes
// from trusted configuration, never from request input.
func (b *Browser) ServiceDocURL() string {
	return fmt.Sprintf("https://%s%s/%s/", b.host, servicePath, serviceName)
}

// Catalogs fetches the service document, resolves the catalog collection and
// returns the catalogs it lists.
func (b *Browser) Catalogs(ctx context.Context) ([]CatalogInfo, error) {
	baseURL := b.ServiceDocURL()

	slog.Info("Fetching catalog service document", "url", baseURL)
	res, err := b.fetcher.Fetch(ctx, baseURL)
	if err != nil {
		return nil, fetchError(StageDiscovery, err)
	}
	if cerr := classify(StageDiscovery, res); cerr != nil {
		return nil, cerr
	}

	doc, err := odata.DecodeServiceDocument(res.Body)
	if err != nil {
		return nil, &Error{Kind: KindDecodeFailure, Stage: StageDiscovery, Message: err.Error(), cause: err}
	}

	collection, ok := findCollection(doc, string(odata.EntitySetCatalogs))
	if !ok {
		return nil, &Error{
			Kind:    KindMissingCollection,
			Stage:   StageCollection,
			Message: fmt.Sprintf("the catalog service does not advertise a collection named %s", odata.EntitySetCatalogs),
		}
	}

	feedURL := baseURL + collection.Href

	slog.Info("Fetching catalog feed", "url", feedURL)
	res, err = b.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return nil, fetchError(StageCatalogFeed, err)
	}
	if cerr := classify(StageCatalogFeed, res); cerr != nil {
		return nil, cerr
	}

	feed, err := odata.DecodeFeed[odata.Catalog](res.Body)
	if err != nil {
		return nil, &Error{Kind: KindDecodeFailure, Stage: StageCatalogFeed, Message: err.Error(), cause: err}
	}

	return catalogsFromFeed(feed)
}

// CatalogServices fetches the services sub-collection of the named catalog.
func (b *Browser) CatalogServices(ctx context.Context, catalogName string) ([]ServiceInfo, error) {
	feedURL := fmt.Sprintf("%s%s('%s')/Services", b.ServiceDocURL(), odata.EntitySetCatalogs, url.PathEscape(catalogName))

	slog.Info("Fetching services in catalog", "catalog", catalogName, "url", feedURL)
	res, err := b.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return nil, fetchError(StageServiceFeed, err)
	}
	if cerr := classify(StageServiceFeed, res); cerr != nil {
		return nil, cerr
	}

	feed, err := odata.DecodeFeed[odata.Service](res.Body)
	if err != nil {
		return nil, &Error{Kind: KindDecodeFailure, Stage: StageServiceFeed, Message: err.Error(), cause: err}
	}

	return servicesFromFeed(feed)
}

// Metadata fetches an operator-supplied absolute URL and returns the body
// verbatim, without decoding. Callers validate the scheme before handing the
// URL in; this is the one stage where the target is not derived from
// configuration.
func (b *Browser) Metadata(ctx context.Context, rawURL string) ([]byte, error) {
	slog.Info("Fetching service metadata", "url", rawURL)
	res, err := b.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fetchError(StageMetadata, err)
	}
	if cerr := classify(StageMetadata, res); cerr != nil {
		return nil, cerr
	}

	return res.Body, nil
}

func findCollection(doc *odata.ServiceDocument, href string) (odata.Collection, bool) {
	for _, c := range doc.Workspace.Collections {
		if c.Href == href {
			return c, true
		}
	}
	return odata.Collection{}, false
}

// catalogsFromFeed distinguishes a feed whose entries section is absent (a
// data-shape failure, reported with the feed's own id) from a feed that
// explicitly lists zero catalogs (valid data).
func catalogsFromFeed(feed *odata.Feed[odata.Catalog]) ([]CatalogInfo, error) {
	if feed.Entries == nil {
		return nil, &Error{
			Kind:    KindEmptyFeed,
			Stage:   StageCatalogFeed,
			Message: fmt.Sprintf("no service catalogs have been defined: %s", feed.ID),
		}
	}

	catalogs := make([]CatalogInfo, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		props := entry.Props()
		if props == nil {
			continue
		}
		catalogs = append(catalogs, CatalogInfo{
			Title:       props.Title,
			Description: props.Description,
		})
	}

	return catalogs, nil
}

// servicesFromFeed applies the same empty-feed rule and orders the result by
// service ID: the upstream protocol does not guarantee delivery order.
func servicesFromFeed(feed *odata.Feed[odata.Service]) ([]ServiceInfo, error) {
	if feed.Entries == nil {
		return nil, &Error{
			Kind:    KindEmptyFeed,
			Stage:   StageServiceFeed,
			Message: fmt.Sprintf("no services found: %s", feed.ID),
		}
	}

	services := make([]ServiceInfo, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		props := entry.Props()
		if props == nil {
			continue
		}
		services = append(services, ServiceInfo{
			ID:          props.ID,
			Title:       props.Title,
			Description: props.Description,
			MetadataURL: props.MetadataURL,
			ServiceURL:  props.ServiceURL,
		})
	}

	slices.SortFunc(services, func(a, b ServiceInfo) int {
		return strings.Compare(a.ID, b.ID)
	})

	return services, nil
}
