package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
)

func NewHandler(browser BrowserInterface, host, version string) *Handler {
	return &Handler{
		browser: browser,
		host:    host,
		version: version,
	}
}

func (h *Handler) newViewModel() viewModel {
	return viewModel{
		HostName: h.host,
		Version:  h.version,
	}
}

// GetRoot lists the catalogs advertised by the backend's catalog service.
func (h *Handler) GetRoot(c *gin.Context) {
	vm := h.newViewModel()

	catalogs, err := h.browser.Catalogs(c.Request.Context())
	if err != nil {
		h.renderError(c, vm, err)
		return
	}

	vm.CatalogList = catalogs
	c.HTML(http.StatusOK, "index.html", vm)
}

// GetServices lists the services inside the catalog named by the
// catalog_name query parameter.
func (h *Handler) GetServices(c *gin.Context) {
	name := c.Query("catalog_name")
	if name == "" {
		c.String(http.StatusBadRequest, "Missing catalog_name parameter")
		return
	}

	vm := h.newViewModel()
	vm.SelectedCatalog = name

	services, err := h.browser.CatalogServices(c.Request.Context(), name)
	if err != nil {
		h.renderError(c, vm, err)
		return
	}

	vm.ServiceList = services
	if len(services) > 0 {
		vm.LastSrv = services[0].MetadataURL
	}

	c.HTML(http.StatusOK, "index.html", vm)
}

// GetMetadata fetches the caller-supplied metadata URL and returns the raw
// document as plain text. Only absolute http(s) URLs are accepted.
func (h *Handler) GetMetadata(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.String(http.StatusBadRequest, "Missing url parameter")
		return
	}
	if !isHTTPURL(rawURL) {
		c.String(http.StatusBadRequest, "Only absolute http(s) URLs are supported")
		return
	}

	vm := h.newViewModel()
	vm.LastSrv = rawURL

	body, err := h.browser.Metadata(c.Request.Context(), rawURL)
	if err != nil {
		h.renderError(c, vm, err)
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", body)
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"version":   h.version,
		"host":      h.host,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
