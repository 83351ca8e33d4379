package odata

import (
	"encoding/xml"
	"fmt"
	"time"
)

// Feed is an OData Atom feed carrying entries of one record type. Entries is
// nil when the feed contains no entry elements at all, which callers must
// distinguish from a feed that lists zero records.
type Feed[T any] struct {
	XMLName xml.Name   `xml:"http://www.w3.org/2005/Atom feed"`
	ID      string     `xml:"id"`
	Title   string     `xml:"title"`
	Links   []Link     `xml:"link"`
	Entries []Entry[T] `xml:"entry"`
}

type Link struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Title string `xml:"title,attr"`
}

// Entry is one record within a feed. For regular entries the property record
// sits inside the content element; media link entries carry it as a direct
// child of the entry instead, with content pointing at the media resource.
type Entry[T any] struct {
	ID         string     `xml:"id"`
	Title      string     `xml:"title"`
	Content    Content[T] `xml:"content"`
	Properties *T         `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices/metadata properties"`
}

type Content[T any] struct {
	Type       string `xml:"type,attr"`
	Src        string `xml:"src,attr"`
	Properties *T     `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices/metadata properties"`
}

// Props returns the entry's property record wherever the service placed it,
// or nil when the entry carries none.
func (e *Entry[T]) Props() *T {
	if e.Content.Properties != nil {
		return e.Content.Properties
	}
	return e.Properties
}

// ServiceDocument is the APP service document at the root of the catalog
// service, listing the named collections the service advertises.
type ServiceDocument struct {
	XMLName   xml.Name  `xml:"http://www.w3.org/2007/app service"`
	Workspace Workspace `xml:"workspace"`
}

type Workspace struct {
	Title       string       `xml:"http://www.w3.org/2005/Atom title"`
	Collections []Collection `xml:"collection"`
}

type Collection struct {
	Href  string `xml:"href,attr"`
	Title string `xml:"http://www.w3.org/2005/Atom title"`
}

// ODataError is the structured error envelope the service returns with a 500
// status. Other status codes carry no reliable structured payload.
type ODataError struct {
	XMLName xml.Name     `xml:"error"`
	Code    string       `xml:"code"`
	Message ErrorMessage `xml:"message"`
}

type ErrorMessage struct {
	Lang string `xml:"lang,attr"`
	Text string `xml:",chardata"`
}

// EdmDateTime decodes the zone-less Edm.DateTime representation used by the
// catalog service, e.g. "2018-03-23T08:17:44".
type EdmDateTime struct {
	time.Time
}

func (t *EdmDateTime) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var value string
	if err := d.DecodeElement(&value, &start); err != nil {
		return err
	}

	if value == "" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse("2006-01-02T15:04:05.9999999", value)
	if err != nil {
		return fmt.Errorf("invalid Edm.DateTime value %q", value)
	}

	t.Time = parsed
	return nil
}

// Record types of the catalog service, one per supported entity set. Property
// elements live in the OData data namespace.

type Catalog struct {
	ID          string      `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices ID"`
	Title       string      `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices Title"`
	Description string      `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices Description"`
	ImageURL    string      `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices ImageUrl"`
	URL         string      `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices Url"`
	UpdatedDate EdmDateTime `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices UpdatedDate"`
}

type Service struct {
	ID                      string      `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices ID"`
	Title                   string      `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices Title"`
	Description             string      `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices Description"`
	Author                  string      `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices Author"`
	TechnicalServiceName    string      `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices TechnicalServiceName"`
	TechnicalServiceVersion int         `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices TechnicalServiceVersion"`
	MetadataURL             string      `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices MetadataUrl"`
	ServiceURL              string      `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices ServiceUrl"`
	ImageURL                string      `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices ImageUrl"`
	UpdatedDate             EdmDateTime `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices UpdatedDate"`
	ReleaseStatus           string      `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices ReleaseStatus"`
	Category                string      `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices Category"`
	IsSAPService            bool        `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices IsSapService"`
}

type Tag struct {
	ID         string `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices ID"`
	Text       string `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices Text"`
	Occurrence int    `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices Occurrence"`
}

type EntitySetInfo struct {
	ID                      string `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices ID"`
	SrvIdentifier           string `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices SrvIdentifier"`
	Description             string `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices Description"`
	TechnicalServiceName    string `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices TechnicalServiceName"`
	TechnicalServiceVersion string `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices TechnicalServiceVersion"`
}

type Annotation struct {
	TechnicalName string `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices TechnicalName"`
	Version       string `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices Version"`
	Description   string `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices Description"`
	MediaType     string `xml:"http://schemas.microsoft.com/ado/2007/08/dataservices MediaType"`
}
