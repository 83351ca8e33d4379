package odata

import (
	"errors"
	"testing"
	"time"
)

const catalogFeedXML = `<?xml version="1.0" encoding="utf-8"?>
<feed xml:base="https://sapes5.sapdevcenter.com:443/sap/opu/odata/iwfnd/catalogservice;v=2/"
      xmlns="http://www.w3.org/2005/Atom"
      xmlns:m="http://schemas.microsoft.com/ado/2007/08/dataservices/metadata"
      xmlns:d="http://schemas.microsoft.com/ado/2007/08/dataservices">
  <id>https://sapes5.sapdevcenter.com:443/sap/opu/odata/iwfnd/catalogservice;v=2/CatalogCollection</id>
  <title type="text">CatalogCollection</title>
  <link href="CatalogCollection" rel="self" title="CatalogCollection"/>
  <entry>
    <id>https://sapes5.sapdevcenter.com:443/sap/opu/odata/iwfnd/catalogservice;v=2/CatalogCollection('ES5')</id>
    <title type="text">CatalogCollection('ES5')</title>
    <content type="application/xml">
      <m:properties>
        <d:ID>ES5</d:ID>
        <d:Title>ES5</d:Title>
        <d:Description>Service Catalog</d:Description>
        <d:ImageUrl></d:ImageUrl>
        <d:Url></d:Url>
        <d:UpdatedDate>2024-06-17T12:45:42</d:UpdatedDate>
      </m:properties>
    </content>
  </entry>
</feed>`

func TestDecodeCatalogFeed(t *testing.T) {
	feed, err := DecodeFeed[Catalog]([]byte(catalogFeedXML))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if feed.Title != "CatalogCollection" {
		t.Errorf("Expected title 'CatalogCollection', got: %s", feed.Title)
	}
	if len(feed.Links) != 1 || feed.Links[0].Href != "CatalogCollection" {
		t.Errorf("Expected one self link to CatalogCollection, got: %+v", feed.Links)
	}
	if len(feed.Entries) != 1 {
		t.Fatalf("Expected 1 entry, got: %d", len(feed.Entries))
	}

	props := feed.Entries[0].Props()
	if props == nil {
		t.Fatal("Expected entry properties, got nil")
	}
	if props.ID != "ES5" {
		t.Errorf("Expected catalog ID 'ES5', got: %s", props.ID)
	}
	if props.Description != "Service Catalog" {
		t.Errorf("Expected description 'Service Catalog', got: %s", props.Description)
	}

	want := time.Date(2024, 6, 17, 12, 45, 42, 0, time.UTC)
	if !props.UpdatedDate.Time.Equal(want) {
		t.Errorf("Expected updated date %v, got: %v", want, props.UpdatedDate.Time)
	}
}

const serviceFeedXML = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"
      xmlns:m="http://schemas.microsoft.com/ado/2007/08/dataservices/metadata"
      xmlns:d="http://schemas.microsoft.com/ado/2007/08/dataservices">
  <id>https://sapes5.sapdevcenter.com:443/sap/opu/odata/iwfnd/catalogservice;v=2/ServiceCollection</id>
  <title type="text">ServiceCollection</title>
  <entry>
    <id>ServiceCollection('WDR_ADAPT_UI_SRV_0001')</id>
    <content type="application/xml">
      <m:properties>
        <d:ID>WDR_ADAPT_UI_SRV_0001</d:ID>
        <d:Title>WDR_ADAPT_UI_SRV</d:Title>
        <d:Description>Adapt Web Dynpro Applications in FLP</d:Description>
        <d:Author>SAP</d:Author>
        <d:TechnicalServiceName>WDR_ADAPT_UI_SRV</d:TechnicalServiceName>
        <d:TechnicalServiceVersion>1</d:TechnicalServiceVersion>
        <d:MetadataUrl>https://sapes5.sapdevcenter.com:443/sap/opu/odata/sap/WDR_ADAPT_UI_SRV/$metadata</d:MetadataUrl>
        <d:ServiceUrl>https://sapes5.sapdevcenter.com:443/sap/opu/odata/sap/WDR_ADAPT_UI_SRV</d:ServiceUrl>
        <d:ImageUrl></d:ImageUrl>
        <d:UpdatedDate>2018-03-23T08:17:44</d:UpdatedDate>
        <d:ReleaseStatus></d:ReleaseStatus>
        <d:Category></d:Category>
        <d:IsSapService>true</d:IsSapService>
      </m:properties>
    </content>
  </entry>
</feed>`

func TestDecodeServiceFeed(t *testing.T) {
	feed, err := DecodeFeed[Service]([]byte(serviceFeedXML))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(feed.Entries) != 1 {
		t.Fatalf("Expected 1 entry, got: %d", len(feed.Entries))
	}

	props := feed.Entries[0].Props()
	if props == nil {
		t.Fatal("Expected entry properties, got nil")
	}
	if props.ID != "WDR_ADAPT_UI_SRV_0001" {
		t.Errorf("Expected service ID 'WDR_ADAPT_UI_SRV_0001', got: %s", props.ID)
	}
	if props.TechnicalServiceVersion != 1 {
		t.Errorf("Expected technical service version 1, got: %d", props.TechnicalServiceVersion)
	}
	if props.MetadataURL != "https://sapes5.sapdevcenter.com:443/sap/opu/odata/sap/WDR_ADAPT_UI_SRV/$metadata" {
		t.Errorf("Unexpected metadata URL: %s", props.MetadataURL)
	}
	if !props.IsSAPService {
		t.Error("Expected IsSapService to decode as true")
	}
}

func TestDecodeAnnotationFeedMediaEntry(t *testing.T) {
	// Media link entries carry their properties as a direct child of the
	// entry, with content pointing at the media resource.
	annotationFeedXML := `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"
      xmlns:m="http://schemas.microsoft.com/ado/2007/08/dataservices/metadata"
      xmlns:d="http://schemas.microsoft.com/ado/2007/08/dataservices">
  <id>https://sapes5.sapdevcenter.com:443/sap/opu/odata/iwfnd/catalogservice;v=2/Annotations</id>
  <title type="text">Annotations</title>
  <entry>
    <id>Annotations(TechnicalName='ZPDCDS_ANNO_MDL',Version='0001')</id>
    <content type="application/xml" src="Annotations(TechnicalName='ZPDCDS_ANNO_MDL',Version='0001')/$value"/>
    <m:properties>
      <d:TechnicalName>ZPDCDS_ANNO_MDL</d:TechnicalName>
      <d:Version>0001</d:Version>
      <d:Description>Generic Annotation Provider</d:Description>
      <d:MediaType>application/xml</d:MediaType>
    </m:properties>
  </entry>
</feed>`

	feed, err := DecodeFeed[Annotation]([]byte(annotationFeedXML))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(feed.Entries) != 1 {
		t.Fatalf("Expected 1 entry, got: %d", len(feed.Entries))
	}

	entry := feed.Entries[0]
	if entry.Content.Src != "Annotations(TechnicalName='ZPDCDS_ANNO_MDL',Version='0001')/$value" {
		t.Errorf("Unexpected content src: %s", entry.Content.Src)
	}

	props := entry.Props()
	if props == nil {
		t.Fatal("Expected entry-level properties, got nil")
	}
	if props.TechnicalName != "ZPDCDS_ANNO_MDL" {
		t.Errorf("Expected technical name 'ZPDCDS_ANNO_MDL', got: %s", props.TechnicalName)
	}
	if props.MediaType != "application/xml" {
		t.Errorf("Expected media type 'application/xml', got: %s", props.MediaType)
	}
}

func TestDecodeFeedWithoutEntries(t *testing.T) {
	feedXML := `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <id>https://sapes5.sapdevcenter.com:443/sap/opu/odata/iwfnd/catalogservice;v=2/CatalogCollection</id>
  <title type="text">CatalogCollection</title>
</feed>`

	feed, err := DecodeFeed[Catalog]([]byte(feedXML))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if feed.Entries != nil {
		t.Errorf("Expected nil entries for a feed without an entries section, got: %+v", feed.Entries)
	}
}

func TestDecodeFeedInvalid(t *testing.T) {
	if _, err := DecodeFeed[Catalog]([]byte("not xml at all")); err == nil {
		t.Error("Expected error for invalid XML")
	}

	// A well-formed document with the wrong root element is not a feed.
	if _, err := DecodeFeed[Catalog]([]byte(`<html><body>offline</body></html>`)); err == nil {
		t.Error("Expected error for non-feed document")
	}
}

func TestDecodeServiceDocument(t *testing.T) {
	serviceDocXML := `<?xml version="1.0" encoding="utf-8"?>
<app:service xml:lang="en"
             xmlns:app="http://www.w3.org/2007/app"
             xmlns:atom="http://www.w3.org/2005/Atom">
  <app:workspace>
    <atom:title type="text">Data</atom:title>
    <app:collection href="CatalogCollection">
      <atom:title type="text">CatalogCollection</atom:title>
    </app:collection>
    <app:collection href="ServiceCollection">
      <atom:title type="text">ServiceCollection</atom:title>
    </app:collection>
  </app:workspace>
</app:service>`

	doc, err := DecodeServiceDocument([]byte(serviceDocXML))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(doc.Workspace.Collections) != 2 {
		t.Fatalf("Expected 2 collections, got: %d", len(doc.Workspace.Collections))
	}
	if doc.Workspace.Collections[0].Href != "CatalogCollection" {
		t.Errorf("Expected first collection href 'CatalogCollection', got: %s", doc.Workspace.Collections[0].Href)
	}
	if doc.Workspace.Collections[1].Title != "ServiceCollection" {
		t.Errorf("Expected second collection title 'ServiceCollection', got: %s", doc.Workspace.Collections[1].Title)
	}
}

func TestDecodeErrorEnvelope(t *testing.T) {
	errorXML := `<?xml version="1.0" encoding="utf-8"?>
<error xmlns="http://schemas.microsoft.com/ado/2007/08/dataservices/metadata">
  <code>005056A509B11EE1B9A8FEC11C21D78E</code>
  <message xml:lang="en">Invalid service name</message>
</error>`

	odataErr, err := DecodeError([]byte(errorXML))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if odataErr.Code != "005056A509B11EE1B9A8FEC11C21D78E" {
		t.Errorf("Unexpected error code: %s", odataErr.Code)
	}
	if odataErr.Message.Text != "Invalid service name" {
		t.Errorf("Expected message 'Invalid service name', got: %s", odataErr.Message.Text)
	}
}

func TestDecodeErrorEnvelopeInvalid(t *testing.T) {
	if _, err := DecodeError([]byte("<unclosed")); err == nil {
		t.Error("Expected error for malformed envelope")
	}
}

func TestEntitySetFor(t *testing.T) {
	known := map[string]EntitySet{
		"CatalogCollection":   EntitySetCatalogs,
		"ServiceCollection":   EntitySetServices,
		"TagCollection":       EntitySetTags,
		"EntitySetCollection": EntitySetEntitySets,
		"Annotations":         EntitySetAnnotations,
	}

	for name, want := range known {
		got, err := EntitySetFor(name)
		if err != nil {
			t.Errorf("Expected %q to resolve, got error: %v", name, err)
		}
		if got != want {
			t.Errorf("Expected %q to resolve to %q, got: %q", name, want, got)
		}
	}

	if _, err := EntitySetFor("VocabularyCollection"); !errors.Is(err, ErrUnknownEntitySet) {
		t.Errorf("Expected ErrUnknownEntitySet, got: %v", err)
	}
}

func TestEdmDateTimeInvalid(t *testing.T) {
	feedXML := `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"
      xmlns:m="http://schemas.microsoft.com/ado/2007/08/dataservices/metadata"
      xmlns:d="http://schemas.microsoft.com/ado/2007/08/dataservices">
  <id>x</id>
  <title>x</title>
  <entry>
    <content type="application/xml">
      <m:properties>
        <d:ID>ES5</d:ID>
        <d:UpdatedDate>17.06.2024</d:UpdatedDate>
      </m:properties>
    </content>
  </entry>
</feed>`

	if _, err := DecodeFeed[Catalog]([]byte(feedXML)); err == nil {
		t.Error("Expected error for malformed Edm.DateTime value")
	}
}
