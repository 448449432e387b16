package docs

import (
	"fmt"
	"net/http"

	"bookrest/internal/config"

	jsoniter "github.com/json-iterator/go"
	"github.com/swaggo/swag"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Apply copies the configured API description into the registered spec.
func Apply(info config.APIInfo) {
	SwaggerInfo.Title = info.Title
	SwaggerInfo.Version = info.Version
	SwaggerInfo.Description = info.Description
}

// Document renders the OpenAPI document with the terms of service and
// license taken from info.
func Document(info config.APIInfo) ([]byte, error) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		return nil, fmt.Errorf("read swagger doc: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decode swagger doc: %w", err)
	}
	meta, _ := doc["info"].(map[string]any)
	if meta == nil {
		meta = map[string]any{}
		doc["info"] = meta
	}
	if info.TermsOfService != "" {
		meta["termsOfService"] = info.TermsOfService
	}
	if info.LicenseName != "" {
		meta["license"] = map[string]any{"name": info.LicenseName, "url": info.LicenseURL}
	}
	return json.Marshal(doc)
}

// Handler serves the OpenAPI document. It is rendered once.
func Handler(info config.APIInfo) (http.Handler, error) {
	Apply(info)
	body, err := Document(info)
	if err != nil {
		return nil, err
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}), nil
}
